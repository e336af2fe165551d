package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	lookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordpage_lookups_total",
			Help: "Total lookup sequences by trigger and outcome",
		},
		[]string{"trigger", "outcome"},
	)

	sourceRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wordpage_source_request_duration_seconds",
			Help:    "Latency of upstream word and definition source requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source", "status"},
	)

	activePagesDesc = prometheus.NewDesc(
		"wordpage_active_pages",
		"Number of session pages currently held in memory",
		nil,
		nil,
	)
)

// PageCounter reports how many session pages are live.
type PageCounter interface {
	Len() int
}

// PageCollector is a custom Prometheus collector that reads the live page
// count on each scrape.
type PageCollector struct {
	pages PageCounter
}

// Describe sends the metric descriptor to the channel.
func (c *PageCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- activePagesDesc
}

// Collect emits the current page count as a gauge.
func (c *PageCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(
		activePagesDesc,
		prometheus.GaugeValue,
		float64(c.pages.Len()),
	)
}

var initOnce sync.Once

// Init registers all collectors with the default registry.
// Must be called once at startup.
func Init(pages PageCounter) {
	initOnce.Do(func() {
		prometheus.MustRegister(lookupsTotal, sourceRequestDuration)
		if pages != nil {
			prometheus.MustRegister(&PageCollector{pages: pages})
		}
	})
}

// RecordLookup counts a finished lookup sequence.
func RecordLookup(trigger, outcome string) {
	lookupsTotal.WithLabelValues(trigger, outcome).Inc()
}

// ObserveSource records the latency of one upstream request.
func ObserveSource(source, status string, started time.Time) {
	sourceRequestDuration.WithLabelValues(source, status).Observe(time.Since(started).Seconds())
}
