package jobs

import (
	"context"
	"log"
	"time"

	"wordpage/internal/lookup"
)

// PageSweeper periodically drops session pages that have gone idle.
type PageSweeper struct {
	pages    *lookup.Registry
	interval time.Duration
	maxIdle  time.Duration
}

// NewPageSweeper creates a new page sweeper.
func NewPageSweeper(pages *lookup.Registry, interval, maxIdle time.Duration) *PageSweeper {
	return &PageSweeper{
		pages:    pages,
		interval: interval,
		maxIdle:  maxIdle,
	}
}

// Start begins the background sweep loop. It returns when ctx is done.
func (s *PageSweeper) Start(ctx context.Context) {
	log.Printf("Page sweeper started (interval: %v, maxIdle: %v)", s.interval, s.maxIdle)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Page sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *PageSweeper) sweep() {
	if removed := s.pages.Sweep(s.maxIdle); removed > 0 {
		log.Printf("Page sweeper: removed %d idle pages, %d remaining", removed, s.pages.Len())
	}
}
