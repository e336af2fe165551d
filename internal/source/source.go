// Package source holds the HTTP clients for the public word-list and
// dictionary APIs.
package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"wordpage/internal/dictionary"
	"wordpage/internal/metrics"
)

const userAgent = "wordpage/1.0"

// client is the shared GET plumbing for both sources.
type client struct {
	name       string
	httpClient *http.Client
	log        *slog.Logger
}

func newClient(name string, timeout time.Duration, logger *slog.Logger) client {
	return client{
		name:       name,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("source", name),
	}
}

// get performs one GET and returns the status code and body.
// Network failures are wrapped in dictionary.ErrTransport.
func (c client) get(ctx context.Context, reqURL string) (int, []byte, error) {
	started := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: create request: %w", c.name, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveSource(c.name, "error", started)
		c.log.ErrorContext(ctx, "request failed", slog.String("url", reqURL), slog.String("error", err.Error()))
		return 0, nil, fmt.Errorf("%w: %s: %v", dictionary.ErrTransport, c.name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveSource(c.name, "error", started)
		return resp.StatusCode, nil, fmt.Errorf("%w: %s: read body: %v", dictionary.ErrTransport, c.name, err)
	}

	metrics.ObserveSource(c.name, strconv.Itoa(resp.StatusCode), started)
	c.log.DebugContext(ctx, "response", slog.String("url", reqURL), slog.Int("status", resp.StatusCode))

	return resp.StatusCode, body, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
