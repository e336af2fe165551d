package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"wordpage/internal/dictionary"
)

// DefaultWordURL is the public random word endpoint.
const DefaultWordURL = "https://random-word-api.herokuapp.com/word"

// WordSource fetches random words.
type WordSource struct {
	url string
	client
}

// NewWordSource creates a WordSource for the given endpoint.
func NewWordSource(url string, timeout time.Duration, logger *slog.Logger) *WordSource {
	return &WordSource{
		url:    url,
		client: newClient("random-word", timeout, logger),
	}
}

// RandomWord returns the first word of the endpoint's JSON array.
func (s *WordSource) RandomWord(ctx context.Context) (string, error) {
	status, body, err := s.get(ctx, s.url)
	if err != nil {
		return "", err
	}
	if !isSuccess(status) {
		return "", fmt.Errorf("%w: random-word: unexpected status %d", dictionary.ErrTransport, status)
	}

	var words []string
	if err := json.Unmarshal(body, &words); err != nil {
		return "", fmt.Errorf("%w: random-word: decode json: %v", dictionary.ErrTransport, err)
	}
	if len(words) == 0 || words[0] == "" {
		return "", fmt.Errorf("%w: random-word: empty word list", dictionary.ErrTransport)
	}

	s.log.DebugContext(ctx, "random word", slog.String("word", words[0]))
	return words[0], nil
}
