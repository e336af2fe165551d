package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wordpage/internal/dictionary"
)

// DefaultDictionaryURL is the FreeDictionary API base for English entries.
const DefaultDictionaryURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// DefinitionSource looks words up in the FreeDictionary API.
type DefinitionSource struct {
	baseURL string
	client
}

// NewDefinitionSource creates a DefinitionSource rooted at baseURL.
func NewDefinitionSource(baseURL string, timeout time.Duration, logger *slog.Logger) *DefinitionSource {
	return &DefinitionSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  newClient("freedict", timeout, logger),
	}
}

// Define returns the raw entries for word. A 404 from the API means the
// word is unknown and yields an empty slice, not an error.
func (s *DefinitionSource) Define(ctx context.Context, word string) ([]dictionary.RawEntry, error) {
	status, body, err := s.get(ctx, s.baseURL+"/"+url.PathEscape(word))
	if err != nil {
		return nil, err
	}

	if status == http.StatusNotFound {
		s.log.DebugContext(ctx, "no definitions", slog.String("word", word))
		return []dictionary.RawEntry{}, nil
	}
	if !isSuccess(status) {
		return nil, fmt.Errorf("%w: freedict: unexpected status %d", dictionary.ErrTransport, status)
	}

	entries, err := dictionary.Decode(body)
	if err != nil {
		s.log.ErrorContext(ctx, "undecodable payload", slog.String("word", word), slog.String("error", err.Error()))
		return nil, err
	}
	return entries, nil
}
