// Package testutil provides test utilities and helpers.
package testutil

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"wordpage/internal/lookup"
	"wordpage/internal/source"
)

// HelloBody is a dictionaryapi.dev response for "hello".
const HelloBody = `[{
	"word": "hello",
	"phonetic": "/həˈloʊ/",
	"phonetics": [{"text": "/həˈloʊ/"}],
	"meanings": [{
		"partOfSpeech": "exclamation",
		"definitions": [{"definition": "used as a greeting", "example": "hello there!"}],
		"synonyms": [],
		"antonyms": []
	}]
}]`

// Upstream fakes both public APIs. Words are served from /word in order,
// definitions from /entries/en/<word>.
type Upstream struct {
	Server *httptest.Server

	mu          sync.Mutex
	words       []string
	definitions map[string]string
	statuses    map[string]int
}

// NewUpstream starts a fake upstream and registers its cleanup.
func NewUpstream(t *testing.T) *Upstream {
	t.Helper()

	u := &Upstream{
		definitions: make(map[string]string),
		statuses:    make(map[string]int),
	}
	u.Server = httptest.NewServer(http.HandlerFunc(u.serve))
	t.Cleanup(u.Server.Close)
	return u
}

// QueueWords adds words for the random word endpoint to hand out.
func (u *Upstream) QueueWords(words ...string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.words = append(u.words, words...)
}

// SetDefinition serves body with status 200 for word.
func (u *Upstream) SetDefinition(word, body string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.definitions[word] = body
}

// SetStatus makes lookups of word fail with status.
func (u *Upstream) SetStatus(word string, status int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.statuses[word] = status
}

// WordURL is the random word endpoint.
func (u *Upstream) WordURL() string {
	return u.Server.URL + "/word"
}

// DictionaryURL is the definition endpoint base.
func (u *Upstream) DictionaryURL() string {
	return u.Server.URL + "/entries/en"
}

// Service builds a lookup service wired to this upstream.
func (u *Upstream) Service() *lookup.Service {
	logger := DiscardLogger()
	return lookup.NewService(
		source.NewWordSource(u.WordURL(), time.Second, logger),
		source.NewDefinitionSource(u.DictionaryURL(), time.Second, logger),
		logger,
	)
}

func (u *Upstream) serve(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	defer u.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if r.URL.Path == "/word" {
		if len(u.words) == 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		word := u.words[0]
		u.words = u.words[1:]
		io.WriteString(w, `["`+word+`"]`)
		return
	}

	word, ok := strings.CutPrefix(r.URL.Path, "/entries/en/")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if status, ok := u.statuses[word]; ok {
		w.WriteHeader(status)
		return
	}
	body, ok := u.definitions[word]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"title":"No Definitions Found"}`)
		return
	}
	io.WriteString(w, body)
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
