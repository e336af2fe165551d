package source

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wordpage/internal/dictionary"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDefinitionSource_Define_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hello" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"word":"hello","phonetics":[{"text":"/həˈloʊ/"}],"meanings":[{"partOfSpeech":"exclamation","definitions":[{"definition":"used as a greeting"}]}]}]`))
	}))
	defer srv.Close()

	s := NewDefinitionSource(srv.URL+"/", time.Second, newTestLogger())
	entries, err := s.Define(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].Word != "hello" {
		t.Errorf("Word = %q, want %q", entries[0].Word, "hello")
	}
}

func TestDefinitionSource_Define_EscapesWord(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	s := NewDefinitionSource(srv.URL, time.Second, newTestLogger())
	if _, err := s.Define(context.Background(), "ice cream/cone"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/ice%20cream%2Fcone" {
		t.Errorf("path = %q, want %q", gotPath, "/ice%20cream%2Fcone")
	}
}

func TestDefinitionSource_Define_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"title":"No Definitions Found"}`))
	}))
	defer srv.Close()

	s := NewDefinitionSource(srv.URL, time.Second, newTestLogger())
	entries, err := s.Define(context.Background(), "zzxcv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("entries = %#v, want empty slice", entries)
	}
}

func TestDefinitionSource_Define_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"server error", http.StatusInternalServerError, ``, dictionary.ErrTransport},
		{"rate limited", http.StatusTooManyRequests, `{}`, dictionary.ErrTransport},
		{"invalid json", http.StatusOK, `not valid json`, dictionary.ErrMapping},
		{"object body", http.StatusOK, `{"word":"x"}`, dictionary.ErrMapping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls int
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			s := NewDefinitionSource(srv.URL, time.Second, newTestLogger())
			_, err := s.Define(context.Background(), "word")
			if !errors.Is(err, tt.want) {
				t.Errorf("Define() error = %v, want %v", err, tt.want)
			}
			if calls != 1 {
				t.Errorf("calls = %d, want 1 (no retries)", calls)
			}
		})
	}
}

func TestDefinitionSource_Define_NetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	s := NewDefinitionSource(srv.URL, time.Second, newTestLogger())
	_, err := s.Define(context.Background(), "word")
	if !errors.Is(err, dictionary.ErrTransport) {
		t.Errorf("Define() error = %v, want ErrTransport", err)
	}
}

func TestDefinitionSource_Define_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	s := NewDefinitionSource(srv.URL, 50*time.Millisecond, newTestLogger())
	_, err := s.Define(context.Background(), "slow")
	if !errors.Is(err, dictionary.ErrTransport) {
		t.Errorf("Define() error = %v, want ErrTransport", err)
	}
}

func TestWordSource_RandomWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr bool
	}{
		{"single word", http.StatusOK, `["serendipity"]`, "serendipity", false},
		{"takes first", http.StatusOK, `["alpha","beta"]`, "alpha", false},
		{"empty list", http.StatusOK, `[]`, "", true},
		{"empty word", http.StatusOK, `[""]`, "", true},
		{"server error", http.StatusServiceUnavailable, ``, "", true},
		{"invalid json", http.StatusOK, `{`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			s := NewWordSource(srv.URL+"/word", time.Second, newTestLogger())
			got, err := s.RandomWord(context.Background())
			if tt.wantErr {
				if !errors.Is(err, dictionary.ErrTransport) {
					t.Errorf("RandomWord() error = %v, want ErrTransport", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RandomWord() = %q, want %q", got, tt.want)
			}
		})
	}
}
