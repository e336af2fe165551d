// Package lookup orchestrates word and definition lookups and applies their
// results to a session's page.
package lookup

import (
	"sync"

	"wordpage/internal/dictionary"
	"wordpage/internal/view"
)

// State is the page-level lookup state.
type State int

const (
	Loading State = iota
	Showing
	ShowingError
)

func (s State) String() string {
	switch s {
	case Showing:
		return "showing"
	case ShowingError:
		return "showing_error"
	default:
		return "loading"
	}
}

// Page is one visitor's view-model. Every lookup sequence takes a token from
// Begin; only the holder of the latest token may write to the surface.
type Page struct {
	mu       sync.Mutex
	latest   uint64
	state    State
	errKind  dictionary.ErrorKind
	errWord  string
	renderer *view.Renderer
}

// Snapshot is a consistent copy of a page for templates and tests.
type Snapshot struct {
	Token   uint64
	State   State
	Kind    dictionary.ErrorKind
	Word    string
	Record  *dictionary.DefinitionRecord
	Surface view.Surface
}

// Loading reports whether no lookup has finished since the last Begin.
func (s Snapshot) Loading() bool {
	return s.State == Loading
}

// NewPage creates a page with a fresh surface.
func NewPage() *Page {
	return &Page{renderer: view.NewRenderer(view.NewSurface())}
}

// Begin starts a new lookup sequence and returns its token.
func (p *Page) Begin() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.latest++
	p.state = Loading
	return p.latest
}

// Latest returns the most recently issued token; zero means no lookup yet.
func (p *Page) Latest() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.latest
}

// Show renders record if token is still current. It reports whether the
// result was applied.
func (p *Page) Show(token uint64, record dictionary.DefinitionRecord) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if token != p.latest {
		return false
	}
	p.renderer.Render(record)
	p.state = Showing
	p.errKind, p.errWord = dictionary.NoError, ""
	return true
}

// ShowError renders an error state if token is still current.
func (p *Page) ShowError(token uint64, kind dictionary.ErrorKind, word string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if token != p.latest {
		return false
	}
	p.renderer.RenderError(kind, word)
	p.state = ShowingError
	p.errKind, p.errWord = kind, word
	return true
}

// Snapshot copies the current state.
func (p *Page) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := Snapshot{
		Token:   p.latest,
		State:   p.state,
		Kind:    p.errKind,
		Word:    p.errWord,
		Surface: *p.renderer.Surface(),
	}
	if rec := p.renderer.Current(); rec != nil {
		copied := *rec
		snap.Record = &copied
		snap.Word = rec.Word
	}
	return snap
}
