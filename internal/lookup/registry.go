package lookup

import (
	"sync"
	"time"
)

type registryEntry struct {
	page     *Page
	lastSeen time.Time
}

// Registry keeps one Page per session ID.
type Registry struct {
	mu    sync.Mutex
	pages map[string]*registryEntry
	now   func() time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		pages: make(map[string]*registryEntry),
		now:   time.Now,
	}
}

// Get returns the page for id, creating it on first use.
func (r *Registry) Get(id string) *Page {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.pages[id]
	if !ok {
		e = &registryEntry{page: NewPage()}
		r.pages[id] = e
	}
	e.lastSeen = r.now()
	return e.page
}

// Len returns the number of live pages.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pages)
}

// Sweep drops pages not used within maxIdle and returns how many were removed.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxIdle)
	removed := 0
	for id, e := range r.pages {
		if e.lastSeen.Before(cutoff) {
			delete(r.pages, id)
			removed++
		}
	}
	return removed
}
