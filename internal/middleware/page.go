package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"wordpage/internal/lookup"
)

const (
	pageLocalKey   = "page"
	sessionPageKey = "page_id"
)

// PageMiddleware attaches the visitor's lookup page to the request.
type PageMiddleware struct {
	pages *lookup.Registry
}

// NewPageMiddleware creates a new page middleware instance.
func NewPageMiddleware(pages *lookup.Registry) *PageMiddleware {
	return &PageMiddleware{pages: pages}
}

// Attach resolves the session's page. It must run after the session
// middleware; without a session the request gets a throwaway page.
func (m *PageMiddleware) Attach(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		c.Locals(pageLocalKey, lookup.NewPage())
		return c.Next()
	}

	id, _ := sess.Get(sessionPageKey).(string)
	if id == "" {
		id = sess.ID()
		sess.Set(sessionPageKey, id)
	}

	c.Locals(pageLocalKey, m.pages.Get(id))
	return c.Next()
}

// PageFromContext returns the page attached by Attach, or a throwaway page.
func PageFromContext(c fiber.Ctx) *lookup.Page {
	if page, ok := c.Locals(pageLocalKey).(*lookup.Page); ok {
		return page
	}
	return lookup.NewPage()
}
