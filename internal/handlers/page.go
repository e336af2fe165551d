package handlers

import (
	"github.com/gofiber/fiber/v3"

	"wordpage/internal/config"
	"wordpage/internal/lookup"
	"wordpage/internal/middleware"
	"wordpage/internal/validation"
)

// PageHandler serves the definition page and its lookup triggers.
type PageHandler struct {
	svc *lookup.Service
	cfg *config.Config
}

// NewPageHandler creates a new page handler.
func NewPageHandler(svc *lookup.Service, cfg *config.Config) *PageHandler {
	return &PageHandler{svc: svc, cfg: cfg}
}

// Index renders the page. A session's first visit starts with a random word.
func (h *PageHandler) Index(c fiber.Ctx) error {
	page := middleware.PageFromContext(c)
	if page.Latest() == 0 {
		h.svc.Random(c.Context(), page)
	}
	return h.render(c, page, "")
}

// Random looks up a random word.
func (h *PageHandler) Random(c fiber.Ctx) error {
	page := middleware.PageFromContext(c)
	h.svc.Random(c.Context(), page)
	return h.render(c, page, "")
}

// Search looks up the word in the q query parameter.
func (h *PageHandler) Search(c fiber.Ctx) error {
	query := validation.NormalizeWord(c.Query("q"))
	if !validation.ValidateWord(query) {
		if isHTMX(c) {
			return htmxError(c, "Enter a word to look up.")
		}
		return c.Redirect().To("/")
	}

	page := middleware.PageFromContext(c)
	h.svc.Search(c.Context(), page, query)
	return h.render(c, page, query)
}

// render sends the full page, or only the definition fragment for HTMX.
func (h *PageHandler) render(c fiber.Ctx, page *lookup.Page, query string) error {
	data := MergeBranding(fiber.Map{
		"Page":  page.Snapshot(),
		"Query": query,
	}, h.cfg)

	if isHTMX(c) {
		return c.Render("partials/definition", data, "")
	}
	return c.Render("index", data)
}
