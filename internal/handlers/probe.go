package handlers

import (
	"github.com/gofiber/fiber/v3"

	"wordpage/internal/lookup"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	pages *lookup.Registry
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(pages *lookup.Registry) *ProbeHandler {
	return &ProbeHandler{pages: pages}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"pages":  h.pages.Len(),
	})
}
