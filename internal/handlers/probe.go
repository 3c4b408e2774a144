package handlers

import (
	"github.com/gofiber/fiber/v3"

	"seotitles/internal/config"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	cfg *config.Config
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(cfg *config.Config) *ProbeHandler {
	return &ProbeHandler{cfg: cfg}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if provider credentials are configured.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if err := h.cfg.Validate(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
