package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HandleHealth reports whether the model is available. The server keeps
// serving the form either way.
func (h *Handlers) HandleHealth(c *fiber.Ctx) error {
	health := fiber.Map{
		"status": "ok",
		"model":  "loaded",
	}

	if !h.svc.ModelLoaded() {
		health["status"] = "degraded"
		health["model"] = "unavailable"
		c.Status(fiber.StatusServiceUnavailable)
	}

	return c.JSON(health)
}

// HandleCacheStats returns prediction cache statistics as JSON.
func (h *Handlers) HandleCacheStats(c *fiber.Ctx) error {
	cache := h.svc.Cache()
	if cache == nil {
		return fiber.NewError(fiber.StatusNotFound, "Prediction cache is disabled")
	}
	return c.JSON(cache.Stats())
}
