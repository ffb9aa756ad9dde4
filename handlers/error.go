package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/parts-pile/price/ui"
)

// CustomErrorHandler renders framework errors (unknown routes, rate limits,
// oversized bodies) as an HTML error page.
func CustomErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	if code >= fiber.StatusInternalServerError {
		log.Printf("[server] %s %s failed: %v", c.Method(), c.Path(), err)
	}

	c.Status(code)
	if isHTMX(c) {
		return render(c, ui.PredictionResult("An error occurred: "+err.Error()))
	}
	return render(c, ui.ErrorPage(code, err.Error()))
}
