package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/parts-pile/price/ui"
)

// HandleIndex shows the empty form.
func (h *Handlers) HandleIndex(c *fiber.Ctx) error {
	return render(c, ui.IndexPage(""))
}

// HandlePredict processes a form submission. Input, model and availability
// failures are all reported in the page itself with status 200.
func (h *Handlers) HandlePredict(c *fiber.Ctx) error {
	res := h.svc.Predict(formLookup(c))
	message := res.Message()

	if isHTMX(c) {
		return render(c, ui.PredictionResult(message))
	}
	return render(c, ui.IndexPage(message))
}
