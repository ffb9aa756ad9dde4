package handlers

import (
	"github.com/parts-pile/price/prediction"
)

// Handlers serves the predictor pages. The prediction service is built once
// at startup and only read afterwards, so Handlers is safe to share.
type Handlers struct {
	svc *prediction.Service
}

func New(svc *prediction.Service) *Handlers {
	return &Handlers{svc: svc}
}
