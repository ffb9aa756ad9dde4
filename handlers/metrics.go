package handlers

import (
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HandleMetrics exposes prometheus metrics.
var HandleMetrics = adaptor.HTTPHandler(promhttp.Handler())
