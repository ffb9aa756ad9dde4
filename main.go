package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/parts-pile/price/cache"
	"github.com/parts-pile/price/config"
	h "github.com/parts-pile/price/handlers"
	"github.com/parts-pile/price/metrics"
	"github.com/parts-pile/price/model"
	"github.com/parts-pile/price/prediction"
)

func main() {
	// Load the model once; a missing or corrupt artifact leaves the
	// predictor nil and every submission reports the model as unavailable.
	var predictor model.Predictor
	m, err := model.Load(config.ModelPath)
	if err != nil {
		log.Printf("[model] Error: could not load model from %s: %v. Predictions are disabled.", config.ModelPath, err)
	} else {
		log.Printf("[model] Loaded %s (version %s) from %s", m.Name, m.Version, config.ModelPath)
		predictor = m
	}
	metrics.SetModelLoaded(predictor != nil)

	predictionCache, err := cache.New[float64]("Prediction Cache", 100_000, config.PredictionCacheTTL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize prediction cache: %v", err)
	}

	handlers := h.New(prediction.NewService(predictor, predictionCache))

	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		BodyLimit:    config.ServerBodyLimit,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
	})

	app.Use(h.NewRateLimiter())
	app.Use(logger.New())

	app.Get("/.well-known/appspecific/com.chrome.devtools.json", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	// Predictor form
	app.Get("/", handlers.HandleIndex)
	app.Post("/", handlers.HandlePredict)

	// Operations
	app.Get("/health", handlers.HandleHealth)
	app.Get("/metrics", h.HandleMetrics)
	app.Get("/api/cache-stats", handlers.HandleCacheStats)

	fmt.Printf("Starting server on %s...\n", config.ListenAddress())
	log.Fatal(app.Listen(config.ListenAddress()))
}
