package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for the predictions counter.
const (
	OutcomeSuccess          = "success"
	OutcomeCached           = "cached"
	OutcomeInputError       = "input_error"
	OutcomePredictionError  = "prediction_error"
	OutcomeModelUnavailable = "model_unavailable"
)

var (
	predictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "price_predictions_total",
			Help: "Total number of price prediction submissions by outcome",
		},
		[]string{"outcome"},
	)
	predictionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "price_prediction_duration_seconds",
			Help:    "Time spent parsing input and running the model",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.02, 0.1, 0.5},
		},
	)
	modelLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "price_model_loaded",
			Help: "1 if a model artifact was loaded at startup, 0 otherwise",
		},
	)
)

// ObservePrediction records one submission.
func ObservePrediction(outcome string, elapsed time.Duration) {
	predictionsTotal.WithLabelValues(outcome).Inc()
	predictionDuration.Observe(elapsed.Seconds())
}

// SetModelLoaded records whether the model is available.
func SetModelLoaded(loaded bool) {
	if loaded {
		modelLoaded.Set(1)
		return
	}
	modelLoaded.Set(0)
}
