package prediction

import (
	"fmt"
	"log"
	"time"

	"github.com/parts-pile/price/cache"
	"github.com/parts-pile/price/metrics"
	"github.com/parts-pile/price/model"
)

// Service turns raw form values into a Result. It holds no mutable state
// apart from the optional cache, so one Service is shared by all requests.
type Service struct {
	predictor model.Predictor
	cache     *cache.Cache[float64]
}

// NewService creates a service. predictor may be nil when the model failed
// to load; c may be nil to disable caching.
func NewService(predictor model.Predictor, c *cache.Cache[float64]) *Service {
	return &Service{predictor: predictor, cache: c}
}

// ModelLoaded reports whether a model is available.
func (s *Service) ModelLoaded() bool {
	return s.predictor != nil
}

// Cache returns the prediction cache, or nil when caching is disabled.
func (s *Service) Cache() *cache.Cache[float64] {
	return s.cache
}

// Predict parses the nine fields and runs the model. It never panics on
// model failure; a panicking model is reported as a PredictionError.
func (s *Service) Predict(lookup func(name string) (string, bool)) Result {
	start := time.Now()
	res, outcome := s.predict(lookup)
	metrics.ObservePrediction(outcome, time.Since(start))
	return res
}

func (s *Service) predict(lookup func(name string) (string, bool)) (Result, string) {
	if s.predictor == nil {
		return Result{Kind: ModelUnavailable, Err: model.ErrModelUnavailable}, metrics.OutcomeModelUnavailable
	}

	features, err := model.ParseFeatures(lookup)
	if err != nil {
		return Result{Kind: InputError, Err: err}, metrics.OutcomeInputError
	}

	key := features.Key()
	if s.cache != nil {
		if price, ok := s.cache.Get(key); ok {
			return Result{Kind: Success, Price: price}, metrics.OutcomeCached
		}
	}

	price, err := s.callModel(features)
	if err != nil {
		log.Printf("[predict] Prediction failed for %s: %v", key, err)
		return Result{Kind: PredictionError, Err: err}, metrics.OutcomePredictionError
	}

	if s.cache != nil {
		s.cache.Set(key, price, 1)
	}
	return Result{Kind: Success, Price: price}, metrics.OutcomeSuccess
}

func (s *Service) callModel(features model.Features) (price float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("model panicked: %v", r)
		}
	}()
	return s.predictor.Predict(features)
}
