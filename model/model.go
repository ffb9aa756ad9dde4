package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// Predictor estimates a price for one feature vector. Implementations must
// be safe for concurrent use.
type Predictor interface {
	Predict(f Features) (float64, error)
}

var (
	// ErrModelUnavailable means no model was loaded at startup.
	ErrModelUnavailable = errors.New("model unavailable")
	// ErrOutOfRange means a feature lies outside the range the model was trained on.
	ErrOutOfRange = errors.New("value out of range")
	// ErrNonFinite means the model produced NaN or an infinite price.
	ErrNonFinite = errors.New("non-finite prediction")
)

// Bound is an inclusive range of accepted values for one feature.
type Bound struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Artifact is the on-disk form of a trained linear regression.
type Artifact struct {
	Name         string           `json:"name"`
	Version      string           `json:"version"`
	Features     []string         `json:"features"`
	Intercept    float64          `json:"intercept"`
	Coefficients []float64        `json:"coefficients"`
	Bounds       map[string]Bound `json:"bounds,omitempty"`
}

// Validate checks the artifact matches the fixed feature layout.
func (a *Artifact) Validate() error {
	names := FieldNames()
	if len(a.Features) != NumFeatures {
		return fmt.Errorf("artifact has %d features, expected %d", len(a.Features), NumFeatures)
	}
	for i, name := range a.Features {
		if name != names[i] {
			return fmt.Errorf("artifact feature %d is %q, expected %q", i, name, names[i])
		}
	}
	if len(a.Coefficients) != NumFeatures {
		return fmt.Errorf("artifact has %d coefficients, expected %d", len(a.Coefficients), NumFeatures)
	}
	for i, c := range a.Coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("coefficient for %q is not finite", names[i])
		}
	}
	for name, b := range a.Bounds {
		if fieldIndex(name) < 0 {
			return fmt.Errorf("bounds given for unknown feature %q", name)
		}
		if b.Min > b.Max {
			return fmt.Errorf("bounds for %q have min %d above max %d", name, b.Min, b.Max)
		}
	}
	return nil
}

// Load reads and validates a model artifact.
func Load(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading model artifact: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("error decoding model artifact %s: %w", path, err)
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact %s: %w", path, err)
	}
	return NewLinearModel(a), nil
}

// Save writes an artifact as indented JSON.
func Save(path string, a Artifact) error {
	if err := a.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func fieldIndex(name string) int {
	for i, f := range Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}
