package model

import (
	"fmt"
	"math"
)

// LinearModel is an ordinary least squares regression over the nine
// encoded features. It is immutable once built.
type LinearModel struct {
	Name         string
	Version      string
	intercept    float64
	coefficients [NumFeatures]float64
	bounds       [NumFeatures]*Bound
}

// NewLinearModel builds a model from an already validated artifact.
func NewLinearModel(a Artifact) *LinearModel {
	m := &LinearModel{
		Name:      a.Name,
		Version:   a.Version,
		intercept: a.Intercept,
	}
	copy(m.coefficients[:], a.Coefficients)
	for name, b := range a.Bounds {
		if i := fieldIndex(name); i >= 0 {
			b := b
			m.bounds[i] = &b
		}
	}
	return m
}

func (m *LinearModel) Predict(f Features) (float64, error) {
	for i, v := range f {
		if b := m.bounds[i]; b != nil && (v < b.Min || v > b.Max) {
			return 0, fmt.Errorf("%s=%d is outside [%d, %d]: %w", Fields[i].Name, v, b.Min, b.Max, ErrOutOfRange)
		}
	}

	price := m.intercept
	for i, x := range f.Row() {
		price += m.coefficients[i] * x
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, ErrNonFinite
	}
	return price, nil
}
