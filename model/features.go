package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// NumFeatures is the number of columns the model is trained on.
const NumFeatures = 9

// Field describes one form field of the feature vector.
type Field struct {
	Name  string
	Label string
}

// Fields lists the model inputs in the order the model expects them.
var Fields = [NumFeatures]Field{
	{Name: "yr_mfr", Label: "Year of Manufacture"},
	{Name: "fuel_type", Label: "Fuel Type"},
	{Name: "kms_run", Label: "Kilometers Run"},
	{Name: "body_type", Label: "Body Type"},
	{Name: "transmission", Label: "Transmission"},
	{Name: "registered_state", Label: "Registered State"},
	{Name: "make", Label: "Make"},
	{Name: "model", Label: "Model"},
	{Name: "total_owners", Label: "Total Owners"},
}

// FieldNames returns the field names in model order.
func FieldNames() []string {
	names := make([]string, NumFeatures)
	for i, f := range Fields {
		names[i] = f.Name
	}
	return names
}

// Features is a single row of encoded inputs, indexed in Fields order.
type Features [NumFeatures]int

// Row returns the features as the float row fed to the regression.
func (f Features) Row() []float64 {
	row := make([]float64, NumFeatures)
	for i, v := range f {
		row[i] = float64(v)
	}
	return row
}

// Key returns a stable string identifying this exact feature vector.
func (f Features) Key() string {
	parts := make([]string, NumFeatures)
	for i, v := range f {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// ErrMissingField is wrapped by FieldError when a field was not submitted.
var ErrMissingField = errors.New("field is missing")

// FieldError reports which field could not be turned into an integer.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrMissingField) {
		return fmt.Sprintf("missing value for field '%s'", e.Field)
	}
	return fmt.Sprintf("invalid integer value %q for field '%s'", e.Value, e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ParseFeatures builds a feature vector from raw form values. lookup returns
// the submitted value for a field and whether it was present at all. Parsing
// stops at the first field that is missing or not an integer.
func ParseFeatures(lookup func(name string) (string, bool)) (Features, error) {
	var f Features
	for i, field := range Fields {
		raw, ok := lookup(field.Name)
		if !ok {
			return Features{}, &FieldError{Field: field.Name, Err: ErrMissingField}
		}
		value, err := parseInt(raw)
		if err != nil {
			return Features{}, &FieldError{Field: field.Name, Value: raw, Err: err}
		}
		f[i] = value
	}
	return f, nil
}

// digitGroups matches a signed decimal integer whose digits may be split
// by single underscores, e.g. "45_000".
var digitGroups = regexp.MustCompile(`^[+-]?[0-9]+(_[0-9]+)*$`)

// parseInt parses a base-10 integer, ignoring surrounding whitespace and
// accepting underscores between digit groups.
func parseInt(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if digitGroups.MatchString(s) {
		s = strings.ReplaceAll(s, "_", "")
	}
	return strconv.Atoi(s)
}

// MapLookup adapts a plain map to the lookup function ParseFeatures expects.
func MapLookup(values map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := values[name]
		return v, ok
	}
}
