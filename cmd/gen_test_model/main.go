package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/parts-pile/price/model"
)

// Writes a linear-regression artifact that the server can load. The
// default coefficients give plausible used-car prices in rupees for codes
// in the usual ranges and are meant for local development only.
func main() {
	var (
		output       = flag.String("output", "model_pipeline.json", "Output artifact path")
		intercept    = flag.Float64("intercept", -58000000, "Regression intercept")
		coefficients = flag.String("coefficients", "29000,45000,-1.2,18000,95000,3500,21000,900,-42000",
			"Comma separated coefficients in feature order")
		bounds  = flag.Bool("bounds", true, "Include per-feature value bounds")
		version = flag.String("version", "dev", "Artifact version")
	)
	flag.Parse()

	coefs, err := parseCoefficients(*coefficients)
	if err != nil {
		log.Fatalf("Invalid -coefficients: %v", err)
	}

	a := model.Artifact{
		Name:         "linear-regression",
		Version:      *version,
		Features:     model.FieldNames(),
		Intercept:    *intercept,
		Coefficients: coefs,
	}
	if *bounds {
		a.Bounds = map[string]model.Bound{
			"yr_mfr":       {Min: 1990, Max: 2030},
			"kms_run":      {Min: 0, Max: 2000000},
			"total_owners": {Min: 1, Max: 10},
		}
	}

	if err := model.Save(*output, a); err != nil {
		log.Fatalf("Failed to write artifact: %v", err)
	}
	fmt.Printf("Wrote %s\n", *output)
}

func parseCoefficients(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != model.NumFeatures {
		return nil, fmt.Errorf("got %d values, need %d", len(parts), model.NumFeatures)
	}
	coefs := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}
		coefs[i] = v
	}
	return coefs, nil
}
