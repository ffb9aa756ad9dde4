package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// IndexPage is the predictor form with predictionText shown beneath it.
func IndexPage(predictionText string) g.Node {
	return Page(
		"Car Price Predictor",
		[]g.Node{
			pageHeader("Used Car Price Prediction"),
			contentContainer(
				P(
					Class("text-sm text-gray-600 mb-6"),
					g.Text("Enter the encoded vehicle details below. Every field is a whole number code."),
				),
				PredictionForm(),
				PredictionResult(predictionText),
			),
		},
	)
}
