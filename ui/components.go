package ui

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func contentContainer(content ...g.Node) g.Node {
	return Div(
		Class("max-w-2xl mx-auto"),
		g.Group(content),
	)
}

// ---- Button Components ----

type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
)

func getButtonClass(variant ButtonVariant) string {
	baseClass := "px-4 py-2 rounded inline-block "
	switch variant {
	case ButtonSecondary:
		return baseClass + "text-blue-500 hover:underline"
	default:
		return baseClass + "bg-blue-500 text-white hover:bg-blue-600"
	}
}

func styledButton(text string, variant ButtonVariant, attrs ...g.Node) g.Node {
	allAttrs := append([]g.Node{Class(getButtonClass(variant))}, attrs...)
	return Button(append(allAttrs, g.Text(text))...)
}

// ---- Message Components ----

// PredictionResult renders the message block under the form. An empty
// message renders an empty container so htmx has a swap target.
func PredictionResult(message string) g.Node {
	var class string
	switch {
	case message == "":
		class = "mt-6"
	case strings.HasPrefix(message, "Predicted Price"):
		class = "mt-6 bg-green-100 border-green-500 text-green-700 px-4 py-3 rounded text-2xl font-semibold"
	default:
		class = "mt-6 bg-red-100 border-red-500 text-red-700 px-4 py-3 rounded"
	}

	return Div(
		ID("result"),
		Class(class),
		g.If(message != "", H2(g.Text(message))),
	)
}

func ErrorPage(code int, message string) g.Node {
	return Page(
		fmt.Sprintf("Error %d", code),
		[]g.Node{
			pageHeader(fmt.Sprintf("Error %d", code)),
			P(g.Text(message)),
			A(Href("/"), Class(getButtonClass(ButtonSecondary)), g.Text("Back to the predictor")),
		},
	)
}
