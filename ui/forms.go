package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/parts-pile/price/model"
)

// ---- Form Components ----

func FormGroup(labelText string, fieldID string, input g.Node) g.Node {
	return Div(
		Class("space-y-2"),
		Label(For(fieldID), Class("block"), g.Text(labelText)),
		input,
	)
}

func NumberInput(id, name string) g.Node {
	return Input(
		Type("number"),
		ID(id),
		Name(name),
		g.Attr("step", "1"),
		Required(),
		Class("w-full p-2 border rounded"),
	)
}

// PredictionForm renders the nine feature inputs. It posts to "/" as a
// plain form and, when htmx is loaded, swaps only the result block.
func PredictionForm() g.Node {
	groups := make([]g.Node, 0, model.NumFeatures)
	for _, field := range model.Fields {
		groups = append(groups, FormGroup(field.Label, field.Name, NumberInput(field.Name, field.Name)))
	}

	return Form(
		ID("predictForm"),
		Class("space-y-6"),
		Method("post"),
		Action("/"),
		hx.Post("/"),
		hx.Target("#result"),
		hx.Swap("outerHTML"),
		Div(
			Class("grid grid-cols-1 md:grid-cols-3 gap-4"),
			g.Group(groups),
		),
		styledButton("Predict Price", ButtonPrimary, Type("submit")),
	)
}
