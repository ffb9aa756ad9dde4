package prediction

// Kind classifies the outcome of a submission.
type Kind int

const (
	Success Kind = iota
	ModelUnavailable
	InputError
	PredictionError
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case ModelUnavailable:
		return "model_unavailable"
	case InputError:
		return "input_error"
	case PredictionError:
		return "prediction_error"
	default:
		return "unknown"
	}
}

const (
	pricePrefix             = "Predicted Price: ₹ "
	errorPrefix             = "An error occurred: "
	modelUnavailableMessage = "Model could not be loaded. Please check the server logs."
)

// Result is the outcome of one parse-and-predict step. Price is set only
// for Success; Err is set for every other kind.
type Result struct {
	Kind  Kind
	Price float64
	Err   error
}

// OK reports whether a price was produced.
func (r Result) OK() bool {
	return r.Kind == Success
}

// Message renders the result as the text shown under the form.
func (r Result) Message() string {
	switch r.Kind {
	case Success:
		return pricePrefix + FormatPrice(r.Price)
	case ModelUnavailable:
		return modelUnavailableMessage
	default:
		if r.Err == nil {
			return errorPrefix + "unknown error"
		}
		return errorPrefix + r.Err.Error()
	}
}
