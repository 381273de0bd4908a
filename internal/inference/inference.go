package inference

import "context"

// Prediction is the top-ranked classification outcome for one text.
type Prediction struct {
	Label string
	Score float64
}

// Info describes a backend for health reporting.
type Info struct {
	Backend string
	Model   string
	Device  string
}

// Pipeline abstracts text-classification backends. Implementations must be
// safe for concurrent use; one instance is shared across all requests.
type Pipeline interface {
	Predict(ctx context.Context, text string) (Prediction, error)
	Describe() Info
}
