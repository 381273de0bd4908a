package sentiment

import "errors"

// Validation sentinels. Their text is returned verbatim to clients, so the
// wording and capitalization are part of the response contract.
var (
	ErrNoText     = errors.New("No text provided")
	ErrEmptyText  = errors.New("Empty text provided")
	ErrNoTexts    = errors.New("No texts provided")
	ErrTextsType  = errors.New("Texts must be a list")
	ErrEmptyTexts = errors.New("Empty texts list provided")
	ErrTextType   = errors.New("Text must be a string")
)

// InferenceError wraps a backend failure for reporting to clients.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string {
	return "Error analyzing sentiment: " + e.Err.Error()
}

func (e *InferenceError) Unwrap() error { return e.Err }
