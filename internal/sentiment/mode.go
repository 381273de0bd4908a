package sentiment

import "fmt"

// ClassificationMode selects how model labels are mapped into responses.
type ClassificationMode string

const (
	// ModeTernary keeps the positive/neutral/negative scheme.
	ModeTernary ClassificationMode = "ternary"
	// ModeBinary folds neutral into negative and adds numeric codes.
	ModeBinary ClassificationMode = "binary"
)

// ParseMode validates a raw mode string. Empty input selects ternary.
func ParseMode(raw string) (ClassificationMode, error) {
	switch ClassificationMode(raw) {
	case ModeTernary, ModeBinary:
		return ClassificationMode(raw), nil
	case "":
		return ModeTernary, nil
	default:
		return "", fmt.Errorf("classification mode is invalid")
	}
}
