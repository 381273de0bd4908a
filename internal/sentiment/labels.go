package sentiment

// Canonical labels exposed by the API.
const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"
)

// Numeric codes used by the binary classification mode.
const (
	NumericPositive = 1
	NumericNegative = 0
)

var ternaryLabels = map[string]string{
	"LABEL_0": LabelPositive,
	"LABEL_1": LabelNeutral,
	"LABEL_2": LabelNegative,
}

// MapLabel translates a raw model label token into a sentiment label.
// Unknown tokens fall back to neutral.
func MapLabel(token string) string {
	if mapped, ok := ternaryLabels[token]; ok {
		return mapped
	}
	return LabelNeutral
}

// CollapseBinary folds a ternary label into the binary scheme, where
// neutral counts as negative.
func CollapseBinary(label string) (string, int) {
	if label == LabelPositive {
		return LabelPositive, NumericPositive
	}
	return LabelNegative, NumericNegative
}
