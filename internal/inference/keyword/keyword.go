package keyword

import (
	"context"
	"strings"

	"sentiment-api/internal/inference"
)

const keywordScore = 0.9

var (
	positiveWords = []string{"good", "great", "excellent", "amazing", "wonderful", "love", "perfect"}
	negativeWords = []string{"bad", "terrible", "awful", "horrible", "hate", "worst"}
)

// Pipeline scores text with a fixed keyword vocabulary. It is deterministic
// and stateless, which makes it the backend of choice for tests and local
// development without model access.
type Pipeline struct {
	Model string
}

// New constructs a keyword pipeline reporting the given model name.
func New(model string) *Pipeline {
	return &Pipeline{Model: model}
}

// Predict scans for positive then negative vocabulary. Texts matching
// neither read as the middle class.
func (p *Pipeline) Predict(_ context.Context, text string) (inference.Prediction, error) {
	lower := strings.ToLower(text)
	for _, word := range positiveWords {
		if strings.Contains(lower, word) {
			return inference.Prediction{Label: "LABEL_0", Score: keywordScore}, nil
		}
	}
	for _, word := range negativeWords {
		if strings.Contains(lower, word) {
			return inference.Prediction{Label: "LABEL_2", Score: keywordScore}, nil
		}
	}
	return inference.Prediction{Label: "LABEL_1", Score: keywordScore}, nil
}

// Describe reports the stub identity.
func (p *Pipeline) Describe() inference.Info {
	return inference.Info{Backend: "keyword", Model: p.Model, Device: "cpu"}
}

var _ inference.Pipeline = (*Pipeline)(nil)
