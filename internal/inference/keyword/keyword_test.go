package keyword

import (
	"context"
	"testing"
)

func TestPredictKeywordVocabulary(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		label string
	}{
		{name: "positive word", text: "This is a wonderful product! I love it so much.", label: "LABEL_0"},
		{name: "negative word", text: "This is terrible. I hate it.", label: "LABEL_2"},
		{name: "no match", text: "It's okay, nothing special.", label: "LABEL_1"},
		{name: "case insensitive", text: "WONDERFUL experience", label: "LABEL_0"},
		{name: "negative beats nothing", text: "the worst", label: "LABEL_2"},
		{name: "empty", text: "", label: "LABEL_1"},
	}

	p := New("test-model")
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			prediction, err := p.Predict(context.Background(), tt.text)
			if err != nil {
				t.Fatalf("predict: %v", err)
			}
			if prediction.Label != tt.label {
				t.Fatalf("expected label %q, got %q", tt.label, prediction.Label)
			}
			if prediction.Score != keywordScore {
				t.Fatalf("expected score %v, got %v", keywordScore, prediction.Score)
			}
		})
	}
}

func TestPredictPositiveWinsOverNegative(t *testing.T) {
	p := New("test-model")
	prediction, err := p.Predict(context.Background(), "a wonderful yet terrible day")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if prediction.Label != "LABEL_0" {
		t.Fatalf("expected LABEL_0, got %q", prediction.Label)
	}
}

func TestDescribe(t *testing.T) {
	info := New("test-model").Describe()
	if info.Backend != "keyword" {
		t.Fatalf("expected backend keyword, got %q", info.Backend)
	}
	if info.Model != "test-model" {
		t.Fatalf("expected model test-model, got %q", info.Model)
	}
	if info.Device != "cpu" {
		t.Fatalf("expected device cpu, got %q", info.Device)
	}
}
