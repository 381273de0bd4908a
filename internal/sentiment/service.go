package sentiment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sentiment-api/internal/inference"
	"sentiment-api/internal/shared/metrics"
	"sentiment-api/internal/shared/telemetry"
	"sentiment-api/internal/shared/util"
)

// Service classifies texts through a shared inference pipeline and shapes
// results according to the configured classification mode.
type Service struct {
	Pipeline inference.Pipeline
	Mode     ClassificationMode
}

// NewService wires a pipeline into a sentiment service.
func NewService(pipeline inference.Pipeline, mode ClassificationMode) *Service {
	return &Service{Pipeline: pipeline, Mode: mode}
}

// Analyze classifies the "text" field of a decoded request body.
func (s *Service) Analyze(ctx context.Context, body map[string]any) (Result, error) {
	if body == nil {
		return Result{}, ErrNoText
	}
	raw, ok := body["text"]
	if !ok {
		return Result{}, ErrNoText
	}
	text, ok := raw.(string)
	if !ok {
		return Result{}, ErrNoText
	}
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrEmptyText
	}

	telemetry.Info("sentiment.analyze", map[string]any{
		"request_id":  requestIDFromContext(ctx),
		"text_prefix": util.TextPrefix(text, 50),
	})

	return s.classify(ctx, text)
}

// AnalyzeBatch classifies the "texts" list of a decoded request body.
// Item failures are reported per index and never abort the batch.
func (s *Service) AnalyzeBatch(ctx context.Context, body map[string]any) ([]BatchItem, error) {
	if body == nil {
		return nil, ErrNoTexts
	}
	raw, ok := body["texts"]
	if !ok {
		return nil, ErrNoTexts
	}
	texts, ok := raw.([]any)
	if !ok {
		return nil, ErrTextsType
	}
	if len(texts) == 0 {
		return nil, ErrEmptyTexts
	}

	items := make([]BatchItem, 0, len(texts))
	for i, element := range texts {
		items = append(items, s.analyzeBatchItem(ctx, i, element, len(texts)))
	}
	return items, nil
}

func (s *Service) analyzeBatchItem(ctx context.Context, index int, element any, total int) BatchItem {
	text, ok := element.(string)
	if !ok {
		return BatchItem{Index: index, Error: ErrTextType.Error()}
	}
	if strings.TrimSpace(text) == "" {
		return BatchItem{Index: index, Error: ErrEmptyText.Error()}
	}

	telemetry.Info("sentiment.analyze_batch.item", map[string]any{
		"request_id":  requestIDFromContext(ctx),
		"item":        fmt.Sprintf("%d/%d", index+1, total),
		"text_prefix": util.TextPrefix(text, 50),
	})

	result, err := s.classify(ctx, text)
	if err != nil {
		return BatchItem{Index: index, Error: err.Error()}
	}
	return BatchItem{Index: index, Result: &result}
}

func (s *Service) classify(ctx context.Context, text string) (Result, error) {
	backend := s.Pipeline.Describe().Backend

	start := time.Now()
	prediction, err := s.Pipeline.Predict(ctx, text)
	if err != nil {
		metrics.IncInference(backend, "error")
		telemetry.Error("sentiment.inference.failed", map[string]any{
			"request_id": requestIDFromContext(ctx),
			"backend":    backend,
			"error":      util.SanitizeError(err),
		})
		return Result{}, &InferenceError{Err: err}
	}
	metrics.ObserveInferenceSeconds(backend, time.Since(start).Seconds())
	metrics.IncInference(backend, "success")

	return s.buildResult(prediction), nil
}

func (s *Service) buildResult(prediction inference.Prediction) Result {
	mapped := MapLabel(prediction.Label)
	result := Result{
		Label:         mapped,
		Confidence:    prediction.Score,
		OriginalLabel: prediction.Label,
		Scores:        map[string]float64{mapped: prediction.Score},
	}
	if s.Mode == ModeBinary {
		binary, numeric := CollapseBinary(mapped)
		result.Label = binary
		result.NumericLabel = &numeric
		result.OriginalMappedLabel = mapped
		result.Scores = map[string]float64{binary: prediction.Score}
	}
	return result
}
