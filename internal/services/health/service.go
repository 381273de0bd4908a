package health

import (
	"sentiment-api/internal/inference"
	"sentiment-api/internal/sentiment"
)

// Service reports readiness of the inference pipeline.
type Service struct {
	Pipeline inference.Pipeline
	Mode     sentiment.ClassificationMode
}

// NewService constructs a new health service.
func NewService(pipeline inference.Pipeline, mode sentiment.ClassificationMode) *Service {
	return &Service{Pipeline: pipeline, Mode: mode}
}

// Status returns the health payload. The pipeline is constructed before the
// server accepts traffic, so a serving process always reports healthy.
func (s *Service) Status() map[string]any {
	info := s.Pipeline.Describe()
	payload := map[string]any{
		"status":       "healthy",
		"message":      "Sentiment analysis API is running",
		"model":        info.Model,
		"model_loaded": true,
	}
	if s.Mode == sentiment.ModeBinary {
		payload["message"] = "Binary sentiment analysis API is running"
		payload["classification_type"] = "binary"
		payload["device_info"] = map[string]any{
			"device":  info.Device,
			"backend": info.Backend,
		}
	}
	return payload
}
