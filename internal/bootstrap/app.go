package bootstrap

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"sentiment-api/internal/inference"
	"sentiment-api/internal/inference/huggingface"
	"sentiment-api/internal/inference/keyword"
	"sentiment-api/internal/sentiment"
	"sentiment-api/internal/services/health"
	"sentiment-api/internal/shared/config"
	"sentiment-api/internal/shared/metrics"
	"sentiment-api/internal/shared/server"
	"sentiment-api/internal/shared/telemetry"
)

// App holds the constructed dependency graph.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	Pipeline         inference.Pipeline
	SentimentService *sentiment.Service
	SentimentHandler *sentiment.Handler
	HealthService    *health.Service
}

// Build constructs every dependency up front. The inference pipeline is
// created once here and shared by all requests; a failure aborts startup
// instead of surfacing on the first request.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	mode, err := sentiment.ParseMode(cfg.Mode)
	if err != nil {
		return nil, fmt.Errorf("CLASSIFICATION_MODE: %w", err)
	}

	pipeline, err := buildPipeline(cfg)
	if err != nil {
		return nil, err
	}
	metrics.RegisterBackend(pipeline.Describe().Backend)

	svc := sentiment.NewService(pipeline, mode)
	handler := sentiment.NewHandler(svc)
	healthSvc := health.NewService(pipeline, mode)

	app := &App{
		Config:           cfg,
		Pipeline:         pipeline,
		SentimentService: svc,
		SentimentHandler: handler,
		HealthService:    healthSvc,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		SentimentHandler: handler,
		Health:           healthSvc,
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"backend": pipeline.Describe().Backend,
		"model":   cfg.Model,
		"mode":    string(mode),
		"env":     cfg.Env,
	})

	return app, nil
}

// buildPipeline selects the inference backend. Unknown values abort
// startup; there is no fallback between backends.
func buildPipeline(cfg config.Config) (inference.Pipeline, error) {
	switch cfg.Backend {
	case "huggingface":
		return huggingface.NewClient(cfg.HFBaseURL, cfg.Model, cfg.HFToken)
	case "keyword":
		return keyword.New(cfg.Model), nil
	default:
		return nil, fmt.Errorf("SENTIMENT_BACKEND %q is not supported", cfg.Backend)
	}
}
