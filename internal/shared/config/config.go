package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	Backend         string
	Model           string
	Mode            string
	HFBaseURL       string
	HFToken         string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of a local .env file; absence is not an error.
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "*")),
		Backend:         strings.ToLower(strings.TrimSpace(getEnv("SENTIMENT_BACKEND", "huggingface"))),
		Model:           getEnv("SENTIMENT_MODEL", "mdhugol/indonesia-bert-sentiment-classification"),
		Mode:            getEnv("CLASSIFICATION_MODE", "ternary"),
		HFBaseURL:       getEnv("HF_API_URL", "https://api-inference.huggingface.co"),
		HFToken:         os.Getenv("HF_API_TOKEN"),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
