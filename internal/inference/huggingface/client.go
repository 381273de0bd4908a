package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"sentiment-api/internal/inference"
	"sentiment-api/internal/shared/util"
)

const (
	defaultBaseURL = "https://api-inference.huggingface.co"
	retryBaseDelay = 300 * time.Millisecond
)

// Client implements inference.Pipeline against the Hugging Face Inference
// API. Hosted models answer 503 while they load; the client absorbs one
// transient failure per call before giving up.
type Client struct {
	baseURL    string
	model      string
	token      string
	httpClient *http.Client
	retryDelay time.Duration
}

// NewClient constructs a Hugging Face inference client.
func NewClient(baseURL, model, token string) (*Client, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("SENTIMENT_MODEL is required for the huggingface backend")
	}
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	timeout := 30 * time.Second
	if raw := strings.TrimSpace(os.Getenv("HF_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		baseURL: base,
		model:   model,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		retryDelay: retryBaseDelay,
	}, nil
}

type classifyRequest struct {
	Inputs string `json:"inputs"`
}

type classifyPrediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type apiError struct {
	Error string `json:"error"`
}

// Predict sends text to the hosted model and returns its top prediction.
func (c *Client) Predict(ctx context.Context, text string) (inference.Prediction, error) {
	prediction, err := c.predictOnce(ctx, text)
	if err == nil || !isTransient(err) {
		return prediction, err
	}

	log.Printf("huggingface retry attempt=1 model=%s error=%s", c.model, util.SanitizeError(err))
	select {
	case <-time.After(c.retryDelay):
	case <-ctx.Done():
		return inference.Prediction{}, ctx.Err()
	}

	return c.predictOnce(ctx, text)
}

func (c *Client) predictOnce(ctx context.Context, text string) (inference.Prediction, error) {
	payload, err := json.Marshal(classifyRequest{Inputs: text})
	if err != nil {
		return inference.Prediction{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/models/"+c.model, bytes.NewReader(payload))
	if err != nil {
		return inference.Prediction{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return inference.Prediction{}, fmt.Errorf("huggingface request timeout: %w", err)
		}
		return inference.Prediction{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return inference.Prediction{}, err
	}
	if resp.StatusCode != http.StatusOK {
		var parsed apiError
		if jsonErr := json.Unmarshal(body, &parsed); jsonErr == nil && parsed.Error != "" {
			return inference.Prediction{}, fmt.Errorf("huggingface status %d: %s", resp.StatusCode, parsed.Error)
		}
		return inference.Prediction{}, fmt.Errorf("huggingface status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	predictions, err := decodePredictions(body)
	if err != nil {
		return inference.Prediction{}, err
	}

	top := predictions[0]
	for _, p := range predictions[1:] {
		if p.Score > top.Score {
			top = p
		}
	}
	return inference.Prediction{Label: top.Label, Score: top.Score}, nil
}

// decodePredictions accepts both the nested [[{label,score}]] shape the API
// returns for single inputs and the flat [{label,score}] shape.
func decodePredictions(body []byte) ([]classifyPrediction, error) {
	var nested [][]classifyPrediction
	if err := json.Unmarshal(body, &nested); err == nil {
		if len(nested) == 0 || len(nested[0]) == 0 {
			return nil, fmt.Errorf("huggingface response missing predictions")
		}
		return nested[0], nil
	}
	var flat []classifyPrediction
	if err := json.Unmarshal(body, &flat); err != nil {
		return nil, fmt.Errorf("huggingface response parse: %w", err)
	}
	if len(flat) == 0 {
		return nil, fmt.Errorf("huggingface response missing predictions")
	}
	return flat, nil
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && (netErr.Timeout() || netErr.Temporary()) {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "status 5") || strings.Contains(msg, "currently loading") {
		return true
	}
	if strings.Contains(msg, "timeout") && (strings.Contains(msg, "huggingface") || strings.Contains(msg, "client.timeout")) {
		return true
	}
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "tls handshake timeout") ||
		strings.Contains(msg, "eof") {
		return true
	}

	return false
}

// Describe reports the remote model identity.
func (c *Client) Describe() inference.Info {
	return inference.Info{Backend: "huggingface", Model: c.model, Device: "remote"}
}

var _ inference.Pipeline = (*Client)(nil)
