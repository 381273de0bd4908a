package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"
)

type analyzeRequest struct {
	Text string `json:"text"`
}

type batchRequest struct {
	Texts []string `json:"texts"`
}

// Client sends analysis requests to the sentiment API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	mode       string
	batchSize  int
	sampleIdx  atomic.Uint64
}

// NewClient creates a load test client with pooled connections.
func NewClient(baseURL, mode string, batchSize int) *Client {
	transport := &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   10 * time.Second,
		},
		baseURL:   baseURL,
		mode:      mode,
		batchSize: batchSize,
	}
}

// RequestResult holds the outcome of a single request.
type RequestResult struct {
	Latency    time.Duration
	Success    bool
	Timeout    bool
	Err        error
	StatusCode int
}

// SendRequest fires one analysis call and measures its latency.
func (c *Client) SendRequest(ctx context.Context) RequestResult {
	path, body, err := c.buildPayload()
	if err != nil {
		return RequestResult{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return RequestResult{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(start)

	result := RequestResult{Latency: latency}
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			result.Timeout = true
		}
		result.Err = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Err = err
		return result
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		result.Success = true
	case resp.StatusCode >= 500:
		result.Err = fmt.Errorf("server error: %d", resp.StatusCode)
	default:
		result.Err = fmt.Errorf("client error: %d - %s", resp.StatusCode, string(respBody))
	}

	return result
}

func (c *Client) buildPayload() (string, []byte, error) {
	if c.mode == "batch" {
		texts := make([]string, c.batchSize)
		for i := range texts {
			texts[i] = c.nextSample()
		}
		body, err := json.Marshal(batchRequest{Texts: texts})
		return "/analyze-batch", body, err
	}

	body, err := json.Marshal(analyzeRequest{Text: c.nextSample()})
	return "/analyze", body, err
}

func (c *Client) nextSample() string {
	idx := c.sampleIdx.Add(1) - 1
	return sampleTexts[idx%uint64(len(sampleTexts))]
}

// Review-style samples covering the three sentiment classes.
var sampleTexts = []string{
	"This is a wonderful product! I love it so much.",
	"Absolutely great service, the staff were amazing.",
	"What an excellent experience from start to finish.",
	"This is terrible. I hate it.",
	"Worst purchase I have ever made, truly awful.",
	"The delivery was horrible and the box arrived crushed.",
	"It's okay, nothing special but not bad either.",
	"The package arrived on Tuesday as scheduled.",
	"I ordered the medium size in blue.",
	"Pelayanannya sangat bagus dan ramah sekali.",
	"Produk ini sangat mengecewakan, kualitasnya buruk.",
	"Barang sudah sampai sesuai estimasi pengiriman.",
}
