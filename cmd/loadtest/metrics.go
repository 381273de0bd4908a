package main

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Metrics aggregates request results during a run.
type Metrics struct {
	mu sync.Mutex

	startTime time.Time
	endTime   time.Time

	// Latencies recorded in microseconds.
	histogram *hdrhistogram.Histogram

	totalRequests int64
	successCount  int64
	timeoutCount  int64
	errorCount    int64
}

// NewMetrics creates a collector covering 1us to 60s at 3 significant figures.
func NewMetrics() *Metrics {
	return &Metrics{
		histogram: hdrhistogram.New(1, 60_000_000, 3),
	}
}

// Start marks the beginning of the run.
func (m *Metrics) Start() {
	m.mu.Lock()
	m.startTime = time.Now()
	m.mu.Unlock()
}

// Stop marks the end of the run.
func (m *Metrics) Stop() {
	m.mu.Lock()
	m.endTime = time.Now()
	m.mu.Unlock()
}

// Record adds one request result.
func (m *Metrics) Record(result RequestResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalRequests++

	if us := result.Latency.Microseconds(); us > 0 {
		m.histogram.RecordValue(us)
	}

	switch {
	case result.Success:
		m.successCount++
	case result.Timeout:
		m.timeoutCount++
	default:
		m.errorCount++
	}
}

// Results is the final report of a run.
type Results struct {
	Duration      time.Duration `json:"duration"`
	TargetRPS     int           `json:"target_rps"`
	AchievedRPS   float64       `json:"achieved_rps"`
	TotalRequests int64         `json:"total_requests"`

	// Latency percentiles in milliseconds.
	LatencyP50 float64 `json:"latency_p50_ms"`
	LatencyP90 float64 `json:"latency_p90_ms"`
	LatencyP95 float64 `json:"latency_p95_ms"`
	LatencyP99 float64 `json:"latency_p99_ms"`
	LatencyMax float64 `json:"latency_max_ms"`
	LatencyAvg float64 `json:"latency_avg_ms"`

	SuccessCount int64 `json:"success_count"`
	TimeoutCount int64 `json:"timeout_count"`
	ErrorCount   int64 `json:"error_count"`
}

// GetResults computes the final report.
func (m *Metrics) GetResults(targetRPS int) *Results {
	m.mu.Lock()
	defer m.mu.Unlock()

	duration := m.endTime.Sub(m.startTime)
	if duration == 0 {
		duration = time.Second
	}

	return &Results{
		Duration:      duration,
		TargetRPS:     targetRPS,
		AchievedRPS:   float64(m.totalRequests) / duration.Seconds(),
		TotalRequests: m.totalRequests,

		LatencyP50: float64(m.histogram.ValueAtPercentile(50)) / 1000.0,
		LatencyP90: float64(m.histogram.ValueAtPercentile(90)) / 1000.0,
		LatencyP95: float64(m.histogram.ValueAtPercentile(95)) / 1000.0,
		LatencyP99: float64(m.histogram.ValueAtPercentile(99)) / 1000.0,
		LatencyMax: float64(m.histogram.Max()) / 1000.0,
		LatencyAvg: m.histogram.Mean() / 1000.0,

		SuccessCount: m.successCount,
		TimeoutCount: m.timeoutCount,
		ErrorCount:   m.errorCount,
	}
}
