package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.075, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		},
		[]string{"method", "endpoint", "status_code"},
	)

	inferenceDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sentiment_inference_duration_seconds",
			Help:    "Inference latency per backend.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.075, 0.1, 0.25, 0.5, 1.0},
		},
		[]string{"backend"},
	)

	inferenceTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_inference_total",
			Help: "Inference outcomes per backend.",
		},
		[]string{"backend", "status"},
	)

	inFlightRequests = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sentiment_in_flight_requests",
		Help: "Requests currently being served.",
	})
)

func init() {
	prometheus.MustRegister(httpRequestDuration, inferenceDuration, inferenceTotal, inFlightRequests)
	inFlightRequests.Set(0)
}

// RegisterBackend pre-creates the per-backend series so they report zero
// before the first request.
func RegisterBackend(backend string) {
	inferenceDuration.WithLabelValues(backend)
	inferenceTotal.WithLabelValues(backend, "success")
	inferenceTotal.WithLabelValues(backend, "error")
}

// ObserveInferenceSeconds records one inference duration.
func ObserveInferenceSeconds(backend string, seconds float64) {
	inferenceDuration.WithLabelValues(backend).Observe(seconds)
}

// IncInference counts one inference outcome.
func IncInference(backend, status string) {
	inferenceTotal.WithLabelValues(backend, status).Inc()
}

// HTTP measures request latency and in-flight load. The metrics route is
// skipped so scrapes do not observe themselves.
func HTTP() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		inFlightRequests.Inc()
		start := time.Now()

		c.Next()

		inFlightRequests.Dec()
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = c.Request.URL.Path
		}
		httpRequestDuration.
			WithLabelValues(c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	promHandler := promhttp.Handler()
	return func(c *gin.Context) {
		promHandler.ServeHTTP(c.Writer, c.Request)
	}
}
