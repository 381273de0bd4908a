// Package main is a load generator for the sentiment API. It paces
// requests at a target rate against /analyze or /analyze-batch and
// reports latency percentiles.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Config holds the load test parameters.
type Config struct {
	Target    string
	Duration  time.Duration
	RPS       int
	Workers   int
	Mode      string
	BatchSize int
	Output    string
}

func main() {
	cfg := parseFlags()

	fmt.Printf("target=%s duration=%s rps=%d workers=%d mode=%s\n",
		cfg.Target, cfg.Duration, cfg.RPS, cfg.Workers, cfg.Mode)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Duration)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("interrupted, finishing in-flight requests")
		cancel()
	}()

	client := NewClient(cfg.Target, cfg.Mode, cfg.BatchSize)
	runner := NewRunner(cfg, client)

	results := runner.Run(ctx)

	if cfg.Output == "json" {
		printJSONResults(results)
		return
	}
	printTextResults(results)
}

func parseFlags() Config {
	cfg := Config{}

	flag.StringVar(&cfg.Target, "target", "http://localhost:8080", "Sentiment API URL")
	flag.DurationVar(&cfg.Duration, "duration", 60*time.Second, "Test duration (e.g. 60s, 5m)")
	flag.IntVar(&cfg.RPS, "rps", 50, "Target requests per second")
	flag.IntVar(&cfg.Workers, "workers", 10, "Number of concurrent workers")
	flag.StringVar(&cfg.Mode, "mode", "single", "Request mode (single/batch)")
	flag.IntVar(&cfg.BatchSize, "batch-size", 8, "Texts per request in batch mode")
	flag.StringVar(&cfg.Output, "output", "text", "Output format (text/json)")

	flag.Parse()

	if cfg.RPS < 1 {
		cfg.RPS = 1
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 1
	}
	if cfg.Mode != "single" && cfg.Mode != "batch" {
		fmt.Fprintf(os.Stderr, "unsupported mode: %s\n", cfg.Mode)
		os.Exit(1)
	}

	return cfg
}

func printTextResults(results *Results) {
	fmt.Println()
	fmt.Println("Load test results")
	fmt.Printf("  duration        %.1fs\n", results.Duration.Seconds())
	fmt.Printf("  target rps      %d\n", results.TargetRPS)
	fmt.Printf("  achieved rps    %.1f\n", results.AchievedRPS)
	fmt.Printf("  total requests  %d\n", results.TotalRequests)
	fmt.Println("latency (ms)")
	fmt.Printf("  p50  %.1f\n", results.LatencyP50)
	fmt.Printf("  p90  %.1f\n", results.LatencyP90)
	fmt.Printf("  p95  %.1f\n", results.LatencyP95)
	fmt.Printf("  p99  %.1f\n", results.LatencyP99)
	fmt.Printf("  max  %.1f\n", results.LatencyMax)
	fmt.Printf("  avg  %.1f\n", results.LatencyAvg)
	fmt.Println("outcomes")
	fmt.Printf("  success  %d\n", results.SuccessCount)
	fmt.Printf("  timeout  %d\n", results.TimeoutCount)
	fmt.Printf("  error    %d\n", results.ErrorCount)
}

func printJSONResults(results *Results) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal results: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
