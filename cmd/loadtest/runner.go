package main

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Runner paces request production and fans it out to workers.
type Runner struct {
	cfg     Config
	client  *Client
	metrics *Metrics
}

// NewRunner creates a load test runner.
func NewRunner(cfg Config, client *Client) *Runner {
	return &Runner{
		cfg:     cfg,
		client:  client,
		metrics: NewMetrics(),
	}
}

// Run executes the load test until the context expires.
func (r *Runner) Run(ctx context.Context) *Results {
	requestCh := make(chan struct{}, r.cfg.Workers*2)
	var wg sync.WaitGroup

	r.metrics.Start()

	for i := 0; i < r.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, requestCh)
		}()
	}

	ticker := time.NewTicker(time.Second / time.Duration(r.cfg.RPS))
	defer ticker.Stop()

	progressTicker := time.NewTicker(5 * time.Second)
	defer progressTicker.Stop()

	startTime := time.Now()
	requestsSent := 0

	fmt.Println("load test started")

loop:
	for {
		select {
		case <-ctx.Done():
			break loop

		case <-progressTicker.C:
			elapsed := time.Since(startTime)
			fmt.Printf("elapsed=%s sent=%d rps=%.1f\n",
				elapsed.Round(time.Second), requestsSent, float64(requestsSent)/elapsed.Seconds())

		case <-ticker.C:
			select {
			case requestCh <- struct{}{}:
				requestsSent++
			default:
				// Workers are falling behind; drop the tick.
			}
		}
	}

	close(requestCh)
	wg.Wait()

	r.metrics.Stop()
	fmt.Println("load test completed")

	return r.metrics.GetResults(r.cfg.RPS)
}

func (r *Runner) worker(ctx context.Context, requestCh <-chan struct{}) {
	for range requestCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		reqCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		result := r.client.SendRequest(reqCtx)
		cancel()

		r.metrics.Record(result)
	}
}
