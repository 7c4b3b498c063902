// Package probe checks backend reachability for the login screen.
package probe

import (
	"context"
	"fmt"
	"time"

	"ovenaura/internal/model"

	"github.com/rs/zerolog"
)

// HealthChecker is the backend call the probe exercises.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Result is the outcome of one Check.
type Result struct {
	Reachable bool   `json:"reachable"`
	Attempts  int    `json:"attempts"`
	LatencyMs int64  `json:"latencyMs"`
	Message   string `json:"message,omitempty"`
}

// Prober runs a health check with a per-attempt timeout and a single retry.
type Prober struct {
	checker    HealthChecker
	timeout    time.Duration
	retryDelay time.Duration
	logger     zerolog.Logger
}

// New creates a prober.
func New(checker HealthChecker, timeout, retryDelay time.Duration, logger zerolog.Logger) *Prober {
	return &Prober{
		checker:    checker,
		timeout:    timeout,
		retryDelay: retryDelay,
		logger:     logger.With().Str("component", "probe").Logger(),
	}
}

// Check probes the backend. A failed first attempt is retried exactly once
// after the retry delay. The returned error is nil when the backend answered.
func (p *Prober) Check(ctx context.Context) (Result, error) {
	start := time.Now()

	err := p.attempt(ctx)
	if err == nil {
		return Result{Reachable: true, Attempts: 1, LatencyMs: time.Since(start).Milliseconds()}, nil
	}

	p.logger.Warn().Err(err).Dur("retry_in", p.retryDelay).Msg("backend probe failed, retrying")

	timer := time.NewTimer(p.retryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return p.failed(1, start, err), fmt.Errorf("probe cancelled: %w", ctx.Err())
	case <-timer.C:
	}

	if err = p.attempt(ctx); err == nil {
		return Result{Reachable: true, Attempts: 2, LatencyMs: time.Since(start).Milliseconds()}, nil
	}

	p.logger.Error().Err(err).Msg("backend unreachable")
	return p.failed(2, start, err), err
}

func (p *Prober) attempt(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.checker.Health(ctx)
}

func (p *Prober) failed(attempts int, start time.Time, err error) Result {
	return Result{
		Attempts:  attempts,
		LatencyMs: time.Since(start).Milliseconds(),
		Message:   model.UserMessage(err, model.ErrBackendUnavailable.Message),
	}
}
