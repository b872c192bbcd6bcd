package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// RetryProvider retries transient failures with exponential backoff.
type RetryProvider struct {
	inner  Provider
	cfg    RetryConfig
	logger *zap.Logger
}

// WithRetry wraps p. A nil logger disables retry logs.
func WithRetry(p Provider, cfg RetryConfig, logger *zap.Logger) *RetryProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryProvider{inner: p, cfg: cfg, logger: logger}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var err error
	retriedInvalid := false

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		var resp *Response
		resp, err = r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if !retryable(err, &retriedInvalid) || attempt == r.cfg.MaxAttempts-1 {
			return nil, err
		}

		wait := r.backoff(attempt, err)
		r.logger.Warn("llm request failed, retrying",
			zap.String("purpose", PurposeFrom(ctx)),
			zap.Int("attempt", attempt+1),
			zap.Duration("wait", wait),
			zap.Error(err),
		)

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	return nil, err
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

// retryable reports whether err is worth another attempt. Invalid
// responses get a single retry.
func retryable(err error, retriedInvalid *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var (
		truncated *ErrMaxTokensExceeded
		rejected  *ErrRejected
		invalid   *ErrInvalidResponse
	)
	switch {
	case errors.As(err, &truncated), errors.As(err, &rejected):
		return false
	case errors.As(err, &invalid):
		if *retriedInvalid {
			return false
		}
		*retriedInvalid = true
		return true
	}
	return true
}

// backoff is InitialWait * Multiplier^attempt, capped at MaxWait, with
// +/-20% jitter. A rate limit's RetryAfter wins when set.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	wait = math.Min(wait, float64(r.cfg.MaxWait))
	wait *= 0.8 + 0.4*rand.Float64()
	return time.Duration(max(wait, 0))
}
