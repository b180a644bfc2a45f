package usecase

import "time"

// RetryPolicy bounds how often and how fast a retryable failure is retried.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// ShouldRetry reports whether a task that already failed attemptCount times may be
// tried again after the attempt that just failed.
func (p RetryPolicy) ShouldRetry(attemptCount int) bool {
	return attemptCount+1 < p.MaxAttempts
}

// Backoff returns the delay before the given attempt (1-based) is retried:
// BaseDelay doubled per attempt, capped at MaxDelay.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := p.BaseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if p.MaxDelay > 0 && delay >= p.MaxDelay {
			return p.MaxDelay
		}
	}
	if p.MaxDelay > 0 && delay > p.MaxDelay {
		return p.MaxDelay
	}
	return delay
}
