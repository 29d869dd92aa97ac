package retry

import (
	"context"
	"math"
	"time"
)

// Classifier decides whether an error is worth another attempt.
type Classifier func(error) bool

// Policy bounds the retry loop.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// BaseBackoff is the delay before the second attempt.
	BaseBackoff time.Duration
	// MaxBackoff caps the exponential growth of the delay.
	MaxBackoff time.Duration
}

// DefaultPolicy mirrors the bounds used by the report feature: three
// attempts with a short exponential backoff.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseBackoff: 100 * time.Millisecond,
		MaxBackoff:  2 * time.Second,
	}
}

// Backoff returns the delay to sleep after the given 1-based attempt:
// base * 2^(attempt-1), capped at MaxBackoff.
func (p Policy) Backoff(attempt int) time.Duration {
	if attempt <= 1 {
		return p.BaseBackoff
	}
	delay := time.Duration(float64(p.BaseBackoff) * math.Pow(2, float64(attempt-1)))
	if delay > p.MaxBackoff || delay <= 0 {
		return p.MaxBackoff
	}
	return delay
}

// Do runs op until it succeeds, the classifier rejects the error, or the
// attempt budget is exhausted. The last error is returned unchanged so
// callers can still inspect it with errors.Is / errors.As. Waiting between
// attempts aborts early if ctx is done.
func Do(ctx context.Context, p Policy, retryable Classifier, op func() error) error {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 1
	}

	var err error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		err = op()
		if err == nil || !retryable(err) {
			return err
		}
		if attempt == p.MaxAttempts {
			break
		}

		select {
		case <-time.After(p.Backoff(attempt)):
		case <-ctx.Done():
			return err
		}
	}
	return err
}
