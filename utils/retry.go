package utils

import (
	"context"
	"fmt"
	"time"
)

// RetryWithBackoff retries a function up to maxRetries times with quadratic backoff.
// It gives up early when ctx is cancelled while waiting.
func RetryWithBackoff(ctx context.Context, maxRetries int, fn func() error, logger *Logger) error {
	return retry(ctx, maxRetries, time.Second, fn, logger)
}

func retry(ctx context.Context, maxRetries int, unit time.Duration, fn func() error, logger *Logger) error {
	if maxRetries < 1 {
		maxRetries = 1
	}
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt*attempt) * unit
			logger.Warn("Retrying (attempt %d/%d) after %v...", attempt+1, maxRetries, backoff)
			select {
			case <-ctx.Done():
				return fmt.Errorf("retry cancelled after %d attempts: %w", attempt, ctx.Err())
			case <-time.After(backoff):
			}
		}
		if err := fn(); err != nil {
			lastErr = err
			logger.Error("Attempt %d failed: %v", attempt+1, err)
			continue
		}
		return nil
	}
	return fmt.Errorf("all %d attempts failed, last error: %w", maxRetries, lastErr)
}
