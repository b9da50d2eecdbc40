package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type rateLimitedErr struct {
	after time.Duration
}

func (e *rateLimitedErr) Error() string             { return "rate limited" }
func (e *rateLimitedErr) RetryAfter() time.Duration { return e.after }

func fastConfig(maxRetries int) Config {
	return Config{
		MaxRetries:    maxRetries,
		BaseDelay:     time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		Multiplier:    2.0,
		Jitter:        false,
		RetryableFunc: func(error) bool { return true },
	}
}

func TestExecute_SucceedsFirstAttempt(t *testing.T) {
	r := New(fastConfig(3))

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecute_RetriesUntilSuccess(t *testing.T) {
	r := New(fastConfig(3))

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecute_BoundedAttempts(t *testing.T) {
	r := New(fastConfig(2))

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return errors.New("always failing")
	})

	assert.Error(t, err)
	assert.Equal(t, 3, calls) // initial attempt + 2 retries
	assert.Contains(t, err.Error(), "retry limit exceeded")
}

func TestExecute_NonRetryableStopsImmediately(t *testing.T) {
	cfg := fastConfig(5)
	sentinel := errors.New("unauthorized")
	cfg.RetryableFunc = func(err error) bool { return !errors.Is(err, sentinel) }
	r := New(cfg)

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, calls)
}

func TestExecute_HonorsRetryAfterHint(t *testing.T) {
	r := New(fastConfig(1))

	hint := 30 * time.Millisecond
	calls := 0
	start := time.Now()
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return &rateLimitedErr{after: hint}
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.GreaterOrEqual(t, time.Since(start), hint)
}

func TestExecute_ContextCancellation(t *testing.T) {
	r := New(fastConfig(10))

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	err := r.Execute(ctx, func(ctx context.Context) error {
		calls++
		return &rateLimitedErr{after: time.Second}
	})

	assert.ErrorIs(t, err, context.Canceled)
}
