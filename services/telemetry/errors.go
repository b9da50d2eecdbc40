package telemetry

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnauthorized indicates the provider rejected the configured token.
// It is never retried.
var ErrUnauthorized = errors.New("telemetry provider rejected token")

// ErrMalformedResponse indicates the provider responded without the expected
// result field. The fetch fails rather than coercing a partial payload.
var ErrMalformedResponse = errors.New("telemetry provider returned malformed response")

// RateLimitError indicates the provider throttled the request. When the
// response carried a Retry-After header its value is surfaced through
// RetryAfter so the retrier can honor it.
type RateLimitError struct {
	Delay time.Duration
}

func (e *RateLimitError) Error() string {
	if e.Delay > 0 {
		return fmt.Sprintf("telemetry provider rate limited, retry after %s", e.Delay)
	}
	return "telemetry provider rate limited"
}

// RetryAfter returns the provider-requested delay before the next attempt
func (e *RateLimitError) RetryAfter() time.Duration {
	return e.Delay
}
