package connector

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// DefaultTimeout is the request timeout used when none is configured.
const DefaultTimeout = 15 * time.Second

// DefaultUserAgent identifies the SDK in outgoing requests.
const DefaultUserAgent = "sweetpay-go-sdk/1.0"

// Config configures a Connector.
type Config struct {
	// APIToken is sent as the Authorization header on every request.
	// Required. Must be non-empty.
	APIToken string

	// Timeout is the total request timeout (includes retries).
	// Default: 15s. Must be > 0.
	Timeout time.Duration

	// UserAgent is the User-Agent header value.
	// Default: DefaultUserAgent. Must be non-empty.
	UserAgent string

	// Headers are extra headers set on every request, after the standard
	// Authorization/Content-Type/Accept set.
	Headers map[string]string

	// RetryAttempts is the maximum number of retry attempts (0 = no retries).
	// Retries apply only to GET requests; the payment API's POST
	// operations are not idempotent.
	// Default: 0. Must be >= 0.
	RetryAttempts int

	// RetryBackoff is the initial backoff delay before first retry.
	// Default: 100ms. Must be > 0 if RetryAttempts > 0.
	RetryBackoff time.Duration

	// MaxBackoff is the maximum backoff delay cap.
	// Default: 30s. Must be >= RetryBackoff.
	MaxBackoff time.Duration

	// RateLimit throttles outgoing requests when set. Nil disables
	// rate limiting.
	RateLimit *rate.Limiter

	// Logger receives request/response logs. Default: slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns a Config with sensible defaults. APIToken must
// still be set by the caller.
func DefaultConfig() Config {
	return Config{
		Timeout:       DefaultTimeout,
		UserAgent:     DefaultUserAgent,
		RetryAttempts: 0,
		RetryBackoff:  100 * time.Millisecond,
		MaxBackoff:    30 * time.Second,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.APIToken == "" {
		return fmt.Errorf("api_token is required and must be non-empty")
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0, got %v", c.Timeout)
	}

	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry_attempts must be >= 0, got %d", c.RetryAttempts)
	}

	if c.RetryAttempts > 0 {
		if c.RetryBackoff <= 0 {
			return fmt.Errorf("retry_backoff must be > 0 when retry_attempts > 0, got %v", c.RetryBackoff)
		}

		if c.MaxBackoff < c.RetryBackoff {
			return fmt.Errorf("max_backoff (%v) must be >= retry_backoff (%v)", c.MaxBackoff, c.RetryBackoff)
		}
	}

	if c.UserAgent == "" {
		return fmt.Errorf("user_agent is required and must be non-empty")
	}

	return nil
}
