package sdk

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/sweetpay/sweetpay-go/pkg/validate"
)

// Option is a functional option for Client construction.
type Option func(*Client) error

// WithStage directs all resources at their stage URLs instead of
// production.
func WithStage(stage bool) Option {
	return func(c *Client) error {
		c.stage = stage
		return nil
	}
}

// WithEndpoint configures the base URLs and API version for one
// namespace. A namespace without an endpoint gets no resource on the
// Client.
func WithEndpoint(kind validate.Kind, ep Endpoint) Option {
	return func(c *Client) error {
		if err := ep.validate(kind); err != nil {
			return err
		}
		c.endpoints[kind] = ep
		return nil
	}
}

// WithTimeout overrides the per-request timeout. The default is 15
// seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) error {
		if timeout <= 0 {
			return fmt.Errorf("timeout must be positive")
		}
		c.connCfg.Timeout = timeout
		return nil
	}
}

// WithHTTPHeaders adds extra headers to every request, on top of the
// authorization and content negotiation headers the connector sets
// itself.
func WithHTTPHeaders(headers map[string]string) Option {
	return func(c *Client) error {
		if c.connCfg.Headers == nil {
			c.connCfg.Headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			c.connCfg.Headers[k] = v
		}
		return nil
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if ua == "" {
			return fmt.Errorf("user agent cannot be empty")
		}
		c.connCfg.UserAgent = ua
		return nil
	}
}

// WithRetry configures retries for idempotent requests. Zero attempts
// disables retrying.
func WithRetry(attempts int, backoff, maxBackoff time.Duration) Option {
	return func(c *Client) error {
		if attempts < 0 {
			return fmt.Errorf("retry attempts cannot be negative")
		}
		c.connCfg.RetryAttempts = attempts
		c.connCfg.RetryBackoff = backoff
		c.connCfg.MaxBackoff = maxBackoff
		return nil
	}
}

// WithRateLimit throttles outgoing requests to n per second with the
// given burst.
func WithRateLimit(n float64, burst int) Option {
	return func(c *Client) error {
		if n <= 0 || burst <= 0 {
			return fmt.Errorf("rate limit and burst must be positive")
		}
		c.connCfg.RateLimit = rate.NewLimiter(rate.Limit(n), burst)
		return nil
	}
}

// WithLogger installs a structured logger for the connector and all
// resources.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.logger = logger
		return nil
	}
}

// WithRegistry replaces the client's validator registry. Registration
// done on the passed registry before or after New is visible to all
// resources.
func WithRegistry(reg *validate.Registry) Option {
	return func(c *Client) error {
		if reg == nil {
			return fmt.Errorf("registry cannot be nil")
		}
		c.registry = reg
		return nil
	}
}

// WithDefaultValidators registers the stock response validators (date
// and timestamp coercion on subscription payloads) on the client's
// registry.
func WithDefaultValidators() Option {
	return func(c *Client) error {
		c.useDefaults = true
		return nil
	}
}

// WithoutValidators disables response validation entirely. Overrides
// WithRegistry and WithDefaultValidators.
func WithoutValidators() Option {
	return func(c *Client) error {
		c.noValidators = true
		return nil
	}
}
