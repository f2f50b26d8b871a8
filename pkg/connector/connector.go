// Package connector performs the HTTP exchanges underneath the resource
// facades.
//
// A Connector wraps net/http with the SDK's transport stack: TLS and
// connection-pooling defaults, request logging with sanitized URLs,
// optional retries with exponential backoff for GET requests, and an
// optional client-side rate limiter. It attaches auth headers, encodes
// request bodies money-safely, and returns every response as an Envelope;
// classifying non-2xx responses is the error mapper's job, not this
// package's.
package connector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/sweetpay/sweetpay-go/internal/log"
	sweeterr "github.com/sweetpay/sweetpay-go/pkg/errors"
)

// Connector sends requests to the payment API.
type Connector struct {
	cfg     Config
	client  *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// New creates a Connector from the given configuration.
// Returns an error if the configuration is invalid.
func New(cfg Config) (*Connector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Layer the transports: base (TLS, pooling), then logging, then retry
	// outermost so each attempt is logged individually.
	var transport http.RoundTripper = newLoggingTransport(newBaseTransport(cfg.Timeout), cfg.UserAgent, logger)
	if cfg.RetryAttempts > 0 {
		transport = newRetryTransport(transport, cfg)
	}

	logger.Debug("connector configured",
		slog.String("api_token", log.SanitizeAPIKey(cfg.APIToken)),
		slog.Duration("timeout", cfg.Timeout),
		slog.Int("retry_attempts", cfg.RetryAttempts),
	)

	return &Connector{
		cfg: cfg,
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		limiter: cfg.RateLimit,
		logger:  logger,
	}, nil
}

// Send performs one exchange against target and returns the response as
// an Envelope.
//
// method must be exactly GET or POST; any other value is a caller
// programming error and panics. params is the POST body (nil sends an
// empty object) and must be nil for GET.
//
// Transport failures surface as typed errors: a timeout as KindTimeout,
// anything else as KindRequestFailed. Non-2xx responses are not errors at
// this layer.
func (c *Connector) Send(ctx context.Context, target, method string, params map[string]any) (*Envelope, error) {
	method = strings.ToUpper(method)
	if method != http.MethodGet && method != http.MethodPost {
		panic(fmt.Sprintf("connector: only GET and POST requests are allowed, not method=%s", method))
	}

	if c.limiter != nil {
		waitStart := time.Now()
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, sweeterr.NewRequestFailed(err)
		}
		recordRateLimitWait(time.Since(waitStart))
	}

	var bodyReader io.Reader
	if method == http.MethodPost {
		data, err := MarshalBody(params)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(data)
		log.Trace(c.logger, "request body", slog.String("body", string(data)))
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, sweeterr.NewRequestFailed(err)
	}

	req.Header.Set("Authorization", c.cfg.APIToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for key, value := range c.cfg.Headers {
		req.Header.Set(key, value)
	}

	c.logger.Info("sending request",
		log.MethodKey, method,
		log.TargetKey, sanitizeURL(req.URL),
	)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			recordTransportError(string(sweeterr.KindTimeout))
			return nil, sweeterr.NewTimeout(err)
		}
		recordTransportError(string(sweeterr.KindRequestFailed))
		return nil, sweeterr.NewRequestFailed(err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		recordTransportError(string(sweeterr.KindRequestFailed))
		return nil, sweeterr.NewRequestFailed(fmt.Errorf("read response body: %w", err))
	}

	elapsed := time.Since(start)
	recordRequest(method, resp.StatusCode, elapsed)

	c.logger.Info("received response",
		log.MethodKey, method,
		log.TargetKey, sanitizeURL(req.URL),
		log.StatusKey, resp.StatusCode,
		log.DurationKey, elapsed,
	)
	log.Trace(c.logger, "response body", slog.String("body", string(rawBody)))

	return NewEnvelope(resp.StatusCode, resp, rawBody), nil
}

// isTimeout reports whether a transport error was caused by a timeout,
// either the client deadline or a lower-level network timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
