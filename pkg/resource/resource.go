// Package resource implements the facade shared by all API namespaces.
//
// A Resource joins a stage- or production-dependent base URL with
// operation path segments, executes the request, maps the response
// through the error taxonomy, and runs the validator registry over the
// resulting body. The executor behind a resource is a strategy: the real
// connector in production, a canned one inside a mock scope.
package resource

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sweetpay/sweetpay-go/internal/log"
	"github.com/sweetpay/sweetpay-go/pkg/connector"
	"github.com/sweetpay/sweetpay-go/pkg/validate"
)

// Executor performs one request/response exchange. The real
// implementation is *connector.Connector; mock scopes install canned
// implementations.
type Executor interface {
	Send(ctx context.Context, target, method string, params map[string]any) (*connector.Envelope, error)
}

// Config configures a Resource.
type Config struct {
	// Kind is the resource's namespace identity, used for validator
	// lookup. Required.
	Kind validate.Kind

	// Stage selects the stage base URL over the production one.
	Stage bool

	// StageURL and ProductionURL are the namespace base URLs. Both
	// required.
	StageURL      string
	ProductionURL string

	// Executor performs the actual exchanges. Required.
	Executor Executor

	// Registry rewrites response fields after error mapping. Nil disables
	// validation.
	Registry *validate.Registry

	// Logger receives operation logs. Default: slog.Default().
	Logger *slog.Logger
}

// Resource is the facade for one API namespace. It is created once at
// configuration time and is stateless between calls, except for the
// mock-scope executor swap, which is a single-threaded test utility.
type Resource struct {
	kind          validate.Kind
	stage         bool
	stageURL      string
	productionURL string
	exec          Executor
	registry      *validate.Registry
	logger        *slog.Logger
}

// New creates a Resource from the given configuration.
func New(cfg Config) (*Resource, error) {
	if cfg.Kind == "" {
		return nil, fmt.Errorf("resource kind is required")
	}
	if cfg.Executor == nil {
		return nil, fmt.Errorf("resource %q: executor is required", cfg.Kind)
	}
	if cfg.StageURL == "" || cfg.ProductionURL == "" {
		return nil, fmt.Errorf("resource %q: stage and production base URLs are required", cfg.Kind)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Resource{
		kind:          cfg.Kind,
		stage:         cfg.Stage,
		stageURL:      strings.TrimSuffix(cfg.StageURL, "/"),
		productionURL: strings.TrimSuffix(cfg.ProductionURL, "/"),
		exec:          cfg.Executor,
		registry:      cfg.Registry,
		logger:        log.WithResource(logger, string(cfg.Kind)),
	}, nil
}

// Kind returns the resource's namespace identity.
func (r *Resource) Kind() validate.Kind {
	return r.kind
}

// Stage reports whether the resource targets the stage environment.
func (r *Resource) Stage() bool {
	return r.stage
}

// BaseURL returns the stage or production base URL. The stage flag is
// read on every call rather than cached at construction.
func (r *Resource) BaseURL() string {
	if r.stage {
		return r.stageURL
	}
	return r.productionURL
}

// Target joins the active base URL with operation path segments.
func (r *Resource) Target(segments ...string) string {
	parts := append([]string{r.BaseURL()}, segments...)
	return strings.Join(parts, "/")
}

// Do executes one operation: send, map errors, validate, return the body.
func (r *Resource) Do(ctx context.Context, method string, params map[string]any, segments ...string) (any, error) {
	target := r.Target(segments...)

	env, err := r.exec.Send(ctx, target, method, params)
	if err != nil {
		return nil, err
	}

	body, err := Check(env)
	if err != nil {
		return nil, err
	}

	if r.registry != nil && body != nil {
		body, err = r.registry.Apply(r.kind, body)
		if err != nil {
			return nil, err
		}
	}

	r.logger.Debug("operation succeeded",
		log.MethodKey, method,
		log.TargetKey, target,
	)
	return body, nil
}
