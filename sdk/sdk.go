// Package sdk is the entry point for the SweetPay API client.
//
// A Client bundles one connector with the three API namespaces:
// subscriptions, credit checks, and checkout sessions. Each namespace
// is served from its own host, so the caller supplies an Endpoint per
// namespace it intends to use:
//
//	client, err := sdk.New(os.Getenv("SWEETPAY_API_TOKEN"),
//		sdk.WithStage(true),
//		sdk.WithEndpoint(sdk.KindSubscription, sdk.Endpoint{
//			StageURL:      "https://api.stage.example.com/subscription",
//			ProductionURL: "https://api.example.com/subscription",
//			Version:       1,
//		}),
//		sdk.WithDefaultValidators(),
//	)
//	if err != nil {
//		return err
//	}
//	body, err := client.Subscription.Create(ctx, map[string]any{
//		"amount":   decimal.NewFromFloat(200),
//		"currency": "SEK",
//		"interval": "MONTHLY",
//	})
//
// Each Client instance carries isolated state; there are no package
// globals to configure.
package sdk

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/sweetpay/sweetpay-go/internal/log"
	"github.com/sweetpay/sweetpay-go/pkg/connector"
	"github.com/sweetpay/sweetpay-go/pkg/resource"
	"github.com/sweetpay/sweetpay-go/pkg/validate"
)

// Namespace identities. They key validator registration and endpoint
// configuration.
const (
	KindSubscription    validate.Kind = "subscription"
	KindCreditcheck     validate.Kind = "creditcheck"
	KindCheckoutSession validate.Kind = "checkout_session"
)

// Endpoint is the pair of base URLs serving one namespace, plus the API
// version appended to the base path as "/v<n>". Version 0 leaves the
// path unversioned.
type Endpoint struct {
	StageURL      string
	ProductionURL string
	Version       int
}

func (e Endpoint) validate(kind validate.Kind) error {
	if e.StageURL == "" || e.ProductionURL == "" {
		return fmt.Errorf("endpoint %q: stage and production URLs are required", kind)
	}
	return nil
}

// versioned appends the version segment to a base URL.
func (e Endpoint) versioned(base string) string {
	base = strings.TrimSuffix(base, "/")
	if e.Version <= 0 {
		return base
	}
	return base + "/v" + strconv.Itoa(e.Version)
}

// Client is the configured SDK instance. The three resource fields are
// nil for namespaces without a configured endpoint.
type Client struct {
	Subscription    *SubscriptionResource
	Creditcheck     *CreditcheckResource
	CheckoutSession *CheckoutSessionResource

	conn     *connector.Connector
	registry *validate.Registry
	logger   *slog.Logger

	// construction state, consumed by New
	connCfg      connector.Config
	stage        bool
	endpoints    map[validate.Kind]Endpoint
	useDefaults  bool
	noValidators bool
}

// New creates a Client with the given API token and options. At least
// one endpoint must be configured via WithEndpoint.
func New(apiToken string, opts ...Option) (*Client, error) {
	cfg := connector.DefaultConfig()
	cfg.APIToken = apiToken

	c := &Client{
		connCfg:   cfg,
		registry:  validate.NewRegistry(),
		endpoints: make(map[validate.Kind]Endpoint),
		logger:    log.New(log.FromEnv()),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}

	if len(c.endpoints) == 0 {
		return nil, fmt.Errorf("no endpoints configured")
	}
	if c.noValidators {
		c.registry = nil
	} else if c.useDefaults {
		RegisterDefaultValidators(c.registry)
	}

	c.connCfg.Logger = c.logger
	conn, err := connector.New(c.connCfg)
	if err != nil {
		return nil, fmt.Errorf("create connector: %w", err)
	}
	c.conn = conn

	if err := c.buildResources(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) buildResources() error {
	if ep, ok := c.endpoints[KindSubscription]; ok {
		res, err := c.newResource(KindSubscription, ep)
		if err != nil {
			return err
		}
		c.Subscription = &SubscriptionResource{Resource: res}
	}
	if ep, ok := c.endpoints[KindCreditcheck]; ok {
		res, err := c.newResource(KindCreditcheck, ep)
		if err != nil {
			return err
		}
		c.Creditcheck = &CreditcheckResource{Resource: res}
	}
	if ep, ok := c.endpoints[KindCheckoutSession]; ok {
		res, err := c.newResource(KindCheckoutSession, ep)
		if err != nil {
			return err
		}
		c.CheckoutSession = &CheckoutSessionResource{Resource: res}
	}
	return nil
}

func (c *Client) newResource(kind validate.Kind, ep Endpoint) (*resource.Resource, error) {
	res, err := resource.New(resource.Config{
		Kind:          kind,
		Stage:         c.stage,
		StageURL:      ep.versioned(ep.StageURL),
		ProductionURL: ep.versioned(ep.ProductionURL),
		Executor:      c.conn,
		Registry:      c.registry,
		Logger:        c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s resource: %w", kind, err)
	}
	return res, nil
}

// Stage reports whether the client targets the stage environment.
func (c *Client) Stage() bool {
	return c.stage
}

// Registry returns the validator registry shared by the client's
// resources, or nil when validation is disabled.
func (c *Client) Registry() *validate.Registry {
	return c.registry
}
