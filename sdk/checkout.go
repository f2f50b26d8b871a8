package sdk

import (
	"context"
	"net/http"

	"github.com/sweetpay/sweetpay-go/pkg/resource"
)

// CheckoutSessionResource exposes the checkout session API namespace.
type CheckoutSessionResource struct {
	*resource.Resource
}

// Create opens a checkout session and returns the envelope carrying the
// session URL.
func (c *CheckoutSessionResource) Create(ctx context.Context, params map[string]any) (any, error) {
	return c.Do(ctx, http.MethodPost, params, "session", "create")
}
