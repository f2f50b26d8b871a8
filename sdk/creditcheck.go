package sdk

import (
	"context"
	"net/http"

	"github.com/sweetpay/sweetpay-go/pkg/resource"
)

// CreditcheckResource exposes the credit check API namespace.
type CreditcheckResource struct {
	*resource.Resource
}

// Create performs a credit check.
func (c *CreditcheckResource) Create(ctx context.Context, params map[string]any) (any, error) {
	return c.Do(ctx, http.MethodPost, params, "check")
}

// Search finds previously made credit checks.
func (c *CreditcheckResource) Search(ctx context.Context, params map[string]any) (any, error) {
	return c.Do(ctx, http.MethodPost, params, "search")
}
