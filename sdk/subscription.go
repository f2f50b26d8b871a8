package sdk

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sweetpay/sweetpay-go/pkg/resource"
)

// SubscriptionResource exposes the subscription API namespace.
type SubscriptionResource struct {
	*resource.Resource
}

// Create creates a subscription.
func (s *SubscriptionResource) Create(ctx context.Context, params map[string]any) (any, error) {
	return s.Do(ctx, http.MethodPost, params, "create")
}

// Query fetches a subscription by ID.
func (s *SubscriptionResource) Query(ctx context.Context, subscriptionID int64) (any, error) {
	return s.Do(ctx, http.MethodGet, nil, formatID(subscriptionID), "query")
}

// Update modifies an existing subscription.
func (s *SubscriptionResource) Update(ctx context.Context, subscriptionID int64, params map[string]any) (any, error) {
	return s.Do(ctx, http.MethodPost, params, formatID(subscriptionID), "update")
}

// Search finds subscriptions matching the given criteria.
func (s *SubscriptionResource) Search(ctx context.Context, params map[string]any) (any, error) {
	return s.Do(ctx, http.MethodPost, params, "search")
}

// ListLog lists a subscription's log entries.
func (s *SubscriptionResource) ListLog(ctx context.Context, subscriptionID int64) (any, error) {
	return s.Do(ctx, http.MethodGet, nil, formatID(subscriptionID), "log")
}

// Regret cancels a subscription before its first execution.
func (s *SubscriptionResource) Regret(ctx context.Context, subscriptionID int64) (any, error) {
	return s.Do(ctx, http.MethodPost, nil, formatID(subscriptionID), "regret")
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
