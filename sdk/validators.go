package sdk

import (
	"github.com/sweetpay/sweetpay-go/pkg/validate"
)

// RegisterDefaultValidators installs the stock response validators on a
// registry. Subscription payloads get their startsAt dates and
// createdAt timestamps coerced from strings to typed values.
//
// Search responses carry a list under payload instead of an object, so
// path-based validators never reach the fields inside it. A
// whole-payload transform loops over the list to cover that shape.
func RegisterDefaultValidators(reg *validate.Registry) {
	reg.Register(KindSubscription, validate.Path{"payload", "startsAt"}, validate.Optional(validate.AsDate))
	reg.Register(KindSubscription, validate.Path{"payload", "createdAt"}, validate.Optional(validate.AsTime))
	reg.Register(KindSubscription, validate.Path{"payload"}, coerceSubscriptionList)
}

func coerceSubscriptionList(value any) (any, error) {
	list, ok := value.([]any)
	if !ok {
		return value, nil
	}

	for _, item := range list {
		sub, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if raw, ok := sub["startsAt"]; ok {
			v, err := validate.Optional(validate.AsDate)(raw)
			if err != nil {
				return nil, err
			}
			sub["startsAt"] = v
		}
		if raw, ok := sub["createdAt"]; ok {
			v, err := validate.Optional(validate.AsTime)(raw)
			if err != nil {
				return nil, err
			}
			sub["createdAt"] = v
		}
	}
	return list, nil
}
