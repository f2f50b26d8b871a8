package validate

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sweetpay/sweetpay-go/pkg/types"
)

// Built-in transforms for the field encodings the payment API uses.
// Each expects the raw decoded JSON value and returns the richer type.
// They reject unexpected shapes instead of guessing; wrap them if a field
// is optional and may be null.

// timeLayouts are the timestamp encodings observed on the wire. The API
// usually sends RFC 3339 but omits the zone on some legacy fields.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// AsDate parses a "YYYY-MM-DD" string into a types.Date.
func AsDate(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected date string, got %T", value)
	}
	return types.ParseDate(s)
}

// AsTime parses an ISO-8601 timestamp string into a UTC time.Time.
// Zone-less timestamps are interpreted as UTC.
func AsTime(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected timestamp string, got %T", value)
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return nil, fmt.Errorf("parse timestamp %q: unrecognized format", s)
}

// AsUUID parses a UUID string into a uuid.UUID.
func AsUUID(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected UUID string, got %T", value)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("parse UUID %q: %w", s, err)
	}
	return id, nil
}

// AsDecimal parses a monetary amount into a decimal.Decimal. Accepts the
// string encoding the API uses as well as bare JSON numbers, which arrive
// as float64 from the decoder.
func AsDecimal(value any) (any, error) {
	switch v := value.(type) {
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("parse decimal %q: %w", v, err)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return nil, fmt.Errorf("expected decimal string or number, got %T", value)
	}
}

// Optional wraps a transform so that nil and empty-string values pass
// through untouched. Response fields that may be absent or null register
// their transforms through this.
func Optional(fn Transform) Transform {
	return func(value any) (any, error) {
		if value == nil {
			return nil, nil
		}
		if s, ok := value.(string); ok && s == "" {
			return s, nil
		}
		return fn(value)
	}
}
