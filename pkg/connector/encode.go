package connector

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// MarshalBody encodes request parameters as a JSON object.
//
// Monetary and temporal values encode losslessly: decimal.Decimal values
// marshal to their exact string representation at the scale they carry
// (never a binary float), types.Date to "YYYY-MM-DD", and time.Time to
// RFC 3339. Nil params encode as an empty object.
func MarshalBody(params map[string]any) ([]byte, error) {
	if params == nil {
		return []byte("{}"), nil
	}
	data, err := json.Marshal(encodeValue(params))
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return data, nil
}

// encodeValue walks a parameter structure and wraps decimals so they
// marshal at their exact scale. Decimal's own MarshalJSON goes through
// String, which trims trailing zeros and turns "10.50" into "10.5".
func encodeValue(v any) any {
	switch val := v.(type) {
	case decimal.Decimal:
		return exactDecimal{val}
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = encodeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = encodeValue(item)
		}
		return out
	default:
		return v
	}
}

// exactDecimal marshals a decimal as a quoted string with every digit of
// its scale, so a value parsed from "10.50" goes out as "10.50".
type exactDecimal struct {
	d decimal.Decimal
}

func (e exactDecimal) MarshalJSON() ([]byte, error) {
	places := -e.d.Exponent()
	if places < 0 {
		places = 0
	}
	return strconv.AppendQuote(nil, e.d.StringFixed(places)), nil
}
