package connector

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sweetpay/sweetpay-go/pkg/types"
)

func TestMarshalBody_DecimalIsExactString(t *testing.T) {
	amount, err := decimal.NewFromString("10.50")
	if err != nil {
		t.Fatalf("bad decimal: %v", err)
	}

	data, err := MarshalBody(map[string]any{
		"amount":   amount,
		"currency": "SEK",
	})
	if err != nil {
		t.Fatalf("MarshalBody failed: %v", err)
	}

	// Monetary precision: the exact string "10.50", never a float literal.
	if !strings.Contains(string(data), `"amount":"10.50"`) {
		t.Errorf("expected amount encoded as string \"10.50\", got %s", data)
	}
	if strings.Contains(string(data), "10.5,") || strings.Contains(string(data), ":10.5") {
		t.Errorf("amount must not be a float literal, got %s", data)
	}
}

func TestMarshalBody_DecimalScalePreserved(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"10.50", `"10.50"`},
		{"10.500", `"10.500"`},
		{"200", `"200"`},
		{"0.07", `"0.07"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.input)
			if err != nil {
				t.Fatalf("bad decimal: %v", err)
			}

			data, err := MarshalBody(map[string]any{"amount": d})
			if err != nil {
				t.Fatalf("MarshalBody failed: %v", err)
			}
			if !strings.Contains(string(data), `"amount":`+tt.want) {
				t.Errorf("amount = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestMarshalBody_DecimalInsideNestedStructure(t *testing.T) {
	amount, err := decimal.NewFromString("99.90")
	if err != nil {
		t.Fatalf("bad decimal: %v", err)
	}

	data, err := MarshalBody(map[string]any{
		"transactions": []any{
			map[string]any{"amount": amount, "currency": "SEK"},
		},
	})
	if err != nil {
		t.Fatalf("MarshalBody failed: %v", err)
	}
	if !strings.Contains(string(data), `"amount":"99.90"`) {
		t.Errorf("nested decimal lost its scale, got %s", data)
	}
}

func TestMarshalBody_Date(t *testing.T) {
	data, err := MarshalBody(map[string]any{
		"startsAt": types.NewDate(2023, time.January, 15),
	})
	if err != nil {
		t.Fatalf("MarshalBody failed: %v", err)
	}

	if !strings.Contains(string(data), `"startsAt":"2023-01-15"`) {
		t.Errorf("expected date as YYYY-MM-DD, got %s", data)
	}
}

func TestMarshalBody_Timestamp(t *testing.T) {
	ts := time.Date(2023, time.January, 15, 10, 30, 0, 0, time.UTC)
	data, err := MarshalBody(map[string]any{"createdAt": ts})
	if err != nil {
		t.Fatalf("MarshalBody failed: %v", err)
	}

	if !strings.Contains(string(data), `"createdAt":"2023-01-15T10:30:00Z"`) {
		t.Errorf("expected RFC 3339 timestamp, got %s", data)
	}
}

func TestMarshalBody_NilParams(t *testing.T) {
	data, err := MarshalBody(nil)
	if err != nil {
		t.Fatalf("MarshalBody failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("nil params should encode as empty object, got %s", data)
	}
}

func TestMarshalBody_NestedStructure(t *testing.T) {
	data, err := MarshalBody(map[string]any{
		"customer": map[string]any{
			"name": map[string]any{"first": "Ada", "last": "Lovelace"},
		},
	})
	if err != nil {
		t.Fatalf("MarshalBody failed: %v", err)
	}

	var back map[string]any
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	name := back["customer"].(map[string]any)["name"].(map[string]any)
	if name["first"] != "Ada" {
		t.Errorf("nested field lost, got %v", back)
	}
}

func TestMarshalBody_UnencodableValue(t *testing.T) {
	_, err := MarshalBody(map[string]any{"bad": make(chan int)})
	if err == nil {
		t.Error("expected error for unencodable value")
	}
}
