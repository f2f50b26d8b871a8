package codec

import (
	"testing"
)

func TestEncodeDecodeAttachment(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  any
	}{
		{
			name:  "object",
			value: map[string]any{"orderID": "abc-123", "amount": 99.5},
			want:  map[string]any{"orderID": "abc-123", "amount": 99.5},
		},
		{
			name:  "string",
			value: "hello",
			want:  "hello",
		},
		{
			name:  "list",
			value: []any{"a", "b"},
			want:  []any{"a", "b"},
		},
		{
			name:  "nil",
			value: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := EncodeAttachment(tt.value)
			if err != nil {
				t.Fatalf("EncodeAttachment failed: %v", err)
			}

			decoded, err := DecodeAttachment(encoded)
			if err != nil {
				t.Fatalf("DecodeAttachment failed: %v", err)
			}

			if !equalValue(decoded, tt.want) {
				t.Errorf("round trip = %v, want %v", decoded, tt.want)
			}
		})
	}
}

func TestEncodeAttachment_KnownValue(t *testing.T) {
	encoded, err := EncodeAttachment(map[string]any{"k": "v"})
	if err != nil {
		t.Fatalf("EncodeAttachment failed: %v", err)
	}
	// base64 of `{"k":"v"}`
	if encoded != "eyJrIjoidiJ9" {
		t.Errorf("encoded = %q, want eyJrIjoidiJ9", encoded)
	}
}

func TestDecodeAttachment_Invalid(t *testing.T) {
	if _, err := DecodeAttachment("not base64!!!"); err == nil {
		t.Error("expected error for invalid base64")
	}
	// valid base64, invalid JSON inside
	if _, err := DecodeAttachment("bm90IGpzb24"); err == nil {
		t.Error("expected error for invalid JSON payload")
	}
}

func equalValue(a, b any) bool {
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			if !equalValue(v, bv[k]) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !equalValue(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
