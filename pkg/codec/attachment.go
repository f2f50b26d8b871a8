// Package codec holds helpers for the opaque attachment field some API
// operations accept: an arbitrary JSON value carried as a base64 string.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// EncodeAttachment serializes a value to JSON and base64-encodes the
// result, producing the string form the API expects for attachment
// fields.
func EncodeAttachment(value any) (string, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("failed to encode attachment: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeAttachment reverses EncodeAttachment: base64-decodes the string
// and unmarshals the JSON inside it.
func DecodeAttachment(attachment string) (any, error) {
	raw, err := base64.StdEncoding.DecodeString(attachment)
	if err != nil {
		return nil, fmt.Errorf("failed to decode attachment: %w", err)
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("failed to decode attachment: %w", err)
	}
	return value, nil
}
