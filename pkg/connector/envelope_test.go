package connector

import (
	"testing"
)

func TestNew_DerivesStatus(t *testing.T) {
	tests := []struct {
		name       string
		rawBody    string
		wantStatus string
		wantBody   bool
	}{
		{
			name:       "object with status field",
			rawBody:    `{"status":"OK","payload":{}}`,
			wantStatus: "OK",
			wantBody:   true,
		},
		{
			name:       "object with non-OK status",
			rawBody:    `{"status":"DENIED"}`,
			wantStatus: "DENIED",
			wantBody:   true,
		},
		{
			name:       "object without status",
			rawBody:    `{"payload":{}}`,
			wantStatus: "",
			wantBody:   true,
		},
		{
			name:       "object with non-string status",
			rawBody:    `{"status":42}`,
			wantStatus: "",
			wantBody:   true,
		},
		{
			name:       "bare JSON string becomes status with nil body",
			rawBody:    `"MAINTENANCE"`,
			wantStatus: "MAINTENANCE",
			wantBody:   false,
		},
		{
			name:       "list body has no status",
			rawBody:    `[{"id":1}]`,
			wantStatus: "",
			wantBody:   true,
		},
		{
			name:       "non-JSON text becomes status",
			rawBody:    "Bad Gateway\n",
			wantStatus: "Bad Gateway",
			wantBody:   false,
		},
		{
			name:       "empty body",
			rawBody:    "",
			wantStatus: "",
			wantBody:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewEnvelope(200, nil, []byte(tt.rawBody))

			if env.ApplicationStatus != tt.wantStatus {
				t.Errorf("ApplicationStatus = %q, want %q", env.ApplicationStatus, tt.wantStatus)
			}
			if tt.wantBody && env.Body == nil {
				t.Error("expected non-nil body")
			}
			if !tt.wantBody && env.Body != nil {
				t.Errorf("expected nil body, got %v", env.Body)
			}
			if env.HTTPStatus != 200 {
				t.Errorf("HTTPStatus = %d, want 200", env.HTTPStatus)
			}
		})
	}
}

func TestEnvelope_StatusOK(t *testing.T) {
	ok := NewEnvelope(200, nil, []byte(`{"status":"OK"}`))
	if !ok.StatusOK() {
		t.Error("expected StatusOK for status OK")
	}

	denied := NewEnvelope(200, nil, []byte(`{"status":"DENIED"}`))
	if denied.StatusOK() {
		t.Error("expected !StatusOK for status DENIED")
	}

	missing := NewEnvelope(200, nil, nil)
	if missing.StatusOK() {
		t.Error("expected !StatusOK when no status could be derived")
	}
}

func TestNewCanned(t *testing.T) {
	body := map[string]any{"k": "v"}
	env := NewCanned(200, body, "OK", nil)

	if env.HTTPStatus != 200 {
		t.Errorf("HTTPStatus = %d, want 200", env.HTTPStatus)
	}
	if env.ApplicationStatus != "OK" {
		t.Errorf("ApplicationStatus = %q, want OK", env.ApplicationStatus)
	}
	if !env.StatusOK() {
		t.Error("expected StatusOK")
	}
	// The canned status is pinned, not derived from the body.
	if _, hasStatus := body["status"]; hasStatus {
		t.Fatal("test body must not carry a status field")
	}
}
