package resource

import (
	"context"
	"fmt"

	"github.com/sweetpay/sweetpay-go/pkg/connector"
)

// MockConfig is a canned outcome for a mock scope: either an envelope to
// return or an error to raise. Err wins when both are set; a config with
// neither makes every operation in the scope fail.
type MockConfig struct {
	Envelope *connector.Envelope
	Err      error
}

// mockExecutor returns the canned outcome for every operation.
type mockExecutor struct {
	cfg MockConfig
}

func (m *mockExecutor) Send(ctx context.Context, target, method string, params map[string]any) (*connector.Envelope, error) {
	if m.cfg.Err != nil {
		return nil, m.cfg.Err
	}
	if m.cfg.Envelope == nil {
		return nil, fmt.Errorf("mock scope for %s %s has neither an envelope nor an error configured", method, target)
	}
	return m.cfg.Envelope, nil
}

// Mock swaps the resource's executor for a canned one and returns a
// restore func. Every operation inside the scope bypasses the transport
// and sees the canned outcome; the result still flows through error
// mapping and validators as usual.
//
// Defer the restore func at the call site so the real executor comes
// back even when the test panics:
//
//	restore := res.Mock(resource.MockConfig{Envelope: env})
//	defer restore()
//
// One mock configuration is active at a time; a nested Mock replaces the
// outcome and its restore reinstates the previous one. Mocking is a
// single-threaded test utility, not safe for concurrent use against the
// same resource.
func (r *Resource) Mock(cfg MockConfig) (restore func()) {
	prev := r.exec
	r.exec = &mockExecutor{cfg: cfg}
	return func() {
		r.exec = prev
	}
}

// IsMocked reports whether a mock scope is currently active.
func (r *Resource) IsMocked() bool {
	_, mocked := r.exec.(*mockExecutor)
	return mocked
}
