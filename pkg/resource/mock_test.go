package resource

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetpay/sweetpay-go/pkg/connector"
	sweeterr "github.com/sweetpay/sweetpay-go/pkg/errors"
)

func TestMock_CannedEnvelope(t *testing.T) {
	r, exec := newTestResource(t, Config{})
	exec.env = okEnvelope(map[string]any{"payload": "real"})

	canned := connector.NewCanned(200, map[string]any{"k": "v"}, "OK", nil)
	restore := r.Mock(MockConfig{Envelope: canned})

	body, err := r.Do(context.Background(), "GET", nil, "42")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"k": "v"}, body)
	assert.Empty(t, exec.target, "real executor must not be reached")

	restore()

	body, err = r.Do(context.Background(), "GET", nil, "42")
	require.NoError(t, err)
	assert.Equal(t, "real", body.(map[string]any)["payload"])
	assert.Equal(t, "https://api.example.com/subscription/v1/42", exec.target)
}

func TestMock_CannedError(t *testing.T) {
	r, _ := newTestResource(t, Config{})

	restore := r.Mock(MockConfig{Err: sweeterr.NewTimeout(errors.New("dial tcp: i/o timeout"))})
	defer restore()

	_, err := r.Do(context.Background(), "POST", nil, "create")
	require.Error(t, err)
	assert.True(t, sweeterr.IsKind(err, sweeterr.KindTimeout))
}

func TestMock_ErrWinsOverEnvelope(t *testing.T) {
	r, _ := newTestResource(t, Config{})

	restore := r.Mock(MockConfig{
		Envelope: okEnvelope(nil),
		Err:      errors.New("boom"),
	})
	defer restore()

	_, err := r.Do(context.Background(), "GET", nil)
	assert.EqualError(t, err, "boom")
}

func TestMock_CannedEnvelopeFlowsThroughCheck(t *testing.T) {
	r, _ := newTestResource(t, Config{})

	canned := connector.NewCanned(404, nil, "NOT_FOUND", nil)
	restore := r.Mock(MockConfig{Envelope: canned})
	defer restore()

	_, err := r.Do(context.Background(), "GET", nil, "missing")
	require.Error(t, err)

	e, ok := sweeterr.As(err)
	require.True(t, ok)
	assert.Equal(t, sweeterr.KindNotFound, e.Kind)
	assert.Equal(t, "NOT_FOUND", e.ApplicationStatus)
}

func TestMock_Nesting(t *testing.T) {
	r, _ := newTestResource(t, Config{})

	outer := r.Mock(MockConfig{Envelope: connector.NewCanned(200, map[string]any{"scope": "outer"}, "OK", nil)})
	inner := r.Mock(MockConfig{Envelope: connector.NewCanned(200, map[string]any{"scope": "inner"}, "OK", nil)})

	body, _ := r.Do(context.Background(), "GET", nil)
	assert.Equal(t, "inner", body.(map[string]any)["scope"])

	inner()
	body, _ = r.Do(context.Background(), "GET", nil)
	assert.Equal(t, "outer", body.(map[string]any)["scope"])

	outer()
	assert.False(t, r.IsMocked())
}

func TestMock_EmptyConfigFailsOperations(t *testing.T) {
	r, _ := newTestResource(t, Config{})

	restore := r.Mock(MockConfig{})
	defer restore()

	_, err := r.Do(context.Background(), "GET", nil, "42")
	require.Error(t, err)
	assert.ErrorContains(t, err, "neither an envelope nor an error")
}

func TestIsMocked(t *testing.T) {
	r, _ := newTestResource(t, Config{})
	assert.False(t, r.IsMocked())

	restore := r.Mock(MockConfig{Envelope: okEnvelope(nil)})
	assert.True(t, r.IsMocked())

	restore()
	assert.False(t, r.IsMocked())
}
