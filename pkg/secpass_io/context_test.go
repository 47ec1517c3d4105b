// pkg/secpass_io/context_test.go

package secpass_io

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/CodeMonkeyCybersecurity/securepass/pkg/secpass_err"
)

func TestNewContext(t *testing.T) {
	rc := NewContext(context.Background(), "generate")

	require.NotNil(t, rc)
	assert.NotNil(t, rc.Ctx)
	assert.NotNil(t, rc.Log)
	assert.NotNil(t, rc.Span)
	assert.NotNil(t, rc.Attributes)
	assert.Equal(t, "generate", rc.Command)
	assert.False(t, rc.Timestamp.IsZero())
}

func TestNewContextNilParent(t *testing.T) {
	assert.NotPanics(t, func() {
		rc := NewContext(nil, "generate") //nolint:staticcheck // verifying nil tolerance
		assert.NotNil(t, rc.Ctx)
	})
}

func TestHandlePanic(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	rc := NewContext(context.Background(), "test")
	rc.Log = zaptest.NewLogger(t)

	var err error
	func() {
		defer rc.HandlePanic(&err)
		panic("index out of range")
	}()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "index out of range")
	assert.False(t, secpass_err.IsExpectedUserError(err),
		"a panic is a bug, never a user error")
}

func TestEndOutcomes(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	tests := []struct {
		name string
		err  error
	}{
		{name: "success", err: nil},
		{name: "expected failure", err: secpass_err.NewExpectedError(assert.AnError)},
		{name: "system failure", err: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := NewContext(context.Background(), "test")
			rc.Log = zaptest.NewLogger(t)
			rc.Attributes["length"] = "12"

			err := tt.err
			assert.NotPanics(t, func() { rc.End(&err) })
		})
	}
}
