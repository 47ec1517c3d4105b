// pkg/logger/terminal_core_test.go

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newCapturedLogger builds a logger whose diagnostics land in diag and
// whose terminal-prompt output lands in out, with the console threshold
// at level.
func newCapturedLogger(diag, out *bytes.Buffer, level zapcore.Level) *zap.Logger {
	base := zapcore.NewCore(
		zapcore.NewConsoleEncoder(DefaultConsoleEncoderConfig()),
		zapcore.AddSync(diag),
		level,
	)
	return zap.New(newTerminalCore(base, out))
}

func TestTerminalPromptGoesToOutput(t *testing.T) {
	var diag, out bytes.Buffer
	log := newCapturedLogger(&diag, &out, zapcore.InfoLevel)

	log.Info("terminal prompt:", zap.String("output", "correct horse battery"))

	assert.Equal(t, "correct horse battery\n", out.String())
	assert.Empty(t, diag.String(), "prompt must not reach the diagnostic stream")
}

// Prompts are Info entries, but they must survive a Warn console
// threshold: quiet logging may never swallow a generated password.
func TestTerminalPromptBypassesConsoleLevel(t *testing.T) {
	var diag, out bytes.Buffer
	log := newCapturedLogger(&diag, &out, zapcore.WarnLevel)

	log.Info("terminal prompt: Generated Password:")
	log.Info("routine diagnostic that should be suppressed")
	log.Warn("warning for the diagnostic stream")

	assert.Equal(t, "Generated Password:\n", out.String())
	assert.NotContains(t, diag.String(), "routine diagnostic")
	assert.Contains(t, diag.String(), "warning for the diagnostic stream")
}

func TestTerminalPromptMultiline(t *testing.T) {
	var diag, out bytes.Buffer
	log := newCapturedLogger(&diag, &out, zapcore.InfoLevel)

	log.Info("terminal prompt:", zap.String("output", "\nSettings used:\n  Length: 12"))

	assert.Equal(t, "\nSettings used:\n  Length: 12\n", out.String())
}

func TestRenderPrompt(t *testing.T) {
	tests := []struct {
		name    string
		message string
		fields  []zapcore.Field
		want    []string
	}{
		{
			name:    "message text only",
			message: "terminal prompt: Password matches hash.",
			want:    []string{"Password matches hash."},
		},
		{
			name:    "output field only",
			message: "terminal prompt:",
			fields:  []zapcore.Field{zap.String("output", "[█████] Very Strong")},
			want:    []string{"[█████] Very Strong"},
		},
		{
			name:    "message before output field",
			message: "terminal prompt: Summary",
			fields:  []zapcore.Field{zap.String("output", "line one\nline two")},
			want:    []string{"Summary", "line one", "line two"},
		},
		{
			name:    "extra fields sorted by key",
			message: "terminal prompt:",
			fields: []zapcore.Field{
				zap.Int("length", 12),
				zap.String("categories", "all"),
			},
			want: []string{"categories: all", "length: 12"},
		},
		{
			name:    "bare prompt prints a blank line",
			message: "terminal prompt:",
			want:    []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderPrompt(tt.message, tt.fields))
		})
	}
}

func TestTerminalCoreWith(t *testing.T) {
	var diag, out bytes.Buffer
	log := newCapturedLogger(&diag, &out, zapcore.InfoLevel)

	scoped := log.With(zap.String("command", "generate"))
	scoped.Info("terminal prompt:", zap.String("output", "hello"))
	scoped.Info("diagnostic entry")

	// Context fields stay out of user-facing output but still reach the
	// structured stream.
	assert.Equal(t, "hello\n", out.String())
	require.Contains(t, diag.String(), "diagnostic entry")
	assert.Contains(t, diag.String(), "command")
}

func TestFallbackLoggerPromptsSurviveQuietConsole(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	log := NewFallbackLogger()
	require.NotNil(t, log)

	// Default console level is Warn; the prompt path must still accept
	// Info entries.
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}
