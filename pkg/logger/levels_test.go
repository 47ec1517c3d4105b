// pkg/logger/levels_test.go

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  zapcore.Level
	}{
		{name: "trace maps to debug", input: "trace", want: zapcore.DebugLevel},
		{name: "debug", input: "debug", want: zapcore.DebugLevel},
		{name: "info", input: "info", want: zapcore.InfoLevel},
		{name: "warn", input: "warn", want: zapcore.WarnLevel},
		{name: "warning alias", input: "warning", want: zapcore.WarnLevel},
		{name: "error", input: "error", want: zapcore.ErrorLevel},
		{name: "fatal", input: "fatal", want: zapcore.FatalLevel},
		{name: "dpanic", input: "dpanic", want: zapcore.DPanicLevel},
		{name: "uppercase", input: "ERROR", want: zapcore.ErrorLevel},
		{name: "surrounding whitespace", input: "  info  ", want: zapcore.InfoLevel},
		{name: "empty defaults to info", input: "", want: zapcore.InfoLevel},
		{name: "garbage defaults to info", input: "loud", want: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.input))
		})
	}
}

func TestConsoleLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, zapcore.WarnLevel, consoleLevel())

	t.Setenv("LOG_LEVEL", "debug")
	assert.Equal(t, zapcore.DebugLevel, consoleLevel())
}
