// pkg/logger/levels.go

package logger

import (
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
)

func ParseLogLevel(level string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE", "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	case "FATAL":
		return zapcore.FatalLevel
	case "DPANIC":
		return zapcore.DPanicLevel
	default:
		return zapcore.InfoLevel
	}
}

// consoleLevel keeps the terminal quiet unless the user asks otherwise.
// Generated passwords and prompts bypass this threshold entirely via the
// terminal console core, so the default only affects diagnostics.
func consoleLevel() zapcore.Level {
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		return ParseLogLevel(env)
	}
	return zapcore.WarnLevel
}
