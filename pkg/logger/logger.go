// pkg/logger/logger.go

package logger

import (
	"go.uber.org/zap"
)

var log *zap.Logger

// L returns the process logger, falling back to a console-only logger
// when Initialize has not run yet (early failures, tests).
func L() *zap.Logger {
	if log == nil {
		log = NewFallbackLogger()
		replaceGlobals(log)
	}
	return log
}

// Sync flushes buffered log entries. Called via defer from main.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
