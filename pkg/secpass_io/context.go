// pkg/secpass_io/context.go

package secpass_io

import (
	"context"
	"os"
	"os/user"
	"runtime"
	"time"

	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/securepass/pkg/secpass_err"
	"github.com/CodeMonkeyCybersecurity/securepass/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/securepass/pkg/telemetry"
)

// RuntimeContext carries everything a command handler needs for one
// invocation: the traced context, a scoped logger, the command span,
// and a bag of extra attributes recorded when the command ends.
type RuntimeContext struct {
	Ctx        context.Context
	Log        *zap.Logger
	Span       trace.Span
	Timestamp  time.Time
	Command    string
	Attributes map[string]string
}

// NewContext sets up tracing and logging for a single command run.
func NewContext(ctx context.Context, cmdName string) *RuntimeContext {
	ctx, span := telemetry.Start(ctx, cmdName)
	traceID := span.SpanContext().TraceID().String()

	log := zap.L().With(
		zap.String("command", cmdName),
		zap.String("trace_id", traceID),
	).Named(cmdName)

	logEnv(log)

	return &RuntimeContext{
		Ctx:        ctx,
		Span:       span,
		Log:        log,
		Timestamp:  time.Now(),
		Command:    cmdName,
		Attributes: make(map[string]string),
	}
}

// HandlePanic recovers panics, logs them, and converts to an error.
func (rc *RuntimeContext) HandlePanic(errPtr *error) {
	if r := recover(); r != nil {
		*errPtr = cerr.AssertionFailedf("panic: %v", r)
		rc.Log.Error("Panic recovered", zap.Any("panic", r))
	}
}

// End logs the outcome, stamps the command span with its final
// attributes, and flushes logs and telemetry. Call via defer with the
// named return error.
func (rc *RuntimeContext) End(errPtr *error) {
	duration := time.Since(rc.Timestamp)
	success := *errPtr == nil

	switch {
	case success:
		rc.Log.Info("Command completed", zap.Duration("duration", duration))
	case secpass_err.IsExpectedUserError(*errPtr):
		rc.Log.Warn("Command failed", zap.Duration("duration", duration), zap.Error(*errPtr))
	default:
		rc.Log.Error("Command failed", zap.Duration("duration", duration), zap.Error(*errPtr))
	}

	attrs := []attribute.KeyValue{
		attribute.Bool("success", success),
		attribute.Int64("duration_ms", duration.Milliseconds()),
		attribute.String("os", runtime.GOOS),
		attribute.String("args", telemetry.TruncateArgs(os.Args[1:])),
		attribute.String("version", shared.Version),
		attribute.String("error_type", secpass_err.Classify(*errPtr)),
	}
	if telemetry.IsEnabled() {
		attrs = append(attrs, attribute.String("user_id", telemetry.AnonID()))
	}
	for k, v := range rc.Attributes {
		attrs = append(attrs, attribute.String(k, v))
	}

	rc.Span.SetAttributes(attrs...)
	rc.Span.End()

	telemetry.Shutdown(rc.Ctx)
	shared.SafeSync()
}

func logEnv(log *zap.Logger) {
	if u, err := user.Current(); err == nil {
		log.Debug("user context",
			zap.String("username", u.Username),
			zap.String("uid", u.Uid),
			zap.String("home", u.HomeDir),
		)
	}
	if exe, err := os.Executable(); err == nil {
		log.Debug("executable path", zap.String("path", exe))
	}
}
