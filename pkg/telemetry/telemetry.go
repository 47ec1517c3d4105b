// pkg/telemetry/telemetry.go
package telemetry

import (
	"context"
	"os"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/CodeMonkeyCybersecurity/securepass/pkg/shared"
)

var (
	tracer   trace.Tracer
	provider *sdktrace.TracerProvider
)

// Init configures OpenTelemetry; call this early in main(). Telemetry
// is opt-in and local-only: spans are appended as JSONL to the state
// directory, never sent anywhere. When disabled, a noop provider is
// installed so span calls stay cheap.
func Init(service string) error {
	if !IsEnabled() {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		tracer = tp.Tracer(service)
		return nil
	}

	telemetryFile := shared.StatePath(shared.TelemetryFileName)
	if err := shared.EnsureParentDir(telemetryFile); err != nil {
		return cerr.Wrap(err, "failed to create telemetry directory")
	}

	file, err := os.OpenFile(telemetryFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, shared.FilePermStandard)
	if err != nil {
		return cerr.Wrap(err, "failed to open telemetry file")
	}

	// Stdout exporter pointed at the file gives us JSONL for free.
	exp, err := stdouttrace.New(
		stdouttrace.WithWriter(file),
		stdouttrace.WithoutTimestamps(), // Spans already have timestamps
	)
	if err != nil {
		file.Close()
		return cerr.Wrap(err, "failed to create file exporter")
	}

	provider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(
			sdkresource.NewWithAttributes(
				semconv.SchemaURL,
				attribute.String("service.name", service),
				attribute.String("service.version", shared.Version),
				attribute.String("host.name", hostname()),
			),
		),
	)

	otel.SetTracerProvider(provider)
	tracer = provider.Tracer(service)
	return nil
}

// Start a telemetry span with optional attributes. Safe to call before
// Init; spans are simply dropped in that case.
func Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(shared.AppID)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// Shutdown flushes pending spans. A single command produces at most a
// handful, but the batcher buffers them until timeout or shutdown.
func Shutdown(ctx context.Context) {
	if provider != nil {
		_ = provider.Shutdown(ctx)
	}
}

// IsEnabled reports whether the user has opted in, either with the
// marker file in the state directory or SECUREPASS_TELEMETRY=1.
func IsEnabled() bool {
	switch os.Getenv(shared.EnvPrefix + "_TELEMETRY") {
	case "1", "true", "on":
		return true
	case "0", "false", "off":
		return false
	}

	_, err := os.Stat(shared.StatePath(shared.TelemetryMarkerFile))
	return err == nil
}

func hostname() string {
	if h, err := os.Hostname(); err == nil {
		return h
	}
	return "unknown"
}

// TruncateArgs joins command arguments for span attributes, capped so a
// pathological argv cannot bloat the trace file.
func TruncateArgs(args []string) string {
	full := strings.Join(args, " ")
	if len(full) > 256 {
		return full[:256] + "..."
	}
	return full
}
