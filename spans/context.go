package spans

import (
	"context"

	"github.com/amp-labs/amp-sorting/telemetry"
	"go.opentelemetry.io/otel/trace"
)

type contextKey string

const tracerKey contextKey = "tracer"

// WithTracer stores a tracer in the context for Run and RunValue to use.
func WithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	return context.WithValue(ctx, tracerKey, tracer)
}

// TracerFromContext returns the tracer stored with WithTracer, or the
// module's tracer from the global provider.
func TracerFromContext(ctx context.Context) trace.Tracer { //nolint:ireturn
	if tracer, ok := ctx.Value(tracerKey).(trace.Tracer); ok && tracer != nil {
		return tracer
	}

	return telemetry.Tracer()
}
