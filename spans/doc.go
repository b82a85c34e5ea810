// Package spans runs a function inside an OpenTelemetry span, recording
// returned errors and panics on the span and setting its status.
//
// The tracer is taken from the context (WithTracer) so tests can route spans
// to an in-memory exporter; otherwise the globally installed provider is used:
//
//	report, err := spans.RunValue(ctx, "benchmark.run",
//	    func(ctx context.Context, span trace.Span) (*Report, error) {
//	        return r.run(ctx, cfg)
//	    },
//	    spans.WithAttributes(attribute.Int("size", cfg.Size)),
//	)
package spans
