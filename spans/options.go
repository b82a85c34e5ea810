package spans

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a single Run or RunValue call.
type Option func(*runner)

// WithAttributes sets attributes on the span when it starts.
func WithAttributes(attrs ...attribute.KeyValue) Option {
	return func(r *runner) {
		r.sso = append(r.sso, trace.WithAttributes(attrs...))
	}
}

// WithSpanKind overrides the default internal span kind.
func WithSpanKind(kind trace.SpanKind) Option {
	return func(r *runner) {
		r.spanKind = kind
	}
}

// WithErrorMessage prefixes the span status description on failure.
func WithErrorMessage(description string) Option {
	return func(r *runner) {
		r.failure = description
	}
}

// WithSpanDecorator runs decorator on the span before the function, but only
// when the span is recording, so expensive attributes cost nothing otherwise.
func WithSpanDecorator(decorator func(span trace.Span)) Option {
	return func(r *runner) {
		if decorator != nil {
			r.decorate = append(r.decorate, decorator)
		}
	}
}
