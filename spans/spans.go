package spans

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrPanic wraps a value recovered from a panic inside a span.
var ErrPanic = errors.New("panic")

type runner struct {
	name     string
	failure  string
	spanKind trace.SpanKind
	sso      []trace.SpanStartOption
	decorate []func(span trace.Span)
}

func newRunner(name string, opts ...Option) *runner {
	r := &runner{
		name:     name,
		spanKind: trace.SpanKindInternal,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

// Run executes f inside a span named name. An error returned by f is
// recorded on the span and returned unchanged.
func Run(ctx context.Context, name string, f func(ctx context.Context, span trace.Span) error, opts ...Option) error {
	_, err := RunValue(ctx, name, func(ctx context.Context, span trace.Span) (struct{}, error) {
		return struct{}{}, f(ctx, span)
	}, opts...)

	return err
}

// RunValue is Run for functions that also produce a value. A panic in f is
// recorded on the span, which is ended, and then re-raised.
func RunValue[T any](
	ctx context.Context, name string,
	f func(ctx context.Context, span trace.Span) (T, error), opts ...Option,
) (T, error) {
	r := newRunner(name, opts...)

	start := make([]trace.SpanStartOption, 0, len(r.sso)+1)
	start = append(start, r.sso...)
	start = append(start, trace.WithSpanKind(r.spanKind))

	ctx, span := TracerFromContext(ctx).Start(ctx, r.name, start...)
	defer span.End()

	defer func() {
		if recovered := recover(); recovered != nil {
			err := fmt.Errorf("%w: %v\n%s", ErrPanic, recovered, debug.Stack())

			span.SetAttributes(attribute.Bool("panic", true))
			span.RecordError(err)
			r.setErrorStatus(span, err)

			panic(recovered)
		}
	}()

	if span.IsRecording() {
		for _, decorate := range r.decorate {
			decorate(span)
		}
	}

	val, err := f(ctx, span)
	if err != nil {
		span.RecordError(err)
		r.setErrorStatus(span, err)

		return val, err
	}

	span.SetStatus(codes.Ok, "ok")

	return val, nil
}

func (r *runner) setErrorStatus(span trace.Span, err error) {
	if len(r.failure) > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%s: %s", r.failure, err.Error()))
	} else {
		span.SetStatus(codes.Error, err.Error())
	}
}
