// Package telemetry configures OpenTelemetry tracing over OTLP/HTTP for the
// benchmark binary.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/amp-labs/amp-sorting/build"
	"github.com/amp-labs/amp-sorting/envutil"
	"github.com/amp-labs/amp-sorting/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName identifies spans produced by this module.
const InstrumentationName = "github.com/amp-labs/amp-sorting"

const (
	defaultTimeout     = 5 * time.Second
	defaultSampleRatio = 1.0
)

// ErrInvalidSampleRatio is returned when OTEL_TRACES_SAMPLER_RATIO is outside [0, 1].
var ErrInvalidSampleRatio = errors.New("sample ratio must be between 0 and 1")

var (
	providerMut    sync.Mutex               //nolint:gochecknoglobals
	tracerProvider *sdktrace.TracerProvider //nolint:gochecknoglobals
)

// Config holds the OpenTelemetry configuration.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Endpoint       string
	Enabled        bool
	Timeout        time.Duration
	SampleRatio    float64
}

// LoadConfig reads the tracing configuration. The service name defaults to the
// logging subsystem, so it should be called after logger.ConfigureLogging.
func LoadConfig(ctx context.Context, runningEnv string) (*Config, error) {
	enabled, err := envutil.Bool(ctx, "OTEL_ENABLED", envutil.Default(false)).Value()
	if err != nil {
		return nil, err
	}

	svcName, err := envutil.String(ctx, "OTEL_SERVICE_NAME",
		envutil.Default(logger.GetSubsystem(ctx))).
		Value()
	if err != nil {
		return nil, err
	}

	svcVersion, err := envutil.String(ctx, "OTEL_SERVICE_VERSION",
		envutil.Default(build.Current().ShortVersion())).
		Value()
	if err != nil {
		return nil, err
	}

	endpoint, err := envutil.String(ctx, "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT",
		envutil.Default("")).
		Value()
	if err != nil {
		return nil, err
	}

	timeout, err := envutil.Duration(ctx, "OTEL_EXPORTER_OTLP_TRACES_TIMEOUT",
		envutil.Default(defaultTimeout)).
		Value()
	if err != nil {
		return nil, err
	}

	ratio, err := envutil.Float64(ctx, "OTEL_TRACES_SAMPLER_RATIO",
		envutil.Default(defaultSampleRatio),
		envutil.Validate(func(r float64) error {
			if r < 0 || r > 1 {
				return fmt.Errorf("%w: %v", ErrInvalidSampleRatio, r)
			}

			return nil
		})).
		Value()
	if err != nil {
		return nil, err
	}

	return &Config{
		ServiceName:    svcName,
		ServiceVersion: svcVersion,
		Environment:    runningEnv,
		Endpoint:       endpoint,
		Enabled:        enabled,
		Timeout:        timeout,
		SampleRatio:    ratio,
	}, nil
}

// Initialize installs a global tracer provider exporting to config.Endpoint.
// When tracing is disabled or no endpoint is set the global no-op provider is
// left in place and spans cost next to nothing.
func Initialize(ctx context.Context, config *Config) error {
	log := logger.Get(ctx)

	if !config.Enabled {
		log.Debug("OpenTelemetry tracing is disabled")

		return nil
	}

	if config.Endpoint == "" {
		log.Warn("OpenTelemetry endpoint not configured, tracing will be disabled")

		return nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(config.ServiceName),
			semconv.ServiceVersionKey.String(config.ServiceVersion),
			semconv.DeploymentEnvironmentKey.String(config.Environment),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(config.Endpoint),
		otlptracehttp.WithTimeout(config.Timeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(config.SampleRatio))),
	)

	providerMut.Lock()
	tracerProvider = provider
	providerMut.Unlock()

	otel.SetTracerProvider(provider)

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Info("OpenTelemetry tracing initialized",
		"service", config.ServiceName,
		"version", config.ServiceVersion,
		"environment", config.Environment,
		"endpoint", config.Endpoint,
		"sample_ratio", config.SampleRatio,
	)

	return nil
}

// Tracer returns the tracer used for benchmark spans. It follows whatever
// provider is globally installed at call time.
func Tracer() trace.Tracer { //nolint:ireturn
	return otel.Tracer(InstrumentationName)
}

// Shutdown flushes pending spans and stops the provider set up by Initialize.
func Shutdown(ctx context.Context) error {
	providerMut.Lock()
	provider := tracerProvider
	tracerProvider = nil
	providerMut.Unlock()

	if provider == nil {
		return nil
	}

	slog.Info("Shutting down OpenTelemetry tracer provider")

	return provider.Shutdown(ctx)
}
