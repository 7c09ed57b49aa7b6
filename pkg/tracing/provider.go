// Package tracing настраивает OpenTelemetry для клиента GitLab и хранит
// trace ID в context для корреляции логов.
package tracing

import (
	"context"
	"net/url"

	"github.com/Kargones/gitlab-client/pkg/logging"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// InstrumentationName — имя tracer'а, которым клиент открывает span'ы запросов.
const InstrumentationName = "github.com/Kargones/gitlab-client/pkg/gitlab"

// NewTracerProvider создаёт OTel TracerProvider с OTLP HTTP exporter и
// регистрирует его глобально. Возвращает shutdown функцию.
// При выключенном трейсинге возвращает nop shutdown и ничего не регистрирует.
func NewTracerProvider(cfg Config, logger logging.Logger) (func(context.Context) error, error) {
	if !cfg.Enabled {
		logger.Debug("трейсинг выключен")
		return NewNopTracerProvider(), nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.Version),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
	)
	if err != nil {
		return nil, err
	}

	// otlptracehttp.WithEndpoint принимает только host:port.
	endpointHost := cfg.Endpoint
	if u, parseErr := url.Parse(cfg.Endpoint); parseErr == nil && u.Host != "" {
		endpointHost = u.Host
	}

	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(endpointHost),
		otlptracehttp.WithTimeout(cfg.Timeout),
	}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(context.Background(), opts...)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SamplingRate))),
	)
	otel.SetTracerProvider(tp)

	logger.Info("OpenTelemetry трейсинг инициализирован",
		"endpoint", cfg.Endpoint,
		"service_name", cfg.ServiceName,
		"sampling_rate", cfg.SamplingRate,
	)

	return tp.Shutdown, nil
}

// NewNopTracerProvider возвращает shutdown функцию, которая ничего не делает.
func NewNopTracerProvider() func(context.Context) error {
	return func(_ context.Context) error { return nil }
}
