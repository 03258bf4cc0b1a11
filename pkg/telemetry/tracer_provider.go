package telemetry

import (
	"context"

	configuration "github.com/MartinWitt/teamcity-runas-plugin/pkg/configuration/runas_agent"
	"github.com/buildbarn/bb-storage/pkg/util"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"google.golang.org/grpc/codes"
)

// ShutdownFunc flushes spans that have not been exported yet.
type ShutdownFunc func(ctx context.Context) error

// NewTracerProvider creates a TracerProvider that sends spans to the
// configured Jaeger collector. If no collector is configured, spans
// are discarded.
func NewTracerProvider(tracingConfiguration *configuration.TracingConfiguration) (trace.TracerProvider, ShutdownFunc, error) {
	endpoint := tracingConfiguration.JaegerCollectorEndpoint
	if endpoint == "" {
		return noop.NewTracerProvider(), func(ctx context.Context) error { return nil }, nil
	}
	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(endpoint)))
	if err != nil {
		return nil, nil, util.StatusWrapWithCode(err, codes.InvalidArgument, "Failed to create Jaeger exporter")
	}
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(tracingConfiguration.ServiceName))))
	return tracerProvider, func(ctx context.Context) error {
		if err := tracerProvider.Shutdown(ctx); err != nil {
			return util.StatusWrapWithCode(err, codes.Unavailable, "Failed to flush spans")
		}
		return nil
	}, nil
}
