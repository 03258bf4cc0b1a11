package runas

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type tracingCommandLineBuilder struct {
	base   CommandLineSetupBuilder
	tracer trace.Tracer
}

// NewTracingCommandLineSetupBuilder is a decorator for
// CommandLineSetupBuilder that creates an OpenTelemetry trace span for
// every invocation that is built. Argument values are not attached to
// the span, as they may contain passwords.
func NewTracingCommandLineSetupBuilder(base CommandLineSetupBuilder, tracerProvider trace.TracerProvider) CommandLineSetupBuilder {
	return &tracingCommandLineBuilder{
		base:   base,
		tracer: tracerProvider.Tracer("github.com/MartinWitt/teamcity-runas-plugin/pkg/runas"),
	}
}

func (b *tracingCommandLineBuilder) Build(ctx context.Context, invocation Invocation) (Invocation, error) {
	ctxWithTracing, span := b.tracer.Start(ctx, "CommandLineSetupBuilder.Build", trace.WithAttributes(
		attribute.String("tool_path", invocation.ToolPath),
		attribute.Int("arguments", len(invocation.Arguments)),
		attribute.Int("resources", len(invocation.Resources)),
	))
	defer span.End()

	result, err := b.base.Build(ctxWithTracing, invocation)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Invocation{}, err
	}
	span.SetAttributes(
		attribute.String("result.tool_path", result.ToolPath),
		attribute.Int("result.resources", len(result.Resources)),
	)
	return result, nil
}
