package runas_test

import (
	"context"
	"testing"

	"github.com/MartinWitt/teamcity-runas-plugin/internal/mock"
	"github.com/MartinWitt/teamcity-runas-plugin/pkg/runas"
	"github.com/buildbarn/bb-storage/pkg/testutil"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"

	grpccodes "google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestTracingCommandLineSetupBuilder(t *testing.T) {
	ctrl, ctx := gomock.WithContext(context.Background(), t)

	spanRecorder := tracetest.NewSpanRecorder()
	tracerProvider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spanRecorder))
	baseBuilder := mock.NewMockCommandLineSetupBuilder(ctrl)
	builder := runas.NewTracingCommandLineSetupBuilder(baseBuilder, tracerProvider)

	t.Run("Success", func(t *testing.T) {
		result := runas.Invocation{
			ToolPath:  "/opt/runAs/bin/runAs.sh",
			Arguments: runas.NewParameterArguments("/staging/0001.args", "/staging/0002.sh", "P@ss"),
			Resources: []runas.Resource{runas.NewAccessControlResource(nil)},
		}
		baseBuilder.EXPECT().Build(gomock.Any(), exampleInvocation).Return(result, nil)

		observed, err := builder.Build(ctx, exampleInvocation)
		require.NoError(t, err)
		require.Equal(t, result, observed)

		spans := spanRecorder.Ended()
		require.Len(t, spans, 1)
		require.Equal(t, "CommandLineSetupBuilder.Build", spans[0].Name())
		require.Equal(t, codes.Unset, spans[0].Status().Code)
		require.ElementsMatch(t, []attribute.KeyValue{
			attribute.String("tool_path", "/usr/bin/make"),
			attribute.Int("arguments", 1),
			attribute.Int("resources", 0),
			attribute.String("result.tool_path", "/opt/runAs/bin/runAs.sh"),
			attribute.Int("result.resources", 1),
		}, spans[0].Attributes())
		for _, kv := range spans[0].Attributes() {
			require.NotContains(t, kv.Value.Emit(), "P@ss")
		}
	})

	t.Run("Failure", func(t *testing.T) {
		baseBuilder.EXPECT().Build(gomock.Any(), exampleInvocation).Return(runas.Invocation{}, status.Error(grpccodes.NotFound, "Tool \"runAs\" is not installed"))

		_, err := builder.Build(ctx, exampleInvocation)
		testutil.RequireEqualStatus(t, status.Error(grpccodes.NotFound, "Tool \"runAs\" is not installed"), err)

		spans := spanRecorder.Ended()
		require.Len(t, spans, 2)
		require.Equal(t, codes.Error, spans[1].Status().Code)
		require.Equal(t, "rpc error: code = NotFound desc = Tool \"runAs\" is not installed", spans[1].Status().Description)
		require.Len(t, spans[1].Events(), 1)
	})
}
