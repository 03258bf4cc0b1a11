package runas_test

import (
	"context"
	"testing"

	"github.com/MartinWitt/teamcity-runas-plugin/internal/mock"
	"github.com/MartinWitt/teamcity-runas-plugin/pkg/runas"
	"github.com/buildbarn/bb-storage/pkg/testutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// getBuildCount returns the current value of the counter of builds
// with a given outcome.
func getBuildCount(t *testing.T, outcome string) float64 {
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != "runas_agent_command_line_builder_builds_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "outcome" && label.GetValue() == outcome {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestMetricsCommandLineSetupBuilder(t *testing.T) {
	ctrl, ctx := gomock.WithContext(context.Background(), t)

	baseBuilder := mock.NewMockCommandLineSetupBuilder(ctrl)
	builder := runas.NewMetricsCommandLineSetupBuilder(baseBuilder)

	t.Run("Unchanged", func(t *testing.T) {
		before := getBuildCount(t, "Unchanged")
		baseBuilder.EXPECT().Build(ctx, exampleInvocation).Return(exampleInvocation, nil)

		result, err := builder.Build(ctx, exampleInvocation)
		require.NoError(t, err)
		require.Equal(t, exampleInvocation, result)
		require.Equal(t, before+1, getBuildCount(t, "Unchanged"))
	})

	t.Run("Transformed", func(t *testing.T) {
		before := getBuildCount(t, "Transformed")
		transformed := runas.Invocation{
			ToolPath:  "/opt/runAs/bin/runAs.sh",
			Arguments: runas.NewParameterArguments("/staging/0001.args", "/staging/0002.sh", "P@ss"),
		}
		baseBuilder.EXPECT().Build(ctx, exampleInvocation).Return(transformed, nil)

		result, err := builder.Build(ctx, exampleInvocation)
		require.NoError(t, err)
		require.Equal(t, transformed, result)
		require.Equal(t, before+1, getBuildCount(t, "Transformed"))
	})

	t.Run("Failed", func(t *testing.T) {
		before := getBuildCount(t, "Failed")
		baseBuilder.EXPECT().Build(ctx, exampleInvocation).Return(runas.Invocation{}, status.Error(codes.Internal, "Failed to allocate command file"))

		_, err := builder.Build(ctx, exampleInvocation)
		testutil.RequireEqualStatus(t, status.Error(codes.Internal, "Failed to allocate command file"), err)
		require.Equal(t, before+1, getBuildCount(t, "Failed"))
	})
}
