package runas

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	commandLineBuilderPrometheusMetrics sync.Once

	commandLineBuilderBuilds = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "runas",
			Subsystem: "agent",
			Name:      "command_line_builder_builds_total",
			Help:      "Number of invocations processed by a command line builder, by outcome.",
		},
		[]string{"outcome"})
	commandLineBuilderBuildsUnchanged   = commandLineBuilderBuilds.WithLabelValues("Unchanged")
	commandLineBuilderBuildsTransformed = commandLineBuilderBuilds.WithLabelValues("Transformed")
	commandLineBuilderBuildsFailed      = commandLineBuilderBuilds.WithLabelValues("Failed")
)

type metricsCommandLineBuilder struct {
	base CommandLineSetupBuilder
}

// NewMetricsCommandLineSetupBuilder creates a decorator for
// CommandLineSetupBuilder that exposes Prometheus metrics on how many
// invocations were left unchanged, were transformed, or could not be
// transformed.
func NewMetricsCommandLineSetupBuilder(base CommandLineSetupBuilder) CommandLineSetupBuilder {
	commandLineBuilderPrometheusMetrics.Do(func() {
		prometheus.MustRegister(commandLineBuilderBuilds)
	})

	return &metricsCommandLineBuilder{
		base: base,
	}
}

func (b *metricsCommandLineBuilder) Build(ctx context.Context, invocation Invocation) (Invocation, error) {
	result, err := b.base.Build(ctx, invocation)
	if err != nil {
		commandLineBuilderBuildsFailed.Inc()
		return Invocation{}, err
	}
	if result.ToolPath == invocation.ToolPath && len(result.Resources) == len(invocation.Resources) {
		commandLineBuilderBuildsUnchanged.Inc()
	} else {
		commandLineBuilderBuildsTransformed.Inc()
	}
	return result, nil
}
