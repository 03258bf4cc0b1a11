package telemetry

import (
	"context"

	configuration "github.com/MartinWitt/teamcity-runas-plugin/pkg/configuration/runas_agent"
	"github.com/buildbarn/bb-storage/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"google.golang.org/grpc/codes"
)

// ExportMetrics writes the metrics collected by a Gatherer to the
// destinations that are configured. As the agent only runs for the
// duration of a single build step, metrics cannot be scraped and need
// to be exported before it exits.
func ExportMetrics(ctx context.Context, metricsConfiguration *configuration.MetricsConfiguration, gatherer prometheus.Gatherer) error {
	if p := metricsConfiguration.TextfilePath; p != "" {
		if err := prometheus.WriteToTextfile(p, gatherer); err != nil {
			return util.StatusWrapfWithCode(err, codes.Internal, "Failed to write metrics to %#v", p)
		}
	}
	if url := metricsConfiguration.PushgatewayURL; url != "" {
		if err := push.New(url, metricsConfiguration.PushgatewayJob).Gatherer(gatherer).PushContext(ctx); err != nil {
			return util.StatusWrapfWithCode(err, codes.Unavailable, "Failed to push metrics to %#v", url)
		}
	}
	return nil
}
