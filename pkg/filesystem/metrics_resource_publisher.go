package filesystem

import (
	"context"
	"sync"

	"github.com/MartinWitt/teamcity-runas-plugin/pkg/runas"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	resourcePublisherPrometheusMetrics sync.Once

	resourcePublisherFilesPublished = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "runas",
			Subsystem: "filesystem",
			Name:      "resource_publisher_files_published_total",
			Help:      "Number of staged files that were handed to a resource publisher.",
		})
	resourcePublisherFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "runas",
			Subsystem: "filesystem",
			Name:      "resource_publisher_failures_total",
			Help:      "Number of times a resource publisher failed to publish the files of an invocation.",
		})
)

type metricsResourcePublisher struct {
	base ResourcePublisher
}

// NewMetricsResourcePublisher creates a decorator for
// ResourcePublisher that exposes Prometheus metrics on how many files
// are published.
func NewMetricsResourcePublisher(base ResourcePublisher) ResourcePublisher {
	resourcePublisherPrometheusMetrics.Do(func() {
		prometheus.MustRegister(resourcePublisherFilesPublished)
		prometheus.MustRegister(resourcePublisherFailures)
	})

	return &metricsResourcePublisher{
		base: base,
	}
}

func (p *metricsResourcePublisher) PublishResources(ctx context.Context, invocation runas.Invocation) error {
	if err := p.base.PublishResources(ctx, invocation); err != nil {
		resourcePublisherFailures.Inc()
		return err
	}
	resourcePublisherFilesPublished.Add(float64(len(invocation.FileResources())))
	return nil
}
