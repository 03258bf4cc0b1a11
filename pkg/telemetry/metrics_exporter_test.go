package telemetry_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	configuration "github.com/MartinWitt/teamcity-runas-plugin/pkg/configuration/runas_agent"
	"github.com/MartinWitt/teamcity-runas-plugin/pkg/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newTestRegistry(t *testing.T) *prometheus.Registry {
	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "runas_agent",
		Name:      "test_builds_total",
		Help:      "Number of builds in this test.",
	})
	registry.MustRegister(counter)
	counter.Add(3)
	return registry
}

func TestExportMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("NoDestinations", func(t *testing.T) {
		require.NoError(t, telemetry.ExportMetrics(ctx, &configuration.MetricsConfiguration{}, newTestRegistry(t)))
	})

	t.Run("Textfile", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "runas_agent.prom")
		require.NoError(t, telemetry.ExportMetrics(ctx, &configuration.MetricsConfiguration{
			TextfilePath: p,
		}, newTestRegistry(t)))

		data, err := os.ReadFile(p)
		require.NoError(t, err)
		require.Contains(t, string(data), "runas_agent_test_builds_total 3\n")
	})

	t.Run("TextfileFailure", func(t *testing.T) {
		err := telemetry.ExportMetrics(ctx, &configuration.MetricsConfiguration{
			TextfilePath: filepath.Join(t.TempDir(), "nonexistent", "runas_agent.prom"),
		}, newTestRegistry(t))
		require.Equal(t, codes.Internal, status.Code(err))
	})

	t.Run("Pushgateway", func(t *testing.T) {
		var method, path string
		var body []byte
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method = r.Method
			path = r.URL.Path
			body, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		require.NoError(t, telemetry.ExportMetrics(ctx, &configuration.MetricsConfiguration{
			PushgatewayURL: server.URL,
			PushgatewayJob: "runas_agent",
		}, newTestRegistry(t)))
		require.Equal(t, http.MethodPut, method)
		require.Equal(t, "/metrics/job/runas_agent", path)
		require.Contains(t, string(body), "runas_agent_test_builds_total")
	})

	t.Run("PushgatewayFailure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		err := telemetry.ExportMetrics(ctx, &configuration.MetricsConfiguration{
			PushgatewayURL: server.URL,
			PushgatewayJob: "runas_agent",
		}, newTestRegistry(t))
		require.Equal(t, codes.Unavailable, status.Code(err))
	})
}
