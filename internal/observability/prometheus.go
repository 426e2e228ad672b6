package observability

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"resumecheck/internal/config"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
)

// PrometheusConfig holds Prometheus-specific configuration
type PrometheusConfig struct {
	Enabled  bool
	Endpoint string
	Port     string
}

// MetricsServer serves the Prometheus scrape endpoint on its own port,
// separate from the API listener, so scrapes bypass API authentication
// and rate limiting.
type MetricsServer struct {
	server   *http.Server
	endpoint string
}

// SetupPrometheusExporter creates a Prometheus metric reader and the
// scrape server that exposes it. Returns nils when disabled.
func SetupPrometheusExporter(cfg PrometheusConfig) (metric.Reader, *MetricsServer, error) {
	if !cfg.Enabled {
		return nil, nil, nil
	}

	exporter, err := prometheus.New()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}

	// The promhttp handler serves the default registry, which the OTel
	// exporter registers to.
	mux := http.NewServeMux()
	mux.Handle(cfg.Endpoint, promhttp.Handler())

	ms := &MetricsServer{
		endpoint: cfg.Endpoint,
		server: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
	return exporter, ms, nil
}

// Start begins serving scrape requests in the background
func (ms *MetricsServer) Start() {
	fmt.Printf("Starting Prometheus metrics server on http://localhost%s\n", ms.server.Addr)
	fmt.Printf("Metrics available at: http://localhost%s%s\n", ms.server.Addr, ms.endpoint)

	go func() {
		if err := ms.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Prometheus server error: %v\n", err)
		}
	}()
}

// Shutdown stops the scrape server
func (ms *MetricsServer) Shutdown(ctx context.Context) error {
	if ms == nil || ms.server == nil {
		return nil
	}
	return ms.server.Shutdown(ctx)
}

// GetPrometheusConfig creates Prometheus configuration from provided config
func GetPrometheusConfig(cfg *config.Config) PrometheusConfig {
	if cfg != nil {
		return PrometheusConfig{
			Enabled:  cfg.Observability.Prometheus.Enabled,
			Endpoint: cfg.Observability.Prometheus.Endpoint,
			Port:     cfg.Observability.Prometheus.Port,
		}
	}

	// Fallback to defaults if config not available
	return PrometheusConfig{
		Enabled:  true,
		Endpoint: "/metrics",
		Port:     "9090",
	}
}
