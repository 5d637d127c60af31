package observability

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/eletroclima/fieldops-service/internal/config"
)

// MetricsServer serves /metrics on a dedicated listener, separate from the
// application port.
type MetricsServer struct {
	server *http.Server
	logger *zap.Logger
}

// NewMetricsServer builds the listener; returns nil when metrics are disabled.
func NewMetricsServer(cfg config.MetricsConfig, metrics *Metrics, logger *zap.Logger) *MetricsServer {
	if !cfg.Enabled || metrics == nil {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}))
	return &MetricsServer{
		server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Start begins serving in a background goroutine.
func (s *MetricsServer) Start() {
	if s == nil {
		return
	}
	go func() {
		s.logger.Info("metrics listener started", zap.String("addr", s.server.Addr))
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("metrics listener failed", zap.Error(err))
		}
	}()
}

// Shutdown stops the listener.
func (s *MetricsServer) Shutdown(ctx context.Context) {
	if s == nil {
		return
	}
	_ = s.server.Shutdown(ctx)
}
