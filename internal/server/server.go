// Package server is the HTTP transport over report.Assess.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MOYARU/tenancyscore/internal/config"
	"github.com/MOYARU/tenancyscore/internal/metrics"
)

// SettingsFunc supplies the scoring settings for each request.
type SettingsFunc func() (config.Settings, error)

type Options struct {
	Settings     SettingsFunc
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	Gatherer     prometheus.Gatherer
	BatchWorkers int
}

type Server struct {
	settings SettingsFunc
	logger   *slog.Logger
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	workers  int
}

// New fills unset options with defaults: default weights, the default slog
// logger, the default Prometheus gatherer and four batch workers.
func New(o Options) *Server {
	s := &Server{
		settings: o.Settings,
		logger:   o.Logger,
		metrics:  o.Metrics,
		gatherer: o.Gatherer,
		workers:  o.BatchWorkers,
	}
	if s.settings == nil {
		s.settings = func() (config.Settings, error) { return config.CachedSettings(config.DefaultPath) }
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.gatherer == nil {
		s.gatherer = prometheus.DefaultGatherer
	}
	if s.workers < 1 {
		s.workers = config.DefaultServer().BatchWorkers
	}
	return s
}

// Routes mounts every endpoint on a new router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	r.Route("/v1", func(r chi.Router) {
		r.Post("/assessments", s.handleAssess)
		r.Post("/assessments/batch", s.handleBatch)
		r.Get("/thresholds", s.handleThresholds)
	})
	return r
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.InfoContext(ctx, "listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
