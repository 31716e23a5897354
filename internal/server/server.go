// Package server exposes the hydropower calculator over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/aquawatt/hydrocalc/internal/config"
)

// Server wires the calculator handlers, metrics, and logging into an
// http.Handler.
type Server struct {
	logger  zerolog.Logger
	cfg     *config.Config
	metrics *metrics
	mux     *http.ServeMux
}

// New builds a Server from configuration. The logger is copied; metrics
// are registered on reg (pass prometheus.DefaultRegisterer in the
// binary, a fresh registry in tests).
func New(cfg *config.Config, logger zerolog.Logger, reg prometheus.Registerer) *Server {
	s := &Server{
		logger:  logger,
		cfg:     cfg,
		metrics: newMetrics(reg),
		mux:     http.NewServeMux(),
	}

	s.mux.HandleFunc("/v1/estimate", s.withRequestLog("estimate", s.handleEstimate))
	s.mux.HandleFunc("/v1/report", s.withRequestLog("report", s.handleReport))
	s.mux.HandleFunc("/healthz", s.handleHealth)
	s.mux.Handle("/metrics", promhttp.Handler())

	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run serves until ctx is canceled, then shuts down gracefully within
// the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.mux,
		ReadHeaderTimeout: s.cfg.RequestTimeout,
	}

	shutdownDone := make(chan struct{})
	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error().Err(err).Msg("shutdown failed")
		}
		close(shutdownDone)
	}()

	s.logger.Info().Str("addr", s.cfg.Addr).Msg("starting hydrocalc server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	<-shutdownDone
	return nil
}

// traceID returns the caller-provided trace ID or generates one, so
// every log line and error response can be correlated.
func traceID(r *http.Request) string {
	if id := r.Header.Get("X-Trace-Id"); id != "" {
		return id
	}
	return uuid.New().String()
}

// withRequestLog wraps a handler with trace propagation, outcome
// metrics, and a structured completion log.
func (s *Server) withRequestLog(operation string, next func(http.ResponseWriter, *http.Request) int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := traceID(r)
		w.Header().Set("X-Trace-Id", id)

		status := next(w, r)

		s.metrics.observe(operation, status, time.Since(start))
		s.logger.Info().
			Str("trace_id", id).
			Str("operation", operation).
			Str("method", r.Method).
			Int("status", status).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("request handled")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}
