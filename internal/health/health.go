// Package health provides the HTTP liveness and readiness endpoints.
//
// Docker and Kubernetes use /healthz to monitor the daemon's liveness and
// /readyz to decide when to route traffic. Readiness also lists the models
// already loaded, which is what makes the first request fast.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// ModelLister reports the identifiers of loaded models.
type ModelLister interface {
	IDs() []string
}

// Server is a lightweight HTTP server that exposes /healthz and /readyz.
type Server struct {
	port   int
	models ModelLister
	ready  atomic.Bool
	server *http.Server
}

// New creates a new health check server. models may be nil.
func New(port int, models ModelLister) *Server {
	return &Server{port: port, models: models}
}

// SetReady marks the daemon as ready to accept traffic.
func (s *Server) SetReady(ready bool) {
	s.ready.Store(ready)
}

type readiness struct {
	Status string   `json:"status"`
	Models []string `json:"models"`
}

// Handler returns the health endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		body := readiness{Status: "ok", Models: []string{}}
		if s.models != nil {
			body.Models = s.models.IDs()
		}

		w.Header().Set("Content-Type", "application/json")
		if !s.ready.Load() {
			body.Status = "not_ready"
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(body)
	})

	return mux
}

// ListenAndServe starts the health check HTTP server.
// It blocks until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	slog.Info("health server listening", "port", s.port)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("health server: %w", err)
	}
	return nil
}
