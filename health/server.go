package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/warelogix/procfind/storage"
)

// Server exposes the liveness and readiness endpoints polled by the
// supervising transport layer. The keep-alive loops themselves live outside
// this module; only the surface they probe is here.
type Server struct {
	catalog   storage.CatalogRepository
	startedAt time.Time
	logger    *slog.Logger
}

// NewServer creates a health endpoint handler backed by the catalog store.
func NewServer(catalog storage.CatalogRepository, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		catalog:   catalog,
		startedAt: time.Now(),
		logger:    logger,
	}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleHome)
	r.Get("/health", s.handleHealth)
	r.Get("/deep-ping", s.handleDeepPing)
	return r
}

// ListenAndServe serves the health endpoints until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("health server listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":  "OK",
		"service": "procfind",
		"uptime":  time.Since(s.startedAt).Round(time.Second).String(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
	})
}

// handleDeepPing verifies the storage path end to end by counting catalog
// records inside a read transaction.
func (s *Server) handleDeepPing(w http.ResponseWriter, r *http.Request) {
	count, err := s.catalog.Count(r.Context())
	if err != nil {
		s.logger.Error("deep ping failed", "err", err)
		s.writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status": "degraded",
		})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"processes": count,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("error writing health response", "err", err)
	}
}
