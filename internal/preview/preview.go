// Package preview runs a local HTTP server that serves the most recently
// exported document, so the rendered page can be checked in a browser before
// paying for permanent storage.
package preview

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vkarev/arpub/internal/config"
	"github.com/vkarev/arpub/internal/logger"
)

// Server serves the current export over loopback HTTP. The document is
// replaced wholesale on every export; there is no history.
type Server struct {
	server *http.Server
	logger *logger.Logger

	mu       sync.RWMutex
	document string
}

func NewServer(cfg config.Preview, logger *logger.Logger) *Server {
	s := &Server{logger: logger}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withTraceID)
	router.Use(s.withLogging)
	router.Get("/", s.servePage)

	s.server = &http.Server{
		Addr:    cfg.Address,
		Handler: router,
	}

	return s
}

// SetDocument replaces the page served at "/".
func (s *Server) SetDocument(html string) {
	s.mu.Lock()
	s.document = html
	s.mu.Unlock()
}

// URL returns the address of the served page.
func (s *Server) URL() string {
	return "http://" + s.server.Addr + "/"
}

// Run starts listening and blocks until Shutdown is called.
func (s *Server) Run() {
	s.logger.Info().Str("address", s.server.Addr).Msg("preview server started")

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error().Err(err).Msg("preview server stopped")
	}
}

// Shutdown stops the server, waiting up to five seconds for in-flight
// requests.
func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("preview server shutdown")
	}
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	document := s.document
	s.mu.RUnlock()

	if document == "" {
		http.Error(w, "nothing exported yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(document))
}
