// Package api serves the built materials and the run report over HTTP.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/notesgest/internal/config"
	"github.com/dgallion1/notesgest/internal/materials"
	"github.com/dgallion1/notesgest/internal/pipeline"
)

// ErrRebuildInProgress is returned when a rebuild is requested while one runs.
var ErrRebuildInProgress = errors.New("rebuild already in progress")

// Server is the HTTP API server for notesgest.
type Server struct {
	router chi.Router
	runner *pipeline.Runner
	log    *slog.Logger
	cfg    config.Config

	mu        sync.RWMutex
	materials *materials.Materials
	report    *pipeline.Report

	rebuilding sync.Mutex
}

// NewServer creates and configures the HTTP server. It serves nothing until
// SetMaterials or Rebuild has run.
func NewServer(runner *pipeline.Runner, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		runner: runner,
		log:    log,
		cfg:    cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// SetMaterials swaps in a finalized materials set. report may be nil when the
// set was loaded from an existing artifact.
func (s *Server) SetMaterials(m *materials.Materials, report *pipeline.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.materials = m
	s.report = report
}

func (s *Server) current() (*materials.Materials, *pipeline.Report) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.materials, s.report
}

// Rebuild re-runs extraction over the notes directory, rewrites the artifact
// and swaps the served set. The served set is left untouched on failure.
func (s *Server) Rebuild(ctx context.Context) (*pipeline.Report, error) {
	if !s.rebuilding.TryLock() {
		return nil, ErrRebuildInProgress
	}
	defer s.rebuilding.Unlock()

	m, report, err := s.runner.Build(ctx, s.cfg.NotesDir, s.cfg.OutputPath)
	if err != nil {
		return report, err
	}
	s.SetMaterials(m, report)
	return report, nil
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)
	r.Get("/api/materials", s.handleMaterials)
	r.Get("/api/materials/{level}", s.handleLevel)
	r.Get("/api/materials/{level}/{category}", s.handleCategory)
	r.Get("/api/report", s.handleReport)
	r.Get("/api/routes", s.handleRoutes)
	r.Get("/api/stats/extract", s.handleExtractStats)

	// Mutating endpoints, authenticated when a key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/extract", s.handleExtract)
		r.Post("/api/rebuild", s.handleRebuild)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	m, _ := s.current()
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"ready":  m != nil,
	})
}
