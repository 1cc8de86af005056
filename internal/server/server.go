// Package server implements the tieback HTTP API.
//
// The API exposes layout generation over REST for design tools that embed
// the generator: submit a configuration, receive the generated geometry and
// quality report, retrieve stored layouts later. Persistence (MongoDB) and
// shared caching (Redis) are optional; without them the server runs fully
// in-process.
//
// # Endpoints
//
//	POST /api/v1/layouts           generate and store a layout
//	GET  /api/v1/layouts           list stored layouts
//	GET  /api/v1/layouts/{id}      fetch a stored layout
//	POST /api/v1/layouts/validate  validate a configuration without generating
//	GET  /api/v1/catalog           supported kinds, strategies, and defaults
//	GET  /healthz                  liveness probe
//	GET  /metrics                  Prometheus metrics
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/xinfuwcx/tieback/pkg/anchor"
	"github.com/xinfuwcx/tieback/pkg/errors"
	"github.com/xinfuwcx/tieback/pkg/observability"
	"github.com/xinfuwcx/tieback/pkg/pipeline"
)

// Server wires the pipeline, the layout store, and the HTTP router.
type Server struct {
	runner *pipeline.Runner
	store  LayoutStore
	logger *log.Logger
	router chi.Router
}

// New assembles a server from its dependencies. The metrics endpoint and
// the Prometheus-backed observability hooks are installed here.
func New(runner *pipeline.Runner, store LayoutStore, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		store:  store,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", setupMetrics())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/layouts", s.handleCreateLayout)
		r.Get("/layouts", s.handleListLayouts)
		r.Get("/layouts/{id}", s.handleGetLayout)
		r.Post("/layouts/validate", s.handleValidate)
		r.Get("/catalog", s.handleCatalog)
	})

	s.router = r
	return s
}

// Handler returns the HTTP handler for mounting or serving.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully within the given timeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// observe reports request timing through the server hooks.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		observability.Server().OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		pattern := chi.RouteContext(r.Context()).RoutePattern()
		if pattern == "" {
			pattern = r.URL.Path
		}
		observability.Server().OnResponse(r.Context(), r.Method, pattern, ww.Status(), time.Since(start))
	})
}

// =============================================================================
// Handlers
// =============================================================================

// generateRequest is the POST /api/v1/layouts body.
type generateRequest struct {
	Config   anchor.Config `json:"config"`
	Optimize bool          `json:"optimize,omitempty"`
}

// generateResponse is the POST /api/v1/layouts reply. The full geometry is
// embedded; clients needing drawings fetch them via the CLI or render the
// JSON themselves.
type generateResponse struct {
	ID         string         `json:"id"`
	ConfigHash string         `json:"config_hash"`
	Layout     *anchor.Result `json:"layout"`
	Warnings   []string       `json:"warnings,omitempty"`
	Cached     bool           `json:"cached"`
	CreatedAt  time.Time      `json:"created_at"`
}

func (s *Server) handleCreateLayout(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	// The layout name ends up in store keys and listings.
	if req.Config.Name != "" {
		if err := errors.ValidateLayoutName(req.Config.Name); err != nil {
			s.respondError(w, r, err)
			return
		}
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Config:   &req.Config,
		Optimize: req.Optimize,
		Formats:  []string{pipeline.FormatJSON},
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	stored := &StoredLayout{
		ID:         NewLayoutID(),
		Name:       req.Config.Name,
		ConfigHash: result.ConfigHash,
		Config:     req.Config,
		Layout:     result.Layout,
		Warnings:   result.Warnings,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.store.Insert(r.Context(), stored); err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, generateResponse{
		ID:         stored.ID,
		ConfigHash: stored.ConfigHash,
		Layout:     stored.Layout,
		Warnings:   stored.Warnings,
		Cached:     result.CacheInfo.LayoutHit,
		CreatedAt:  stored.CreatedAt,
	})
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	layout, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, layout)
}

func (s *Server) handleListLayouts(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.respondError(w, r, errors.New(errors.ErrCodeInvalidInput, "limit must be a positive integer"))
			return
		}
		limit = n
	}

	summaries, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if summaries == nil {
		summaries = []LayoutSummary{}
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"layouts": summaries})
}

// validateResponse is the POST /api/v1/layouts/validate reply. Structural
// errors and range warnings come back as data; the endpoint itself answers
// 200 either way.
type validateResponse struct {
	Valid    bool     `json:"valid"`
	Error    string   `json:"error,omitempty"`
	Code     string   `json:"code,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var cfg anchor.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		s.respondError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	resp := validateResponse{Valid: true, Warnings: anchor.Warnings(&cfg)}
	if err := anchor.Validate(&cfg); err != nil {
		resp.Valid = false
		resp.Error = errors.UserMessage(err)
		resp.Code = string(errors.GetCode(err))
	}
	s.respondJSON(w, http.StatusOK, resp)
}

// catalog describes what the generator supports, for UI pickers.
type catalog struct {
	AnchorKinds []string           `json:"anchor_kinds"`
	Strategies  []string           `json:"strategies"`
	MaxLevels   int                `json:"max_levels"`
	Defaults    anchor.Constraints `json:"default_constraints"`
	Inclination [2]float64         `json:"inclination_range_deg"`
	Thickness   [2]float64         `json:"wall_thickness_range"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, catalog{
		AnchorKinds: []string{anchor.KindSingle, anchor.KindMulti},
		Strategies:  []string{anchor.StrategyUniform},
		MaxLevels:   anchor.MaxLevels,
		Defaults: anchor.Constraints{
			MinSpacing:      anchor.DefaultMinSpacing,
			MaxSpacing:      anchor.DefaultMaxSpacing,
			VerticalSpacing: anchor.DefaultVerticalSpacing,
			WallClearance:   anchor.DefaultWallClearance,
		},
		Inclination: [2]float64{errors.MinInclinationDeg, errors.MaxInclinationDeg},
		Thickness:   [2]float64{errors.MinWallThickness, errors.MaxWallThickness},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// Responses
// =============================================================================

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

// respondError maps error codes to HTTP statuses and hides internals from
// the client.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch code := errors.GetCode(err); {
	case code == errors.ErrCodeLayoutNotFound || code == errors.ErrCodeNotFound || code == errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case code == errors.ErrCodeInvalidInput || errors.IsConfig(err) || code == errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	s.respondJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}
