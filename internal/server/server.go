// Package server implements the amaze HTTP API.
//
// The API exposes the same pipeline the CLI uses:
//
//	GET  /api/algorithms        list available algorithms
//	POST /api/mazes             generate and store a maze
//	GET  /api/mazes/{id}        fetch a stored maze (optionally rendered)
//	POST /api/mazes/{id}/solve  solve a stored maze
//	GET  /healthz               liveness probe
//
// Mazes are stored as documents behind the [Store] interface, in memory for
// development and in MongoDB for deployments.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/jgrunert/amaze/pkg/cache"
	apperrors "github.com/jgrunert/amaze/pkg/errors"
	"github.com/jgrunert/amaze/pkg/maze"
	"github.com/jgrunert/amaze/pkg/maze/algo"
	"github.com/jgrunert/amaze/pkg/mazefile"
	"github.com/jgrunert/amaze/pkg/pipeline"
)

// Server wires the pipeline runner and document store behind an HTTP router.
type Server struct {
	store  Store
	runner *pipeline.Runner
	logger *log.Logger
}

// New creates a server. A nil logger falls back to the default logger.
func New(store Store, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{store: store, runner: runner, logger: logger}
}

// Router builds the chi router with all API routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/algorithms", s.handleListAlgorithms)
		r.Post("/mazes", s.handleCreateMaze)
		r.Get("/mazes/{id}", s.handleGetMaze)
		r.Post("/mazes/{id}/solve", s.handleSolveMaze)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListAlgorithms(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"algorithms": algo.List()})
}

// createMazeRequest is the body of POST /api/mazes. A missing seed draws a
// fresh one; the drawn value comes back in the maze's provenance.
type createMazeRequest struct {
	Algorithm string  `json:"algorithm"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Seed      *uint64 `json:"seed,omitempty"`
}

// mazeResponse is returned by create and get.
type mazeResponse struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	GridHash  string        `json:"grid_hash,omitempty"`
	Maze      mazefile.Maze `json:"maze"`
}

func (s *Server) handleCreateMaze(w http.ResponseWriter, r *http.Request) {
	var req createMazeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	opts := pipeline.Options{
		Algorithm: req.Algorithm,
		Width:     req.Width,
		Height:    req.Height,
		Seed:      req.Seed,
		Formats:   []string{pipeline.FormatJSON},
	}
	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	doc := mazefile.Document{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Maze:      result.Maze,
	}
	if err := s.store.Insert(r.Context(), doc); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info("created maze",
		"id", doc.ID,
		"algorithm", result.Maze.Algorithm,
		"width", result.Maze.Width,
		"height", result.Maze.Height)

	s.writeJSON(w, http.StatusCreated, mazeResponse{
		ID:        doc.ID,
		CreatedAt: doc.CreatedAt,
		GridHash:  result.GridHash,
		Maze:      doc.Maze,
	})
}

// artifactContentTypes maps render formats to response content types.
var artifactContentTypes = map[string]string{
	pipeline.FormatASCII: "text/plain; charset=utf-8",
	pipeline.FormatJSON:  "application/json",
	pipeline.FormatSVG:   "image/svg+xml",
	pipeline.FormatPNG:   "image/png",
	pipeline.FormatDOT:   "text/vnd.graphviz",
}

func (s *Server) handleGetMaze(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		s.writeJSON(w, http.StatusOK, mazeResponse{
			ID:        doc.ID,
			CreatedAt: doc.CreatedAt,
			Maze:      doc.Maze,
		})
		return
	}

	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	g, err := doc.Maze.Grid()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := pipeline.Options{
		Algorithm: doc.Maze.Algorithm,
		Width:     doc.Maze.Width,
		Height:    doc.Maze.Height,
		Seed:      &doc.Maze.Seed,
		Formats:   []string{format},
		Theme:     r.URL.Query().Get("theme"),
	}
	artifacts, err := s.runner.Render(r.Context(), g, nil, gridHash(doc.Maze), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", artifactContentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

// solveMazeRequest is the body of POST /api/mazes/{id}/solve.
type solveMazeRequest struct {
	Algorithm string         `json:"algorithm"`
	Start     *maze.Position `json:"start,omitempty"`
	End       *maze.Position `json:"end,omitempty"`
}

// solveMazeResponse reports the path and search statistics.
type solveMazeResponse struct {
	ID         string            `json:"id"`
	Solution   mazefile.Solution `json:"solution"`
	PathLength int               `json:"path_length"`
	Found      bool              `json:"found"`
}

func (s *Server) handleSolveMaze(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req solveMazeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	g, err := doc.Maze.Grid()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := pipeline.Options{
		Algorithm: doc.Maze.Algorithm,
		Width:     doc.Maze.Width,
		Height:    doc.Maze.Height,
		Seed:      &doc.Maze.Seed,
		Solver:    req.Algorithm,
		Start:     req.Start,
		End:       req.End,
	}
	sol, err := s.runner.Solve(r.Context(), g, gridHash(doc.Maze), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, solveMazeResponse{
		ID:         doc.ID,
		Solution:   *sol,
		PathLength: sol.PathLength(),
		Found:      len(sol.Path) > 0,
	})
}

// gridHash content-addresses a stored maze the same way the pipeline does.
func gridHash(m mazefile.Maze) string {
	data, err := mazefile.Marshal(m)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string         `json:"error"`
	Code  apperrors.Code `json:"code,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	}
	s.writeJSON(w, status, errorResponse{
		Error: apperrors.UserMessage(err),
		Code:  apperrors.GetCode(err),
	})
}

// statusForError maps structured error codes to HTTP status codes.
func statusForError(err error) int {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeInvalidInput,
		apperrors.ErrCodeInvalidDimensions,
		apperrors.ErrCodeInvalidPosition,
		apperrors.ErrCodeInvalidFormat,
		apperrors.ErrCodeUnknownAlgorithm:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound,
		apperrors.ErrCodeMazeNotFound,
		apperrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// logRequests logs one line per request with the structured logger.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start))
	})
}
