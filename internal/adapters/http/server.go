// Package http exposes the simulation engine over a JSON API: one-shot
// simulations of library or inline machines, library introspection and
// stored-run retrieval, plus health, build info and optional Prometheus
// metrics.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aretw0/tendril/internal/logging"
	"github.com/aretw0/tendril/pkg/domain"
	"github.com/aretw0/tendril/pkg/observability"
	"github.com/aretw0/tendril/pkg/ports"
	"github.com/aretw0/tendril/pkg/schema"
)

// Engine defines the interface for the Tendril simulation core.
type Engine interface {
	ports.Simulator

	// Runs lists stored run IDs.
	Runs(ctx context.Context) ([]string, error)

	// Run fetches one stored run by ID. Returns domain.ErrRunNotFound for
	// unknown IDs.
	Run(ctx context.Context, id string) (*domain.Run, error)
}

// Server wires the engine into HTTP handlers.
type Server struct {
	engine  Engine
	logger  *slog.Logger
	metrics *observability.Metrics
	version string
}

type Option func(*Server)

// WithLogger attaches a structured logger for request and error logging.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics mounts the Prometheus handler at /metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithVersion sets the version string reported by /info.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.version = v
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	s := &Server{
		engine:  engine,
		logger:  logging.NewNop(),
		version: "dev",
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/simulate", s.Simulate)
		r.Get("/machines", s.ListMachines)
		r.Get("/machines/{name}", s.GetMachine)
		r.Get("/runs", s.ListRuns)
		r.Get("/runs/{id}", s.GetRun)
	})

	r.Get("/healthz", s.GetHealth)
	r.Get("/info", s.GetInfo)

	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Custom-Header")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// SimulateRequest is the POST /api/v1/simulate body. Exactly one of Machine
// (a library name) or Definition (an inline document) selects the machine.
type SimulateRequest struct {
	Machine    string           `json:"machine,omitempty"`
	Definition *schema.Document `json:"definition,omitempty"`
	Input      string           `json:"input"`
	MaxDepth   int              `json:"max_depth,omitempty"`
	Mode       string           `json:"mode,omitempty"`
	Metric     string           `json:"metric,omitempty"`
}

func (b SimulateRequest) toPort() (ports.SimulateRequest, error) {
	req := ports.SimulateRequest{
		Machine:  b.Machine,
		Input:    b.Input,
		MaxDepth: b.MaxDepth,
	}

	if b.Mode != "" {
		mode, err := domain.ParseTerminationMode(b.Mode)
		if err != nil {
			return req, err
		}
		req.Mode = mode
	}

	if b.Metric != "" {
		metric, err := domain.ParseMetricKind(b.Metric)
		if err != nil {
			return req, err
		}
		req.Metric = metric
	}

	if b.Definition != nil {
		m, err := b.Definition.ToMachine()
		if err != nil {
			return req, err
		}
		req.Definition = m
	}

	return req, nil
}

// Simulate handles the POST /api/v1/simulate request.
func (s *Server) Simulate(w http.ResponseWriter, r *http.Request) {
	var body SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("simulate: invalid request body", "error", err)
		return
	}

	req, err := body.toPort()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		s.logger.Warn("simulate: invalid request", "error", err)
		return
	}

	run, err := s.engine.Simulate(r.Context(), req)
	if err != nil {
		s.writeError(w, "simulate", err)
		return
	}

	s.writeJSON(w, http.StatusOK, run)
}

// ListMachines handles the GET /api/v1/machines request.
func (s *Server) ListMachines(w http.ResponseWriter, r *http.Request) {
	names, err := s.engine.Machines(r.Context())
	if err != nil {
		s.writeError(w, "machines", err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string][]string{"machines": names})
}

// GetMachine handles the GET /api/v1/machines/{name} request.
func (s *Server) GetMachine(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	m, err := s.engine.Machine(r.Context(), name)
	if err != nil {
		s.writeError(w, "machine", err)
		return
	}

	s.writeJSON(w, http.StatusOK, schema.FromMachine(m))
}

// ListRuns handles the GET /api/v1/runs request.
func (s *Server) ListRuns(w http.ResponseWriter, r *http.Request) {
	ids, err := s.engine.Runs(r.Context())
	if err != nil {
		s.writeError(w, "runs", err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string][]string{"runs": ids})
}

// GetRun handles the GET /api/v1/runs/{id} request.
func (s *Server) GetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	run, err := s.engine.Run(r.Context(), id)
	if err != nil {
		s.writeError(w, "run", err)
		return
	}

	s.writeJSON(w, http.StatusOK, run)
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "tendril-http",
		"version": s.version,
	})
}

// -- Helpers --

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrMachineNotFound), errors.Is(err, domain.ErrRunNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrMalformedDefinition),
		errors.Is(err, domain.ErrFaultyTransition),
		errors.Is(err, domain.ErrOptionViolation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, fmt.Sprintf("%s error: %v", op, err), http.StatusInternalServerError)
		s.logger.Error(op+" failed", "error", err)
	}
}
