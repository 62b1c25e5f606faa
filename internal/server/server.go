// Package server exposes the simulator over a local HTTP API for
// interactive dashboards and sweep tooling. The API is stateless: every
// request carries its full scenario and gets back a complete result.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pathware/careflow/pkg/aggregate"
	"github.com/pathware/careflow/pkg/resolve"
	"github.com/pathware/careflow/pkg/scenario"
	"github.com/pathware/careflow/pkg/sweep"
	"github.com/pathware/careflow/pkg/validation"
)

// Server is the local API server.
type Server struct {
	port   int
	logger zerolog.Logger
}

// New creates a server listening on the given port.
func New(port int) *Server {
	return &Server{
		port:   port,
		logger: zerolog.New(os.Stderr).With().Timestamp().Str("component", "server").Logger(),
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(metricsMiddleware)
	r.Use(s.requestLogger)

	r.Post("/api/simulate", s.handleSimulate)
	r.Post("/api/validate", s.handleValidate)
	r.Post("/api/sweep", s.handleSweep)
	r.Get("/api/diseases", s.handleDiseases)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", metricsHandler())

	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info().Str("addr", addr).Msg("careflow API server starting")
	return http.ListenAndServe(addr, r)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// simulateRequest is the POST body for /api/simulate: a scenario plus an
// optional previously computed baseline for ICER comparison.
type simulateRequest struct {
	Parameters *scenario.Scenario `json:"parameters"`
	Baseline   *aggregate.Result  `json:"baselineResults,omitempty"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Parameters == nil {
		recordSimulation(start, "bad_request")
		writeError(w, http.StatusBadRequest, "body must be {parameters: <scenario>}")
		return
	}
	req.Parameters.ApplyDefaults()

	logger := s.logger.With().Str("request_id", uuid.NewString()).Logger()
	result, err := aggregate.Simulate(req.Parameters, logger)
	if err != nil {
		recordSimulation(start, "error")
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if req.Baseline != nil {
		_ = result.CompareToBaseline(req.Baseline)
	}

	recordSimulation(start, "ok")
	writeJSON(w, http.StatusOK, aggregate.NewExport(req.Parameters, result, req.Baseline))
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var sc scenario.Scenario
	if err := json.NewDecoder(r.Body).Decode(&sc); err != nil {
		writeError(w, http.StatusBadRequest, "body must be a scenario")
		return
	}
	sc.ApplyDefaults()

	report := validation.NewReport()
	for _, id := range sc.Diseases {
		_, diseaseReport := resolve.Resolve(&sc, id)
		report.Merge(diseaseReport)
	}
	writeJSON(w, http.StatusOK, report)
}

// sweepRequest is the POST body for /api/sweep.
type sweepRequest struct {
	Parameters *scenario.Scenario `json:"parameters"`
	Axes       []sweep.Axis       `json:"axes"`
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	var req sweepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Parameters == nil {
		writeError(w, http.StatusBadRequest, "body must be {parameters: <scenario>, axes: [...]}")
		return
	}
	req.Parameters.ApplyDefaults()

	var table *sweep.Table
	var err error
	switch len(req.Axes) {
	case 1:
		table, err = sweep.Run1D(req.Parameters, req.Axes[0], s.logger)
	case 2:
		table, err = sweep.Run2D(req.Parameters, req.Axes[0], req.Axes[1], s.logger)
	default:
		writeError(w, http.StatusBadRequest, "sweep requires one or two axes")
		return
	}
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (s *Server) handleDiseases(w http.ResponseWriter, _ *http.Request) {
	sc := scenario.Default()
	out := make([]scenario.Disease, 0)
	for _, id := range scenario.DiseaseIDs() {
		if d, err := sc.LookupDisease(id); err == nil {
			out = append(out, d)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
