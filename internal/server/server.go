package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/numgroup/internal/config"
	apperrors "github.com/agbru/numgroup/internal/errors"
	"github.com/agbru/numgroup/internal/format"
	"github.com/agbru/numgroup/internal/logging"
	"github.com/agbru/numgroup/internal/metrics"
)

const (
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout = 10 * time.Second
	// ReadHeaderTimeout protects against slow clients.
	ReadHeaderTimeout = 5 * time.Second
)

var tracer = otel.Tracer("github.com/agbru/numgroup/internal/server")

// FormatRequest is the POST /format body.
type FormatRequest struct {
	Values []string `json:"values"`
	Mode   string   `json:"mode,omitempty"`
}

// FormatResult is one grouped value.
type FormatResult struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// FormatResponse is the /format response body.
type FormatResponse struct {
	Mode    string         `json:"mode"`
	Results []FormatResult `json:"results"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse is the /health response body.
type HealthResponse struct {
	Status string                 `json:"status"`
	Uptime string                 `json:"uptime"`
	Memory metrics.MemorySnapshot `json:"memory"`
}

// Server serves the grouping API.
type Server struct {
	httpServer *http.Server
	metrics    *Metrics
	logger     logging.Logger
	security   SecurityConfig
	memory     *metrics.MemoryCollector
	started    time.Time
	workers    int
	timeout    time.Duration
}

// New builds a server listening on cfg.Port.
func New(cfg config.AppConfig, logger logging.Logger) *Server {
	s := &Server{
		metrics:  NewMetrics(),
		logger:   logger,
		security: DefaultSecurityConfig(),
		memory:   metrics.NewMemoryCollector(),
		started:  time.Now(),
		workers:  cfg.Workers,
		timeout:  cfg.Timeout,
	}
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
	return s
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/format", s.wrap("/format", s.handleFormat))
	mux.HandleFunc("/health", s.wrap("/health", s.handleHealth))
	mux.HandleFunc("/metrics", s.wrap("/metrics", s.handleMetrics))
	return mux
}

func (s *Server) wrap(path string, h http.HandlerFunc) http.HandlerFunc {
	return SecurityMiddleware(s.security, s.metricsMiddleware(path, h))
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("server listening", logging.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return apperrors.IOError{Op: "listen", Path: s.httpServer.Addr, Cause: err}
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		s.logger.Info("server shutting down")
		return s.httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) metricsMiddleware(path string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		s.metrics.ObserveRequest(path, rec.status, time.Since(start))
	}
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	var req FormatRequest
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		req = FormatRequest{Values: q["value"], Mode: q.Get("mode")}
	case http.MethodPost:
		body := http.MaxBytesReader(w, r.Body, s.security.MaxBodyBytes)
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid_body", fmt.Sprintf("cannot decode request: %v", err))
			return
		}
	default:
		s.methodNotAllowed(w, r, "GET, POST")
		return
	}

	mode, err := format.ParseMode(req.Mode)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid_mode", err.Error())
		return
	}
	if err := s.validateValues(req.Values); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid_values", err.Error())
		return
	}

	ctx, span := tracer.Start(r.Context(), "format",
		trace.WithAttributes(
			attribute.String("numgroup.mode", mode.String()),
			attribute.Int("numgroup.values", len(req.Values)),
		))
	defer span.End()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	outputs, err := format.FormatBatch(ctx, req.Values, mode, s.workers)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error("format request aborted", err, logging.Int("values", len(req.Values)))
		s.writeError(w, http.StatusServiceUnavailable, "aborted", err.Error())
		return
	}
	s.metrics.AddFormatted(mode.String(), len(outputs))

	resp := FormatResponse{Mode: mode.String(), Results: make([]FormatResult, len(outputs))}
	for i, out := range outputs {
		resp.Results[i] = FormatResult{Input: req.Values[i], Output: out}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) validateValues(values []string) error {
	if len(values) == 0 {
		return apperrors.ValidationError{Field: "value", Message: "at least one value is required"}
	}
	if len(values) > s.security.MaxValues {
		return apperrors.ValidationError{
			Field:   "value",
			Message: fmt.Sprintf("at most %d values per request, got %d", s.security.MaxValues, len(values)),
		}
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r, "GET")
		return
	}
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Uptime: time.Since(s.started).Round(time.Second).String(),
		Memory: s.memory.Snapshot(),
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r, "GET")
		return
	}
	s.metrics.WritePrometheus(w, r)
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request, allow string) {
	s.logger.Info("method not allowed",
		logging.String("method", r.Method),
		logging.String("path", r.URL.Path))
	w.Header().Set("Allow", allow)
	s.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", fmt.Sprintf("method %s is not allowed", r.Method))
}

func (s *Server) writeError(w http.ResponseWriter, status int, code, message string) {
	s.writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response failed", err)
	}
}
