// Package api exposes the HTTP interface for the harvester service.
package api

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recruitscout/recruitscout/internal/jobs"
	"github.com/recruitscout/recruitscout/internal/metrics"
)

// requestTimeout bounds one HTTP request end to end. It must leave room
// for the slowest harvest: navigation timeout plus settle delay per
// headless source, which all run concurrently.
const requestTimeout = 2 * time.Minute

// Harvester is the pipeline entry point the HTTP layer calls.
type Harvester interface {
	Harvest(ctx context.Context, sourceIDs []string) []jobs.Record
	SourceIDs() []string
}

// SourceInfo describes one selectable job board for the index page.
type SourceInfo struct {
	ID   string
	Name string
	URL  string
}

// Server wires HTTP handlers to the harvester.
type Server struct {
	router    chi.Router
	harvester Harvester
	clock     jobs.Clock
	sources   []SourceInfo
	logger    *zap.Logger
}

// NewServer constructs a Server with middleware and routes.
func NewServer(harvester Harvester, clock jobs.Clock, sources []SourceInfo, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		harvester: harvester,
		clock:     clock,
		sources:   sources,
		logger:    logger,
	}
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(logger))
	r.Use(recoverMiddleware(logger))
	r.Use(timeoutMiddleware(requestTimeout))

	r.Get("/", s.home)
	r.Get("/health", s.health)
	r.Get("/healthz", s.healthz)
	r.Get("/readyz", s.readyz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/scrape", s.scrape)
		r.Get("/export/csv", s.exportCSV)
		r.Get("/sources", s.listSources)
	})

	s.router = r
	return s
}

// Handler returns the router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>RecruitScout</title></head>
<body>
<h1>RecruitScout</h1>
<p>Aggregated job postings from the boards below. POST /api/scrape with
{"websites": ["id", ...]} to harvest a selection, or GET /api/export/csv
for the full set.</p>
<ul>
{{range .}}<li><strong>{{.Name}}</strong> ({{.ID}}) &mdash; <a href="{{.URL}}">{{.URL}}</a></li>
{{end}}</ul>
</body>
</html>
`))

func (s *Server) home(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, s.sources); err != nil {
		s.logger.Error("render index failed", zap.Error(err))
	}
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": s.clock.Now().Format(time.RFC3339),
	})
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) readyz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) listSources(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"sources": s.harvester.SourceIDs()})
}

type scrapeRequest struct {
	Websites []string `json:"websites"`
}

type scrapeResponse struct {
	Success   bool          `json:"success"`
	Count     int           `json:"count"`
	Data      []jobs.Record `json:"data"`
	ScrapedAt string        `json:"scraped_at"`
}

func (s *Server) scrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	records := s.harvester.Harvest(r.Context(), req.Websites)
	writeJSON(w, http.StatusOK, scrapeResponse{
		Success:   true,
		Count:     len(records),
		Data:      records,
		ScrapedAt: s.clock.Now().Format(time.RFC3339),
	})
}

// csvHeader keeps the exact serialized field identity required by export
// consumers.
var csvHeader = []string{"job_title", "company", "category", "date_posted", "status", "website"}

func (s *Server) exportCSV(w http.ResponseWriter, r *http.Request) {
	records := s.harvester.Harvest(r.Context(), nil)

	filename := fmt.Sprintf("jobs_%s.csv", s.clock.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		s.logger.Error("csv header write failed", zap.Error(err))
		return
	}
	for _, rec := range records {
		row := []string{rec.Title, rec.Company, rec.Category, rec.DatePosted, rec.Status, rec.Website}
		if err := cw.Write(row); err != nil {
			s.logger.Error("csv row write failed", zap.Error(err))
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		s.logger.Error("csv flush failed", zap.Error(err))
	}
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r)
	})
}

func loggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			duration := time.Since(start)
			metrics.ObserveHTTPRequest(r.Method, r.URL.Path, ww.status, duration)
			logger.Info("request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.status),
				zap.Int64("duration_ms", duration.Milliseconds()),
			)
		})
	}
}

func recoverMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered", zap.Any("panic", rec))
					writeError(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func timeoutMiddleware(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, d, "request timed out")
	}
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("write JSON failed", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
