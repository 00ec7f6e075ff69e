// Package server is the web shell: a page with the two single-select lookups,
// HTML panel fragments, and a small JSON API over the same orchestrator.
// Requests that trigger narrative generation are rate limited per client IP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Yates-Labs/floriography/internal/orchestrator"
	"github.com/Yates-Labs/floriography/internal/render"
	"github.com/google/uuid"
)

// Server serves the lookup service over HTTP.
type Server struct {
	svc     *orchestrator.Service
	limiter *RateLimiter
	addr    string
}

// New creates a Server. narrativeRate caps narrative-generating requests per IP
// per hour; zero disables the cap.
func New(svc *orchestrator.Service, addr string, narrativeRate int) *Server {
	return &Server{
		svc:     svc,
		limiter: NewRateLimiter(narrativeRate, time.Hour),
		addr:    addr,
	}
}

// Handler returns the routed handler with request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /developers", s.handleDevelopers)
	mux.HandleFunc("GET /flower", s.handleFlowerPanel)
	mux.HandleFunc("GET /meaning", s.handleMeaningPanel)

	mux.HandleFunc("GET /api/flower", s.handleFlowerJSON)
	mux.HandleFunc("GET /api/meaning", s.handleMeaningJSON)
	mux.HandleFunc("GET /api/vocabulary", s.handleVocabulary)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("POST /api/reload", s.handleReload)
	mux.HandleFunc("DELETE /api/cache", s.handleInvalidate)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return requestLogger(mux)
}

// Run serves until ctx is cancelled, then shuts down within shutdownTimeout.
func (s *Server) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "addr", s.addr, "dataset", s.svc.Location())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	slog.Info("HTTP server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := &render.Page{
		Flower:  r.URL.Query().Get("flower"),
		Meaning: r.URL.Query().Get("meaning"),
	}

	vocab, err := s.svc.Vocabulary(ctx)
	if err != nil {
		slog.Error("dataset unavailable", "error", err)
		page.DatasetErr = err
		writeHTML(w, http.StatusServiceUnavailable, func() error { return render.HTMLPage(w, page) })
		return
	}
	page.Vocabulary = vocab

	if orchestrator.IsSelection(page.Flower) {
		if !limit(s.limiter, w, r) {
			return
		}
		res, err := s.svc.LookupFlower(ctx, page.Flower)
		if err != nil {
			slog.Error("flower lookup failed", "query", page.Flower, "error", err)
		}
		page.FlowerResult = res
	}

	if res, err := s.svc.LookupMeaning(ctx, page.Meaning); err == nil {
		page.MeaningResult = res
	} else if !errors.Is(err, orchestrator.ErrNoSelection) {
		slog.Error("meaning lookup failed", "query", page.Meaning, "error", err)
	}

	writeHTML(w, http.StatusOK, func() error { return render.HTMLPage(w, page) })
}

func (s *Server) handleDevelopers(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, http.StatusOK, func() error { return render.HTMLDevelopers(w) })
}

func (s *Server) handleFlowerPanel(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if orchestrator.IsSelection(name) && !limit(s.limiter, w, r) {
		return
	}

	res, err := s.svc.LookupFlower(r.Context(), name)
	if err != nil {
		s.writePanelError(w, err)
		return
	}
	writeHTML(w, http.StatusOK, func() error { return render.HTMLFlower(w, res) })
}

func (s *Server) handleMeaningPanel(w http.ResponseWriter, r *http.Request) {
	res, err := s.svc.LookupMeaning(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writePanelError(w, err)
		return
	}
	writeHTML(w, http.StatusOK, func() error { return render.HTMLMeaning(w, res) })
}

func (s *Server) writePanelError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orchestrator.ErrNoSelection):
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, orchestrator.ErrDatasetUnavailable):
		slog.Error("dataset unavailable", "error", err)
		writeHTML(w, http.StatusServiceUnavailable, func() error { return render.HTMLDatasetError(w, err) })
	default:
		slog.Error("lookup failed", "error", err)
		http.Error(w, "lookup failed", http.StatusInternalServerError)
	}
}

func (s *Server) handleFlowerJSON(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if orchestrator.IsSelection(name) && !limit(s.limiter, w, r) {
		return
	}

	res, err := s.svc.LookupFlower(r.Context(), name)
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleMeaningJSON(w http.ResponseWriter, r *http.Request) {
	res, err := s.svc.LookupMeaning(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleVocabulary(w http.ResponseWriter, r *http.Request) {
	vocab, err := s.svc.Vocabulary(r.Context())
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vocab)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.svc.Status(r.Context())
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	status, err := s.svc.Reload(r.Context())
	if err != nil {
		writeAPIError(w, err)
		return
	}
	slog.Info("dataset reloaded", "location", status.Location, "records", status.Records)
	writeJSON(w, http.StatusOK, status)
}

// handleInvalidate drops the cached dataset; the next request loads it again.
func (s *Server) handleInvalidate(w http.ResponseWriter, r *http.Request) {
	s.svc.Invalidate()
	slog.Info("dataset cache invalidated", "location", s.svc.Location())
	w.WriteHeader(http.StatusNoContent)
}

func writeAPIError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, orchestrator.ErrNoSelection):
		status = http.StatusBadRequest
	case errors.Is(err, orchestrator.ErrDatasetUnavailable):
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeHTML(w http.ResponseWriter, status int, fn func() error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := fn(); err != nil {
		slog.Error("render page", "error", err)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// requestLogger tags each request with an ID and logs it on completion.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		slog.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
