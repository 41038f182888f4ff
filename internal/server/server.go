// Package server exposes the preferences store over HTTP.
//
// The service is intentionally small: dashboards read a saved layout with
// GET /layouts/{key}, push edits with PATCH /layouts/{key}, and drop a
// layout with DELETE /layouts/{key}. GET /healthz reports liveness.
package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gridboard/gridboard/pkg/errors"
	"github.com/gridboard/gridboard/pkg/prefs"
)

// Server serves layout preferences over HTTP.
type Server struct {
	store  prefs.Store
	logger *log.Logger
	router chi.Router
}

// New creates a Server over the given store. A nil logger disables logging.
func New(store prefs.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{store: store, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/layouts/{key}", func(r chi.Router) {
		r.Get("/", s.handleGet)
		r.Patch("/", s.handlePatch)
		r.Delete("/", s.handleDelete)
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving layout preferences", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	doc, err := s.store.Get(r.Context(), key)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handlePatch(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	var patch prefs.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidLayoutFormat, err, "decode patch"))
		return
	}
	doc, err := s.store.Update(r.Context(), key, patch)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if err := s.store.Delete(r.Context(), key); err != nil && !stderrors.Is(err, prefs.ErrNotFound) {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// errorBody is the wire shape of an error response.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := errors.ErrCodeInternal
	switch {
	case stderrors.Is(err, prefs.ErrNotFound):
		status = http.StatusNotFound
		writeJSON(w, status, errorBody{Code: "NOT_FOUND", Message: "layout not found"})
		return
	case errors.Is(err, errors.ErrCodeInvalidLayoutFormat):
		status = http.StatusBadRequest
		code = errors.ErrCodeInvalidLayoutFormat
	case errors.Is(err, errors.ErrCodePersistenceFailure):
		status = http.StatusBadGateway
		code = errors.ErrCodePersistenceFailure
	}
	s.logger.Error("request failed", "code", code, "err", err)
	writeJSON(w, status, errorBody{Code: string(code), Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
