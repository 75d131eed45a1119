// Package server exposes a rendering build over HTTP.
//
// Routes:
//
//	GET /healthz        liveness and build summary
//	GET /api/scene      scene JSON (?images=false, ?indent=true)
//	GET /api/legend     legend entries
//	GET /preview.svg    projected preview (?width, ?height, ?legend=true)
//	GET /preview.png    raster preview (?width, ?height, ?supersample)
//	GET /preview.webp   raster preview, lossless WebP
//
// Artifacts go through the pipeline runner, so repeated requests with the
// same parameters are served from its cache.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/boxorbit/pkg/errors"
	"github.com/matzehuels/boxorbit/pkg/pipeline"
)

// Server serves one build.
type Server struct {
	runner *pipeline.Runner
	build  *pipeline.Build
	logger *log.Logger
}

// New returns a server for b, which must be in the Rendering stage.
func New(runner *pipeline.Runner, b *pipeline.Build, logger *log.Logger) (*Server, error) {
	if b.Stage() != pipeline.Rendering {
		return nil, errors.New(errors.ErrCodeInvalidTransition, "server needs a rendering build, got %s", b.Stage())
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, build: b, logger: logger}, nil
}

// Handler returns the route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(s.logRequests)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", s.health)
	r.Route("/api", func(api chi.Router) {
		api.Get("/scene", s.scene)
		api.Get("/legend", s.legend)
	})
	r.Get("/preview.{format}", s.preview)
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"stage":  s.build.Stage().String(),
		"source": s.build.Dataset.Source,
		"films":  s.build.Dataset.Len(),
	})
}

func (s *Server) legend(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.build.Legend)
}

func (s *Server) scene(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Formats:  []string{pipeline.FormatJSON},
		NoImages: q.Get("images") == "false",
		Indent:   q.Get("indent") == "true",
	}
	s.serve(w, r, pipeline.FormatJSON, opts)
}

func (s *Server) preview(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if format == pipeline.FormatJSON {
		writeError(w, errors.New(errors.ErrCodeInvalidFormat, "use /api/scene for JSON"))
		return
	}
	opts, err := previewOptions(r)
	if err != nil {
		writeError(w, err)
		return
	}
	opts.Formats = []string{format}
	s.serve(w, r, format, opts)
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request, format string, opts pipeline.Options) {
	opts.Config = &s.build.Config
	opts.Logger = s.logger
	artifacts, err := s.runner.Render(r.Context(), s.build, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

var contentTypes = map[string]string{
	pipeline.FormatJSON: "application/json",
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatWebP: "image/webp",
}

func previewOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	var opts pipeline.Options
	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"width", &opts.Width},
		{"height", &opts.Height},
		{"supersample", &opts.Supersample},
	} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "%s must be an integer, got %q", p.name, v)
		}
		*p.dst = n
	}
	opts.Legend = q.Get("legend") == "true"
	return opts, nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"id", chimw.GetReqID(r.Context()))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps coded errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidInput:
		status = http.StatusBadRequest
	case errors.ErrCodeInvalidTransition:
		status = http.StatusConflict
	}
	writeJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}
