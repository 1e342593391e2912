// Package server exposes the npmscout research operations as a JSON HTTP
// API, suitable as a callable-tool backend for assistants and scripts.
//
// The server is thin glue: every handler decodes arguments, calls the same
// integration clients the CLI uses, and encodes the returned records. It
// holds no state between requests.
package server

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/npmscout/npmscout/pkg/config"
	nserrors "github.com/npmscout/npmscout/pkg/errors"
	"github.com/npmscout/npmscout/pkg/integrations"
	"github.com/npmscout/npmscout/pkg/integrations/bundlephobia"
	"github.com/npmscout/npmscout/pkg/integrations/downloads"
	"github.com/npmscout/npmscout/pkg/integrations/registry"
)

// Server serves the npmscout JSON API.
type Server struct {
	logger        *log.Logger
	registry      *registry.Client
	downloads     *downloads.Client
	bundle        *bundlephobia.Client
	defaultPeriod string
}

// New creates a Server with clients configured from cfg.
func New(cfg config.Config, logger *log.Logger) *Server {
	return &Server{
		logger:        logger,
		registry:      registry.NewClient(cfg.RegistryURL, cfg.Timeout()),
		downloads:     downloads.NewClient(cfg.DownloadsURL, cfg.Timeout()),
		bundle:        bundlephobia.NewClient(cfg.BundlephobiaURL, cfg.Timeout()),
		defaultPeriod: cfg.DefaultPeriod,
	}
}

// Router builds the chi router with all API routes registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/search", s.handleSearch)
		r.Get("/packages/{name}", s.handlePackageInfo)
		r.Get("/downloads/compare", s.handleCompare)
		r.Get("/downloads/{period}/{name}", s.handleDownloads)
		r.Get("/trends/{period}/{name}", s.handleTrends)
		r.Get("/deps/{name}", s.handleDeps)
		r.Get("/bundle/{spec}", s.handleBundle)
		r.Get("/advisories/{name}", s.handleAdvisories)
	})

	return r
}

// ListenAndServe runs the API server until ctx is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// pkgParam extracts and percent-decodes a package name route parameter.
// Scoped names arrive encoded (@scope%2Fname) so they fit in one path
// segment.
func pkgParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// requestID attaches a UUID to each request for log correlation.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), id)))
	})
}

// requestLogger logs one line per request with method, path, and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"id", requestIDFromContext(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}

type ctxKey int

const requestIDKey ctxKey = 0

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func requestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// writeError maps an error to a JSON error body and HTTP status. Upstream
// failures become 502 with the upstream status preserved; validation
// failures become 400; everything else is 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	body := errorBody{
		Code:    string(nserrors.ErrCodeInternal),
		Message: err.Error(),
	}

	var upstream *integrations.UpstreamError
	switch {
	case errors.As(err, &upstream):
		status = http.StatusBadGateway
		body.Code = string(nserrors.ErrCodeUpstream)
		body.UpstreamStatus = upstream.StatusCode
	case nserrors.Is(err, nserrors.ErrCodeInvalidInput):
		status = http.StatusBadRequest
		body.Code = string(nserrors.ErrCodeInvalidInput)
	case nserrors.GetCode(err) != "":
		body.Code = string(nserrors.GetCode(err))
	}

	s.logger.Debug("request failed",
		"id", requestIDFromContext(r.Context()),
		"status", status,
		"error", err,
	)
	writeJSON(w, status, errorResponse{Error: body})
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code           string `json:"code"`
	Message        string `json:"message"`
	UpstreamStatus int    `json:"upstreamStatus,omitempty"`
}
