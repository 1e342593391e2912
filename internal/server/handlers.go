package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/npmscout/npmscout/pkg/advisory"
	"github.com/npmscout/npmscout/pkg/errors"
	"github.com/npmscout/npmscout/pkg/integrations/downloads"
	"github.com/npmscout/npmscout/pkg/integrations/registry"
	"github.com/npmscout/npmscout/pkg/metrics"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// handleSearch serves GET /v1/search?q=<query>&size=<n>.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "missing query parameter q"))
		return
	}

	size := registry.DefaultSearchSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < registry.MinSearchSize || n > registry.MaxSearchSize {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "size must be an integer between %d and %d",
				registry.MinSearchSize, registry.MaxSearchSize))
			return
		}
		size = n
	}

	results, err := s.registry.Search(r.Context(), query, size)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

// handlePackageInfo serves GET /v1/packages/{name}.
func (s *Server) handlePackageInfo(w http.ResponseWriter, r *http.Request) {
	info, err := s.registry.PackageInfo(r.Context(), pkgParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// handleDownloads serves GET /v1/downloads/{period}/{name}.
func (s *Server) handleDownloads(w http.ResponseWriter, r *http.Request) {
	stats, err := s.downloads.Point(r.Context(), pkgParam(r, "name"), chi.URLParam(r, "period"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// handleCompare serves GET /v1/downloads/compare?packages=a,b&period=<p>.
// Results preserve the order of the packages parameter.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("packages")
	if raw == "" {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "missing query parameter packages"))
		return
	}

	var packages []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			packages = append(packages, p)
		}
	}
	if len(packages) < downloads.MinComparePackages || len(packages) > downloads.MaxComparePackages {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "compare takes %d to %d packages, got %d",
			downloads.MinComparePackages, downloads.MaxComparePackages, len(packages)))
		return
	}

	period := r.URL.Query().Get("period")
	if period == "" {
		period = s.defaultPeriod
	}

	results, err := s.downloads.Compare(r.Context(), packages, period)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

// handleTrends serves GET /v1/trends/{period}/{name}.
func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	rs, err := s.downloads.Range(r.Context(), pkgParam(r, "name"), chi.URLParam(r, "period"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics.BuildTrend(rs))
}

// handleDeps serves GET /v1/deps/{name}. The response carries both the
// structured dependency maps and the rendered listing.
func (s *Server) handleDeps(w http.ResponseWriter, r *http.Request) {
	info, err := s.registry.PackageInfo(r.Context(), pkgParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"name":            info.Name,
		"version":         info.Version,
		"dependencies":    info.Dependencies,
		"devDependencies": info.DevDependencies,
		"listing":         metrics.DependencyTree(info),
	})
}

// handleBundle serves GET /v1/bundle/{spec}.
func (s *Server) handleBundle(w http.ResponseWriter, r *http.Request) {
	size, err := s.bundle.Size(r.Context(), pkgParam(r, "spec"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, size)
}

// handleAdvisories serves GET /v1/advisories/{name}.
func (s *Server) handleAdvisories(w http.ResponseWriter, r *http.Request) {
	name := pkgParam(r, "name")
	note, err := advisory.Note(r.Context(), s.registry, name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"package": name, "note": note})
}
