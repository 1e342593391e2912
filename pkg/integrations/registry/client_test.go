package registry

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/npmscout/npmscout/pkg/integrations"
)

func testClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	return NewClient(serverURL, time.Second)
}

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/-/v1/search" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("text"); got != "web framework" {
			t.Errorf("text param = %q", got)
		}
		if got := r.URL.Query().Get("size"); got != "5" {
			t.Errorf("size param = %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"objects": []map[string]any{
				{"package": map[string]any{
					"name":        "express",
					"version":     "4.18.0",
					"description": "Fast, unopinionated web framework",
					"keywords":    []string{"framework", "web"},
				}},
				{"package": map[string]any{
					"name": "koa",
				}},
			},
			"total": 2,
		})
	}))
	defer server.Close()

	results, err := testClient(t, server.URL).Search(context.Background(), "web framework", 5)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}

	first := results[0]
	if first.Name != "express" || first.Version != "4.18.0" {
		t.Errorf("first result = %+v", first)
	}
	if len(first.Keywords) != 2 {
		t.Errorf("keywords = %v", first.Keywords)
	}

	// The search endpoint never reports download counts.
	for _, r := range results {
		if r.Downloads != 0 {
			t.Errorf("Downloads = %d for %s, want 0", r.Downloads, r.Name)
		}
	}

	// Absent fields default to empty values, not nil.
	second := results[1]
	if second.Description != "" || second.Version != "" {
		t.Errorf("second result = %+v", second)
	}
	if second.Keywords == nil || len(second.Keywords) != 0 {
		t.Errorf("second keywords = %#v, want empty slice", second.Keywords)
	}
}

func TestClient_Search_DefaultSize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("size"); got != "10" {
			t.Errorf("size param = %q, want 10", got)
		}
		json.NewEncoder(w).Encode(map[string]any{"objects": []any{}})
	}))
	defer server.Close()

	if _, err := testClient(t, server.URL).Search(context.Background(), "react", 0); err != nil {
		t.Fatalf("Search() error: %v", err)
	}
}

func TestClient_PackageInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/express" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"name":        "express",
			"description": "Fast, unopinionated web framework",
			"dist-tags":   map[string]string{"latest": "4.18.0"},
			"versions": map[string]any{
				"4.18.0": map[string]any{
					"dependencies":    map[string]string{"debug": "2.6.9"},
					"devDependencies": map[string]string{"eslint": "8.0.0"},
				},
			},
			"license":    "MIT",
			"homepage":   "http://expressjs.com/",
			"repository": map[string]string{"url": "git+https://github.com/expressjs/express.git"},
			"keywords":   []string{"express", "framework"},
		})
	}))
	defer server.Close()

	info, err := testClient(t, server.URL).PackageInfo(context.Background(), "express")
	if err != nil {
		t.Fatalf("PackageInfo() error: %v", err)
	}

	if info.Name != "express" || info.Version != "4.18.0" {
		t.Errorf("identity = %s@%s", info.Name, info.Version)
	}
	if info.License != "MIT" {
		t.Errorf("License = %q, want MIT", info.License)
	}
	if info.Repository != "https://github.com/expressjs/express" {
		t.Errorf("Repository = %q", info.Repository)
	}
	if info.Dependencies["debug"] != "2.6.9" {
		t.Errorf("Dependencies = %v", info.Dependencies)
	}
	if info.DevDependencies["eslint"] != "8.0.0" {
		t.Errorf("DevDependencies = %v", info.DevDependencies)
	}
}

func TestClient_PackageInfo_Defaults(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
	}{
		{"no dist-tags", map[string]any{"name": "bare"}},
		{"latest version entry absent", map[string]any{
			"name":      "bare",
			"dist-tags": map[string]string{"latest": "2.0.0"},
			"versions":  map[string]any{"1.0.0": map[string]any{}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(tt.doc)
			}))
			defer server.Close()

			info, err := testClient(t, server.URL).PackageInfo(context.Background(), "bare")
			if err != nil {
				t.Fatalf("PackageInfo() error: %v", err)
			}

			if info.License != "Unknown" {
				t.Errorf("License = %q, want Unknown", info.License)
			}
			if info.Dependencies == nil || len(info.Dependencies) != 0 {
				t.Errorf("Dependencies = %#v, want empty map", info.Dependencies)
			}
			if info.DevDependencies == nil || len(info.DevDependencies) != 0 {
				t.Errorf("DevDependencies = %#v, want empty map", info.DevDependencies)
			}
			if info.Repository != "" || info.Homepage != "" {
				t.Errorf("unexpected defaults: %+v", info)
			}
		})
	}
}

func TestClient_PackageInfo_ScopedNameEscaped(t *testing.T) {
	var requested string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = r.URL.RawPath
		if requested == "" {
			requested = r.URL.Path
		}
		json.NewEncoder(w).Encode(map[string]any{"name": "@types/node"})
	}))
	defer server.Close()

	if _, err := testClient(t, server.URL).PackageInfo(context.Background(), "@types/node"); err != nil {
		t.Fatalf("PackageInfo() error: %v", err)
	}
	if requested != "/@types%2Fnode" {
		t.Errorf("requested path = %q, want /@types%%2Fnode", requested)
	}
}

func TestClient_PackageInfo_NotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := testClient(t, server.URL).PackageInfo(context.Background(), "missing-pkg")
	if err == nil {
		t.Fatal("expected error for missing package")
	}
	var upstream *integrations.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", upstream.StatusCode)
	}
}
