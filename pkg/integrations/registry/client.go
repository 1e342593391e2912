package registry

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/npmscout/npmscout/pkg/integrations"
)

// DefaultBaseURL is the public npm registry.
const DefaultBaseURL = "https://registry.npmjs.org"

// Search size bounds enforced by callers; DefaultSearchSize applies when the
// caller passes a non-positive size.
const (
	MinSearchSize     = 1
	MaxSearchSize     = 50
	DefaultSearchSize = 10
)

// SearchResult is one entry from the registry search endpoint. Downloads is
// always 0: the search endpoint never reports counts, the field exists for
// shape symmetry with download comparisons.
type SearchResult struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Downloads   int      `json:"downloads"`
}

// PackageInfo is the normalized package document for the latest dist-tag.
type PackageInfo struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	License         string            `json:"license"`
	Homepage        string            `json:"homepage"`
	Repository      string            `json:"repository"`
	Keywords        []string          `json:"keywords"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Client talks to an npm-compatible registry.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a registry client for baseURL. An empty baseURL falls
// back to [DefaultBaseURL].
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client:  integrations.NewClient(timeout, nil),
		baseURL: baseURL,
	}
}

// Search queries the registry full-text search endpoint and returns results
// in upstream ranking order. A non-positive size falls back to
// [DefaultSearchSize]; bounds checking beyond that is the caller's job.
func (c *Client) Search(ctx context.Context, query string, size int) ([]SearchResult, error) {
	if size <= 0 {
		size = DefaultSearchSize
	}

	endpoint := fmt.Sprintf("%s/-/v1/search?text=%s&size=%d", c.baseURL, url.QueryEscape(query), size)
	var data searchResponse
	if err := c.Get(ctx, endpoint, &data); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(data.Objects))
	for _, obj := range data.Objects {
		keywords := obj.Package.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		results = append(results, SearchResult{
			Name:        obj.Package.Name,
			Version:     obj.Package.Version,
			Description: obj.Package.Description,
			Keywords:    keywords,
			Downloads:   0,
		})
	}
	return results, nil
}

// PackageInfo fetches the package document for name and normalizes it
// against the latest dist-tag. A missing latest tag or missing version
// entry is a valid outcome and yields empty fields, not an error.
func (c *Client) PackageInfo(ctx context.Context, name string) (*PackageInfo, error) {
	var doc packageDocument
	if err := c.Get(ctx, c.baseURL+"/"+integrations.EscapePackage(name), &doc); err != nil {
		return nil, err
	}

	latest := doc.DistTags["latest"]

	deps := map[string]string{}
	devDeps := map[string]string{}
	if v, ok := doc.Versions[latest]; ok {
		if v.Dependencies != nil {
			deps = v.Dependencies
		}
		if v.DevDependencies != nil {
			devDeps = v.DevDependencies
		}
	}

	license := integrations.ExtractField(doc.License, "type")
	if license == "" {
		license = "Unknown"
	}

	keywords := doc.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	canonical := doc.Name
	if canonical == "" {
		canonical = name
	}

	return &PackageInfo{
		Name:            canonical,
		Version:         latest,
		Description:     doc.Description,
		License:         license,
		Homepage:        doc.Homepage,
		Repository:      integrations.NormalizeRepoURL(integrations.ExtractField(doc.Repository, "url")),
		Keywords:        keywords,
		Dependencies:    deps,
		DevDependencies: devDeps,
	}, nil
}

type searchResponse struct {
	Objects []struct {
		Package struct {
			Name        string   `json:"name"`
			Version     string   `json:"version"`
			Description string   `json:"description"`
			Keywords    []string `json:"keywords"`
		} `json:"package"`
	} `json:"objects"`
	Total int `json:"total"`
}

type packageDocument struct {
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	DistTags    map[string]string          `json:"dist-tags"`
	Versions    map[string]versionDocument `json:"versions"`
	License     any                        `json:"license"`
	Homepage    string                     `json:"homepage"`
	Repository  any                        `json:"repository"`
	Keywords    []string                   `json:"keywords"`
}

type versionDocument struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}
