package bundlephobia

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/npmscout/npmscout/pkg/integrations"
)

// DefaultBaseURL is the public bundlephobia size API.
const DefaultBaseURL = "https://bundlephobia.com/api/size"

// BundleSize is the normalized size analysis for one package version.
// Size is the minified byte count, Gzip the gzip-compressed byte count.
type BundleSize struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	Size            int    `json:"size"`
	Gzip            int    `json:"gzip"`
	DependencyCount int    `json:"dependencyCount"`
}

// Client talks to the bundlephobia size API.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a bundlephobia client for baseURL. An empty baseURL
// falls back to [DefaultBaseURL].
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client:  integrations.NewClient(timeout, nil),
		baseURL: baseURL,
	}
}

// Size fetches the bundle size for a package spec. The input is either a
// bare name ("lodash", pinned to @latest) or a name@version spec
// ("lodash@4.17.21", sent unchanged). Absent response fields default to 0,
// "latest", and the name portion of the input.
func (c *Client) Size(ctx context.Context, nameOrSpec string) (*BundleSize, error) {
	spec := nameOrSpec
	if !strings.Contains(spec, "@") {
		spec += "@latest"
	}

	var data sizeResponse
	if err := c.Get(ctx, c.baseURL+"?package="+url.QueryEscape(spec), &data); err != nil {
		return nil, err
	}

	name := data.Name
	if name == "" {
		name, _, _ = strings.Cut(nameOrSpec, "@")
	}
	version := data.Version
	if version == "" {
		version = "latest"
	}
	return &BundleSize{
		Name:            name,
		Version:         version,
		Size:            data.Size,
		Gzip:            data.Gzip,
		DependencyCount: data.DependencyCount,
	}, nil
}

type sizeResponse struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	Size            int    `json:"size"`
	Gzip            int    `json:"gzip"`
	DependencyCount int    `json:"dependencyCount"`
}
