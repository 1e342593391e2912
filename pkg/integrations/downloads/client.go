package downloads

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/npmscout/npmscout/pkg/integrations"
)

// DefaultBaseURL is the public npm download-counts API.
const DefaultBaseURL = "https://api.npmjs.org"

// DefaultPeriod is used when the caller passes an empty period.
const DefaultPeriod = "last-month"

// Comparison batch bounds enforced by callers.
const (
	MinComparePackages = 2
	MaxComparePackages = 10
)

// Stats holds the download count for one package over one period. Start and
// End are date strings in YYYY-MM-DD form as echoed by the upstream.
type Stats struct {
	Package   string `json:"package"`
	Downloads int    `json:"downloads"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

// Point is one day of a download series.
type Point struct {
	Day       string `json:"day"`
	Downloads int    `json:"downloads"`
}

// RangeStats holds the daily download series for one package over one
// period. Points are chronological as returned by the upstream; an empty
// series is valid (e.g. a brand-new package).
type RangeStats struct {
	Package string  `json:"package"`
	Start   string  `json:"start"`
	End     string  `json:"end"`
	Points  []Point `json:"points"`
}

// Client talks to the npm download-counts API.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a downloads client for baseURL. An empty baseURL falls
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

// Point fetches the total download count for name over period. The
// upstream's package field is used when present, otherwise the input name
// is echoed back.
func (c *Client) Point(ctx context.Context, name, period string) (*Stats, error) {
	if period == "" {
		period = DefaultPeriod
	}

	var data pointResponse
	url := c.baseURL + "/downloads/point/" + period + "/" + integrations.EscapePackage(name)
	if err := c.Get(ctx, url, &data); err != nil {
		return nil, err
	}

	pkg := data.Package
	if pkg == "" {
		pkg = name
	}
	return &Stats{
		Package:   pkg,
		Downloads: data.Downloads,
		Start:     data.Start,
		End:       data.End,
	}, nil
}

// Range fetches the daily download series for name over period.
func (c *Client) Range(ctx context.Context, name, period string) (*RangeStats, error) {
	if period == "" {
		period = DefaultPeriod
	}

	var data rangeResponse
	url := c.baseURL + "/downloads/range/" + period + "/" + integrations.EscapePackage(name)
	if err := c.Get(ctx, url, &data); err != nil {
		return nil, err
	}

	pkg := data.Package
	if pkg == "" {
		pkg = name
	}
	points := make([]Point, 0, len(data.Downloads))
	for _, d := range data.Downloads {
		points = append(points, Point{Day: d.Day, Downloads: d.Downloads})
	}
	return &RangeStats{
		Package: pkg,
		Start:   data.Start,
		End:     data.End,
		Points:  points,
	}, nil
}

// Compare fetches point stats for every package concurrently and returns
// them in input order. There are no partial results: the first failing
// fetch cancels the rest and fails the whole comparison.
func (c *Client) Compare(ctx context.Context, packages []string, period string) ([]Stats, error) {
	results := make([]Stats, len(packages))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, pkg := range packages {
		i, pkg := i, pkg
		eg.Go(func() error {
			stats, err := c.Point(egCtx, pkg, period)
			if err != nil {
				return err
			}
			results[i] = *stats
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type pointResponse struct {
	Downloads int    `json:"downloads"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Package   string `json:"package"`
}

type rangeResponse struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Package   string `json:"package"`
	Downloads []struct {
		Day       string `json:"day"`
		Downloads int    `json:"downloads"`
	} `json:"downloads"`
}
