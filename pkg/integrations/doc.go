// Package integrations provides the shared HTTP plumbing for the upstream
// API clients (npm registry, download-counts API, bundlephobia).
//
// All upstream access is plain unauthenticated GET returning JSON. Any
// non-success HTTP status is surfaced as an [UpstreamError] carrying the
// numeric status code and the raw response body; there is no retry,
// caching, or rate limiting at this layer.
package integrations
