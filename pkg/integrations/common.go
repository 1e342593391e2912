package integrations

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout is the default HTTP timeout for upstream requests.
const DefaultTimeout = 10 * time.Second

// ErrNetwork is returned for transport-level failures (timeouts, DNS,
// connection errors) where no HTTP status was received.
var ErrNetwork = errors.New("network error")

// NewHTTPClient creates an HTTP client with the given timeout.
// A zero timeout falls back to [DefaultTimeout].
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// EscapePackage percent-encodes a package name for use as a single URL path
// segment. Scoped names like "@scope/name" contain a slash that must be
// encoded as %2F or the registry routes the request incorrectly.
func EscapePackage(name string) string {
	return url.PathEscape(name)
}

// NormalizeRepoURL converts a repository URL to canonical form by stripping
// a leading "git+" prefix and a trailing ".git" suffix. The transformation
// is idempotent. Returns empty string if raw is empty.
func NormalizeRepoURL(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "git+")
	return strings.TrimSuffix(s, ".git")
}

// ExtractField pulls a string out of a loosely-typed registry field that may
// be either a plain string or an object with a named string property, e.g.
// license ("MIT" vs {"type": "MIT"}) and repository (string vs {"url": ...}).
func ExtractField(v any, field string) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		if s, ok := val[field].(string); ok {
			return s
		}
	}
	return ""
}
