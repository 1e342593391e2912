// Package advisory composes informational vulnerability notes. There is no
// public unauthenticated vulnerability-lookup API available to this system,
// so the note points the caller at the authoritative external sources
// instead of fabricating results.
package advisory

import (
	"context"
	"fmt"
	"net/url"

	"github.com/npmscout/npmscout/pkg/errors"
	"github.com/npmscout/npmscout/pkg/integrations/registry"
)

// PackageFetcher fetches normalized package metadata. Satisfied by
// [registry.Client].
type PackageFetcher interface {
	PackageInfo(ctx context.Context, name string) (*registry.PackageInfo, error)
}

// Note fetches the package document for name (validating that the package
// exists and resolving its canonical name) and returns an instructional
// note pointing at external advisory sources. A metadata fetch failure is
// wrapped so the message identifies the vulnerability check, preserving the
// original cause text.
func Note(ctx context.Context, fetcher PackageFetcher, name string) (string, error) {
	info, err := fetcher.PackageInfo(ctx, name)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeVulnCheck, err, "vulnerability check failed for %s", name)
	}

	query := url.QueryEscape("type:reviewed ecosystem:npm " + info.Name)
	return fmt.Sprintf(`No authoritative vulnerability API is available without authentication.

To check %s for known vulnerabilities:
  - Search the GitHub Advisory Database: https://github.com/advisories?query=%s
  - Run "npm audit" in a project that depends on it
  - Use a scanning service such as Snyk (https://snyk.io/advisor/npm-package/%s)
`, info.Name, query, url.PathEscape(info.Name)), nil
}
