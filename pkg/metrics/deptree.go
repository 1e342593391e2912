package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npmscout/npmscout/pkg/integrations/registry"
)

// NoDependenciesMarker is rendered when a package declares neither
// dependencies nor devDependencies.
const NoDependenciesMarker = "No dependencies"

// branchConnector prefixes every dependency line. The listing is direct
// dependencies only, one level deep, so every entry gets the same
// connector; there is no transitive resolution and no last-entry corner.
const branchConnector = "├── "

// DependencyTree renders the direct dependencies of a package as two
// labeled groups of name@versionRange lines.
func DependencyTree(info *registry.PackageInfo) string {
	var b strings.Builder

	header := info.Name
	if info.Version != "" {
		header += "@" + info.Version
	}
	b.WriteString(header + "\n")

	if len(info.Dependencies) == 0 && len(info.DevDependencies) == 0 {
		b.WriteString(NoDependenciesMarker + "\n")
		return b.String()
	}

	writeGroup(&b, "dependencies:", info.Dependencies)
	writeGroup(&b, "devDependencies:", info.DevDependencies)
	return b.String()
}

func writeGroup(b *strings.Builder, label string, deps map[string]string) {
	if len(deps) == 0 {
		return
	}

	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	b.WriteString(label + "\n")
	for _, name := range names {
		fmt.Fprintf(b, "%s%s@%s\n", branchConnector, name, deps[name])
	}
}
