package metrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/npmscout/npmscout/pkg/integrations/registry"
)

func TestDependencyTree(t *testing.T) {
	info := &registry.PackageInfo{
		Name:            "express",
		Version:         "4.18.0",
		Dependencies:    map[string]string{"debug": "2.6.9", "accepts": "~1.3.8"},
		DevDependencies: map[string]string{"eslint": "8.0.0"},
	}

	out := DependencyTree(info)

	assert.True(t, strings.HasPrefix(out, "express@4.18.0\n"))
	assert.Contains(t, out, "dependencies:\n")
	assert.Contains(t, out, "├── accepts@~1.3.8\n")
	assert.Contains(t, out, "├── debug@2.6.9\n")
	assert.Contains(t, out, "devDependencies:\n")
	assert.Contains(t, out, "├── eslint@8.0.0\n")

	// Entries within a group are sorted for deterministic output.
	assert.Less(t, strings.Index(out, "accepts"), strings.Index(out, "debug"))
	// Runtime dependencies render before devDependencies.
	assert.Less(t, strings.Index(out, "dependencies:"), strings.Index(out, "devDependencies:"))
}

func TestDependencyTree_NoDependencies(t *testing.T) {
	info := &registry.PackageInfo{
		Name:            "tiny",
		Version:         "1.0.0",
		Dependencies:    map[string]string{},
		DevDependencies: map[string]string{},
	}

	out := DependencyTree(info)

	assert.Contains(t, out, NoDependenciesMarker)
	assert.NotContains(t, out, "dependencies:")
	assert.NotContains(t, out, "├──")
}

func TestDependencyTree_OneEmptyGroup(t *testing.T) {
	info := &registry.PackageInfo{
		Name:         "runtime-only",
		Version:      "2.0.0",
		Dependencies: map[string]string{"ms": "2.1.3"},
	}

	out := DependencyTree(info)

	assert.Contains(t, out, "dependencies:\n├── ms@2.1.3\n")
	assert.NotContains(t, out, "devDependencies:")
	assert.NotContains(t, out, NoDependenciesMarker)
}

func TestDependencyTree_NoVersionHeader(t *testing.T) {
	info := &registry.PackageInfo{Name: "unversioned"}
	out := DependencyTree(info)
	assert.True(t, strings.HasPrefix(out, "unversioned\n"))
}
