package advisory

import (
	"context"
	"strings"
	"testing"

	"github.com/npmscout/npmscout/pkg/errors"
	"github.com/npmscout/npmscout/pkg/integrations"
	"github.com/npmscout/npmscout/pkg/integrations/registry"
)

type fakeFetcher struct {
	info *registry.PackageInfo
	err  error
}

func (f *fakeFetcher) PackageInfo(ctx context.Context, name string) (*registry.PackageInfo, error) {
	return f.info, f.err
}

func TestNote(t *testing.T) {
	fetcher := &fakeFetcher{info: &registry.PackageInfo{Name: "minimist", Version: "1.2.8"}}

	note, err := Note(context.Background(), fetcher, "minimist")
	if err != nil {
		t.Fatalf("Note() error: %v", err)
	}

	if !strings.Contains(note, "minimist") {
		t.Error("note should name the package")
	}
	if !strings.Contains(note, "github.com/advisories") {
		t.Error("note should link the GitHub Advisory Database")
	}
	if !strings.Contains(note, "npm audit") {
		t.Error("note should mention npm audit")
	}
}

func TestNote_UsesCanonicalName(t *testing.T) {
	// The registry document's name wins over the raw input.
	fetcher := &fakeFetcher{info: &registry.PackageInfo{Name: "Lodash-Canonical"}}

	note, err := Note(context.Background(), fetcher, "lodash-canonical")
	if err != nil {
		t.Fatalf("Note() error: %v", err)
	}
	if !strings.Contains(note, "Lodash-Canonical") {
		t.Error("note should echo the canonical name from the registry")
	}
}

func TestNote_WrapsFetchFailure(t *testing.T) {
	cause := &integrations.UpstreamError{StatusCode: 404, Body: "Not found"}
	fetcher := &fakeFetcher{err: cause}

	_, err := Note(context.Background(), fetcher, "ghost-pkg")
	if err == nil {
		t.Fatal("expected error when the metadata fetch fails")
	}

	if !errors.Is(err, errors.ErrCodeVulnCheck) {
		t.Errorf("expected ErrCodeVulnCheck, got %v", err)
	}
	if !strings.Contains(err.Error(), "vulnerability check") {
		t.Errorf("message %q should identify the vulnerability check", err.Error())
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("message %q should preserve the cause text", err.Error())
	}
}
