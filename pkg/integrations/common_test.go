package integrations

import "testing"

func TestNormalizeRepoURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"git+https://github.com/x/y.git", "https://github.com/x/y"},
		{"https://github.com/x/y.git", "https://github.com/x/y"},
		{"git+ssh://git@github.com/x/y", "ssh://git@github.com/x/y"},
		{"https://github.com/x/y", "https://github.com/x/y"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeRepoURL(tt.input); got != tt.expected {
				t.Errorf("NormalizeRepoURL(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeRepoURL_Idempotent(t *testing.T) {
	inputs := []string{
		"git+https://github.com/x/y.git",
		"https://github.com/x/y",
		"git+ssh://git@gitlab.com/a/b.git",
	}
	for _, in := range inputs {
		once := NormalizeRepoURL(in)
		twice := NormalizeRepoURL(once)
		if once != twice {
			t.Errorf("NormalizeRepoURL not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestEscapePackage(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"lodash", "lodash"},
		{"@types/node", "@types%2Fnode"},
		{"@scope/name", "@scope%2Fname"},
	}

	for _, tt := range tests {
		if got := EscapePackage(tt.input); got != tt.expected {
			t.Errorf("EscapePackage(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestExtractField(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		field    string
		expected string
	}{
		{"plain string", "MIT", "type", "MIT"},
		{"object with field", map[string]any{"type": "MIT"}, "type", "MIT"},
		{"object missing field", map[string]any{"name": "x"}, "type", ""},
		{"object non-string field", map[string]any{"type": 1}, "type", ""},
		{"nil", nil, "type", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractField(tt.value, tt.field); got != tt.expected {
				t.Errorf("ExtractField() = %q, want %q", got, tt.expected)
			}
		})
	}
}
