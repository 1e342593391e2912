// Package config loads optional npmscout configuration from a TOML file.
//
// Every setting has a compiled-in default, so running without a config
// file is the normal case. The file can override upstream endpoint URLs
// (useful for mirrors and tests), the HTTP timeout, and the default
// download period.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/npmscout/npmscout/pkg/integrations"
	"github.com/npmscout/npmscout/pkg/integrations/bundlephobia"
	"github.com/npmscout/npmscout/pkg/integrations/downloads"
	"github.com/npmscout/npmscout/pkg/integrations/registry"
)

// Config holds endpoint and behavior settings for the upstream clients.
type Config struct {
	RegistryURL     string `toml:"registry_url"`
	DownloadsURL    string `toml:"downloads_url"`
	BundlephobiaURL string `toml:"bundlephobia_url"`
	TimeoutSeconds  int    `toml:"timeout_seconds"`
	DefaultPeriod   string `toml:"default_period"`
}

// Default returns the compiled-in configuration pointing at the public
// npm services.
func Default() Config {
	return Config{
		RegistryURL:     registry.DefaultBaseURL,
		DownloadsURL:    downloads.DefaultBaseURL,
		BundlephobiaURL: bundlephobia.DefaultBaseURL,
		TimeoutSeconds:  int(integrations.DefaultTimeout / time.Second),
		DefaultPeriod:   downloads.DefaultPeriod,
	}
}

// DefaultPath returns the default config file location,
// ~/.config/npmscout/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "npmscout", "config.toml"), nil
}

// Load reads configuration from path, filling unset fields from Default.
// An empty path means the default location; a missing file at the default
// location is not an error and yields Default unchanged. A missing file at
// an explicitly given path is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	var file Config
	if _, err := toml.DecodeFile(path, &file); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, err
	}

	if file.RegistryURL != "" {
		cfg.RegistryURL = file.RegistryURL
	}
	if file.DownloadsURL != "" {
		cfg.DownloadsURL = file.DownloadsURL
	}
	if file.BundlephobiaURL != "" {
		cfg.BundlephobiaURL = file.BundlephobiaURL
	}
	if file.TimeoutSeconds > 0 {
		cfg.TimeoutSeconds = file.TimeoutSeconds
	}
	if file.DefaultPeriod != "" {
		cfg.DefaultPeriod = file.DefaultPeriod
	}
	return cfg, nil
}

// Timeout returns the HTTP timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
