// Package cli implements the npmscout command-line interface.
//
// Each subcommand maps to one research operation (search, info, downloads,
// compare, trends, deps, bundle, vulns) plus "serve", which exposes the
// same operations over HTTP. The CLI validates arguments, calls into the
// integration clients, and renders the returned records; it contains no
// business logic of its own.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/npmscout/npmscout/pkg/buildinfo"
	"github.com/npmscout/npmscout/pkg/config"
	"github.com/npmscout/npmscout/pkg/integrations/bundlephobia"
	"github.com/npmscout/npmscout/pkg/integrations/downloads"
	"github.com/npmscout/npmscout/pkg/integrations/registry"
)

// appName is the application name used for directories and display.
const appName = "npmscout"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cfg        config.Config
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		cfg: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "npmscout researches npm packages from the command line",
		Long:         `npmscout queries the public npm ecosystem APIs for package metadata, download statistics, bundle sizes, and dependency listings.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/npmscout/config.toml)")

	root.AddCommand(c.searchCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.downloadsCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.trendsCommand())
	root.AddCommand(c.depsCommand())
	root.AddCommand(c.bundleCommand())
	root.AddCommand(c.vulnsCommand())
	root.AddCommand(c.serveCommand())

	return root
}

// Client constructors share the configured endpoints and timeout.

func (c *CLI) registryClient() *registry.Client {
	return registry.NewClient(c.cfg.RegistryURL, c.timeout())
}

func (c *CLI) downloadsClient() *downloads.Client {
	return downloads.NewClient(c.cfg.DownloadsURL, c.timeout())
}

func (c *CLI) bundleClient() *bundlephobia.Client {
	return bundlephobia.NewClient(c.cfg.BundlephobiaURL, c.timeout())
}

func (c *CLI) timeout() time.Duration {
	return c.cfg.Timeout()
}
