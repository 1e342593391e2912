package cli

import (
	"github.com/spf13/cobra"
)

// bundleCommand creates the "bundle" subcommand.
func (c *CLI) bundleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bundle <package[@version]>",
		Short: "Show bundle size analysis for a package",
		Long: `Show the minified and gzip byte sizes of a package as reported by
bundlephobia. A bare name is analyzed at its latest version.

Examples:
  npmscout bundle lodash
  npmscout bundle lodash@4.17.21`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := args[0]
			c.Logger.Debugf("fetching bundle size for %s", spec)

			size, err := c.bundleClient().Size(cmd.Context(), spec)
			if err != nil {
				return err
			}

			printSuccess("%s", StyleTitle.Render(size.Name+"@"+size.Version))
			printKeyValue("minified", formatBytes(size.Size))
			printKeyValue("gzip", formatBytes(size.Gzip))
			printKeyValue("dependencies", formatCount(size.DependencyCount))
			return nil
		},
	}
}
