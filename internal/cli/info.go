package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// infoCommand creates the "info" subcommand.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <package>",
		Short: "Show package metadata from the registry",
		Long: `Show normalized metadata for a package's latest published version.

Examples:
  npmscout info express
  npmscout info @types/node`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			c.Logger.Debugf("fetching package document for %s", name)

			info, err := c.registryClient().PackageInfo(cmd.Context(), name)
			if err != nil {
				return err
			}

			title := info.Name
			if info.Version != "" {
				title += "@" + info.Version
			}
			printSuccess("%s", StyleTitle.Render(title))
			printNewline()

			if info.Description != "" {
				printKeyValue("description", info.Description)
			}
			printKeyValue("license", info.License)
			if info.Homepage != "" {
				printKeyValue("homepage", StyleLink.Render(info.Homepage))
			}
			if info.Repository != "" {
				printKeyValue("repository", StyleLink.Render(info.Repository))
			}
			if len(info.Keywords) > 0 {
				printKeyValue("keywords", strings.Join(info.Keywords, ", "))
			}
			printKeyValue("dependencies", formatCount(len(info.Dependencies)))
			printKeyValue("devDependencies", formatCount(len(info.DevDependencies)))
			return nil
		},
	}
}
