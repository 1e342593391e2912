package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/npmscout/npmscout/pkg/metrics"
)

// depsCommand creates the "deps" subcommand.
func (c *CLI) depsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deps <package>",
		Short: "List direct dependencies of a package",
		Long: `List the direct dependencies and devDependencies declared by a
package's latest version. The listing is one level deep; there is no
transitive resolution.

Examples:
  npmscout deps express`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			c.Logger.Debugf("fetching dependency listing for %s", name)

			info, err := c.registryClient().PackageInfo(cmd.Context(), name)
			if err != nil {
				return err
			}

			fmt.Print(metrics.DependencyTree(info))
			return nil
		},
	}
}
