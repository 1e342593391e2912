package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/npmscout/npmscout/pkg/errors"
	"github.com/npmscout/npmscout/pkg/integrations/registry"
)

// searchCommand creates the "search" subcommand.
func (c *CLI) searchCommand() *cobra.Command {
	size := registry.DefaultSearchSize

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the npm registry",
		Long: `Search the npm registry and list matching packages in upstream
ranking order.

Examples:
  npmscout search "web framework"
  npmscout search react --size 25`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < registry.MinSearchSize || size > registry.MaxSearchSize {
				return errors.New(errors.ErrCodeInvalidInput, "size must be between %d and %d, got %d",
					registry.MinSearchSize, registry.MaxSearchSize, size)
			}

			query := args[0]
			c.Logger.Debugf("searching registry for %q (size=%d)", query, size)

			results, err := c.registryClient().Search(cmd.Context(), query, size)
			if err != nil {
				return err
			}

			if len(results) == 0 {
				printInfo("No packages found for %q", query)
				return nil
			}

			printSuccess("%d packages for %q", len(results), query)
			printNewline()
			for _, r := range results {
				name := r.Name
				if r.Version != "" {
					name += StyleDim.Render("@" + r.Version)
				}
				printInfo("%s", StyleTitle.Render(name))
				if r.Description != "" {
					printDetail("%s", r.Description)
				}
				if len(r.Keywords) > 0 {
					printDetail("keywords: %s", strings.Join(r.Keywords, ", "))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", size, "number of results (1-50)")
	return cmd
}
