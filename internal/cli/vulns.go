package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/npmscout/npmscout/pkg/advisory"
)

// vulnsCommand creates the "vulns" subcommand.
func (c *CLI) vulnsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "vulns <package>",
		Short: "Point at vulnerability information for a package",
		Long: `Validate that a package exists and print where to look up its known
vulnerabilities. There is no unauthenticated vulnerability API, so this
command emits pointers to authoritative sources rather than results.

Examples:
  npmscout vulns minimist`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			c.Logger.Debugf("composing advisory note for %s", name)

			note, err := advisory.Note(cmd.Context(), c.registryClient(), name)
			if err != nil {
				return err
			}

			fmt.Print(note)
			return nil
		},
	}
}
