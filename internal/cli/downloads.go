package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/npmscout/npmscout/pkg/errors"
	"github.com/npmscout/npmscout/pkg/integrations/downloads"
)

// downloadsCommand creates the "downloads" subcommand.
func (c *CLI) downloadsCommand() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "downloads <package>",
		Short: "Show download counts for a package",
		Long: `Show the total download count for a package over a period.

Periods are upstream tokens: last-day, last-week, last-month, last-year.

Examples:
  npmscout downloads lodash
  npmscout downloads lodash --period last-week`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			c.Logger.Debugf("fetching %s downloads for %s", period, name)

			stats, err := c.downloadsClient().Point(cmd.Context(), name, period)
			if err != nil {
				return err
			}

			printSuccess("%s", StyleTitle.Render(stats.Package))
			printKeyValue("downloads", StyleNumber.Render(formatCount(stats.Downloads)))
			printKeyValue("period", period)
			printKeyValue("range", stats.Start+" to "+stats.End)
			return nil
		},
	}

	cmd.Flags().StringVarP(&period, "period", "p", downloads.DefaultPeriod, "download period")
	return cmd
}

// compareCommand creates the "compare" subcommand.
func (c *CLI) compareCommand() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "compare <package> <package> [package...]",
		Short: "Compare download counts across packages",
		Long: `Fetch download counts for several packages concurrently and list them
by descending count. A failure for any one package fails the whole
comparison.

Examples:
  npmscout compare react vue svelte
  npmscout compare lodash underscore --period last-week`,
		Args: cobra.MinimumNArgs(downloads.MinComparePackages),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > downloads.MaxComparePackages {
				return errors.New(errors.ErrCodeInvalidInput, "compare takes at most %d packages, got %d",
					downloads.MaxComparePackages, len(args))
			}

			c.Logger.Debugf("comparing %d packages over %s", len(args), period)

			results, err := c.downloadsClient().Compare(cmd.Context(), args, period)
			if err != nil {
				return err
			}

			// The client preserves input order; descending count is a
			// display choice made here.
			sort.SliceStable(results, func(i, j int) bool {
				return results[i].Downloads > results[j].Downloads
			})

			printSuccess("Downloads over %s", period)
			printNewline()
			for i, r := range results {
				printInfo("%d. %s %s", i+1, StyleTitle.Render(r.Package),
					StyleNumber.Render(formatCount(r.Downloads)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&period, "period", "p", downloads.DefaultPeriod, "download period")
	return cmd
}
