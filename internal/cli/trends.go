package cli

import (
	"github.com/spf13/cobra"

	"github.com/npmscout/npmscout/pkg/integrations/downloads"
	"github.com/npmscout/npmscout/pkg/metrics"
)

// trendsCommand creates the "trends" subcommand.
func (c *CLI) trendsCommand() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "trends <package>",
		Short: "Show daily download trends for a package",
		Long: `Fetch the daily download series for a package and show aggregate
statistics, a sparkline, and the most recent days.

Examples:
  npmscout trends express
  npmscout trends express --period last-year`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			c.Logger.Debugf("fetching %s download range for %s", period, name)

			rs, err := c.downloadsClient().Range(cmd.Context(), name, period)
			if err != nil {
				return err
			}
			report := metrics.BuildTrend(rs)

			printSuccess("%s %s", StyleTitle.Render(report.Package), StyleDim.Render(report.Start+" to "+report.End))
			printNewline()
			printKeyValue("total", StyleNumber.Render(formatCount(report.Summary.Total)))
			printKeyValue("average/day", StyleNumber.Render(formatCount(report.Summary.Average)))
			printKeyValue("min", formatCount(report.Summary.Min))
			printKeyValue("max", formatCount(report.Summary.Max))
			if report.Sparkline != "" {
				printKeyValue("trend", report.Sparkline)
			}

			if len(report.Tail) > 0 {
				printNewline()
				printInfo("Last %d days", len(report.Tail))
				for _, p := range report.Tail {
					printDetail("%s  %s", p.Day, formatCount(p.Downloads))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&period, "period", "p", downloads.DefaultPeriod, "download period")
	return cmd
}
