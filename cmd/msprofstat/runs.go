// cmd/msprofstat/runs.go
package msprofstat

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/msprofstat/internal/report"
)

var runsRoot string

// runsCmd implements 'runs', a per-run breakdown of what scrape picked.
var runsCmd = &cobra.Command{
	Use:   "runs [msprof-root]",
	Short: "Show the value, column and source file picked for each run",
	Long:  `The 'runs' command prints one row per discovered run directory with the extracted kernel latency, whether rows matched the pattern or the fallback was used, the timing column and the source file.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot(args, runsRoot)
		if err != nil {
			return err
		}
		res, err := runSuite(root)
		if err != nil {
			return err
		}
		if settings.JSON {
			return report.WriteRunsJSON(cmd.OutOrStdout(), res.Runs)
		}
		report.WriteRunsTable(cmd.OutOrStdout(), res.Runs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)
	addRootFlag(runsCmd, &runsRoot)
}
