// cmd/msprofstat/scrape.go
package msprofstat

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/msprofstat/internal/config"
	"github.com/mwiater/msprofstat/internal/report"
)

var scrapeRoot string

// scrapeCmd implements 'scrape', the kernel latency summary consumed by
// the benchmark comparison driver.
var scrapeCmd = &cobra.Command{
	Use:   "scrape [msprof-root]",
	Short: "Print AVG/P50/P90 kernel latency for an msprof root",
	Long: `The 'scrape' command extracts one kernel latency per run directory under the
msprof root and prints:

  [KERNEL] AVG_MS=<ms|NA>
  [KERNEL] P50_MS=<ms|NA>
  [KERNEL] P90_MS=<ms|NA>
  [KERNEL] SAMPLES=<n>
  [KERNEL] SOURCE=<path|NA>

A missing root or a root without usable data prints NA fields and still
exits 0. Use --json for a JSON document or --pretty for a styled summary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot(args, scrapeRoot)
		if err != nil {
			return err
		}
		res, err := runSuite(root)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch {
		case settings.JSON:
			return report.WriteJSON(out, res)
		case settings.Pretty:
			_, err := fmt.Fprint(out, report.RenderSummary(res))
			return err
		}
		return report.WriteLines(out, res.Aggregate)
	},
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
	addRootFlag(scrapeCmd, &scrapeRoot)
	scrapeCmd.Flags().Bool("pretty", false, "print a styled human-readable summary")
	_ = viper.BindPFlag(config.KeyPretty, scrapeCmd.Flags().Lookup("pretty"))
}
