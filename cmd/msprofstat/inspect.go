// cmd/msprofstat/inspect.go
package msprofstat

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/msprofstat/cli"
)

var startInspector = cli.StartInspector

var inspectRoot string

// inspectCmd implements 'inspect', an interactive browser over the runs
// of an msprof root.
var inspectCmd = &cobra.Command{
	Use:   "inspect [msprof-root]",
	Short: "Browse runs and their candidate trace files interactively",
	Long:  `The 'inspect' command opens a terminal UI listing every run directory; select a run to see each scanned trace file, the value it offered and why skipped files were ignored.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot(args, inspectRoot)
		if err != nil {
			return err
		}
		res, err := runSuite(root)
		if err != nil {
			return err
		}
		return startInspector(res)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	addRootFlag(inspectCmd, &inspectRoot)
}
