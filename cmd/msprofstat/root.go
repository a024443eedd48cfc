// cmd/msprofstat/root.go
package msprofstat

import (
	"fmt"
	"os"

	"github.com/k0kubun/pp"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/msprofstat/harness"
	"github.com/mwiater/msprofstat/internal/config"
	"github.com/mwiater/msprofstat/internal/logger"
	"github.com/mwiater/msprofstat/internal/trace"
)

// cfgFile is the optional config file given with --config.
var cfgFile string

// settings is resolved once per invocation in PersistentPreRunE.
var settings config.Settings

// rootCmd is the base Cobra command for the msprofstat application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "msprofstat",
	Short: "Kernel latency statistics from msprof trace exports",
	Long: `msprofstat scans the CSV exports of repeated msprof profiling runs, picks one
kernel latency per run and reports its average, p50 and p90.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := viper.GetViper()
		if err := config.ReadFile(v, cfgFile); err != nil {
			return err
		}
		settings = config.FromViper(v)
		logger.Init(logger.Config{Level: settings.LogLevel, Format: settings.LogFormat})
		if settings.Debug {
			pp.Fprintln(cmd.ErrOrStderr(), settings)
		}
		return nil
	},
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	v := viper.GetViper()
	config.SetDefaults(v)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (yaml, json or toml)")
	pf.StringP("pattern", "p", trace.DefaultPattern, "case-insensitive regex selecting target op rows")
	pf.String("run-prefix", trace.DefaultRunPrefix, "name prefix of numbered run directories")
	pf.String("log-level", "warn", "log level: debug, info, warn or error (logs go to stderr)")
	pf.String("log-format", "text", "log format: text or json")
	pf.Bool("debug", false, "dump the resolved settings to stderr")
	pf.Bool("json", false, "write JSON instead of text")

	for key, flag := range map[string]string{
		config.KeyPattern:   "pattern",
		config.KeyRunPrefix: "run-prefix",
		config.KeyLogLevel:  "log-level",
		config.KeyLogFormat: "log-format",
		config.KeyDebug:     "debug",
		config.KeyJSON:      "json",
	} {
		_ = v.BindPFlag(key, pf.Lookup(flag))
	}
}

// addRootFlag registers --msprof-root, accepted in place of the
// positional root argument.
func addRootFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "msprof-root", "", "msprof output root (alternative to the positional argument)")
}

// resolveRoot picks the positional root over --msprof-root.
func resolveRoot(args []string, flagRoot string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if flagRoot != "" {
		return flagRoot, nil
	}
	return "", errors.New("an msprof root directory is required")
}

// runSuite scrapes root with the resolved settings.
func runSuite(root string) (harness.SuiteResult, error) {
	return harness.RunScrapeSuite(harness.SuiteConfig{
		Root:      root,
		Pattern:   settings.Pattern,
		RunPrefix: settings.RunPrefix,
	})
}
