package cmd

import (
	"fmt"
	"os"

	"archive-reporter/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "archive-reporter",
	Short: "Archive Reconciliation Reporter",
	Long: `Archive Reporter serves read-only views over the reconciliation data store:
keyset-paginated mismatch and phantom reports, schema version probes, and
live spot checks of reported objects.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// CLI users expect console output with readable timestamps, so we
		// build a debug/console logger just for the failure report.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
