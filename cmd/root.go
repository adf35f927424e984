package cmd

import (
	"fmt"
	"os"

	"redelex-panel/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "redelex-panel",
	Short: "Redelex administrative panel backend",
	Long: `Redelex Panel serves the administrative panel: role-based navigation,
users and inmobiliarias management, Redelex process lookups and Excel/PDF reports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var configPath string

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding with the development config gives readable
		// timestamps for CLI failures.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "directory holding the .env file")
}
