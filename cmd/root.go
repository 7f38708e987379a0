package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"schedsim/config"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Deterministic single-core CPU scheduling simulator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logLevel
		if level == "" {
			level = config.GetSchedulerConfig().LogLevel
		}
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			logrus.Fatalf("invalid log level: %s", level)
		}
		logrus.SetLevel(parsed)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log verbosity (overrides config log_level)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runCmd)
}
