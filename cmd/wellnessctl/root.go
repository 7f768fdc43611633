package main

import (
	"fmt"
	"os"

	"github.com/Dias221467/Wellness_Tracker/internal/config"
	"github.com/Dias221467/Wellness_Tracker/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	outputJSON bool
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "wellnessctl",
	Short: "Operator tool for the wellness tracker",
	Long: `wellnessctl runs the wellness engine against the configured MongoDB.
It reads the same .env and environment variables as the server.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.LoadConfig()
		logger.InitLogger(cfg.LogLevel)
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Print JSON instead of text")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(remindersCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(nudgeCmd)
	rootCmd.AddCommand(cleanupCmd)
}
