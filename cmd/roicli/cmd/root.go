// Package cmd provides the CLI commands for roicli.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"roi-agent/config"
	"roi-agent/logging"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "roicli",
	Short: "Evaluate investment projects from the command line",
	Long: `roicli computes standard project-finance metrics (ROI, NPV, payback
period, IRR) for an investment project, derives best/worst scenarios and
prints threshold-rule recommendations.

Examples:
  roicli analyze --investment 150000 --revenue 75000 --duration 24
  roicli analyze --file project.yaml --report`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = "config.yaml"
	}

	loaded, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
}
