package cmd

import (
	"os"

	"cartctl/pkg/config"
	"cartctl/pkg/logging"
	"cartctl/pkg/ui"
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "cartctl",
	Short: "cartctl manages the local Docker environment for AWS discovery sessions",
	Long:  `A CLI to bring up, inspect, and tear down the local Docker environment used by Cartography-based AWS infrastructure discovery: the Neo4j graph database, its data volume, and the session network.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := logging.Init(); err != nil {
			// The audit log is best-effort; the CLI works without it.
			_ = err
		}

		cfg, err := config.Load(configFile)
		if err != nil {
			ui.Error.Println("Failed to load config: " + err.Error())
			os.Exit(1)
		}
		config.Loaded = cfg
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config-file", config.DefaultConfigFile, "Path to the cartctl.yaml configuration file")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ui.PrintBanner()
	if err := rootCmd.Execute(); err != nil {
		ui.Error.Println(err.Error())
		os.Exit(1)
	}
}

// GetRootCmd returns the root cobra command
func GetRootCmd() *cobra.Command {
	return rootCmd
}
