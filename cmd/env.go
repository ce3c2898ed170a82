package cmd

import (
	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Manage the local discovery session environment",
	Long:  `The env command groups operations to bring up, inspect, and tear down the Neo4j session environment the discovery scanner reports into.`,
}

func init() {
	rootCmd.AddCommand(envCmd)
}
