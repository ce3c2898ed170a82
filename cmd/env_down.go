package cmd

import (
	"context"
	"fmt"
	"os"

	"cartctl/pkg/config"
	"cartctl/pkg/docker"
	"cartctl/pkg/setup"
	"cartctl/pkg/ui"
	"github.com/spf13/cobra"
)

var envDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Tear down the local discovery environment",
	Long:  `Stops and removes the session containers, the session network, and the Neo4j data volume. Resources belonging to other projects are left untouched; use "cartctl reset" for a host-wide teardown.`,
	Run: func(cmd *cobra.Command, args []string) {
		ui.Info.Println("Starting cleanup...")

		rt, err := docker.NewClient()
		if err != nil {
			ui.Error.Println("Failed to create Docker client: " + err.Error())
			os.Exit(1)
		}
		defer func() { _ = rt.Close() }()

		if cleanErr := setup.CleanEnvironment(context.Background(), rt, config.Loaded); cleanErr != nil {
			ui.Error.Println("Cleanup failed: " + cleanErr.Error())
			os.Exit(1)
		}

		ui.Success.Println(fmt.Sprintf("%s Environment cleaned up successfully.", ui.CleanEmoji))
	},
}

func init() {
	envCmd.AddCommand(envDownCmd)
}
