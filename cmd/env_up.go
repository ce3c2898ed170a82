package cmd

import (
	"context"
	"fmt"
	"os"

	"cartctl/pkg/config"
	"cartctl/pkg/docker"
	"cartctl/pkg/env"
	"cartctl/pkg/setup"
	"cartctl/pkg/ui"
	"github.com/spf13/cobra"
)

var envUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Bring up the local discovery environment",
	Long:  `Creates the session network and data volume, then starts the Neo4j container with the APOC plugin enabled and waits for it to accept connections.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Loaded
		ctx := context.Background()

		if !env.IsPortAvailable(cfg.GetHTTPPort()) {
			ui.Error.Println(fmt.Sprintf("Port %d (Neo4j browser) is already in use by another process. Please free it up.", cfg.GetHTTPPort()))
			os.Exit(1)
		}
		if !env.IsPortAvailable(cfg.GetBoltPort()) {
			ui.Error.Println(fmt.Sprintf("Port %d (Neo4j bolt) is already in use by another process. Please free it up.", cfg.GetBoltPort()))
			os.Exit(1)
		}

		rt, err := docker.NewClient()
		if err != nil {
			ui.Error.Println("Failed to create Docker client: " + err.Error())
			os.Exit(1)
		}
		defer func() { _ = rt.Close() }()

		if err := rt.Ping(ctx); err != nil {
			ui.Error.Println("Docker daemon is unreachable: " + err.Error())
			os.Exit(1)
		}

		if err := setup.EnsureEnvironment(ctx, rt, cfg); err != nil {
			ui.Error.Println("Environment setup failed: " + err.Error())
			os.Exit(1)
		}

		if err := setup.StartNeo4j(ctx, rt, cfg); err != nil {
			ui.Error.Println("Start failed: " + err.Error())
			ui.Warn.Println("The environment may be partially initialized. It is recommended to run `cartctl env down` before trying again.")
			os.Exit(1)
		}

		fmt.Println("\n" + ui.GlobeEmoji + " Neo4j browser: http://localhost:" + fmt.Sprint(cfg.GetHTTPPort()))
		ui.Success.Println(fmt.Sprintf("%s Environment is up! Neo4j is running and ready for discovery data.", ui.GraphEmoji))
	},
}

func init() {
	envCmd.AddCommand(envUpCmd)
}
