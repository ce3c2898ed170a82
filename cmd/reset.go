package cmd

import (
	"context"
	"fmt"
	"os"

	"cartctl/pkg/dashboard"
	"cartctl/pkg/docker"
	"cartctl/pkg/reset"
	"cartctl/pkg/ui"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Stop and remove ALL containers, images, and volumes on this host",
	Long: `Performs an unconditional reset of the local Docker host: stops every
container, force-removes every container, image, and named volume, then
prunes anything left over.

This is NOT scoped to cartctl's session resources: it destroys all
container state on the host, including resources belonging to other
projects. Use "cartctl env down" for a scoped teardown.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		rt, err := docker.NewClient()
		if err != nil {
			ui.Error.Println("Failed to create Docker client: " + err.Error())
			os.Exit(1)
		}
		defer func() { _ = rt.Close() }()

		// Steps are individually best-effort, but with no daemon at all
		// there is nothing to attempt.
		if err := rt.Ping(ctx); err != nil {
			ui.Error.Println("Docker daemon is unreachable: " + err.Error())
			os.Exit(1)
		}

		ui.Info.Println(ui.NukeEmoji + " Resetting the Docker environment...")

		summary := reset.New(rt).Run(ctx)

		for _, step := range summary.Failed() {
			ui.Warn.Println(fmt.Sprintf("Step %q finished with errors: %v", step.Step, step.Err))
		}
		if summary.SpaceReclaimed > 0 {
			ui.Info.Println("Reclaimed " + dashboard.FormatBytes(summary.SpaceReclaimed))
		}

		ui.Success.Println(fmt.Sprintf("%s Docker environment reset complete.", ui.CleanEmoji))
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
