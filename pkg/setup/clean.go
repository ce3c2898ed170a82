package setup

import (
	"context"
	"fmt"

	"cartctl/pkg/config"
	"cartctl/pkg/docker"
	"cartctl/pkg/logging"
	"cartctl/pkg/ui"
)

// CleanEnvironment tears down the session resources by name: the Neo4j
// and scanner containers, the session network, and the data volume.
// Every step is best-effort so a half-created session can still be
// cleaned up; resources belonging to other projects are never touched.
func CleanEnvironment(ctx context.Context, rt docker.API, cfg *config.Config) error {
	entry := logging.Component("setup")
	logging.Stage(entry, "clean environment")

	spinner, _ := ui.Spin("Stopping and removing session containers...")
	for _, name := range []string{cfg.GetNeo4jContainer(), cfg.GetScannerContainer()} {
		if err := rt.StopContainer(ctx, name); err != nil {
			ui.Warn.Println(fmt.Sprintf("\nFailed to stop %s (might not be running): %v", name, err))
		}
		if err := rt.RemoveContainer(ctx, name, true); err != nil {
			ui.Warn.Println(fmt.Sprintf("\nFailed to remove %s: %v", name, err))
		}
	}
	spinner.Success("Container removal attempted")

	spinner2, _ := ui.Spin("Removing session network...")
	if err := rt.RemoveNetwork(ctx, cfg.GetNetwork()); err != nil {
		ui.Warn.Println(fmt.Sprintf("\nFailed to remove network %s: %v", cfg.GetNetwork(), err))
	}
	spinner2.Success("Network removal attempted")

	spinner3, _ := ui.Spin("Removing data volume...")
	if err := rt.RemoveVolume(ctx, cfg.GetDataVolume(), true); err != nil {
		ui.Warn.Println(fmt.Sprintf("\nFailed to remove volume %s: %v", cfg.GetDataVolume(), err))
	}
	spinner3.Success("Volume removal attempted")

	logging.Completion(entry, "clean environment")
	return nil
}
