// Package setup orchestrates the session environment: the bridge network,
// the Neo4j data volume, and the Neo4j container the discovery scanner
// reports into.
package setup

import (
	"context"

	"cartctl/pkg/config"
	"cartctl/pkg/docker"
	"cartctl/pkg/logging"
	"cartctl/pkg/ui"
)

// EnsureEnvironment creates the session network and data volume. Both
// calls are idempotent, so running up twice is safe.
func EnsureEnvironment(ctx context.Context, rt docker.API, cfg *config.Config) error {
	entry := logging.Component("setup")
	logging.Stage(entry, "ensure environment")

	ui.Info.Println("Preparing network and data volume...")

	if err := rt.CreateNetwork(ctx, cfg.GetNetwork()); err != nil {
		logging.Failure(entry, "ensure environment", err)
		return err
	}
	if err := rt.CreateVolume(ctx, cfg.GetDataVolume()); err != nil {
		logging.Failure(entry, "ensure environment", err)
		return err
	}

	logging.Completion(entry, "ensure environment")
	return nil
}
