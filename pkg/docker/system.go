package docker

import (
	"context"
	"errors"
	"fmt"

	"github.com/docker/docker/api/types/filters"
)

// PruneSystem removes all unused runtime objects, mirroring
// `docker system prune --all --volumes --force`: stopped containers,
// unused networks, all unreferenced images (not just dangling ones), and
// all unused volumes. Each prune family runs even if an earlier one
// failed; errors are joined and reported together.
func (c *Client) PruneSystem(ctx context.Context) (uint64, error) {
	var reclaimed uint64
	var errs []error

	if report, err := c.inner.ContainersPrune(ctx, filters.Args{}); err != nil {
		errs = append(errs, fmt.Errorf("container prune: %w", err))
	} else {
		reclaimed += report.SpaceReclaimed
	}

	if _, err := c.inner.NetworksPrune(ctx, filters.Args{}); err != nil {
		errs = append(errs, fmt.Errorf("network prune: %w", err))
	}

	// dangling=false widens image pruning to every unreferenced image,
	// matching the --all flag of the CLI.
	if report, err := c.inner.ImagesPrune(ctx, filters.NewArgs(filters.Arg("dangling", "false"))); err != nil {
		errs = append(errs, fmt.Errorf("image prune: %w", err))
	} else {
		reclaimed += report.SpaceReclaimed
	}

	// all=true includes named volumes, matching the --volumes flag.
	if report, err := c.inner.VolumesPrune(ctx, filters.NewArgs(filters.Arg("all", "true"))); err != nil {
		errs = append(errs, fmt.Errorf("volume prune: %w", err))
	} else {
		reclaimed += report.SpaceReclaimed
	}

	return reclaimed, errors.Join(errs...)
}
