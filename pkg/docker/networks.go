package docker

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/network"
)

// CreateNetwork creates a bridge network if it does not exist yet.
// Unlike volumes, network creation is not idempotent at the daemon, so an
// existence check comes first.
func (c *Client) CreateNetwork(ctx context.Context, name string) error {
	existing, err := c.inner.NetworkList(ctx, network.ListOptions{
		Filters: filters.NewArgs(filters.Arg("name", name)),
	})
	if err != nil {
		return fmt.Errorf("failed to list networks: %w", err)
	}
	for _, n := range existing {
		// The name filter matches substrings; confirm exact name.
		if n.Name == name {
			return nil
		}
	}

	if _, err := c.inner.NetworkCreate(ctx, name, network.CreateOptions{Driver: "bridge"}); err != nil {
		return fmt.Errorf("failed to create network %q: %w", name, err)
	}
	return nil
}

// RemoveNetwork removes a network by name or ID.
func (c *Client) RemoveNetwork(ctx context.Context, name string) error {
	if err := c.inner.NetworkRemove(ctx, name); err != nil {
		return fmt.Errorf("failed to remove network %q: %w", name, err)
	}
	return nil
}
