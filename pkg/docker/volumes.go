package docker

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/volume"
)

// ListVolumes returns the names of all named volumes on the host.
func (c *Client) ListVolumes(ctx context.Context) ([]string, error) {
	resp, err := c.inner.VolumeList(ctx, volume.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list volumes: %w", err)
	}

	names := make([]string, 0, len(resp.Volumes))
	for _, v := range resp.Volumes {
		if v != nil {
			names = append(names, v.Name)
		}
	}
	return names, nil
}

// RemoveVolume removes a named volume. With force set the daemon ignores
// a missing volume instead of erroring.
func (c *Client) RemoveVolume(ctx context.Context, name string, force bool) error {
	if err := c.inner.VolumeRemove(ctx, name, force); err != nil {
		return fmt.Errorf("failed to remove volume %q: %w", name, err)
	}
	return nil
}

// CreateVolume creates a named volume. Creating an existing volume is a
// daemon no-op, so the call is idempotent.
func (c *Client) CreateVolume(ctx context.Context, name string) error {
	if _, err := c.inner.VolumeCreate(ctx, volume.CreateOptions{Name: name}); err != nil {
		return fmt.Errorf("failed to create volume %q: %w", name, err)
	}
	return nil
}
