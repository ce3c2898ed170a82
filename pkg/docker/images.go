package docker

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/image"
)

// ListImages returns the IDs of all top-level images stored on the host,
// matching what `docker images -q` shows.
func (c *Client) ListImages(ctx context.Context) ([]string, error) {
	summaries, err := c.inner.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	ids := make([]string, 0, len(summaries))
	for _, s := range summaries {
		ids = append(ids, s.ID)
	}
	return ids, nil
}

// RemoveImage removes an image by ID. With force set the daemon bypasses
// the in-use reference check (e.g. an image still referenced by a stopped
// container) and untags before deleting.
func (c *Client) RemoveImage(ctx context.Context, id string, force bool) error {
	_, err := c.inner.ImageRemove(ctx, id, image.RemoveOptions{
		Force:         force,
		PruneChildren: true,
	})
	if err != nil {
		return fmt.Errorf("failed to remove image %q: %w", id, err)
	}
	return nil
}
