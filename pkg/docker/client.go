package docker

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/docker/client"
)

// pingTimeout bounds the daemon liveness probe. Docker Desktop on macOS
// can be slow to answer the first request after idling.
const pingTimeout = 5 * time.Second

// Client implements API on top of the Docker Engine SDK.
type Client struct {
	inner *client.Client
}

var _ API = (*Client)(nil)

// NewClient creates a Docker client from the environment (DOCKER_HOST,
// DOCKER_TLS_VERIFY, DOCKER_CERT_PATH) with automatic API version
// negotiation, falling back to the platform default socket.
func NewClient() (*Client, error) {
	c, err := client.NewClientWithOpts(
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}
	return &Client{inner: c}, nil
}

// Ping verifies the daemon is reachable and responsive.
func (c *Client) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if _, err := c.inner.Ping(pingCtx); err != nil {
		return fmt.Errorf("docker daemon is not responding: %w", err)
	}
	return nil
}

// Close releases the client's transport resources. Safe to call twice.
func (c *Client) Close() error {
	if c.inner != nil {
		return c.inner.Close()
	}
	return nil
}
