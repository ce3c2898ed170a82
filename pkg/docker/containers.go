package docker

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/docker/go-connections/nat"
)

// ListContainers returns a snapshot of containers known to the daemon.
// With all set, stopped and created containers are included.
func (c *Client) ListContainers(ctx context.Context, all bool) ([]Container, error) {
	summaries, err := c.inner.ContainerList(ctx, container.ListOptions{All: all})
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}

	result := make([]Container, 0, len(summaries))
	for _, s := range summaries {
		name := ""
		if len(s.Names) > 0 {
			// The API reports names with a leading "/".
			name = strings.TrimPrefix(s.Names[0], "/")
		}
		result = append(result, Container{
			ID:     s.ID,
			Name:   name,
			Image:  s.Image,
			State:  s.State,
			Status: s.Status,
		})
	}
	return result, nil
}

// StopContainer stops a container by ID or name with the daemon's default
// grace period. Stopping an already-stopped container is a daemon no-op.
func (c *Client) StopContainer(ctx context.Context, id string) error {
	if err := c.inner.ContainerStop(ctx, id, container.StopOptions{}); err != nil {
		return fmt.Errorf("failed to stop container %q: %w", id, err)
	}
	return nil
}

// RemoveContainer removes a container by ID or name. With force set the
// daemon kills a running container before removing it.
func (c *Client) RemoveContainer(ctx context.Context, id string, force bool) error {
	err := c.inner.ContainerRemove(ctx, id, container.RemoveOptions{Force: force})
	if err != nil {
		return fmt.Errorf("failed to remove container %q: %w", id, err)
	}
	return nil
}

// RunContainer creates and starts a detached container per spec and
// returns its ID.
func (c *Client) RunContainer(ctx context.Context, spec RunSpec) (string, error) {
	exposed := nat.PortSet{}
	bindings := nat.PortMap{}
	for containerPort, hostPort := range spec.Ports {
		p, err := nat.NewPort("tcp", strconv.Itoa(containerPort))
		if err != nil {
			return "", fmt.Errorf("invalid container port %d: %w", containerPort, err)
		}
		exposed[p] = struct{}{}
		bindings[p] = []nat.PortBinding{{HostIP: "0.0.0.0", HostPort: strconv.Itoa(hostPort)}}
	}

	binds := make([]string, 0, len(spec.Volumes))
	for volumeName, mountPath := range spec.Volumes {
		binds = append(binds, volumeName+":"+mountPath)
	}

	cfg := &container.Config{
		Image:        spec.Image,
		Env:          spec.Env,
		ExposedPorts: exposed,
	}
	hostCfg := &container.HostConfig{
		PortBindings: bindings,
		Binds:        binds,
	}
	var netCfg *network.NetworkingConfig
	if spec.Network != "" {
		netCfg = &network.NetworkingConfig{
			EndpointsConfig: map[string]*network.EndpointSettings{
				spec.Network: {},
			},
		}
	}

	created, err := c.inner.ContainerCreate(ctx, cfg, hostCfg, netCfg, nil, spec.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create container %q: %w", spec.Name, err)
	}

	if err := c.inner.ContainerStart(ctx, created.ID, container.StartOptions{}); err != nil {
		return "", fmt.Errorf("failed to start container %q: %w", spec.Name, err)
	}

	return created.ID, nil
}

// WaitForLog follows a container's log stream until a line containing
// needle appears, the stream ends, or ctx expires. Callers bound the wait
// through the context.
func (c *Client) WaitForLog(ctx context.Context, id string, needle string) error {
	reader, err := c.inner.ContainerLogs(ctx, id, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     true,
	})
	if err != nil {
		return fmt.Errorf("failed to read logs for container %q: %w", id, err)
	}
	defer func() { _ = reader.Close() }()

	pr, pw := io.Pipe()
	go func() {
		// Demultiplex the daemon's stdout/stderr framing into one stream.
		_, copyErr := stdcopy.StdCopy(pw, pw, reader)
		_ = pw.CloseWithError(copyErr)
	}()

	found := make(chan bool, 1)
	go func() {
		scanner := bufio.NewScanner(pr)
		for scanner.Scan() {
			if strings.Contains(scanner.Text(), needle) {
				found <- true
				return
			}
		}
		found <- false
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("timed out waiting for %q in logs of container %q", needle, id)
	case ok := <-found:
		if !ok {
			return fmt.Errorf("%q not found in logs of container %q before EOF", needle, id)
		}
	}
	return nil
}

// StreamLogs follows a container's log stream, sending each line to the
// lines channel until the stream ends or ctx is cancelled. The channel is
// not closed by this function.
func (c *Client) StreamLogs(ctx context.Context, id string, tail int, lines chan<- string) error {
	reader, err := c.inner.ContainerLogs(ctx, id, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     true,
		Tail:       strconv.Itoa(tail),
	})
	if err != nil {
		return fmt.Errorf("failed to read logs for container %q: %w", id, err)
	}
	defer func() { _ = reader.Close() }()

	pr, pw := io.Pipe()
	go func() {
		_, copyErr := stdcopy.StdCopy(pw, pw, reader)
		_ = pw.CloseWithError(copyErr)
	}()

	scanner := bufio.NewScanner(pr)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil
		case lines <- scanner.Text():
		}
	}
	return nil
}
