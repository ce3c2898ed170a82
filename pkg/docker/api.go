// Package docker wraps the Docker Engine SDK behind a narrow capability
// interface so that the teardown and orchestration logic never touches
// SDK types directly and can be tested against a mock runtime.
package docker

import "context"

// Container is the subset of container state the CLI cares about.
type Container struct {
	ID     string
	Name   string
	Image  string
	State  string // short state: running, exited, created, ...
	Status string // human-readable status line from the daemon
}

// RunSpec describes a detached container to create and start.
type RunSpec struct {
	Name    string
	Image   string
	Network string
	Env     []string
	// Ports maps container port to host port (TCP).
	Ports map[int]int
	// Volumes maps named volume to its mount path inside the container.
	Volumes map[string]string
}

// API is the capability surface cartctl needs from a container runtime:
// enumerate, stop, remove, prune, and a handful of create/run calls for
// the session environment. The daemon owns all state; every List call
// reflects a point-in-time snapshot with no transactional guarantee.
type API interface {
	Ping(ctx context.Context) error

	ListContainers(ctx context.Context, all bool) ([]Container, error)
	StopContainer(ctx context.Context, id string) error
	RemoveContainer(ctx context.Context, id string, force bool) error

	ListImages(ctx context.Context) ([]string, error)
	RemoveImage(ctx context.Context, id string, force bool) error

	ListVolumes(ctx context.Context) ([]string, error)
	RemoveVolume(ctx context.Context, name string, force bool) error
	CreateVolume(ctx context.Context, name string) error

	CreateNetwork(ctx context.Context, name string) error
	RemoveNetwork(ctx context.Context, name string) error

	RunContainer(ctx context.Context, spec RunSpec) (string, error)
	WaitForLog(ctx context.Context, id string, needle string) error
	StreamLogs(ctx context.Context, id string, tail int, lines chan<- string) error

	// PruneSystem removes all unused containers, networks, images and
	// volumes in one sweep, returning the bytes reclaimed.
	PruneSystem(ctx context.Context) (uint64, error)

	Close() error
}
