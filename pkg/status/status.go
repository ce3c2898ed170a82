package status

import (
	"context"

	"cartctl/pkg/config"
	"cartctl/pkg/docker"
	"cartctl/pkg/env"
)

// ContainerStat describes one session container for display.
type ContainerStat struct {
	Name   string
	State  string
	Status string
	Image  string
}

// HostStat holds host-wide resource totals. The counts come from live
// enumerations and go stale immediately; they are display-only.
type HostStat struct {
	Containers int
	Images     int
	Volumes    int
}

// PortStat reports whether a published port is bound on the host.
type PortStat struct {
	Name  string
	Port  int
	InUse bool
}

// EnvironmentStatus is everything `env status` and the dashboard show.
type EnvironmentStatus struct {
	Session []ContainerStat
	Host    HostStat
	Ports   []PortStat
}

// Gather collects the current environment status. Daemon errors degrade
// to zero counts and "Stopped" session entries rather than failing, so
// status stays usable while the daemon is down.
func Gather(ctx context.Context, rt docker.API, cfg *config.Config) EnvironmentStatus {
	var containers []docker.Container
	if rt != nil {
		containers, _ = rt.ListContainers(ctx, true)
	}

	st := EnvironmentStatus{
		Session: SessionStats(containers, cfg),
		Ports: []PortStat{
			{Name: "Neo4j Browser", Port: cfg.GetHTTPPort(), InUse: !env.IsPortAvailable(cfg.GetHTTPPort())},
			{Name: "Neo4j Bolt", Port: cfg.GetBoltPort(), InUse: !env.IsPortAvailable(cfg.GetBoltPort())},
		},
	}

	st.Host.Containers = len(containers)
	if rt != nil {
		if images, err := rt.ListImages(ctx); err == nil {
			st.Host.Images = len(images)
		}
		if volumes, err := rt.ListVolumes(ctx); err == nil {
			st.Host.Volumes = len(volumes)
		}
	}

	return st
}

// SessionStats maps the daemon's container snapshot onto the two session
// containers, defaulting to Stopped when a container does not exist.
func SessionStats(containers []docker.Container, cfg *config.Config) []ContainerStat {
	neo4j := ContainerStat{Name: cfg.GetNeo4jContainer(), State: "Stopped", Status: "-", Image: "-"}
	scanner := ContainerStat{Name: cfg.GetScannerContainer(), State: "Stopped", Status: "-", Image: "-"}

	for _, c := range containers {
		switch c.Name {
		case cfg.GetNeo4jContainer():
			neo4j.State = c.State
			neo4j.Status = c.Status
			neo4j.Image = c.Image
		case cfg.GetScannerContainer():
			scanner.State = c.State
			scanner.Status = c.Status
			scanner.Image = c.Image
		}
	}

	return []ContainerStat{neo4j, scanner}
}
