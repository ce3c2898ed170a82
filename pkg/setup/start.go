package setup

import (
	"context"
	"fmt"
	"os"
	"time"

	"cartctl/pkg/config"
	"cartctl/pkg/docker"
	"cartctl/pkg/logging"
	"cartctl/pkg/ui"
)

// Neo4jReadyLogLine is the line Neo4j prints once the bolt and http
// connectors are accepting connections.
const Neo4jReadyLogLine = "Started."

// Neo4jDataPath is where the community image stores the database.
const Neo4jDataPath = "/data"

// passwordEnvVar names the environment variable holding the Neo4j
// password for the session.
const passwordEnvVar = "NEO4J_PASSWORD"

// defaultPassword is used when NEO4J_PASSWORD is unset. Local-only
// sessions on ephemeral data make a weak default acceptable here.
const defaultPassword = "test123"

// StartNeo4j replaces any stale Neo4j container with a fresh one wired to
// the session network and data volume, then blocks until the database
// reports readiness in its logs or the configured timeout expires.
func StartNeo4j(ctx context.Context, rt docker.API, cfg *config.Config) error {
	entry := logging.Component("setup")
	name := cfg.GetNeo4jContainer()
	logging.Stage(entry, "start neo4j")

	// A leftover container from a previous session would collide on name
	// and ports. Stop and remove it best-effort, like a stale lock file.
	if err := rt.StopContainer(ctx, name); err == nil {
		ui.Info.Println(fmt.Sprintf("Stopped stale container %s", name))
	}
	_ = rt.RemoveContainer(ctx, name, true)

	password := os.Getenv(passwordEnvVar)
	if password == "" {
		password = defaultPassword
	}

	spinner, _ := ui.Spin("Starting Neo4j...")
	id, err := rt.RunContainer(ctx, docker.RunSpec{
		Name:    name,
		Image:   cfg.GetNeo4jImage(),
		Network: cfg.GetNetwork(),
		Env: []string{
			// Neo4j 4.4 only accepts the built-in neo4j user.
			"NEO4J_AUTH=neo4j/" + password,
			// Cartography needs the APOC procedures.
			`NEO4J_PLUGINS=["apoc"]`,
		},
		Ports: map[int]int{
			7474: cfg.GetHTTPPort(),
			7687: cfg.GetBoltPort(),
		},
		Volumes: map[string]string{
			cfg.GetDataVolume(): Neo4jDataPath,
		},
	})
	if err != nil {
		spinner.Fail("Failed to start Neo4j")
		logging.Failure(entry, "start neo4j", err)
		return err
	}

	waitCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.GetStartTimeoutSec())*time.Second)
	defer cancel()

	if err := rt.WaitForLog(waitCtx, id, Neo4jReadyLogLine); err != nil {
		spinner.Fail("Neo4j did not become ready")
		logging.Failure(entry, "start neo4j", err)
		return err
	}

	spinner.Success(fmt.Sprintf("Neo4j is ready on bolt://localhost:%d", cfg.GetBoltPort()))
	logging.Completion(entry, "start neo4j")
	return nil
}
