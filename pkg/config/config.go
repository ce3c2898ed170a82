package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// safeNameRe matches valid Docker object names (containers, networks, volumes).
var safeNameRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

// safeImageRe matches valid image references (registry/repo:tag).
var safeImageRe = regexp.MustCompile(`^[a-z0-9][a-z0-9._/-]*(:[a-zA-Z0-9._-]+)?(@sha256:[a-f0-9]{64})?$`)

// Config represents the structure of a cartctl.yaml configuration file.
type Config struct {
	Neo4jImage       string `yaml:"neo4j-image"`
	Neo4jContainer   string `yaml:"neo4j-container"`
	ScannerContainer string `yaml:"scanner-container"`
	Network          string `yaml:"network"`
	DataVolume       string `yaml:"data-volume"`
	HTTPPort         int    `yaml:"http-port"`
	BoltPort         int    `yaml:"bolt-port"`
	StartTimeoutSec  int    `yaml:"start-timeout-seconds"`
}

// DefaultNeo4jImage is the Neo4j image the discovery stack is pinned to.
// Cartography requires the APOC plugin, which this image supports via
// the NEO4J_PLUGINS environment variable.
const DefaultNeo4jImage = "neo4j:4.4-community"

// DefaultNeo4jContainer is the default name of the Neo4j session container.
const DefaultNeo4jContainer = "cartography-neo4j"

// DefaultScannerContainer is the default name of the Cartography scanner container.
const DefaultScannerContainer = "cartography-account1"

// DefaultNetwork is the default name of the session bridge network.
const DefaultNetwork = "cartography-network"

// DefaultDataVolume is the default name of the Neo4j data volume.
const DefaultDataVolume = "neo4j-data"

// DefaultHTTPPort is the Neo4j browser port published on the host.
const DefaultHTTPPort = 7474

// DefaultBoltPort is the Neo4j bolt port published on the host.
const DefaultBoltPort = 7687

// DefaultStartTimeoutSec bounds how long `env up` waits for Neo4j to
// report readiness in its logs. Neo4j 4.4 with APOC routinely takes
// 30-60 seconds on a cold volume.
const DefaultStartTimeoutSec = 120

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = "cartctl.yaml"

// Loaded holds the currently loaded configuration (populated after Load).
var Loaded *Config

// Load reads and parses the config file at the given path.
// If the file does not exist and the path is the default, an empty config is returned without error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) // #nosec G304 -- config file path is intentionally user-specified via CLI flag
	if err != nil {
		if os.IsNotExist(err) && path == DefaultConfigFile {
			// Default config file is optional
			Loaded = cfg
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error in %s: %w", path, err)
	}

	Loaded = cfg
	return cfg, nil
}

// Validate checks that all configured values are safe and well-formed.
func (c *Config) Validate() error {
	for _, entry := range []struct {
		field, name string
	}{
		{"neo4j-container", c.Neo4jContainer},
		{"scanner-container", c.ScannerContainer},
		{"network", c.Network},
		{"data-volume", c.DataVolume},
	} {
		if entry.name != "" && !safeNameRe.MatchString(entry.name) {
			return fmt.Errorf("%s is not a valid Docker object name: %s", entry.field, entry.name)
		}
	}

	if c.Neo4jImage != "" && !safeImageRe.MatchString(c.Neo4jImage) {
		return fmt.Errorf("neo4j-image is not a valid image reference: %s", c.Neo4jImage)
	}

	for _, entry := range []struct {
		field string
		port  int
	}{
		{"http-port", c.HTTPPort},
		{"bolt-port", c.BoltPort},
	} {
		if entry.port != 0 && (entry.port < 1 || entry.port > 65535) {
			return fmt.Errorf("%s must be between 1 and 65535, got: %d", entry.field, entry.port)
		}
	}

	if c.StartTimeoutSec < 0 {
		return fmt.Errorf("start-timeout-seconds must not be negative, got: %d", c.StartTimeoutSec)
	}

	return nil
}

// GetNeo4jImage returns the configured Neo4j image, falling back to default.
func (c *Config) GetNeo4jImage() string {
	if c != nil && c.Neo4jImage != "" {
		return c.Neo4jImage
	}
	return DefaultNeo4jImage
}

// GetNeo4jContainer returns the configured Neo4j container name, falling back to default.
func (c *Config) GetNeo4jContainer() string {
	if c != nil && c.Neo4jContainer != "" {
		return c.Neo4jContainer
	}
	return DefaultNeo4jContainer
}

// GetScannerContainer returns the configured scanner container name, falling back to default.
func (c *Config) GetScannerContainer() string {
	if c != nil && c.ScannerContainer != "" {
		return c.ScannerContainer
	}
	return DefaultScannerContainer
}

// GetNetwork returns the configured session network name, falling back to default.
func (c *Config) GetNetwork() string {
	if c != nil && c.Network != "" {
		return c.Network
	}
	return DefaultNetwork
}

// GetDataVolume returns the configured data volume name, falling back to default.
func (c *Config) GetDataVolume() string {
	if c != nil && c.DataVolume != "" {
		return c.DataVolume
	}
	return DefaultDataVolume
}

// GetHTTPPort returns the configured Neo4j browser port, falling back to default.
func (c *Config) GetHTTPPort() int {
	if c != nil && c.HTTPPort != 0 {
		return c.HTTPPort
	}
	return DefaultHTTPPort
}

// GetBoltPort returns the configured Neo4j bolt port, falling back to default.
func (c *Config) GetBoltPort() int {
	if c != nil && c.BoltPort != 0 {
		return c.BoltPort
	}
	return DefaultBoltPort
}

// GetStartTimeoutSec returns the configured readiness timeout, falling back to default.
func (c *Config) GetStartTimeoutSec() int {
	if c != nil && c.StartTimeoutSec != 0 {
		return c.StartTimeoutSec
	}
	return DefaultStartTimeoutSec
}
