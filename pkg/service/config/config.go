// Package config loads gateway configuration from defaults, an optional
// .env file, and process environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Service names accepted by the enablement map
const (
	ServiceSQL          = "sql"
	ServiceJobs         = "jobs"
	ServiceUnityCatalog = "uc"
	ServiceWorkspace    = "ws"
)

// KnownServices lists every registrable service module
var KnownServices = []string{ServiceSQL, ServiceJobs, ServiceUnityCatalog, ServiceWorkspace}

// Config holds the gateway configuration
type Config struct {
	// Logging settings
	LogLevel string `env:"MCP_LOG_LEVEL"`

	// Transport settings
	Transport string `env:"MCP_TRANSPORT"`
	HTTPPort  int    `env:"MCP_HTTP_PORT"`

	// Service identification
	ServiceName    string `env:"MCP_SERVICE_NAME"`
	ServiceVersion string `env:"MCP_SERVICE_VERSION"`

	// Service enablement, consulted once at server construction
	Services map[string]bool
}

// Load builds the configuration from defaults, an optional env file, and
// environment variables, then validates it
func Load(envFile string) (*Config, error) {
	cfg := DefaultConfig()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns the configuration with every service enabled
func DefaultConfig() *Config {
	services := make(map[string]bool, len(KnownServices))
	for _, name := range KnownServices {
		services[name] = true
	}
	return &Config{
		LogLevel:       "info",
		Transport:      "stdio",
		HTTPPort:       8080,
		ServiceName:    "databricks-mcp",
		ServiceVersion: "dev",
		Services:       services,
	}
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("MCP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("MCP_TRANSPORT"); v != "" {
		cfg.Transport = v
	}
	if v := os.Getenv("MCP_HTTP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.HTTPPort = n
		}
	}
	if v := os.Getenv("MCP_SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}
	if v := os.Getenv("MCP_SERVICE_VERSION"); v != "" {
		cfg.ServiceVersion = v
	}
	if v := os.Getenv("MCP_DISABLED_SERVICES"); v != "" {
		cfg.DisableServices(strings.Split(v, ","))
	}
}

// DisableServices turns off the named services; unknown names are kept so
// Validate can reject them
func (c *Config) DisableServices(names []string) {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		c.Services[name] = false
	}
}

// IsServiceEnabled reports whether a service module should register
func (c *Config) IsServiceEnabled(name string) bool {
	return c.Services[name]
}

// Validate checks the configuration for startup-fatal mistakes
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of: trace, debug, info, warn, error")
	}

	switch c.Transport {
	case "stdio", "http":
	default:
		return fmt.Errorf("transport must be stdio or http")
	}

	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("http_port must be between 1 and 65535")
	}

	known := make(map[string]bool, len(KnownServices))
	for _, name := range KnownServices {
		known[name] = true
	}
	enabled := 0
	for name, on := range c.Services {
		if !known[name] {
			return fmt.Errorf("unknown service name: %s", name)
		}
		if on {
			enabled++
		}
	}
	if enabled == 0 {
		return fmt.Errorf("at least one service must be enabled")
	}

	return nil
}
