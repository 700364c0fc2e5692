package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/databrickslabs/databricks-mcp/pkg/infrastructure/databricks"
	"github.com/databrickslabs/databricks-mcp/pkg/service/bootstrap"
	"github.com/databrickslabs/databricks-mcp/pkg/service/config"
	"github.com/databrickslabs/databricks-mcp/pkg/service/transport"
)

// Build-time variables set via ldflags
var (
	// Version is the semantic version of the application
	Version = "dev"
	// GitCommit is the git commit SHA at build time
	GitCommit = "unknown"
	// BuildTime is the time of the build
	BuildTime = "unknown"
)

// FlagConfig holds all command line flags
type FlagConfig struct {
	envFile          *string
	transportType    *string
	httpPort         *int
	logLevel         *string
	disabledServices *string
	version          *bool
}

func parseFlags() *FlagConfig {
	flags := &FlagConfig{
		envFile:          flag.String("env-file", "", "Path to a .env file with credentials and settings"),
		transportType:    flag.String("transport", "", "Transport type (stdio, http)"),
		httpPort:         flag.Int("http-port", 0, "HTTP port for the http transport"),
		logLevel:         flag.String("log-level", "", "Log level (trace, debug, info, warn, error)"),
		disabledServices: flag.String("disable-services", "", "Comma-separated service names to disable (sql, jobs, uc, ws)"),
		version:          flag.Bool("version", false, "Show version information"),
	}
	flag.Parse()
	return flags
}

func main() {
	flags := parseFlags()

	if *flags.version {
		fmt.Println(getVersion())
		os.Exit(0)
	}

	cfg, err := loadAndConfigure(flags)
	if err != nil {
		log.Error().Err(err).Msg("Failed to configure server")
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("Server failed")
		os.Exit(1)
	}
}

// loadAndConfigure loads configuration, applies flag overrides, and sets up
// logging
func loadAndConfigure(flags *FlagConfig) (*config.Config, error) {
	cfg, err := config.Load(*flags.envFile)
	if err != nil {
		return nil, err
	}

	if *flags.transportType != "" {
		cfg.Transport = *flags.transportType
	}
	if *flags.httpPort > 0 {
		cfg.HTTPPort = *flags.httpPort
	}
	if *flags.logLevel != "" {
		cfg.LogLevel = *flags.logLevel
	}
	if *flags.disabledServices != "" {
		cfg.DisableServices(strings.Split(*flags.disabledServices, ","))
	}
	if cfg.ServiceVersion == "dev" {
		cfg.ServiceVersion = Version
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	setupLogging(cfg.LogLevel)
	return cfg, nil
}

func run(cfg *config.Config) error {
	log.Info().
		Str("version", getVersion()).
		Str("transport", cfg.Transport).
		Msg("Starting Databricks MCP Server")

	client := databricks.NewClient(log.Logger)

	bootstrapper := bootstrap.New(log.Logger, cfg, client)
	registry, err := bootstrapper.BuildRegistry()
	if err != nil {
		return err
	}
	mcpServer := bootstrapper.CreateMCPServer(registry)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	manager := transport.NewManager(log.Logger, transport.Type(cfg.Transport), cfg.HTTPPort)
	return manager.Start(ctx, mcpServer)
}

// setupLogging configures the global zerolog logger. Output goes to stderr
// so stdout stays clean for the stdio transport.
func setupLogging(level string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}

// getVersion returns the version information
func getVersion() string {
	if Version == "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime)
	}
	return fmt.Sprintf("v%s (commit: %s, built: %s)", Version, GitCommit, BuildTime)
}
