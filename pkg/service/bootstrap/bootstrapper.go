// Package bootstrap assembles the tool registry and the MCP server from the
// loaded configuration.
package bootstrap

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/databrickslabs/databricks-mcp/pkg/infrastructure/databricks"
	"github.com/databrickslabs/databricks-mcp/pkg/service/config"
	"github.com/databrickslabs/databricks-mcp/pkg/service/jobs"
	"github.com/databrickslabs/databricks-mcp/pkg/service/sql"
	"github.com/databrickslabs/databricks-mcp/pkg/service/tools"
	"github.com/databrickslabs/databricks-mcp/pkg/service/unitycatalog"
	"github.com/databrickslabs/databricks-mcp/pkg/service/workspace"
)

// Bootstrapper builds the server components in dependency order
type Bootstrapper struct {
	logger zerolog.Logger
	cfg    *config.Config
	client *databricks.Client
}

// New creates a bootstrapper for the given configuration
func New(logger zerolog.Logger, cfg *config.Config, client *databricks.Client) *Bootstrapper {
	return &Bootstrapper{
		logger: logger.With().Str("component", "bootstrap").Logger(),
		cfg:    cfg,
		client: client,
	}
}

// BuildRegistry registers every enabled service module into a fresh
// registry. Any registration conflict is a startup failure.
func (b *Bootstrapper) BuildRegistry() (*tools.Registry, error) {
	registry := tools.NewRegistry()

	modules := []struct {
		name     string
		register func(*tools.Registry, *databricks.Client) error
	}{
		{config.ServiceSQL, sql.Register},
		{config.ServiceJobs, jobs.Register},
		{config.ServiceUnityCatalog, unitycatalog.Register},
		{config.ServiceWorkspace, workspace.Register},
	}

	for _, m := range modules {
		if !b.cfg.IsServiceEnabled(m.name) {
			b.logger.Info().Str("service", m.name).Msg("Service disabled, skipping registration")
			continue
		}
		if err := m.register(registry, b.client); err != nil {
			return nil, errors.Wrapf(err, "failed to register %s tools", m.name)
		}
		b.logger.Debug().Str("service", m.name).Msg("Registered service tools")
	}

	b.logger.Info().Int("tool_count", registry.Len()).Msg("Tool registry built")
	return registry, nil
}

// CreateMCPServer builds the MCP server and attaches every registered tool
func (b *Bootstrapper) CreateMCPServer(registry *tools.Registry) *server.MCPServer {
	mcpServer := server.NewMCPServer(
		b.cfg.ServiceName,
		b.cfg.ServiceVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	for _, tool := range registry.ListAll() {
		mcpServer.AddTool(tool, b.toolHandler(registry, tool.Name))
		b.logger.Debug().Str("tool", tool.Name).Msg("Attached tool")
	}

	return mcpServer
}

// toolHandler adapts a registry dispatch into an mcp-go handler. Faults
// surface as error-flagged tool results, never as protocol errors.
func (b *Bootstrapper) toolHandler(registry *tools.Registry, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := registry.Dispatch(ctx, name, req.GetArguments())
		if result.IsError() {
			b.logger.Warn().Str("tool", name).Str("message", result.Message).Msg("Tool call failed")
		}
		return result.ToCallToolResult(), nil
	}
}
