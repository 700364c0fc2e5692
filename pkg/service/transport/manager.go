// Package transport handles MCP transport layer concerns
package transport

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

// Type identifies a wire transport
type Type string

const (
	TypeStdio Type = "stdio"
	TypeHTTP  Type = "http"
)

// Manager handles transport lifecycle management
type Manager struct {
	logger        zerolog.Logger
	transportType Type
	httpPort      int
}

// NewManager creates a new transport manager
func NewManager(logger zerolog.Logger, transportType Type, httpPort int) *Manager {
	return &Manager{
		logger:        logger.With().Str("component", "transport_manager").Logger(),
		transportType: transportType,
		httpPort:      httpPort,
	}
}

// Start runs the configured transport until it stops or ctx is cancelled
func (m *Manager) Start(ctx context.Context, mcpServer *server.MCPServer) error {
	m.logger.Info().Str("type", string(m.transportType)).Msg("Starting transport")

	switch m.transportType {
	case TypeStdio:
		return NewStdioTransport(m.logger).Serve(ctx, mcpServer)

	case TypeHTTP:
		return NewHTTPTransport(m.logger, m.httpPort).Serve(ctx, mcpServer)

	default:
		return fmt.Errorf("unsupported transport type: %s", m.transportType)
	}
}
