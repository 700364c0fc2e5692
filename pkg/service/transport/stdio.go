package transport

import (
	"context"
	"errors"
	"io"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

// StdioTransport speaks the protocol over stdin and stdout. Logs must go to
// stderr so stdout stays clean for protocol frames.
type StdioTransport struct {
	logger zerolog.Logger
}

// NewStdioTransport creates a new stdio transport
func NewStdioTransport(logger zerolog.Logger) *StdioTransport {
	return &StdioTransport{
		logger: logger.With().Str("component", "stdio_transport").Logger(),
	}
}

// Serve runs the stdio server until stdin closes or ctx is cancelled
func (t *StdioTransport) Serve(ctx context.Context, mcpServer *server.MCPServer) error {
	t.logger.Info().Msg("Starting stdio transport")

	done := make(chan error, 1)
	go func() {
		done <- server.ServeStdio(mcpServer)
	}()

	select {
	case <-ctx.Done():
		t.logger.Info().Msg("Shutting down stdio transport")
		return nil
	case err := <-done:
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
			t.logger.Error().Err(err).Msg("Stdio transport stopped with error")
			return err
		}
		t.logger.Info().Msg("Stdio transport stopped gracefully")
		return nil
	}
}
