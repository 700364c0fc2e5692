package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

// HTTPTransport serves the protocol over SSE
type HTTPTransport struct {
	logger zerolog.Logger
	port   int
}

// NewHTTPTransport creates a new HTTP transport
func NewHTTPTransport(logger zerolog.Logger, port int) *HTTPTransport {
	if port == 0 {
		port = 8080
	}
	return &HTTPTransport{
		logger: logger.With().Str("component", "http_transport").Logger(),
		port:   port,
	}
}

// Serve runs the SSE server until it stops or ctx is cancelled
func (t *HTTPTransport) Serve(ctx context.Context, mcpServer *server.MCPServer) error {
	t.logger.Info().Int("port", t.port).Msg("Starting HTTP transport")

	sseServer := server.NewSSEServer(mcpServer)

	done := make(chan error, 1)
	go func() {
		done <- sseServer.Start(fmt.Sprintf(":%d", t.port))
	}()

	select {
	case <-ctx.Done():
		t.logger.Info().Msg("Shutting down HTTP transport")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return sseServer.Shutdown(shutdownCtx)
	case err := <-done:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			t.logger.Error().Err(err).Msg("HTTP transport stopped with error")
			return err
		}
		t.logger.Info().Msg("HTTP transport stopped gracefully")
		return nil
	}
}
