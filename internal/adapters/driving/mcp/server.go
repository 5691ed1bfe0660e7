package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/DiengWinz/acl-chatbot-api/internal/logger"
)

// ServerName identifies the server to MCP clients.
const ServerName = "acl-chatbot"

// Version is the MCP server version.
const Version = "0.1.0"

// instructions is shown to the assistant connecting to the server.
const instructions = `Knowledge base of AfricTivistes CitizenLab (civic tech, digital citizenship, ` +
	`country programmes). Use search_knowledge_base before answering questions about the ` +
	`organisation; pass filter with a country name to stay within one programme.`

// shutdownTimeout bounds how long RunHTTP waits for open sessions.
const shutdownTimeout = 5 * time.Second

// Server exposes the knowledge base to MCP clients.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer registers the tools and resources backed by ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports: ports,
		server: mcp.NewServer(
			&mcp.Implementation{Name: ServerName, Version: Version},
			&mcp.ServerOptions{Instructions: instructions},
		),
	}
	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run serves one client over stdin/stdout until ctx ends or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	logger.Debug("MCP server %s %s on stdio", ServerName, Version)
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the streamable HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)
}

// RunHTTP serves the streamable HTTP transport on addr until ctx ends.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()
	logger.Debug("MCP server %s %s on %s", ServerName, Version, addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down MCP server: %w", err)
		}
		return nil
	}
}
