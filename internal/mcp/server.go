// ABOUTME: MCP server setup for the workout log.
// ABOUTME: Wraps the MCP server with a store connection and resolved user.
package mcp

import (
	"context"

	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with store access. All user-scoped tools
// operate on behalf of the resolved user.
type Server struct {
	mcpServer *mcp.Server
	store     *store.Store
	user      *models.User
}

// NewServer creates a new MCP server bound to the given store and user.
func NewServer(st *store.Store, user *models.User) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "lift",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     st,
		user:      user,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
