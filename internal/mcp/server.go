// Package mcp exposes the MP3 search routine as an MCP tool so external
// tool-selecting clients can invoke it over stdio.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
)

const (
	// ServerName is the MCP server name
	ServerName = "mp3search"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// SearchPort is the tool-facing subset of the catalog searcher.
type SearchPort interface {
	SearchQuery(raw string) string
}

// Server wraps the MCP server with the search core.
type Server struct {
	mcp      *server.MCPServer
	searcher SearchPort
}

// NewServer creates an MCP server around the given searcher and registers
// its tools.
func NewServer(searcher SearchPort) *Server {
	s := &Server{
		mcp:      server.NewMCPServer(ServerName, ServerVersion),
		searcher: searcher,
	}
	s.registerTools()
	return s
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchMP3Tool(), s.handleSearchMP3)
}
