package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/dshills/symnav-mcp/internal/config"
	"github.com/dshills/symnav-mcp/internal/navigator"
)

const (
	// ServerName is the MCP server name
	ServerName = "symnav-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp       *server.MCPServer
	cfg       *config.Config
	navigator *navigator.Navigator
}

// NewServer creates a new MCP server instance around a validated
// configuration
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg == nil {
		var err error
		cfg, err = config.Load("")
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
	}

	nav := navigator.New(cfg)

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:       mcpServer,
		cfg:       cfg,
		navigator: nav,
	}

	// Register tools
	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() error {
	// Register find_definitions tool
	s.mcp.AddTool(findDefinitionsTool(), s.handleFindDefinitions)

	// Register find_references tool
	s.mcp.AddTool(findReferencesTool(), s.handleFindReferences)

	// Register locate_symbol tool
	s.mcp.AddTool(locateSymbolTool(), s.handleLocateSymbol)

	return nil
}
