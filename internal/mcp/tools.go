package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/symnav-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams  = -32602 // Invalid method parameters
	ErrorCodeInternalError  = -32603 // Internal JSON-RPC error
	ErrorCodeBackendMissing = -32001 // Configured search backend not installed
	ErrorCodeEmptySymbol    = -32002 // Symbol parameter is empty
)

// handleFindDefinitions handles the find_definitions tool invocation
func (s *Server) handleFindDefinitions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol, root, mcpErr := extractQueryArgs(request)
	if mcpErr != nil {
		return nil, mcpErr
	}

	candidates, err := s.navigator.FindDefinitions(ctx, symbol, root)
	if err != nil {
		return nil, queryError(err)
	}

	response := map[string]interface{}{
		"symbol":      symbol,
		"count":       len(candidates),
		"definitions": candidates,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleFindReferences handles the find_references tool invocation
func (s *Server) handleFindReferences(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol, root, mcpErr := extractQueryArgs(request)
	if mcpErr != nil {
		return nil, mcpErr
	}

	candidates, err := s.navigator.FindReferences(ctx, symbol, root)
	if err != nil {
		return nil, queryError(err)
	}

	response := map[string]interface{}{
		"symbol":     symbol,
		"count":      len(candidates),
		"references": candidates,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleLocateSymbol handles the locate_symbol tool invocation
func (s *Server) handleLocateSymbol(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol, root, mcpErr := extractQueryArgs(request)
	if mcpErr != nil {
		return nil, mcpErr
	}

	loc, err := s.navigator.Locate(ctx, symbol, root)
	if err != nil {
		return nil, queryError(err)
	}

	response := map[string]interface{}{
		"symbol":      symbol,
		"definitions": loc.Definitions,
		"references":  loc.References,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// extractQueryArgs pulls the shared root and symbol parameters out of a tool
// request and validates them. The root must resolve; there is no fallback
// guessing when it does not.
func extractQueryArgs(request mcp.CallToolRequest) (symbol, root string, err error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return "", "", newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	root, ok = args["root"].(string)
	if !ok || root == "" {
		return "", "", newMCPError(ErrorCodeInvalidParams, "root parameter is required", map[string]interface{}{
			"param":  "root",
			"reason": "missing or empty",
		})
	}

	symbol, ok = args["symbol"].(string)
	if !ok || symbol == "" {
		return "", "", newMCPError(ErrorCodeEmptySymbol, "symbol parameter is required and cannot be empty", map[string]interface{}{
			"param":  "symbol",
			"reason": "missing or empty",
		})
	}

	if err := validateRoot(root); err != nil {
		return "", "", newMCPError(ErrorCodeInvalidParams, "invalid root", map[string]interface{}{
			"param":  "root",
			"reason": err.Error(),
		})
	}

	return symbol, root, nil
}

// queryError maps a pipeline error to an MCP error
func queryError(err error) error {
	if errors.Is(err, types.ErrBackendNotFound) {
		return newMCPError(ErrorCodeBackendMissing, "search backend not installed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return newMCPError(ErrorCodeInternalError, "query failed", map[string]interface{}{
		"error": err.Error(),
	})
}

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// validateRoot checks that root is an absolute, existing, readable
// directory
func validateRoot(root string) error {
	if !filepath.IsAbs(root) {
		return ErrRootNotAbsolute
	}

	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return ErrRootNotFound
	}
	if err != nil {
		return ErrRootNotReadable
	}

	if !info.IsDir() {
		return ErrRootNotDirectory
	}

	f, err := os.Open(root)
	if err != nil {
		return ErrRootNotReadable
	}
	_ = f.Close()

	return nil
}

// formatJSON formats a response map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// Validation helpers

var (
	ErrRootNotAbsolute  = errors.New("root must be an absolute path")
	ErrRootNotFound     = errors.New("root does not exist")
	ErrRootNotReadable  = errors.New("root is not readable")
	ErrRootNotDirectory = errors.New("root is not a directory")
)
