package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// queryProperties is the shared input schema for the navigation tools
func queryProperties() map[string]interface{} {
	return map[string]interface{}{
		"root": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the project root the search runs under",
		},
		"symbol": map[string]interface{}{
			"type":        "string",
			"description": "The symbol to locate (taken verbatim, never shell-interpolated)",
		},
	}
}

// findDefinitionsTool returns the tool definition for find_definitions
func findDefinitionsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "find_definitions",
		Description: "Locate definition occurrences of a symbol by running the configured search backend over the project tree",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: queryProperties(),
			Required:   []string{"root", "symbol"},
		},
	}
}

// findReferencesTool returns the tool definition for find_references
func findReferencesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "find_references",
		Description: "Locate reference occurrences of a symbol by running the configured search backend over the project tree",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: queryProperties(),
			Required:   []string{"root", "symbol"},
		},
	}
}

// locateSymbolTool returns the tool definition for locate_symbol
func locateSymbolTool() mcp.Tool {
	return mcp.Tool{
		Name:        "locate_symbol",
		Description: "Locate both definitions and references of a symbol in one call; the two queries run concurrently",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: queryProperties(),
			Required:   []string{"root", "symbol"},
		},
	}
}
