// Package mcp implements the Model Context Protocol (MCP) server for SymNav.
//
// The server exposes three tools to MCP-capable editors and assistants:
//   - find_definitions: locate definition occurrences of a symbol
//   - find_references: locate reference occurrences of a symbol
//   - locate_symbol: both of the above in one call, run concurrently
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// Stdout carries the protocol; all logging goes to stderr.
//
// # Tool Contract
//
// Every tool takes the same two parameters:
//
//	root   - absolute path to the project root; validated strictly
//	         (absolute, existing, readable directory) with no fallback
//	symbol - the symbol to locate; must be non-empty
//
// Responses embed the normalized candidate records as JSON:
//
//	{
//	  "symbol": "myproxy",
//	  "count": 1,
//	  "definitions": [
//	    {"file": "/proj/conf/ssh_config", "line": 12, "column": 0,
//	     "symbol": "myproxy", "match": "Host myproxy"}
//	  ]
//	}
//
// An empty result set is a success response with count 0, not an error. The
// only per-query fatal error is a configured backend that is not installed,
// reported with a dedicated error code.
package mcp
