// Package types provides shared type definitions for the SymNav MCP server.
//
// The central type is Candidate, one normalized jump target produced from a
// single line of search-backend output:
//
//	cand := types.Candidate{
//	    File:   "/home/me/project/conf/ssh_config",
//	    Line:   12,
//	    Column: 0,
//	    Symbol: "myproxy",
//	    Match:  "Host myproxy",
//	}
//
// Candidates are transient: they are built per query, handed to the caller in
// backend output order, and never persisted.
//
// The package also defines the sentinel errors used across the pipeline.
// ErrBackendNotFound is the only fatal runtime error a query can surface;
// the Err*Template and ErrBadIgnoreGlob sentinels belong to configuration
// loading and are never produced during a query.
package types
