// Package navigator composes the query pipeline: pattern compilation,
// backend argument assembly, subprocess invocation, output parsing, and
// candidate assembly.
//
// # Basic Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	nav := navigator.New(cfg)
//	defs, err := nav.FindDefinitions(ctx, "myproxy", "/home/me/project")
//	refs, err := nav.FindReferences(ctx, "myproxy", "/home/me/project")
//
// Both operations follow the identical pipeline and differ only in which
// template list seeds the pattern. Locate runs both concurrently and returns
// the pair.
//
// # Query Model
//
// Each query is synchronous and self-contained: one subprocess, blocked on
// until reaped, no shared state with other queries beyond the read-only
// configuration. Results come back in backend emission order (file traversal
// order, then line number) with no re-sorting or de-duplication.
//
// No timeout is imposed here; callers wanting one wrap the context they pass
// in.
package navigator
