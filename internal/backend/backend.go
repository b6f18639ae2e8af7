package backend

import (
	"fmt"
	"strings"

	"github.com/dshills/symnav-mcp/pkg/types"
)

// Name identifies one of the supported search backends
type Name string

const (
	Ag   Name = "ag"   // the_silver_searcher
	Rg   Name = "rg"   // ripgrep
	Grep Name = "grep" // GNU grep
)

// Backend describes one external search tool: how to invoke it, how to
// express exclusions in its flag vocabulary, and whether its output lines
// carry a column field. Adding a backend means adding one variant here; the
// invoker and parser stay untouched.
type Backend interface {
	// Program is the executable name resolved on PATH
	Program() string
	// DefaultArgs is the base argument list that disables decoration and
	// selects line-oriented output
	DefaultArgs() []string
	// ExcludeDir translates one ignored directory into the backend's
	// exclude-directory arguments
	ExcludeDir(dir string) []string
	// ExcludeFile translates one ignored file pattern into the backend's
	// exclude-file arguments
	ExcludeFile(pattern string) []string
	// SupportsColumns reports whether output lines include a column field
	SupportsColumns() bool
}

// New returns the backend variant for name
func New(name Name) (Backend, error) {
	switch name {
	case Ag:
		return agBackend{}, nil
	case Rg:
		return rgBackend{}, nil
	case Grep:
		return grepBackend{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownBackend, string(name))
	}
}

// BuildArgs assembles the full argument vector: default args, flattened
// ignore-directory pairs, flattened ignore-file pairs, then the compiled
// pattern. The pattern is always last so it cannot be taken as a flag value.
// A non-nil defaults slice overrides the backend's built-in defaults.
func BuildArgs(b Backend, defaults []string, ignoredDirs, ignoredFiles []string, pattern string) []string {
	base := defaults
	if base == nil {
		base = b.DefaultArgs()
	}

	args := make([]string, 0, len(base)+2*len(ignoredDirs)+2*len(ignoredFiles)+1)
	args = append(args, base...)
	for _, dir := range ignoredDirs {
		args = append(args, b.ExcludeDir(dir)...)
	}
	for _, pat := range ignoredFiles {
		args = append(args, b.ExcludeFile(pat)...)
	}

	return append(args, pattern)
}

// agBackend invokes the_silver_searcher. Fast, column-aware, with per-item
// two-token ignore flags.
type agBackend struct{}

func (agBackend) Program() string { return "ag" }

func (agBackend) DefaultArgs() []string {
	return []string{"--nocolor", "--nogroup", "--column"}
}

func (agBackend) ExcludeDir(dir string) []string {
	return []string{"--ignore-dir", dir}
}

func (agBackend) ExcludeFile(pattern string) []string {
	return []string{"--ignore", pattern}
}

func (agBackend) SupportsColumns() bool { return true }

// rgBackend invokes ripgrep. Excludes are negated globs behind a single
// repeatable flag. PCRE2 mode and case-insensitive matching line ripgrep's
// pattern grammar up with ag and grep -P, so one template set works across
// all three backends.
type rgBackend struct{}

func (rgBackend) Program() string { return "rg" }

func (rgBackend) DefaultArgs() []string {
	return []string{
		"--color", "never",
		"--no-heading",
		"--with-filename",
		"--line-number",
		"--column",
		"--pcre2",
		"--ignore-case",
	}
}

func (rgBackend) ExcludeDir(dir string) []string {
	// A trailing separator makes the glob match the directory, not a file
	// of the same name.
	if !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	return []string{"-g", "!" + dir}
}

func (rgBackend) ExcludeFile(pattern string) []string {
	return []string{"-g", "!" + pattern}
}

func (rgBackend) SupportsColumns() bool { return true }

// grepBackend invokes GNU grep: ubiquitous but line-oriented only. It never
// reports column positions, so every candidate it produces carries column 0.
type grepBackend struct{}

func (grepBackend) Program() string { return "grep" }

func (grepBackend) DefaultArgs() []string {
	return []string{
		"--recursive",
		"--line-number",
		"--perl-regexp",
		"--binary-files=without-match",
		"--color=never",
	}
}

func (grepBackend) ExcludeDir(dir string) []string {
	return []string{"--exclude-dir", dir}
}

func (grepBackend) ExcludeFile(pattern string) []string {
	return []string{"--exclude", pattern}
}

func (grepBackend) SupportsColumns() bool { return false }
