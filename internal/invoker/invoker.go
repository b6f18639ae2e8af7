package invoker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/dshills/symnav-mcp/pkg/types"
)

// Invoker runs a search backend synchronously and captures its stdout
type Invoker struct{}

// New creates a new Invoker instance
func New() *Invoker {
	return &Invoker{}
}

// Run resolves program on PATH and executes it with args in workingDir,
// returning stdout split into lines in emission order. Arguments are passed
// as an explicit vector, never through a shell, so symbol content cannot
// inject commands.
//
// Stderr is discarded: malformed flags fail silently from the caller's point
// of view, a known limitation inherited from treating every non-zero exit as
// "no matches" (grep and friends exit 1 when nothing matched). The process
// is fully reaped before Run returns.
func (inv *Invoker) Run(ctx context.Context, program string, args []string, workingDir string) ([]string, error) {
	path, err := exec.LookPath(program)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrBackendNotFound, program)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = workingDir

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = io.Discard

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("failed to run %s: %w", program, err)
		}
		// Non-zero exit: no matches. Fall through with whatever stdout
		// holds, typically nothing.
	}

	return splitLines(stdout.String()), nil
}

// splitLines splits captured stdout into non-blank lines, preserving order
func splitLines(out string) []string {
	if out == "" {
		return nil
	}

	raw := strings.Split(out, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}
