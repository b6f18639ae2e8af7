package navigator

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/symnav-mcp/internal/backend"
	"github.com/dshills/symnav-mcp/internal/config"
	"github.com/dshills/symnav-mcp/internal/invoker"
	"github.com/dshills/symnav-mcp/internal/parser"
	"github.com/dshills/symnav-mcp/internal/pattern"
	"github.com/dshills/symnav-mcp/pkg/types"
)

// Runner executes a search backend and returns its stdout lines.
// *invoker.Invoker is the production implementation; tests substitute fakes.
type Runner interface {
	Run(ctx context.Context, program string, args []string, workingDir string) ([]string, error)
}

// Navigator answers definition and reference queries for a symbol by
// delegating the text search to the configured backend
type Navigator struct {
	cfg    *config.Config
	runner Runner
}

// New creates a Navigator using the default subprocess runner
func New(cfg *config.Config) *Navigator {
	return NewWithRunner(cfg, invoker.New())
}

// NewWithRunner creates a Navigator with a custom runner
func NewWithRunner(cfg *config.Config, runner Runner) *Navigator {
	return &Navigator{
		cfg:    cfg,
		runner: runner,
	}
}

// FindDefinitions locates definition occurrences of symbol under root,
// seeding the pattern from the definition-template list
func (n *Navigator) FindDefinitions(ctx context.Context, symbol, root string) ([]types.Candidate, error) {
	return n.query(ctx, symbol, root, n.cfg.DefinitionTemplates)
}

// FindReferences locates reference occurrences of symbol under root,
// seeding the pattern from the reference-template list
func (n *Navigator) FindReferences(ctx context.Context, symbol, root string) ([]types.Candidate, error) {
	return n.query(ctx, symbol, root, n.cfg.ReferenceTemplates)
}

// Location groups both result sets for one symbol
type Location struct {
	Definitions []types.Candidate `json:"definitions"`
	References  []types.Candidate `json:"references"`
}

// Locate runs the definitions and references queries concurrently. Each
// query still spawns exactly one backend process and fully consumes it; only
// the two independent queries overlap.
func (n *Navigator) Locate(ctx context.Context, symbol, root string) (*Location, error) {
	var loc Location

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defs, err := n.FindDefinitions(gctx, symbol, root)
		loc.Definitions = defs
		return err
	})
	g.Go(func() error {
		refs, err := n.FindReferences(gctx, symbol, root)
		loc.References = refs
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &loc, nil
}

// query threads one symbol through the full pipeline:
// compile pattern -> build argument vector -> invoke backend -> parse lines
// -> assemble candidates
func (n *Navigator) query(ctx context.Context, symbol, root string, templates []string) ([]types.Candidate, error) {
	b, err := backend.New(backend.Name(n.cfg.Backend))
	if err != nil {
		return nil, err
	}

	pat := pattern.Compile(symbol, templates)
	args := backend.BuildArgs(b, n.cfg.ArgsFor(b.Program()), n.cfg.IgnoredDirs, n.cfg.IgnoredFiles, pat)

	lines, err := n.runner.Run(ctx, b.Program(), args, root)
	if err != nil {
		return nil, fmt.Errorf("search for %q failed: %w", symbol, err)
	}

	candidates := make([]types.Candidate, 0, len(lines))
	for _, line := range lines {
		fields, ok := parser.Parse(line, b.SupportsColumns())
		if !ok {
			continue
		}
		candidates = append(candidates, assemble(symbol, fields, root))
	}

	return candidates, nil
}

// assemble resolves the parsed file path against root and attaches the
// queried symbol. First-seen order is preserved downstream; there is no
// dedup and no ranking.
func assemble(symbol string, fields parser.Fields, root string) types.Candidate {
	file := fields.File
	if !filepath.IsAbs(file) {
		file = filepath.Join(root, file)
	}

	return types.Candidate{
		File:   file,
		Line:   fields.Line,
		Column: fields.Column,
		Symbol: symbol,
		Match:  fields.Match,
	}
}
