package navigator

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/symnav-mcp/internal/config"
	"github.com/dshills/symnav-mcp/pkg/types"
)

// fakeRunner implements the Runner interface for testing
type fakeRunner struct {
	mu    sync.Mutex
	calls []runnerCall
	lines []string
	err   error
}

type runnerCall struct {
	program    string
	args       []string
	workingDir string
}

func (f *fakeRunner) Run(ctx context.Context, program string, args []string, workingDir string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, runnerCall{program: program, args: args, workingDir: workingDir})
	return f.lines, f.err
}

func testConfig(backendName string) *config.Config {
	return &config.Config{
		Backend:             backendName,
		IgnoredDirs:         []string{"node_modules"},
		IgnoredFiles:        []string{"*.min.js"},
		DefinitionTemplates: []string{`Host \K%s`},
		ReferenceTemplates:  []string{`\b%s\b`},
	}
}

func TestFindDefinitions_GrepEndToEnd(t *testing.T) {
	runner := &fakeRunner{lines: []string{"./conf/ssh_config:12:Host myproxy"}}
	nav := NewWithRunner(testConfig("grep"), runner)

	candidates, err := nav.FindDefinitions(context.Background(), "myproxy", "/home/me/project")
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	assert.Equal(t, types.Candidate{
		File:   "/home/me/project/conf/ssh_config",
		Line:   12,
		Column: 0,
		Symbol: "myproxy",
		Match:  "Host myproxy",
	}, candidates[0])
}

func TestFindReferences_ColumnBackendEndToEnd(t *testing.T) {
	runner := &fakeRunner{lines: []string{"src/a.conf:5:7:ProxyJump myproxy"}}
	nav := NewWithRunner(testConfig("ag"), runner)

	candidates, err := nav.FindReferences(context.Background(), "myproxy", "/home/me/project")
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	assert.Equal(t, types.Candidate{
		File:   "/home/me/project/src/a.conf",
		Line:   5,
		Column: 7,
		Symbol: "myproxy",
		Match:  "ProxyJump myproxy",
	}, candidates[0])
}

func TestQuery_ArgumentVector(t *testing.T) {
	runner := &fakeRunner{}
	nav := NewWithRunner(testConfig("ag"), runner)

	_, err := nav.FindDefinitions(context.Background(), "myproxy", "/root/dir")
	require.NoError(t, err)
	require.Len(t, runner.calls, 1)

	call := runner.calls[0]
	assert.Equal(t, "ag", call.program)
	assert.Equal(t, "/root/dir", call.workingDir)

	// Ignore flags are present and the compiled pattern is the last argument.
	assert.Contains(t, strings.Join(call.args, " "), "--ignore-dir node_modules")
	assert.Contains(t, strings.Join(call.args, " "), "--ignore *.min.js")
	assert.Equal(t, `Host \Kmyproxy`, call.args[len(call.args)-1])
}

func TestQuery_TemplateListSelection(t *testing.T) {
	runner := &fakeRunner{}
	nav := NewWithRunner(testConfig("grep"), runner)
	ctx := context.Background()

	_, err := nav.FindDefinitions(ctx, "sym", "/r")
	require.NoError(t, err)
	_, err = nav.FindReferences(ctx, "sym", "/r")
	require.NoError(t, err)

	require.Len(t, runner.calls, 2)
	defArgs := runner.calls[0].args
	refArgs := runner.calls[1].args
	assert.Equal(t, `Host \Ksym`, defArgs[len(defArgs)-1])
	assert.Equal(t, `\bsym\b`, refArgs[len(refArgs)-1])
}

func TestQuery_EmptyOutput(t *testing.T) {
	runner := &fakeRunner{lines: nil}
	nav := NewWithRunner(testConfig("rg"), runner)

	candidates, err := nav.FindReferences(context.Background(), "ghost", "/r")
	require.NoError(t, err)
	assert.Empty(t, candidates)
	assert.NotNil(t, candidates)
}

func TestQuery_MalformedLinesSkipped(t *testing.T) {
	runner := &fakeRunner{lines: []string{
		"stray diagnostic",
		"src/a.conf:5:7:ProxyJump myproxy",
		"src/b.conf:bad:9:nope",
		"src/c.conf:9:2:User myproxy",
	}}
	nav := NewWithRunner(testConfig("rg"), runner)

	candidates, err := nav.FindReferences(context.Background(), "myproxy", "/r")
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "/r/src/a.conf", candidates[0].File)
	assert.Equal(t, "/r/src/c.conf", candidates[1].File)
}

func TestQuery_OrderPreserved(t *testing.T) {
	runner := &fakeRunner{lines: []string{
		"z.conf:1:2:z myproxy",
		"a.conf:9:4:a myproxy",
		"a.conf:2:4:a myproxy again",
	}}
	nav := NewWithRunner(testConfig("ag"), runner)

	candidates, err := nav.FindReferences(context.Background(), "myproxy", "/r")
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.Equal(t, "/r/z.conf", candidates[0].File)
	assert.Equal(t, 9, candidates[1].Line)
	assert.Equal(t, 2, candidates[2].Line)
}

func TestQuery_AbsolutePathsNotRejoined(t *testing.T) {
	runner := &fakeRunner{lines: []string{"/abs/path/x.conf:3:1:Host myproxy"}}
	nav := NewWithRunner(testConfig("ag"), runner)

	candidates, err := nav.FindDefinitions(context.Background(), "myproxy", "/r")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "/abs/path/x.conf", candidates[0].File)
}

func TestQuery_RunnerErrorPropagates(t *testing.T) {
	runner := &fakeRunner{err: types.ErrBackendNotFound}
	nav := NewWithRunner(testConfig("grep"), runner)

	_, err := nav.FindDefinitions(context.Background(), "x", "/r")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrBackendNotFound)
}

func TestQuery_UnknownBackend(t *testing.T) {
	cfg := testConfig("ack")
	nav := NewWithRunner(cfg, &fakeRunner{})

	_, err := nav.FindDefinitions(context.Background(), "x", "/r")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrUnknownBackend)
}

func TestLocate_RunsBothQueries(t *testing.T) {
	runner := &fakeRunner{lines: []string{"f.conf:1:2:Host myproxy"}}
	nav := NewWithRunner(testConfig("rg"), runner)

	loc, err := nav.Locate(context.Background(), "myproxy", "/r")
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Len(t, loc.Definitions, 1)
	assert.Len(t, loc.References, 1)
	assert.Len(t, runner.calls, 2)
}

func TestLocate_ErrorAbortsBoth(t *testing.T) {
	runner := &fakeRunner{err: types.ErrBackendNotFound}
	nav := NewWithRunner(testConfig("rg"), runner)

	_, err := nav.Locate(context.Background(), "myproxy", "/r")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrBackendNotFound)
}
