package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/dshills/symnav-mcp/internal/backend"
	"github.com/dshills/symnav-mcp/internal/pattern"
	"github.com/dshills/symnav-mcp/pkg/types"
)

// EnvConfigPath overrides the default configuration file location
const EnvConfigPath = "SYMNAV_CONFIG"

// Config holds the read-only settings a query consumes. It is loaded once at
// startup and never mutated afterwards; the query pipeline is a pure
// function of (symbol, templates, config).
type Config struct {
	Backend      string              `yaml:"backend"`       // ag, rg, or grep; empty = auto-detect
	BackendArgs  map[string][]string `yaml:"backend_args"`  // Per-backend default argument override
	IgnoredDirs  []string            `yaml:"ignored_dirs"`  // Directory names excluded from every search
	IgnoredFiles []string            `yaml:"ignored_files"` // File glob patterns excluded from every search

	// Each template contains the %s placeholder exactly once.
	DefinitionTemplates []string `yaml:"definition_templates"`
	ReferenceTemplates  []string `yaml:"reference_templates"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Backend:     DetectBackend(),
		IgnoredDirs: []string{".git", "node_modules", "vendor"},
		DefinitionTemplates: []string{
			`^[ \t]*%s\b`,
			`\b%s\b[ \t]*[:=]`,
		},
		ReferenceTemplates: []string{
			`\b%s\b`,
		},
	}
}

// Load reads the YAML configuration file at path and validates it. An empty
// path falls back to $SYMNAV_CONFIG, then ~/.config/symnav/config.yaml. A
// missing file is not an error: defaults apply. File values replace
// defaults wholesale; they are not merged.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".config", "symnav", "config.yaml")
		}
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// No file: keep defaults.
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate performs the load-time checks the query pipeline does not repeat:
// the backend must be known, both template lists must be non-empty with
// exactly one placeholder per template, and ignore-file globs must parse.
func (c *Config) Validate() error {
	if _, err := backend.New(backend.Name(c.Backend)); err != nil {
		return err
	}

	if err := validateTemplates("definition", c.DefinitionTemplates); err != nil {
		return err
	}
	if err := validateTemplates("reference", c.ReferenceTemplates); err != nil {
		return err
	}

	for _, glob := range c.IgnoredFiles {
		if !doublestar.ValidatePattern(glob) {
			return fmt.Errorf("%w: %q", types.ErrBadIgnoreGlob, glob)
		}
	}

	return nil
}

// ArgsFor returns the configured default-argument override for program, or
// nil when the backend's built-in defaults should be used
func (c *Config) ArgsFor(program string) []string {
	if c.BackendArgs == nil {
		return nil
	}
	return c.BackendArgs[program]
}

// DetectBackend returns the first supported backend found on PATH,
// preferring rg, then ag. grep is the fallback either way; if even grep is
// missing the invoker surfaces that per query.
func DetectBackend() string {
	for _, name := range []string{"rg", "ag"} {
		if _, err := exec.LookPath(name); err == nil {
			return name
		}
	}
	return "grep"
}

// validateTemplates checks one template list
func validateTemplates(kind string, templates []string) error {
	if len(templates) == 0 {
		return fmt.Errorf("%w: %s templates", types.ErrNoTemplates, kind)
	}

	for _, tmpl := range templates {
		if strings.Count(tmpl, pattern.Placeholder) != 1 {
			return fmt.Errorf("%w: %q", types.ErrBadTemplate, tmpl)
		}
	}

	return nil
}
