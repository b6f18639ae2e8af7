package types

import "errors"

// Domain errors shared across the query pipeline
var (
	// Backend errors
	ErrBackendNotFound = errors.New("search backend not found in PATH")
	ErrUnknownBackend  = errors.New("unknown search backend")

	// Candidate errors
	ErrMissingFile   = errors.New("file path is required")
	ErrInvalidLine   = errors.New("line must be >= 1")
	ErrInvalidColumn = errors.New("column must be >= 0")
	ErrEmptySymbol   = errors.New("symbol cannot be empty")

	// Configuration errors, surfaced at load time
	ErrNoTemplates   = errors.New("template list cannot be empty")
	ErrBadTemplate   = errors.New("template must contain the placeholder exactly once")
	ErrBadIgnoreGlob = errors.New("invalid ignore glob pattern")
)
