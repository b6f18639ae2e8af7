package types

// Candidate represents one normalized symbol location produced from a single
// backend output line
type Candidate struct {
	// Location
	File   string `json:"file"`   // Absolute path to the matched file
	Line   int    `json:"line"`   // 1-based line number
	Column int    `json:"column"` // Column as reported by the backend; 0 when the backend has no column support

	// Query context
	Symbol string `json:"symbol"` // The queried symbol
	Match  string `json:"match"`  // Trimmed display text, ellipsis-truncated past 100 characters
}

// Validate checks if the candidate is well formed
func (c *Candidate) Validate() error {
	if c.File == "" {
		return ErrMissingFile
	}

	if c.Line < 1 {
		return ErrInvalidLine
	}

	if c.Column < 0 {
		return ErrInvalidColumn
	}

	if c.Symbol == "" {
		return ErrEmptySymbol
	}

	return nil
}
