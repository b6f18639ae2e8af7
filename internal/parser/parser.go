package parser

import (
	"strconv"
	"strings"
)

const (
	// MaxMatchLen caps stored match text. Anything longer is truncated with
	// an ellipsis to keep pathological lines (minified files) out of the
	// presentation layer.
	MaxMatchLen = 100

	// Ellipsis marks truncated match text
	Ellipsis = "..."
)

// Fields holds the parts of one parsed backend output line
type Fields struct {
	File   string // Path as printed by the backend, usually root-relative
	Line   int    // 1-based line number
	Column int    // Column field, or 0 for backends without column support
	Match  string // Trimmed, possibly truncated matched text
}

// Parse splits one backend output line into location fields.
//
// Column-aware backends emit path:line:column:text; grep emits
// path:line:text. The first field is always the path, and the split is
// bounded so match text containing further ':' separators survives re-joined
// intact. Paths that themselves contain the separator are not recoverable
// beyond that first-field rule and are accepted as-is.
//
// Lines with too few fields or non-numeric position fields return ok false
// and are discarded by the caller: stray diagnostics that bypassed stderr
// suppression must not abort the whole result set.
func Parse(line string, columns bool) (Fields, bool) {
	if columns {
		parts := strings.SplitN(line, ":", 4)
		if len(parts) < 4 {
			return Fields{}, false
		}

		lineNo, err := strconv.Atoi(parts[1])
		if err != nil {
			return Fields{}, false
		}
		col, err := strconv.Atoi(parts[2])
		if err != nil {
			return Fields{}, false
		}

		return Fields{
			File:   parts[0],
			Line:   lineNo,
			Column: col,
			Match:  trimMatch(parts[3]),
		}, true
	}

	parts := strings.SplitN(line, ":", 3)
	if len(parts) < 3 {
		return Fields{}, false
	}

	lineNo, err := strconv.Atoi(parts[1])
	if err != nil {
		return Fields{}, false
	}

	return Fields{
		File:  parts[0],
		Line:  lineNo,
		Match: trimMatch(parts[2]),
	}, true
}

// trimMatch trims surrounding whitespace and truncates text past MaxMatchLen
// characters, counting runes so multi-byte text is not cut mid-character
func trimMatch(text string) string {
	text = strings.TrimSpace(text)

	runes := []rune(text)
	if len(runes) <= MaxMatchLen {
		return text
	}

	return string(runes[:MaxMatchLen]) + Ellipsis
}
