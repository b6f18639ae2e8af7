// Package parser turns raw search-backend output lines into structured
// location fields.
//
// Backends print one match per line. With color and heading decoration
// disabled by the backend's default arguments, the layout is:
//
//	path:line:column:matched text    (ag, rg)
//	path:line:matched text           (grep)
//
// # Delimiter Ambiguity
//
// Both paths and matched text can legitimately contain the ':' separator, so
// a blind split is wrong. Parse uses a bounded split: the first field is the
// path unconditionally, the next one or two fields must parse as integers,
// and the remainder is re-joined as the match text.
//
// # Defensive Discarding
//
// A line that does not fit the layout (too few fields, non-numeric
// positions) is discarded, not an error. Backends occasionally print
// diagnostics to stdout despite stderr suppression; tolerating them
// preserves the rest of the result set.
//
//	fields, ok := parser.Parse("src/a.conf:5:7:ProxyJump myproxy", true)
//	if ok {
//	    // fields = {File: "src/a.conf", Line: 5, Column: 7, Match: "ProxyJump myproxy"}
//	}
package parser
