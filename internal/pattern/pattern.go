package pattern

import "strings"

// Placeholder is the marker in a template that the queried symbol replaces.
const Placeholder = "%s"

// Compile substitutes symbol into every template and joins the results into a
// single alternation regex. Alternative order follows template order, which
// has no effect on what the backend finds but keeps output reproducible.
//
// Every template must contain Placeholder exactly once; that invariant is
// checked at configuration load, not here. An empty template list yields an
// empty pattern.
func Compile(symbol string, templates []string) string {
	if len(templates) == 0 {
		return ""
	}

	alts := make([]string, 0, len(templates))
	for _, tmpl := range templates {
		alts = append(alts, strings.ReplaceAll(tmpl, Placeholder, symbol))
	}

	return strings.Join(alts, "|")
}
