package imports

import (
	"regexp"

	"go.trai.ch/precomp/internal/core/domain"
)

var (
	// Brace syntax: the directive ends at a semicolon and may span lines.
	semicolonStatement = regexp.MustCompile(`(?s)@import\s+(.+?)\s*;`)
	// Indented Sass: the directive ends at the end of the line.
	lineStatement = regexp.MustCompile(`@import\s+(.+?)\s*(?:\n|$)`)
	// Stylus accepts both keywords, one directive per line.
	stylusStatement = regexp.MustCompile(`(?m)@(?:import|require)\s+(.+?)\s*$`)
)

// FindImportStatements returns the raw argument of every import directive
// in source, in source order.
func FindImportStatements(d domain.Dialect, source string) []string {
	var re *regexp.Regexp
	switch d.(type) {
	case domain.SCSS, domain.LESS:
		re = semicolonStatement
	case domain.SASS:
		re = lineStatement
	case domain.Stylus:
		re = stylusStatement
	default:
		return nil
	}

	matches := re.FindAllStringSubmatch(source, -1)
	args := make([]string, 0, len(matches))
	for _, m := range matches {
		args = append(args, m[1])
	}
	return args
}
