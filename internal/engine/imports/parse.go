package imports

import (
	"slices"
	"strings"
)

// ParseImportArgument splits one import-directive argument into its import
// targets. Items are comma separated and either quoted or bare. Content in
// parentheses is dropped, and scanning stops at the first bare word that
// follows a finished item, so trailing media queries are ignored.
// The result is sorted and free of duplicates.
func ParseImportArgument(arg string) []string {
	var (
		items       []string
		item        strings.Builder
		quote       rune
		inQuotes    bool
		inParens    bool
		itemAllowed = true
	)

	flush := func() {
		if item.Len() > 0 {
			items = append(items, item.String())
			item.Reset()
		}
	}

scan:
	for _, ch := range arg {
		if ch == ')' {
			inParens = false
			continue
		}
		if inParens {
			continue
		}

		switch {
		case ch == '(':
			item.Reset()
			inParens = true
		case ch == ',':
			if inQuotes {
				item.WriteRune(ch)
				continue
			}
			flush()
			itemAllowed = true
		case isSpace(ch):
			if inQuotes {
				item.WriteRune(ch)
				continue
			}
			if item.Len() > 0 {
				flush()
				itemAllowed = false
			}
		case ch == '"' || ch == '\'':
			switch {
			case !inQuotes:
				inQuotes = true
				quote = ch
			case ch == quote:
				inQuotes = false
			default:
				item.WriteRune(ch)
			}
		case !itemAllowed:
			break scan
		default:
			item.WriteRune(ch)
		}
	}
	flush()

	slices.Sort(items)
	return slices.Compact(items)
}

func isSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
