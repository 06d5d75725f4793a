// Package imports extracts import targets from stylesheet sources.
package imports

import (
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/precomp/internal/core/domain"
)

// lessItem matches the first quoted item of a Less import argument.
var lessItem = regexp.MustCompile(`"(.+?)"|'(.+?)'`)

// FindImports returns the sorted, distinct import targets of source that
// refer to project files.
func FindImports(d domain.Dialect, source string) []string {
	var targets []string
	switch v := d.(type) {
	case domain.SCSS:
		targets = sassImports(source, d, v.Compass)
	case domain.SASS:
		targets = sassImports(source, d, v.Compass)
	case domain.LESS:
		targets = lessImports(source)
	case domain.Stylus:
		targets = stylusImports(source)
	}

	slices.Sort(targets)
	return slices.Compact(targets)
}

func sassImports(source string, d domain.Dialect, compass bool) []string {
	var targets []string
	for _, arg := range FindImportStatements(d, StripComments(source)) {
		for _, item := range ParseImportArgument(arg) {
			item = strings.TrimSpace(item)
			if item == "" || isCSS(item) || isRemote(item) {
				continue
			}
			if compass && isCompass(item) {
				continue
			}
			targets = append(targets, item)
		}
	}
	return targets
}

func lessImports(source string) []string {
	var targets []string
	for _, arg := range FindImportStatements(domain.LESS{}, source) {
		arg = strings.TrimSpace(arg)
		if strings.HasPrefix(arg, "(css)") || strings.Contains(arg, "url(") {
			continue
		}
		m := lessItem.FindStringSubmatch(arg)
		if m == nil {
			continue
		}
		item := m[1]
		if item == "" {
			item = m[2]
		}
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if isCSS(item) && !strings.HasPrefix(arg, "(inline)") {
			continue
		}
		targets = append(targets, item)
	}
	return targets
}

func stylusImports(source string) []string {
	var targets []string
	for _, arg := range FindImportStatements(domain.Stylus{}, source) {
		item := strings.TrimSpace(strings.Trim(strings.Trim(arg, "'"), `"`))
		if item == "" || strings.HasPrefix(item, "url(") || isCSS(item) || isRemote(item) {
			continue
		}
		targets = append(targets, item)
	}
	return targets
}

func isCSS(item string) bool {
	return strings.HasSuffix(item, ".css")
}

func isRemote(item string) bool {
	return strings.HasPrefix(item, "http://") || strings.HasPrefix(item, "https://")
}

func isCompass(item string) bool {
	return item == "compass" || item == "compass.scss" || strings.HasPrefix(item, "compass/")
}
