package imports

import (
	"regexp"
	"strings"
)

// commentPattern has two groups. The first captures quoted literals and
// parenthesized groups, which are kept verbatim. The second captures real
// comments, which are dropped together with the whitespace preceding them.
var commentPattern = regexp.MustCompile(`(?ms)(".*?"|'.*?'|\(.*?\))|(\s*/\*.*?\*/|\s*//[^\r\n]*$)`)

// StripComments removes line and block comments from source without
// touching quoted strings or function-call arguments such as url(...).
func StripComments(source string) string {
	matches := commentPattern.FindAllStringSubmatchIndex(source, -1)
	if len(matches) == 0 {
		return source
	}

	var b strings.Builder
	b.Grow(len(source))

	last := 0
	for _, m := range matches {
		b.WriteString(source[last:m[0]])
		if m[4] < 0 {
			// Literal or parenthesized group.
			b.WriteString(source[m[2]:m[3]])
		}
		last = m[1]
	}
	b.WriteString(source[last:])

	return b.String()
}
