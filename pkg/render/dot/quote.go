package dot

import (
	"regexp"
	"strings"
)

var (
	identRe   = regexp.MustCompile(`^[A-Za-z_\x{80}-\x{10FFFF}][A-Za-z0-9_\x{80}-\x{10FFFF}]*$`)
	numeralRe = regexp.MustCompile(`^-?(\.[0-9]+|[0-9]+(\.[0-9]*)?)$`)
)

var keywords = map[string]bool{
	"node": true, "edge": true, "graph": true,
	"digraph": true, "subgraph": true, "strict": true,
}

// ID returns s as a DOT identifier, quoting it unless it is a plain
// identifier or a numeral. Keywords and the empty string are always
// quoted. Values are never written as HTML-like labels: markup in a
// GraphML value is text.
func ID(s string) string {
	if !needsQuotes(s) {
		return s
	}
	return quote(s)
}

var escapes = map[byte]string{'"': `\"`, '\n': `\n`, '\r': `\r`}

// quote wraps s in double quotes. Backslash escapes such as \l are kept,
// but a run of backslashes before an escape we emit or at the end of s is
// padded to an even length so it stays literal.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	run := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			run++
			b.WriteByte(c)
			continue
		case '"', '\n', '\r':
			if run%2 == 1 {
				b.WriteByte('\\')
			}
			b.WriteString(escapes[c])
		default:
			b.WriteByte(c)
		}
		run = 0
	}
	if run%2 == 1 {
		b.WriteByte('\\')
	}
	b.WriteByte('"')
	return b.String()
}

func needsQuotes(s string) bool {
	if s == "" || keywords[strings.ToLower(s)] {
		return true
	}
	return !identRe.MatchString(s) && !numeralRe.MatchString(s)
}
