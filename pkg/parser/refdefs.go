package parser

import (
	"strings"

	"github.com/yaklabco/mdwire/pkg/mdast"
)

// refDef is one parsed reference definition line.
type refDef struct {
	Label       string
	Destination string
	Title       string
}

// parseRefDef matches a single-line reference definition of the form
// [label]: destination "optional title". The line must already be trimmed.
// Anything trailing the definition disqualifies the whole line.
func parseRefDef(text string) (refDef, bool) {
	if len(text) == 0 || text[0] != '[' {
		return refDef{}, false
	}

	labelEnd := -1
	for i := 1; i < len(text); i++ {
		c := text[i]
		if c == '\\' {
			i++
			continue
		}
		if c == '[' {
			return refDef{}, false
		}
		if c == ']' {
			labelEnd = i
			break
		}
	}
	if labelEnd < 0 || labelEnd+1 >= len(text) || text[labelEnd+1] != ':' {
		return refDef{}, false
	}
	label := text[1:labelEnd]
	if mdast.NormalizeLabel(label) == "" {
		return refDef{}, false
	}

	i := skipLinkSpace(text, labelEnd+2)
	dest, i, ok := parseLinkDestination(text, i)
	if !ok || dest == "" {
		return refDef{}, false
	}

	i = skipLinkSpace(text, i)
	title := ""
	if i < len(text) {
		title, i, ok = parseLinkTitle(text, i)
		if !ok {
			return refDef{}, false
		}
		i = skipLinkSpace(text, i)
	}
	if i != len(text) {
		return refDef{}, false
	}
	return refDef{Label: label, Destination: dest, Title: title}, true
}

// parseLinkDestination reads a link destination at i, either wrapped in
// angle brackets or bare. A bare destination ends at whitespace, a control
// byte, or an unbalanced closing parenthesis, and may be empty.
func parseLinkDestination(text string, i int) (string, int, bool) {
	if i < len(text) && text[i] == '<' {
		for j := i + 1; j < len(text); j++ {
			switch text[j] {
			case '\\':
				j++
			case '<', '\n':
				return "", 0, false
			case '>':
				return unescapePunct(text[i+1 : j]), j + 1, true
			}
		}
		return "", 0, false
	}

	depth := 0
	j := i
	for j < len(text) {
		c := text[j]
		if c == '\\' && j+1 < len(text) {
			j += 2
			continue
		}
		if c <= ' ' {
			break
		}
		if c == '(' {
			depth++
		}
		if c == ')' {
			if depth == 0 {
				break
			}
			depth--
		}
		j++
	}
	return unescapePunct(text[i:j]), j, true
}

// parseLinkTitle reads a title delimited by double quotes, single quotes, or
// parentheses. Escapes are honored; parenthesized titles cannot nest.
func parseLinkTitle(text string, i int) (string, int, bool) {
	if i >= len(text) {
		return "", 0, false
	}
	var closer byte
	switch text[i] {
	case '"':
		closer = '"'
	case '\'':
		closer = '\''
	case '(':
		closer = ')'
	default:
		return "", 0, false
	}
	for j := i + 1; j < len(text); j++ {
		c := text[j]
		if c == '\\' {
			j++
			continue
		}
		if c == closer {
			return unescapePunct(text[i+1 : j]), j + 1, true
		}
		if closer == ')' && c == '(' {
			return "", 0, false
		}
	}
	return "", 0, false
}

// skipLinkSpace advances past spaces, tabs, and newlines.
func skipLinkSpace(text string, i int) int {
	for i < len(text) {
		switch text[i] {
		case ' ', '\t', '\n':
			i++
		default:
			return i
		}
	}
	return i
}

// unescapePunct removes backslashes that escape ASCII punctuation.
func unescapePunct(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && isASCIIPunct(s[i+1]) {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// isASCIIPunct reports whether c is ASCII punctuation.
func isASCIIPunct(c byte) bool {
	switch {
	case c >= '!' && c <= '/':
		return true
	case c >= ':' && c <= '@':
		return true
	case c >= '[' && c <= '`':
		return true
	case c >= '{' && c <= '~':
		return true
	default:
		return false
	}
}
