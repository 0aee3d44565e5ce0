package render

import (
	"strconv"
	"strings"

	"github.com/yaklabco/mdwire/pkg/mdast"
)

// Canonical renders doc back to standard Markdown. The output is not
// byte-identical to the source, but re-parsing it yields a structurally
// equal tree: escaping is minimal and context-aware, so `a * b` stays
// verbatim while a delimiter that would flank gets a backslash.
func Canonical(doc *mdast.Document) string {
	if doc == nil || doc.Root == nil {
		return ""
	}
	out := canonicalBlocks(doc.Root, false)
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

func canonicalBlocks(parent *mdast.Node, tight bool) string {
	sep := "\n\n"
	if tight {
		sep = "\n"
	}
	var parts []string
	for child := parent.FirstChild; child != nil; child = child.Next {
		parts = append(parts, canonicalBlock(child, tight))
	}
	return strings.Join(parts, sep)
}

func canonicalBlock(n *mdast.Node, tight bool) string {
	switch n.Kind {
	case mdast.NodeParagraph, mdast.NodeDocument:
		return escapeLineStarts(canonicalInlines(n, ' ', ' '))

	case mdast.NodeHeader:
		return strings.Repeat("#", n.Block.HeaderLevel) + " " + canonicalInlines(n, ' ', ' ')

	case mdast.NodeCodeBlock:
		return canonicalCodeBlock(n.Block.Code)

	case mdast.NodeBlockQuote:
		return quoteLines(canonicalBlocks(n, false))

	case mdast.NodeList:
		return canonicalList(n)

	case mdast.NodeListItem:
		return canonicalBlocks(n, tight)

	case mdast.NodeHorizontalRule:
		return "---"

	default:
		return canonicalInline(n)
	}
}

// canonicalCodeBlock emits a fenced block. The fence grows past the longest
// interior run of the fence character so the content can never close it.
// Indented blocks are re-emitted fenced: the fenced form survives every
// parser option, the indented form does not.
func canonicalCodeBlock(code *mdast.CodeAttrs) string {
	ch := code.FenceChar
	if ch == 0 {
		ch = '`'
	}
	length := code.FenceLength
	if interior := longestRun(code.Content, ch) + 1; interior > length {
		length = interior
	}
	if length < 3 {
		length = 3
	}

	fence := strings.Repeat(string(ch), length)
	var b strings.Builder
	b.WriteString(fence)
	b.WriteString(code.Language)
	b.WriteByte('\n')
	content := code.Content
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	b.WriteString(content)
	b.WriteString(fence)
	return b.String()
}

func canonicalList(n *mdast.Node) string {
	attrs := n.Block.List
	itemSep := "\n"
	if !attrs.Tight {
		itemSep = "\n\n"
	}

	bullet := attrs.BulletMarker
	if bullet == 0 {
		bullet = '-'
	}
	ordinal := attrs.Start
	if ordinal <= 0 {
		ordinal = 1
	}

	var items []string
	for item := n.FirstChild; item != nil; item = item.Next {
		marker := string(bullet) + " "
		if attrs.Ordered {
			marker = strconv.Itoa(ordinal) + ". "
			ordinal++
		}
		body := canonicalBlocks(item, attrs.Tight)
		items = append(items, hangIndent(body, marker, strings.Repeat(" ", len(marker))))
	}
	return strings.Join(items, itemSep)
}

// canonicalInlines renders the children of parent in two passes. Text nodes
// are escaped with the bytes their rendered siblings contribute at the shared
// boundary, so a literal delimiter at a node edge cannot fuse with an
// adjacent emphasis run into a longer one on re-parse. prev and next are the
// bytes the parent itself emits around its children, such as an emphasis
// delimiter or a link's brackets.
func canonicalInlines(parent *mdast.Node, prev, next byte) string {
	var children []*mdast.Node
	var parts []string
	for child := parent.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
		parts = append(parts, canonicalInline(child))
	}
	for i, child := range children {
		if child.Kind != mdast.NodeText {
			continue
		}
		left := prev
		for j := i - 1; j >= 0; j-- {
			if parts[j] != "" {
				left = parts[j][len(parts[j])-1]
				break
			}
		}
		right := next
		for j := i + 1; j < len(parts); j++ {
			if parts[j] != "" {
				right = parts[j][0]
				break
			}
		}
		parts[i] = escapeCanonicalText(child.Inline.Text, left, right)
	}
	return strings.Join(parts, "")
}

func canonicalInline(n *mdast.Node) string {
	switch n.Kind {
	case mdast.NodeText:
		return escapeCanonicalText(n.Inline.Text, ' ', ' ')

	case mdast.NodeEmphasis:
		delim := canonicalEmphasisDelim(n.Inline.Strength)
		return delim + canonicalInlines(n, delim[0], delim[0]) + delim

	case mdast.NodeCodeSpan:
		return canonicalCodeSpan(n.Inline.Text)

	case mdast.NodeLink:
		return "[" + canonicalInlines(n, '[', ']') + "](" + canonicalLinkSuffix(n.Inline.Link) + ")"

	case mdast.NodeImage:
		return "![" + escapeCanonicalText(n.Inline.Link.Alt, ' ', ' ') + "](" + canonicalLinkSuffix(n.Inline.Link) + ")"

	case mdast.NodeAutolink:
		return "<" + n.Inline.Link.Destination + ">"

	default:
		return ""
	}
}

func canonicalEmphasisDelim(strength mdast.EmphasisStrength) string {
	switch strength {
	case mdast.StrengthBold:
		return "**"
	case mdast.StrengthBoldItalic:
		return "***"
	case mdast.StrengthStrikethrough:
		return "~"
	default:
		return "*"
	}
}

// canonicalCodeSpan wraps content in a backtick run longer than any interior
// run, padding with spaces when the content's edges would bleed into the
// delimiters.
func canonicalCodeSpan(content string) string {
	delim := strings.Repeat("`", longestRun(content, '`')+1)
	if content != "" &&
		(content[0] == '`' || content[len(content)-1] == '`' ||
			content[0] == ' ' || content[len(content)-1] == ' ') {
		content = " " + content + " "
	}
	return delim + content + delim
}

// canonicalLinkSuffix serializes destination and optional title for the
// parenthesized part of a link. Destinations with whitespace use the angle
// form; bare destinations get their parentheses backslash-escaped.
func canonicalLinkSuffix(link *mdast.LinkAttrs) string {
	dest := link.Destination
	if strings.ContainsAny(dest, " \t\n") {
		dest = "<" + dest + ">"
	} else {
		dest = strings.NewReplacer("(", `\(`, ")", `\)`).Replace(dest)
	}
	if link.Title == "" {
		return dest
	}
	title := strings.ReplaceAll(link.Title, `"`, `\"`)
	return dest + ` "` + title + `"`
}

// escapeCanonicalText escapes the characters that would change structure on
// re-parse. Backslash, backtick, and brackets always escape; emphasis
// characters escape only when a neighbor could make them flank. prev and
// next stand in for the bytes adjacent siblings emit at the string's edges,
// space when there is no neighbor.
func escapeCanonicalText(s string, prev, next byte) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\', '`', '[', ']':
			b.WriteByte('\\')
		case '*', '_', '~':
			if couldFlank(s, i, prev, next) {
				b.WriteByte('\\')
			}
		case '!':
			// A trailing bang in front of a rendered link would turn it
			// into an image.
			if i+1 == len(s) && next == '[' {
				b.WriteByte('\\')
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// couldFlank reports whether the delimiter character at i has a non-space
// neighbor on either side, consulting prev and next at the string's edges.
// Space on both sides means it can neither open nor close and is safe to
// emit verbatim.
func couldFlank(s string, i int, prev, next byte) bool {
	left := prev
	if i > 0 {
		left = s[i-1]
	}
	right := next
	if i+1 < len(s) {
		right = s[i+1]
	}
	return !isSpaceByte(left) || !isSpaceByte(right)
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}

// escapeLineStarts neutralizes block markers at the start of paragraph
// lines: a heading run, bullet, ordinal dot, or thematic break emitted as
// literal text must not open a block on re-parse.
func escapeLineStarts(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = escapeLineStart(line)
	}
	return strings.Join(lines, "\n")
}

func escapeLineStart(line string) string {
	if line == "" {
		return line
	}
	c := line[0]

	switch {
	case c == '#':
		run := 1
		for run < len(line) && line[run] == '#' {
			run++
		}
		if run <= 6 && (run == len(line) || line[run] == ' ' || line[run] == '\t') {
			return `\` + line
		}

	case c == '-' || c == '+' || c == '*' || c == '_':
		if isBreakLine(line, c) {
			return `\` + line
		}
		if c != '_' && len(line) > 1 && (line[1] == ' ' || line[1] == '\t') {
			return `\` + line
		}

	case c >= '0' && c <= '9':
		j := 0
		for j < len(line) && line[j] >= '0' && line[j] <= '9' {
			j++
		}
		if j <= 9 && j+1 < len(line) && line[j] == '.' && (line[j+1] == ' ' || line[j+1] == '\t') {
			return line[:j] + `\` + line[j:]
		}
	}
	return line
}

// isBreakLine reports whether line reads as a thematic break of marker.
func isBreakLine(line string, marker byte) bool {
	count := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case marker:
			count++
		case ' ', '\t':
		default:
			return false
		}
	}
	return count >= 3
}

// quoteLines prefixes every line with the blockquote marker.
func quoteLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = ">"
			continue
		}
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n")
}

// longestRun returns the length of the longest run of ch in s.
func longestRun(s string, ch byte) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == ch {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	return longest
}
