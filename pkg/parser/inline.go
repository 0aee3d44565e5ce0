package parser

import (
	"strings"

	"github.com/yaklabco/mdwire/pkg/mdast"
)

// inlineParser scans one leaf block's raw text left to right, appending
// inline nodes to the block. Construct precedence is code spans, then links
// and images, then emphasis, then autolinks; anything malformed stays
// character-level literal text.
type inlineParser struct {
	text       string
	refs       *mdast.RefTable
	allowLinks bool
	brackets   map[int]int
	delims     []*delimiter
	textStart  int
}

// parseInlines parses text into inline children of parent. Link recognition
// is disabled inside link text, where inner brackets stay literal.
func parseInlines(parent *mdast.Node, text string, refs *mdast.RefTable, allowLinks bool) {
	p := &inlineParser{
		text:       text,
		refs:       refs,
		allowLinks: allowLinks,
	}
	if allowLinks && strings.IndexByte(text, '[') >= 0 {
		p.brackets = matchBrackets(text)
	}
	p.run(parent)
	processEmphasis(p.delims)
	mergeText(parent)
}

// run performs the scan pass. Emphasis delimiters are recorded as literal
// text nodes plus stack entries and resolved afterwards by processEmphasis.
func (p *inlineParser) run(parent *mdast.Node) {
	pos := 0
	for pos < len(p.text) {
		c := p.text[pos]

		switch c {
		case '\\':
			if pos+1 < len(p.text) && isEscapable(p.text[pos+1]) {
				p.flush(parent, pos)
				mdast.AppendChild(parent, mdast.NewText(string(p.text[pos+1])))
				pos += 2
				p.textStart = pos
				continue
			}
			// The backslash and the following character both stay
			// literal, stripping that character of any meaning.
			if pos+1 < len(p.text) {
				pos += 2
			} else {
				pos++
			}
			continue

		case '`':
			runLen := sameByteRun(p.text, pos)
			if end := findCodeSpanEnd(p.text, pos+runLen, runLen); end >= 0 {
				p.flush(parent, pos)
				content := normalizeCodeSpan(p.text[pos+runLen : end])
				mdast.AppendChild(parent, mdast.NewCodeSpan(content))
				pos = end + runLen
				p.textStart = pos
				continue
			}
			pos += runLen
			continue

		case '*', '_', '~':
			runLen := sameByteRun(p.text, pos)
			if runLen > 3 {
				pos += runLen
				continue
			}
			canOpen, canClose := scanDelims(p.text, pos, runLen, c)
			if !canOpen && !canClose {
				pos += runLen
				continue
			}
			p.flush(parent, pos)
			node := mdast.NewText(p.text[pos : pos+runLen])
			mdast.AppendChild(parent, node)
			p.delims = append(p.delims, &delimiter{
				node:     node,
				char:     c,
				length:   runLen,
				canOpen:  canOpen,
				canClose: canClose,
				active:   true,
			})
			pos += runLen
			p.textStart = pos
			continue

		case '[':
			if p.allowLinks {
				if node, next, ok := p.parseLinkAt(pos, false); ok {
					p.flush(parent, pos)
					mdast.AppendChild(parent, node)
					pos = next
					p.textStart = pos
					continue
				}
			}
			pos++
			continue

		case '!':
			if p.allowLinks && pos+1 < len(p.text) && p.text[pos+1] == '[' {
				if node, next, ok := p.parseLinkAt(pos+1, true); ok {
					p.flush(parent, pos)
					mdast.AppendChild(parent, node)
					pos = next
					p.textStart = pos
					continue
				}
			}
			pos++
			continue

		case '<':
			if p.allowLinks {
				if target, next, ok := scanAutolink(p.text, pos); ok {
					p.flush(parent, pos)
					mdast.AppendChild(parent, mdast.NewAutolink(target))
					pos = next
					p.textStart = pos
					continue
				}
			}
			pos++
			continue

		default:
			pos++
			continue
		}
	}
	p.flush(parent, len(p.text))
}

// parseLinkAt resolves the bracket pair opening at openPos into a Link or
// Image. Inline destinations, full and collapsed references, and shortcut
// references are tried in that order; an unresolvable reference fails the
// whole construct so the opening bracket degrades to literal text.
func (p *inlineParser) parseLinkAt(openPos int, image bool) (*mdast.Node, int, bool) {
	closePos, ok := p.brackets[openPos]
	if !ok {
		return nil, 0, false
	}
	inner := p.text[openPos+1 : closePos]
	after := closePos + 1

	if after < len(p.text) && p.text[after] == '(' {
		if dest, title, end, parsed := parseInlineLinkSuffix(p.text, after); parsed {
			return p.buildLinkNode(image, inner, dest, title), end, true
		}
	}

	if after < len(p.text) && p.text[after] == '[' {
		if labelClose, matched := p.brackets[after]; matched {
			label := p.text[after+1 : labelClose]
			if label == "" {
				label = inner
			}
			if def, found := p.refs.Resolve(label); found {
				return p.buildLinkNode(image, inner, def.Destination, def.Title), labelClose + 1, true
			}
			return nil, 0, false
		}
	}

	if def, found := p.refs.Resolve(inner); found {
		return p.buildLinkNode(image, inner, def.Destination, def.Title), after, true
	}
	return nil, 0, false
}

// buildLinkNode constructs the Link or Image node for resolved bracket text.
// Link text is parsed with links disabled; image text is flattened to alt.
func (p *inlineParser) buildLinkNode(image bool, inner, dest, title string) *mdast.Node {
	if image {
		scratch := mdast.NewParagraph()
		parseInlines(scratch, inner, p.refs, false)
		return mdast.NewImage(mdast.PlainText(scratch), dest, title)
	}
	node := mdast.NewLink(dest, title)
	parseInlines(node, inner, p.refs, false)
	return node
}

// flush appends the pending literal text segment ending at end.
func (p *inlineParser) flush(parent *mdast.Node, end int) {
	if end > p.textStart {
		mdast.AppendChild(parent, mdast.NewText(p.text[p.textStart:end]))
	}
}

// matchBrackets pairs unescaped square brackets in one pass, skipping code
// spans so that bracket pairing and code-span precedence agree with the
// main scan. Each open bracket maps to its balanced closer.
func matchBrackets(text string) map[int]int {
	matches := make(map[int]int)
	var stack []int
	for i := 0; i < len(text); {
		switch text[i] {
		case '\\':
			i += 2
		case '`':
			runLen := sameByteRun(text, i)
			if end := findCodeSpanEnd(text, i+runLen, runLen); end >= 0 {
				i = end + runLen
			} else {
				i += runLen
			}
		case '[':
			stack = append(stack, i)
			i++
		case ']':
			if len(stack) > 0 {
				matches[stack[len(stack)-1]] = i
				stack = stack[:len(stack)-1]
			}
			i++
		default:
			i++
		}
	}
	return matches
}

// parseInlineLinkSuffix parses (destination "title") starting at the opening
// parenthesis and returns the position past the closing one.
func parseInlineLinkSuffix(text string, openParen int) (dest, title string, end int, ok bool) {
	i := skipLinkSpace(text, openParen+1)
	dest, i, ok = parseLinkDestination(text, i)
	if !ok {
		return "", "", 0, false
	}
	i = skipLinkSpace(text, i)
	if i < len(text) && text[i] != ')' {
		title, i, ok = parseLinkTitle(text, i)
		if !ok {
			return "", "", 0, false
		}
		i = skipLinkSpace(text, i)
	}
	if i < len(text) && text[i] == ')' {
		return dest, title, i + 1, true
	}
	return "", "", 0, false
}

// scanAutolink matches <scheme:target> where scheme is 2-32 characters
// starting with a letter. Bare URLs outside angle brackets stay text.
func scanAutolink(text string, pos int) (string, int, bool) {
	i := pos + 1
	start := i
	if i >= len(text) || !isAlpha(text[i]) {
		return "", 0, false
	}
	i++
	for i < len(text) && isSchemeChar(text[i]) {
		i++
	}
	if n := i - start; n < 2 || n > 32 {
		return "", 0, false
	}
	if i >= len(text) || text[i] != ':' {
		return "", 0, false
	}
	for i++; i < len(text); i++ {
		c := text[i]
		if c == '>' {
			return text[pos+1 : i], i + 1, true
		}
		if c <= ' ' || c == '<' {
			return "", 0, false
		}
	}
	return "", 0, false
}

// findCodeSpanEnd returns the start of the next backtick run of exactly n,
// or -1 when none exists. Runs of other lengths are skipped whole.
func findCodeSpanEnd(text string, from, n int) int {
	for j := from; j < len(text); {
		if text[j] != '`' {
			j++
			continue
		}
		runLen := sameByteRun(text, j)
		if runLen == n {
			return j
		}
		j += runLen
	}
	return -1
}

// normalizeCodeSpan flattens newlines to spaces and strips one leading and
// trailing space when both are present and the content is not all spaces.
func normalizeCodeSpan(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) >= 2 && s[0] == ' ' && s[len(s)-1] == ' ' && strings.TrimSpace(s) != "" {
		s = s[1 : len(s)-1]
	}
	return s
}

// mergeText concatenates adjacent literal text children throughout the
// subtree, so leftover delimiters and escapes read back as single nodes.
func mergeText(n *mdast.Node) {
	child := n.FirstChild
	for child != nil {
		if child.Kind == mdast.NodeText && child.Next != nil && child.Next.Kind == mdast.NodeText {
			var b strings.Builder
			b.WriteString(child.Inline.Text)
			for child.Next != nil && child.Next.Kind == mdast.NodeText {
				b.WriteString(child.Next.Inline.Text)
				mdast.RemoveChild(n, child.Next)
			}
			child.Inline.Text = b.String()
		}
		mergeText(child)
		child = child.Next
	}
}

// sameByteRun returns the length of the run of text[i] starting at i.
func sameByteRun(text string, i int) int {
	c := text[i]
	j := i + 1
	for j < len(text) && text[j] == c {
		j++
	}
	return j - i
}

// isEscapable reports whether a backslash before c yields a literal c.
// The set covers every character the canonical renderer may escape,
// tilde included, so rendered output always reads back.
func isEscapable(c byte) bool {
	switch c {
	case '\\', '`', '*', '_', '~', '{', '}', '[', ']', '(', ')', '#', '+', '-', '.', '!':
		return true
	default:
		return false
	}
}

// isAlpha reports whether c is an ASCII letter.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isSchemeChar reports whether c may appear in an autolink scheme.
func isSchemeChar(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9') || c == '+' || c == '.' || c == '-'
}
