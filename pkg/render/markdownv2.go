package render

import (
	"strconv"
	"strings"

	"github.com/yaklabco/mdwire/pkg/langdetect"
	"github.com/yaklabco/mdwire/pkg/mdast"
)

// MarkdownV2 renders doc as Telegram MarkdownV2 using DefaultOptions.
func MarkdownV2(doc *mdast.Document) string {
	return MarkdownV2With(doc, DefaultOptions())
}

// MarkdownV2With renders doc as Telegram MarkdownV2.
//
// Every reserved character in literal content is escaped; the only unescaped
// reserved characters in the output are delimiters the renderer itself emits
// for formatting nodes. Kinds without a native wire form are mapped: headers
// render bold, images render as links, titles are dropped.
func MarkdownV2With(doc *mdast.Document, opts Options) string {
	if doc == nil || doc.Root == nil {
		return ""
	}
	r := &v2Renderer{opts: opts}
	return r.renderBlocks(doc.Root, false)
}

type v2Renderer struct {
	opts Options
}

// renderBlocks renders the block children of parent, separated by blank
// lines, or by single newlines inside a tight list item.
func (r *v2Renderer) renderBlocks(parent *mdast.Node, tight bool) string {
	sep := "\n\n"
	if tight {
		sep = "\n"
	}
	var parts []string
	for child := parent.FirstChild; child != nil; child = child.Next {
		parts = append(parts, r.renderBlock(child, tight))
	}
	return strings.Join(parts, sep)
}

func (r *v2Renderer) renderBlock(n *mdast.Node, tight bool) string {
	switch n.Kind {
	case mdast.NodeParagraph, mdast.NodeDocument:
		return r.renderInlines(n)

	case mdast.NodeHeader:
		return "*" + r.renderInlines(n) + "*"

	case mdast.NodeCodeBlock:
		return r.renderCodeBlock(n)

	case mdast.NodeBlockQuote:
		return prefixLines(r.renderBlocks(n, false), ">")

	case mdast.NodeList:
		return r.renderList(n)

	case mdast.NodeListItem:
		// Items are rendered by renderList; a stray item renders its body.
		return r.renderBlocks(n, tight)

	case mdast.NodeHorizontalRule:
		return `\-\-\-`

	default:
		// Inline kinds reaching block position render as their inline form.
		return r.renderInline(n)
	}
}

func (r *v2Renderer) renderCodeBlock(n *mdast.Node) string {
	code := n.Block.Code
	tag := r.languageTag(code)

	var b strings.Builder
	b.WriteString("```")
	b.WriteString(tag)
	b.WriteByte('\n')
	content := code.Content
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	b.WriteString(EscapeCode(content))
	b.WriteString("```")
	return b.String()
}

// languageTag resolves the fence tag for a code block per the options:
// normalize declared aliases, optionally classify untagged content.
func (r *v2Renderer) languageTag(code *mdast.CodeAttrs) string {
	tag := code.Language
	if tag != "" {
		if r.opts.NormalizeLanguageTags {
			return langdetect.NormalizeTag(tag)
		}
		return tag
	}
	if r.opts.DetectLanguage {
		return langdetect.Detect([]byte(code.Content))
	}
	return ""
}

func (r *v2Renderer) renderList(n *mdast.Node) string {
	attrs := n.Block.List
	itemSep := "\n"
	if !attrs.Tight {
		itemSep = "\n\n"
	}

	var items []string
	ordinal := attrs.Start
	if ordinal <= 0 {
		ordinal = 1
	}
	for item := n.FirstChild; item != nil; item = item.Next {
		marker := "•"
		if attrs.Ordered {
			marker = strconv.Itoa(ordinal) + `\.`
			ordinal++
		}
		body := r.renderBlocks(item, attrs.Tight)
		items = append(items, hangIndent(body, marker+" ", "  "))
	}
	return strings.Join(items, itemSep)
}

func (r *v2Renderer) renderInlines(parent *mdast.Node) string {
	var b strings.Builder
	for child := parent.FirstChild; child != nil; child = child.Next {
		b.WriteString(r.renderInline(child))
	}
	return b.String()
}

func (r *v2Renderer) renderInline(n *mdast.Node) string {
	switch n.Kind {
	case mdast.NodeText:
		return EscapeText(n.Inline.Text)

	case mdast.NodeEmphasis:
		opening, closing := emphasisDelims(n.Inline.Strength)
		return opening + r.renderInlines(n) + closing

	case mdast.NodeCodeSpan:
		return "`" + EscapeCode(n.Inline.Text) + "`"

	case mdast.NodeLink:
		return "[" + r.renderInlines(n) + "](" + EscapeURL(n.Inline.Link.Destination) + ")"

	case mdast.NodeImage:
		return "[" + EscapeText(n.Inline.Link.Alt) + "](" + EscapeURL(n.Inline.Link.Destination) + ")"

	case mdast.NodeAutolink:
		target := n.Inline.Link.Destination
		return "[" + EscapeText(target) + "](" + EscapeURL(target) + ")"

	default:
		// Block kinds never appear in inline position; render nothing.
		return ""
	}
}

// emphasisDelims returns the wire delimiters for an emphasis strength.
func emphasisDelims(strength mdast.EmphasisStrength) (string, string) {
	switch strength {
	case mdast.StrengthBold:
		return "*", "*"
	case mdast.StrengthBoldItalic:
		return "*_", "_*"
	case mdast.StrengthStrikethrough:
		return "~", "~"
	default:
		return "_", "_"
	}
}

// prefixLines prepends prefix to every line of s.
func prefixLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// hangIndent prepends first to the first line of s and cont to the rest.
func hangIndent(s, first, cont string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = first + line
			continue
		}
		if line == "" {
			continue
		}
		lines[i] = cont + line
	}
	return strings.Join(lines, "\n")
}
