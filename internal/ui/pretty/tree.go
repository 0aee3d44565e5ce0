package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdwire/pkg/mdast"
)

// Tree branch glyphs.
const (
	branchMid   = "├── "
	branchLast  = "└── "
	branchPipe  = "│   "
	branchBlank = "    "
	maxTextPeek = 40
)

// TreeView renders a document tree as an indented, styled outline.
type TreeView struct {
	styles *Styles
}

// NewTreeView creates a tree view renderer.
func NewTreeView(styles *Styles) *TreeView {
	return &TreeView{styles: styles}
}

// Format renders the document's node tree.
func (v *TreeView) Format(doc *mdast.Document) string {
	if doc == nil || doc.Root == nil {
		return ""
	}

	var builder strings.Builder
	builder.WriteString(v.describe(doc.Root))
	builder.WriteString("\n")
	v.renderChildren(&builder, doc.Root, "")

	if doc.DepthLimited {
		builder.WriteString(v.styles.Warning.Render("nesting depth cap reached; deeper content kept as text"))
		builder.WriteString("\n")
	}
	return builder.String()
}

func (v *TreeView) renderChildren(builder *strings.Builder, n *mdast.Node, prefix string) {
	for child := n.FirstChild; child != nil; child = child.Next {
		branch, childPrefix := branchMid, prefix+branchPipe
		if child.Next == nil {
			branch, childPrefix = branchLast, prefix+branchBlank
		}
		builder.WriteString(v.styles.TreeBranch.Render(prefix + branch))
		builder.WriteString(v.describe(child))
		builder.WriteString("\n")
		v.renderChildren(builder, child, childPrefix)
	}
}

// describe renders one node as its kind plus the attributes worth seeing in
// a debugging view.
func (v *TreeView) describe(n *mdast.Node) string {
	parts := []string{v.styles.NodeKind.Render(n.Kind.String())}

	for _, attr := range nodeAttrs(n) {
		parts = append(parts, v.styles.NodeAttr.Render(attr))
	}
	if text := nodeText(n); text != "" {
		parts = append(parts, v.styles.NodeText.Render(text))
	}

	return strings.Join(parts, " ")
}

func nodeAttrs(n *mdast.Node) []string {
	var attrs []string
	switch n.Kind {
	case mdast.NodeHeader:
		attrs = append(attrs, fmt.Sprintf("level=%d", n.Block.HeaderLevel))
	case mdast.NodeCodeBlock:
		code := n.Block.Code
		if code.Language != "" {
			attrs = append(attrs, "lang="+code.Language)
		}
		if !code.Fenced {
			attrs = append(attrs, "indented")
		}
	case mdast.NodeList:
		list := n.Block.List
		if list.Ordered {
			attrs = append(attrs, fmt.Sprintf("ordered start=%d", list.Start))
		} else {
			attrs = append(attrs, fmt.Sprintf("bullet=%q", list.BulletMarker))
		}
		if list.Tight {
			attrs = append(attrs, "tight")
		} else {
			attrs = append(attrs, "loose")
		}
	case mdast.NodeEmphasis:
		attrs = append(attrs, strings.ToLower(n.Inline.Strength.String()))
	case mdast.NodeLink, mdast.NodeAutolink:
		attrs = append(attrs, "dest="+n.Inline.Link.Destination)
		if n.Inline.Link.Title != "" {
			attrs = append(attrs, "title="+strconv.Quote(n.Inline.Link.Title))
		}
	case mdast.NodeImage:
		attrs = append(attrs, "dest="+n.Inline.Link.Destination, "alt="+strconv.Quote(n.Inline.Link.Alt))
	}
	return attrs
}

func nodeText(n *mdast.Node) string {
	var text string
	switch n.Kind {
	case mdast.NodeText, mdast.NodeCodeSpan:
		text = n.Inline.Text
	case mdast.NodeCodeBlock:
		text = n.Block.Code.Content
	default:
		return ""
	}
	return strconv.Quote(truncateString(text, maxTextPeek))
}
