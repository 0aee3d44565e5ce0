package mdast

//go:generate stringer -type=NodeKind -trimprefix=Node

// NodeKind classifies the type of an AST node.
//
// The kind set is closed: renderers switch exhaustively over it, and new
// constructs (tables, footnotes, task lists) are added by extending this
// enum rather than by attaching arbitrary metadata to existing kinds.
type NodeKind uint16

// Node kinds for block-level and inline-level Markdown elements.
const (
	NodeDocument NodeKind = iota

	// Block-level nodes.
	NodeParagraph
	NodeHeader
	NodeCodeBlock
	NodeBlockQuote
	NodeList
	NodeListItem
	NodeHorizontalRule

	// Inline-level nodes.
	NodeText
	NodeEmphasis
	NodeCodeSpan
	NodeLink
	NodeImage
	NodeAutolink
)

//go:generate stringer -type=EmphasisStrength -trimprefix=Strength

// EmphasisStrength distinguishes the visual weight of a NodeEmphasis.
type EmphasisStrength uint8

// Emphasis strengths, by the delimiter run that produced them:
// one `*` or `_` is italic, two is bold, three is bold-italic,
// and `~` runs are strikethrough.
const (
	StrengthItalic EmphasisStrength = iota
	StrengthBold
	StrengthBoldItalic
	StrengthStrikethrough
)

// Node represents a single node in the Markdown AST.
// Nodes form a tree structure with parent/child/sibling relationships.
//
// The tree is acyclic: every node except the NodeDocument root has exactly
// one parent, and NodeDocument never appears below the root.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Block holds attributes for block-level nodes.
	Block *BlockAttrs

	// Inline holds attributes for inline-level nodes.
	Inline *InlineAttrs
}

// IsBlock returns true if this is a block-level node.
func (n *Node) IsBlock() bool {
	switch n.Kind {
	case NodeDocument, NodeParagraph, NodeHeader, NodeCodeBlock,
		NodeBlockQuote, NodeList, NodeListItem, NodeHorizontalRule:
		return true
	default:
		return false
	}
}

// IsInline returns true if this is an inline-level node.
func (n *Node) IsInline() bool {
	switch n.Kind {
	case NodeText, NodeEmphasis, NodeCodeSpan, NodeLink, NodeImage,
		NodeAutolink:
		return true
	default:
		return false
	}
}

// IsContainer returns true if this node kind may carry children.
// NodeText, NodeCodeSpan, NodeCodeBlock, NodeAutolink, NodeImage and
// NodeHorizontalRule are leaves: their content lives in attributes and is
// never re-parsed into child nodes.
func (n *Node) IsContainer() bool {
	switch n.Kind {
	case NodeDocument, NodeParagraph, NodeHeader, NodeBlockQuote, NodeList,
		NodeListItem, NodeEmphasis, NodeLink:
		return true
	default:
		return false
	}
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// HeaderLevel returns the header level (1-6) for NodeHeader, or 0.
func (n *Node) HeaderLevel() int {
	if n.Kind == NodeHeader && n.Block != nil {
		return n.Block.HeaderLevel
	}
	return 0
}

// TextContent returns the literal content of NodeText and NodeCodeSpan
// nodes, or the empty string for other kinds.
func (n *Node) TextContent() string {
	if n.Inline != nil {
		return n.Inline.Text
	}
	return ""
}
