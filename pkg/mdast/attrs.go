package mdast

// BlockAttrs holds attributes for block-level nodes.
type BlockAttrs struct {
	// HeaderLevel is the header level (1-6) for NodeHeader.
	HeaderLevel int

	// List holds list-specific attributes for NodeList.
	List *ListAttrs

	// Code holds code block attributes for NodeCodeBlock.
	Code *CodeAttrs
}

// ListAttrs holds attributes for list nodes.
type ListAttrs struct {
	// Ordered is true for ordered lists (1., 2., etc.).
	Ordered bool

	// BulletMarker is the bullet character used ('-', '+', '*').
	// Zero for ordered lists.
	BulletMarker byte

	// Start is the ordinal of the first item for ordered lists.
	Start int

	// Tight is true if no blank line separates item content anywhere in
	// the list. Tight items render their content inline; loose items
	// render full paragraphs.
	Tight bool
}

// CodeAttrs holds attributes for code block nodes.
//
// Content is opaque: it is stored exactly as written and is never
// re-parsed for inline constructs.
type CodeAttrs struct {
	// Language is the normalized info string ("go", "python", ...).
	// Empty when the fence carried no info string.
	Language string

	// Content is the literal code, without fence lines.
	Content string

	// Fenced is true for fenced blocks, false for indented ones.
	Fenced bool

	// FenceChar is the fence character ('`' or '~') for fenced blocks.
	FenceChar byte

	// FenceLength is the opening run length for fenced blocks.
	FenceLength int
}

// InlineAttrs holds attributes for inline-level nodes.
type InlineAttrs struct {
	// Text holds the literal content for NodeText and NodeCodeSpan.
	Text string

	// Strength is the emphasis strength for NodeEmphasis.
	Strength EmphasisStrength

	// Link holds link attributes for NodeLink, NodeImage and NodeAutolink.
	Link *LinkAttrs
}

// LinkAttrs holds attributes for link, image and autolink nodes.
type LinkAttrs struct {
	// Destination is the link URL. For NodeAutolink it is also the
	// visible text.
	Destination string

	// Title is the optional link title. Always empty for autolinks.
	Title string

	// Alt is the flattened alternative text for NodeImage. Images carry
	// no children; their bracketed content is reduced to plain text.
	Alt string
}

// NewBlockAttrs creates a new BlockAttrs with default values.
func NewBlockAttrs() *BlockAttrs {
	return &BlockAttrs{}
}

// NewInlineAttrs creates a new InlineAttrs with default values.
func NewInlineAttrs() *InlineAttrs {
	return &InlineAttrs{}
}

// WithHeaderLevel sets the header level and returns the BlockAttrs for chaining.
func (a *BlockAttrs) WithHeaderLevel(level int) *BlockAttrs {
	a.HeaderLevel = level
	return a
}

// WithList sets list attributes and returns the BlockAttrs for chaining.
func (a *BlockAttrs) WithList(attrs *ListAttrs) *BlockAttrs {
	a.List = attrs
	return a
}

// WithCode sets code block attributes and returns the BlockAttrs for chaining.
func (a *BlockAttrs) WithCode(attrs *CodeAttrs) *BlockAttrs {
	a.Code = attrs
	return a
}

// WithText sets the text content and returns the InlineAttrs for chaining.
func (a *InlineAttrs) WithText(text string) *InlineAttrs {
	a.Text = text
	return a
}

// WithStrength sets the emphasis strength and returns the InlineAttrs for chaining.
func (a *InlineAttrs) WithStrength(strength EmphasisStrength) *InlineAttrs {
	a.Strength = strength
	return a
}

// WithLink sets link attributes and returns the InlineAttrs for chaining.
func (a *InlineAttrs) WithLink(attrs *LinkAttrs) *InlineAttrs {
	a.Link = attrs
	return a
}
