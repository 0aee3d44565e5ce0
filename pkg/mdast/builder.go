package mdast

// NewNode creates a new node of the specified kind.
// The node has no parent, children, or attributes.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind}
}

// NewDocument creates a new document root node.
func NewDocument() *Node {
	return NewNode(NodeDocument)
}

// NewParagraph creates an empty paragraph node.
func NewParagraph() *Node {
	return NewNode(NodeParagraph)
}

// NewHeader creates a header node with the given level (1-6).
func NewHeader(level int) *Node {
	n := NewNode(NodeHeader)
	n.Block = NewBlockAttrs().WithHeaderLevel(level)
	return n
}

// NewCodeBlock creates a code block node with the given attributes.
func NewCodeBlock(attrs *CodeAttrs) *Node {
	n := NewNode(NodeCodeBlock)
	n.Block = NewBlockAttrs().WithCode(attrs)
	return n
}

// NewBlockQuote creates an empty blockquote node.
func NewBlockQuote() *Node {
	return NewNode(NodeBlockQuote)
}

// NewList creates a list node with the given attributes.
func NewList(attrs *ListAttrs) *Node {
	n := NewNode(NodeList)
	n.Block = NewBlockAttrs().WithList(attrs)
	return n
}

// NewListItem creates an empty list item node.
func NewListItem() *Node {
	return NewNode(NodeListItem)
}

// NewHorizontalRule creates a horizontal rule node.
func NewHorizontalRule() *Node {
	return NewNode(NodeHorizontalRule)
}

// NewText creates a text node with the given literal content.
func NewText(content string) *Node {
	n := NewNode(NodeText)
	n.Inline = NewInlineAttrs().WithText(content)
	return n
}

// NewEmphasis creates an emphasis node of the given strength.
func NewEmphasis(strength EmphasisStrength) *Node {
	n := NewNode(NodeEmphasis)
	n.Inline = NewInlineAttrs().WithStrength(strength)
	return n
}

// NewCodeSpan creates a code span node with the given literal content.
func NewCodeSpan(content string) *Node {
	n := NewNode(NodeCodeSpan)
	n.Inline = NewInlineAttrs().WithText(content)
	return n
}

// NewLink creates a link node with the given destination and title.
// Link text is attached as children.
func NewLink(destination, title string) *Node {
	n := NewNode(NodeLink)
	n.Inline = NewInlineAttrs().WithLink(&LinkAttrs{Destination: destination, Title: title})
	return n
}

// NewImage creates an image node. Images carry no children; alt is the
// flattened alternative text.
func NewImage(alt, destination, title string) *Node {
	n := NewNode(NodeImage)
	n.Inline = NewInlineAttrs().WithLink(&LinkAttrs{Destination: destination, Title: title, Alt: alt})
	return n
}

// NewAutolink creates an autolink node for the given target.
func NewAutolink(target string) *Node {
	n := NewNode(NodeAutolink)
	n.Inline = NewInlineAttrs().WithLink(&LinkAttrs{Destination: target})
	return n
}

// AppendChild appends a child node to a parent.
// It maintains the parent/child/sibling relationships correctly.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}

	// Remove from previous parent if any.
	if child.Parent != nil {
		RemoveChild(child.Parent, child)
	}

	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}

	parent.LastChild = child
}

// PrependChild prepends a child node to a parent.
func PrependChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}

	// Remove from previous parent if any.
	if child.Parent != nil {
		RemoveChild(child.Parent, child)
	}

	child.Parent = parent
	child.Prev = nil
	child.Next = parent.FirstChild

	if parent.FirstChild != nil {
		parent.FirstChild.Prev = child
	} else {
		parent.LastChild = child
	}

	parent.FirstChild = child
}

// InsertBefore inserts newNode before sibling.
// sibling must have a parent.
func InsertBefore(sibling, newNode *Node) {
	if sibling == nil || newNode == nil || sibling.Parent == nil {
		return
	}

	parent := sibling.Parent

	// Remove newNode from its current parent if any.
	if newNode.Parent != nil {
		RemoveChild(newNode.Parent, newNode)
	}

	newNode.Parent = parent
	newNode.Prev = sibling.Prev
	newNode.Next = sibling

	if sibling.Prev != nil {
		sibling.Prev.Next = newNode
	} else {
		parent.FirstChild = newNode
	}

	sibling.Prev = newNode
}

// InsertAfter inserts newNode after sibling.
// sibling must have a parent.
func InsertAfter(sibling, newNode *Node) {
	if sibling == nil || newNode == nil || sibling.Parent == nil {
		return
	}

	parent := sibling.Parent

	// Remove newNode from its current parent if any.
	if newNode.Parent != nil {
		RemoveChild(newNode.Parent, newNode)
	}

	newNode.Parent = parent
	newNode.Prev = sibling
	newNode.Next = sibling.Next

	if sibling.Next != nil {
		sibling.Next.Prev = newNode
	} else {
		parent.LastChild = newNode
	}

	sibling.Next = newNode
}

// RemoveChild removes a child from its parent.
func RemoveChild(parent, child *Node) {
	if parent == nil || child == nil || child.Parent != parent {
		return
	}

	if child.Prev != nil {
		child.Prev.Next = child.Next
	} else {
		parent.FirstChild = child.Next
	}

	if child.Next != nil {
		child.Next.Prev = child.Prev
	} else {
		parent.LastChild = child.Prev
	}

	child.Parent = nil
	child.Prev = nil
	child.Next = nil
}

// ReplaceChild replaces oldChild with newChild in the tree.
func ReplaceChild(parent, oldChild, newChild *Node) {
	if parent == nil || oldChild == nil || newChild == nil {
		return
	}

	if oldChild.Parent != parent {
		return
	}

	// Remove newChild from its current parent if any.
	if newChild.Parent != nil {
		RemoveChild(newChild.Parent, newChild)
	}

	newChild.Parent = parent
	newChild.Prev = oldChild.Prev
	newChild.Next = oldChild.Next

	if oldChild.Prev != nil {
		oldChild.Prev.Next = newChild
	} else {
		parent.FirstChild = newChild
	}

	if oldChild.Next != nil {
		oldChild.Next.Prev = newChild
	} else {
		parent.LastChild = newChild
	}

	oldChild.Parent = nil
	oldChild.Prev = nil
	oldChild.Next = nil
}
