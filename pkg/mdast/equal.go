package mdast

// Equal reports whether two subtrees are structurally identical: the same
// kinds with the same attributes and the same children in the same order.
// It is the equivalence used by round-trip tests: parse, render canonically,
// re-parse, compare.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	if !blockAttrsEqual(a.Block, b.Block) {
		return false
	}
	if !inlineAttrsEqual(a.Inline, b.Inline) {
		return false
	}

	childA, childB := a.FirstChild, b.FirstChild
	for childA != nil && childB != nil {
		if !Equal(childA, childB) {
			return false
		}
		childA, childB = childA.Next, childB.Next
	}
	return childA == nil && childB == nil
}

func blockAttrsEqual(a, b *BlockAttrs) bool {
	if a == nil {
		a = &BlockAttrs{}
	}
	if b == nil {
		b = &BlockAttrs{}
	}
	if a.HeaderLevel != b.HeaderLevel {
		return false
	}
	if !listAttrsEqual(a.List, b.List) {
		return false
	}
	return codeAttrsEqual(a.Code, b.Code)
}

func listAttrsEqual(a, b *ListAttrs) bool {
	if a == nil {
		a = &ListAttrs{}
	}
	if b == nil {
		b = &ListAttrs{}
	}
	return *a == *b
}

func codeAttrsEqual(a, b *CodeAttrs) bool {
	if a == nil {
		a = &CodeAttrs{}
	}
	if b == nil {
		b = &CodeAttrs{}
	}
	return *a == *b
}

func inlineAttrsEqual(a, b *InlineAttrs) bool {
	if a == nil {
		a = &InlineAttrs{}
	}
	if b == nil {
		b = &InlineAttrs{}
	}
	if a.Text != b.Text || a.Strength != b.Strength {
		return false
	}
	return linkAttrsEqual(a.Link, b.Link)
}

func linkAttrsEqual(a, b *LinkAttrs) bool {
	if a == nil {
		a = &LinkAttrs{}
	}
	if b == nil {
		b = &LinkAttrs{}
	}
	return *a == *b
}
