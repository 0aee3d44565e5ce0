// Package mdast provides the Markdown AST representation for mdwire.
// It defines a lossless, immutable view of a parsed document including:
// - Document: source text, token stream, AST root and side structures
// - Token stream: every byte classified
// - AST nodes: a closed set of typed block and inline kinds
package mdast

// Document is the immutable result of parsing one Markdown source.
// It holds the raw source, the lossless token stream, the AST root, and the
// link reference table. A Document is never shared state: parsing the same
// source twice yields two independent trees.
type Document struct {
	// Source is the original input text, unmodified.
	Source string

	// Tokens is the full token stream covering every byte of Source.
	Tokens []Token

	// Root is the AST root node (NodeDocument).
	Root *Node

	// Refs is the document-wide link reference table. Definitions may
	// appear anywhere in the source, including after their uses.
	Refs *RefTable

	// DepthLimited is true when the nesting cap stopped block recursion
	// somewhere in the parse. Content beyond the cap is kept as literal
	// text; the parse itself still succeeds.
	DepthLimited bool
}

// NewDocumentSnapshot creates a Document shell for the given source.
// The parser fills Tokens, Root and Refs.
func NewDocumentSnapshot(source string) *Document {
	return &Document{
		Source: source,
		Refs:   NewRefTable(),
	}
}
