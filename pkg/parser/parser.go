// Package parser turns Markdown text into the mdast document model.
//
// The pipeline is tokenize, block parse, then a document-wide inline pass.
// The inline pass runs only after every block is collected, so reference
// definitions resolve no matter where they appear in the source. Parsing
// never fails: malformed or hostile input degrades to literal text, and the
// only reported condition is the container nesting cap.
package parser

import (
	"github.com/yaklabco/mdwire/pkg/mdast"
)

// Parse builds the document for source. It always succeeds. The returned
// document carries the lossless token stream, the block and inline tree, the
// reference table, and whether nesting hit the configured cap.
func Parse(source string, opts Options) *mdast.Document {
	opts = opts.normalized()

	doc := mdast.NewDocumentSnapshot(source)
	doc.Tokens = Tokenize(source)

	lines := mdast.BuildLines(source)
	spans := make([]span, len(lines))
	for i, ln := range lines {
		spans[i] = span{start: ln.StartOffset, end: ln.NewlineStart}
	}

	bp := &blockParser{src: source, opts: opts, refs: doc.Refs}
	root := mdast.NewDocument()
	bp.parseBlocks(root, spans, 0)

	for _, leaf := range bp.pending {
		parseInlines(leaf.node, leaf.text, doc.Refs, true)
	}

	doc.Root = root
	doc.DepthLimited = bp.depthLimited
	return doc
}
