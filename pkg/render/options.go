// Package render serializes mdast documents to output dialects.
//
// Two renderers walk the tree: Canonical re-emits standard Markdown such
// that re-parsing yields a structurally equal document, and MarkdownV2 emits
// the Telegram wire dialect with total escaping of reserved punctuation.
// Both switch exhaustively over the closed node kind set; adding a kind
// without teaching the renderers about it is a compile-visible omission, not
// a silent drop.
package render

// Options controls renderer behavior. The zero value renders faithfully
// without touching language tags.
type Options struct {
	// NormalizeLanguageTags maps fence info-string aliases to their
	// canonical form ("golang" becomes "go") before emitting code blocks.
	NormalizeLanguageTags bool

	// DetectLanguage classifies untagged code blocks by content and emits
	// the detected language tag. Tagged blocks are never reclassified.
	DetectLanguage bool
}

// DefaultOptions returns the options used by the facade: alias normalization
// on, content detection off.
func DefaultOptions() Options {
	return Options{
		NormalizeLanguageTags: true,
	}
}
