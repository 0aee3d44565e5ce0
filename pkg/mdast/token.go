package mdast

//go:generate stringer -type=TokenKind -trimprefix=Tok

// TokenKind classifies the type of a token in the Markdown source.
type TokenKind uint16

// Token kinds cover every byte in the source. Marker kinds are recognized at
// line-start position (after indentation and blockquote prefixes); everything
// else inside a line is classified as text, whitespace or special runs.
const (
	TokText TokenKind = iota
	TokNewline
	TokBlankLine // a line containing only whitespace, newline included

	TokSpaceRun   // run of spaces and tabs inside a line
	TokSpecialRun // maximal run of one special character: * _ ~ ` [ ] ( ) ! # > - + .

	TokFenceOpen    // ``` or ~~~ opening run, top level only
	TokFenceClose   // matching closing run
	TokHeaderMarker // '#' through '######' followed by space or end of line
	TokListMarker   // '-', '+', '*' bullet or 'N.' ordinal, followed by space
	TokHRuleMarker  // full thematic break line: --- *** ___
)

// Token represents a classified span of bytes in the Markdown source.
// Tokens are contiguous and non-overlapping, covering [0, len(source)):
// concatenating the spans of a token stream reproduces the source
// byte-for-byte.
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// StartOffset is the byte index where this token begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where this token ends (exclusive).
	EndOffset int
}

// Text returns the source text of this token from the given source.
func (t Token) Text(source string) string {
	if t.StartOffset < 0 || t.EndOffset > len(source) || t.StartOffset > t.EndOffset {
		return ""
	}
	return source[t.StartOffset:t.EndOffset]
}

// Len returns the length of this token in bytes.
func (t Token) Len() int {
	return t.EndOffset - t.StartOffset
}

// IsEmpty returns true if this token has zero length.
func (t Token) IsEmpty() bool {
	return t.StartOffset == t.EndOffset
}

// ValidateTokens checks that a token slice is lossless:
// - Tokens are contiguous and non-overlapping.
// - Tokens cover the full source range [0, sourceLen).
// Returns true if valid, false otherwise.
func ValidateTokens(tokens []Token, sourceLen int) bool {
	if len(tokens) == 0 {
		return sourceLen == 0
	}

	// First token must start at 0.
	if tokens[0].StartOffset != 0 {
		return false
	}

	// Last token must end at sourceLen.
	if tokens[len(tokens)-1].EndOffset != sourceLen {
		return false
	}

	// Check contiguity.
	for i := 1; i < len(tokens); i++ {
		if tokens[i].StartOffset != tokens[i-1].EndOffset {
			return false
		}
	}

	return true
}
