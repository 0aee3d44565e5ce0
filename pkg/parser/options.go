package parser

// DefaultMaxNestingDepth is the container nesting cap applied when
// Options.MaxNestingDepth is zero or negative.
const DefaultMaxNestingDepth = 100

// Options controls parsing behavior.
type Options struct {
	// IgnoreIndentedCodeBlocks disables recognition of four-space indented
	// code blocks. Chat-style input indents prose freely, so treating
	// indentation as code mangles ordinary messages; the default is true.
	IgnoreIndentedCodeBlocks bool

	// MaxNestingDepth caps blockquote and list nesting. Content below the
	// cap parses normally; deeper prefixes are kept as literal text and the
	// resulting Document reports DepthLimited. Zero or negative values fall
	// back to DefaultMaxNestingDepth.
	MaxNestingDepth int
}

// DefaultOptions returns the options used for conversational Markdown.
func DefaultOptions() Options {
	return Options{
		IgnoreIndentedCodeBlocks: true,
		MaxNestingDepth:          DefaultMaxNestingDepth,
	}
}

// normalized returns a copy with out-of-range values replaced by defaults.
func (o Options) normalized() Options {
	if o.MaxNestingDepth <= 0 {
		o.MaxNestingDepth = DefaultMaxNestingDepth
	}
	return o
}
