package configloader

import (
	"github.com/yaklabco/mdwire/pkg/parser"
	"github.com/yaklabco/mdwire/pkg/render"
)

// Output format names accepted by config files and the --format flag.
const (
	FormatTelegram  = "telegram"
	FormatCanonical = "canonical"
)

// Config is the resolved mdwire configuration. Bool fields are pointers so a
// file or flag that sets false is distinguishable from one that says nothing.
type Config struct {
	// Format selects the render dialect: "telegram" or "canonical".
	Format string `yaml:"format"`

	// DetectLanguage classifies untagged code blocks by content.
	DetectLanguage *bool `yaml:"detect_language"`

	// NormalizeTags folds fence info-string aliases to canonical tags
	// ("golang" becomes "go").
	NormalizeTags *bool `yaml:"normalize_tags"`

	// IndentedCodeBlocks enables four-space indented code blocks, which
	// are off for conversational input.
	IndentedCodeBlocks *bool `yaml:"indented_code_blocks"`

	// MaxNestingDepth caps blockquote and list nesting. Zero means the
	// parser default.
	MaxNestingDepth int `yaml:"max_nesting_depth"`
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Format: FormatTelegram,
	}
}

// ParserOptions converts the configuration to parser options.
func (c *Config) ParserOptions() parser.Options {
	opts := parser.DefaultOptions()
	if c.IndentedCodeBlocks != nil {
		opts.IgnoreIndentedCodeBlocks = !*c.IndentedCodeBlocks
	}
	if c.MaxNestingDepth > 0 {
		opts.MaxNestingDepth = c.MaxNestingDepth
	}
	return opts
}

// RenderOptions converts the configuration to renderer options.
func (c *Config) RenderOptions() render.Options {
	opts := render.DefaultOptions()
	if c.NormalizeTags != nil {
		opts.NormalizeLanguageTags = *c.NormalizeTags
	}
	if c.DetectLanguage != nil {
		opts.DetectLanguage = *c.DetectLanguage
	}
	return opts
}

// Bool returns a pointer to b, for building override configs in code.
func Bool(b bool) *bool {
	return &b
}
