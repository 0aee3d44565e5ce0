package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdwire/internal/ui/pretty"
	"github.com/yaklabco/mdwire/pkg/parser"
)

func TestTreeView_Format(t *testing.T) {
	source := "# Title\n\npara with *em* and [x](http://e.com)\n\n```go\ncode\n```"
	doc := parser.Parse(source, parser.DefaultOptions())
	view := pretty.NewTreeView(pretty.NewStyles(false))

	out := view.Format(doc)
	require.NotEmpty(t, out)

	assert.True(t, strings.HasPrefix(out, "Document\n"))
	assert.Contains(t, out, "Header level=1")
	assert.Contains(t, out, "Paragraph")
	assert.Contains(t, out, "Emphasis italic")
	assert.Contains(t, out, "Link dest=http://e.com")
	assert.Contains(t, out, "CodeBlock lang=go")
	assert.Contains(t, out, `"code\n"`)
	assert.Contains(t, out, "├── ")
	assert.Contains(t, out, "└── ")
}

func TestTreeView_ListAttrs(t *testing.T) {
	view := pretty.NewTreeView(pretty.NewStyles(false))

	out := view.Format(parser.Parse("- a\n- b", parser.DefaultOptions()))
	assert.Contains(t, out, `List bullet='-' tight`)

	out = view.Format(parser.Parse("3. a\n\n4. b", parser.DefaultOptions()))
	assert.Contains(t, out, "List ordered start=3 loose")
}

func TestTreeView_DepthLimitedNotice(t *testing.T) {
	view := pretty.NewTreeView(pretty.NewStyles(false))

	doc := parser.Parse(">>>>> deep", parser.Options{MaxNestingDepth: 2})
	out := view.Format(doc)
	assert.Contains(t, out, "nesting depth cap reached")

	doc = parser.Parse("> fine", parser.DefaultOptions())
	assert.NotContains(t, view.Format(doc), "nesting depth cap")
}

func TestTreeView_LongTextTruncated(t *testing.T) {
	long := strings.Repeat("x", 200)
	view := pretty.NewTreeView(pretty.NewStyles(false))

	out := view.Format(parser.Parse(long, parser.DefaultOptions()))
	assert.Contains(t, out, "...")
	assert.NotContains(t, out, long)
}

func TestTreeView_Empty(t *testing.T) {
	view := pretty.NewTreeView(pretty.NewStyles(false))
	assert.Equal(t, "Document\n", view.Format(parser.Parse("", parser.DefaultOptions())))
	assert.Empty(t, view.Format(nil))
}
