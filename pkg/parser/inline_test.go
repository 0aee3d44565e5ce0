package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdwire/pkg/mdast"
)

// firstParagraph returns the first paragraph block of the parsed source.
func firstParagraph(t *testing.T, source string) *mdast.Node {
	t.Helper()
	paras := mdast.FindByKind(Parse(source, DefaultOptions()).Root, mdast.NodeParagraph)
	require.NotEmpty(t, paras, "no paragraph in %q", source)
	return paras[0]
}

func inlineKinds(n *mdast.Node) []mdast.NodeKind {
	var kinds []mdast.NodeKind
	for c := n.FirstChild; c != nil; c = c.Next {
		kinds = append(kinds, c.Kind)
	}
	return kinds
}

func TestInline_SnakeCaseStaysLiteral(t *testing.T) {
	para := firstParagraph(t, "snake_case_name")

	require.Equal(t, []mdast.NodeKind{mdast.NodeText}, inlineKinds(para))
	assert.Equal(t, "snake_case_name", para.FirstChild.Inline.Text)
}

func TestInline_UnderscoreEmphasisAtWordBoundary(t *testing.T) {
	para := firstParagraph(t, "_word_ after")

	require.Equal(t, []mdast.NodeKind{mdast.NodeEmphasis, mdast.NodeText}, inlineKinds(para))
	emph := para.FirstChild
	assert.Equal(t, mdast.StrengthItalic, emph.Inline.Strength)
	assert.Equal(t, "word", mdast.PlainText(emph))
	assert.Equal(t, " after", emph.Next.Inline.Text)
}

func TestInline_EmphasisStrengths(t *testing.T) {
	tests := []struct {
		source   string
		strength mdast.EmphasisStrength
	}{
		{"*word*", mdast.StrengthItalic},
		{"**word**", mdast.StrengthBold},
		{"***word***", mdast.StrengthBoldItalic},
		{"~word~", mdast.StrengthStrikethrough},
		{"~~word~~", mdast.StrengthStrikethrough},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			para := firstParagraph(t, tt.source)
			emphs := mdast.FindByKind(para, mdast.NodeEmphasis)
			require.Len(t, emphs, 1)
			assert.Equal(t, tt.strength, emphs[0].Inline.Strength)
			assert.Equal(t, "word", mdast.PlainText(emphs[0]))
		})
	}
}

func TestInline_NestedEmphasis(t *testing.T) {
	para := firstParagraph(t, "*a **b** c*")

	outer := mdast.FindByKind(para, mdast.NodeEmphasis)
	require.Len(t, outer, 2)
	assert.Equal(t, mdast.StrengthItalic, outer[0].Inline.Strength)
	assert.Equal(t, mdast.StrengthBold, outer[1].Inline.Strength)
	assert.Equal(t, mdast.NodeEmphasis, outer[1].Parent.Kind)
}

func TestInline_UnmatchedDelimitersStayText(t *testing.T) {
	for _, source := range []string{"a * b", "*unclosed", "word * word * word"} {
		para := firstParagraph(t, source)
		assert.Empty(t, mdast.FindByKind(para, mdast.NodeEmphasis), "source %q", source)
		assert.Equal(t, source, mdast.PlainText(para))
	}
}

func TestInline_LongDelimiterRunsAreLiteral(t *testing.T) {
	para := firstParagraph(t, "****word****")
	assert.Empty(t, mdast.FindByKind(para, mdast.NodeEmphasis))
	assert.Equal(t, "****word****", mdast.PlainText(para))
}

func TestInline_BackslashEscapes(t *testing.T) {
	para := firstParagraph(t, `\*escaped\*`)

	require.Equal(t, []mdast.NodeKind{mdast.NodeText}, inlineKinds(para))
	assert.Equal(t, "*escaped*", para.FirstChild.Inline.Text)
}

func TestInline_EscapedTildeIsLiteral(t *testing.T) {
	para := firstParagraph(t, `\~one\~`)

	require.Equal(t, []mdast.NodeKind{mdast.NodeText}, inlineKinds(para))
	assert.Equal(t, "~one~", para.FirstChild.Inline.Text)
	assert.Empty(t, mdast.FindByKind(para, mdast.NodeEmphasis))
}

func TestInline_NonEscapableBackslashNeutralizes(t *testing.T) {
	// \< is not an escape pair, but the backslash still strips the angle
	// bracket of autolink meaning.
	para := firstParagraph(t, `\<https://e.com>`)
	assert.Empty(t, mdast.FindByKind(para, mdast.NodeAutolink))
	assert.Equal(t, `\<https://e.com>`, mdast.PlainText(para))
}

func TestInline_CodeSpan(t *testing.T) {
	para := firstParagraph(t, "Use `fmt.Println` here")

	require.Equal(t,
		[]mdast.NodeKind{mdast.NodeText, mdast.NodeCodeSpan, mdast.NodeText},
		inlineKinds(para))
	assert.Equal(t, "fmt.Println", para.FirstChild.Next.Inline.Text)
}

func TestInline_TripleBacktickOnOneLineIsCodeSpan(t *testing.T) {
	para := firstParagraph(t, "Test 1 ```test1 test2 test3```")

	spans := mdast.FindByKind(para, mdast.NodeCodeSpan)
	require.Len(t, spans, 1)
	assert.Equal(t, "test1 test2 test3", spans[0].Inline.Text)

	doc := Parse("Test 1 ```test1 test2 test3```", DefaultOptions())
	assert.Empty(t, mdast.FindByKind(doc.Root, mdast.NodeCodeBlock))
}

func TestInline_CodeSpanDelimiterLengthMustMatch(t *testing.T) {
	para := firstParagraph(t, "a ``b` c`` d")

	spans := mdast.FindByKind(para, mdast.NodeCodeSpan)
	require.Len(t, spans, 1)
	assert.Equal(t, "b` c", spans[0].Inline.Text)
}

func TestInline_CodeSpanStripsOnePaddingSpace(t *testing.T) {
	para := firstParagraph(t, "` `` `")
	spans := mdast.FindByKind(para, mdast.NodeCodeSpan)
	require.Len(t, spans, 1)
	assert.Equal(t, "``", spans[0].Inline.Text)
}

func TestInline_CodeSpanSuppressesEmphasisAndLinks(t *testing.T) {
	para := firstParagraph(t, "`*x* [y](z)`")

	require.Equal(t, []mdast.NodeKind{mdast.NodeCodeSpan}, inlineKinds(para))
	assert.Empty(t, mdast.FindByKind(para, mdast.NodeEmphasis))
	assert.Empty(t, mdast.FindByKind(para, mdast.NodeLink))
}

func TestInline_InlineLink(t *testing.T) {
	para := firstParagraph(t, `[docs](https://e.com/docs "Docs")`)

	links := mdast.FindByKind(para, mdast.NodeLink)
	require.Len(t, links, 1)
	link := links[0].Inline.Link
	assert.Equal(t, "https://e.com/docs", link.Destination)
	assert.Equal(t, "Docs", link.Title)
	assert.Equal(t, "docs", mdast.PlainText(links[0]))
}

func TestInline_LinkTextCarriesEmphasis(t *testing.T) {
	para := firstParagraph(t, "[see *this*](u)")

	links := mdast.FindByKind(para, mdast.NodeLink)
	require.Len(t, links, 1)
	assert.Len(t, mdast.FindByKind(links[0], mdast.NodeEmphasis), 1)
}

func TestInline_NoNestedLinks(t *testing.T) {
	para := firstParagraph(t, "[a [b](u) c](v)")

	links := mdast.FindByKind(para, mdast.NodeLink)
	require.Len(t, links, 1)
	assert.Equal(t, "v", links[0].Inline.Link.Destination)
	assert.Equal(t, "a [b](u) c", mdast.PlainText(links[0]))
}

func TestInline_UnresolvableBracketStaysLiteral(t *testing.T) {
	for _, source := range []string{"[not a link]", "array[0]", "[x](", "[x] (spaced)"} {
		para := firstParagraph(t, source)
		assert.Empty(t, mdast.FindByKind(para, mdast.NodeLink), "source %q", source)
		assert.Equal(t, source, mdast.PlainText(para))
	}
}

func TestInline_AngleWrappedDestination(t *testing.T) {
	para := firstParagraph(t, "[x](<u v>)")

	links := mdast.FindByKind(para, mdast.NodeLink)
	require.Len(t, links, 1)
	assert.Equal(t, "u v", links[0].Inline.Link.Destination)
}

func TestInline_ReferenceLinkForms(t *testing.T) {
	defs := "\n\n[label]: http://e.com \"T\""

	tests := []struct {
		name   string
		source string
		text   string
	}{
		{"full", "[x][label]" + defs, "x"},
		{"collapsed", "[label][]" + defs, "label"},
		{"shortcut", "[label]" + defs, "label"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.source, DefaultOptions())
			links := mdast.FindByKind(doc.Root, mdast.NodeLink)
			require.Len(t, links, 1)
			assert.Equal(t, "http://e.com", links[0].Inline.Link.Destination)
			assert.Equal(t, "T", links[0].Inline.Link.Title)
			assert.Equal(t, tt.text, mdast.PlainText(links[0]))
		})
	}
}

func TestInline_ForwardReferenceResolves(t *testing.T) {
	doc := Parse("[x][a]\n\n[a]: http://e.com", DefaultOptions())

	links := mdast.FindByKind(doc.Root, mdast.NodeLink)
	require.Len(t, links, 1)
	assert.Equal(t, "http://e.com", links[0].Inline.Link.Destination)
}

func TestInline_UndefinedReferenceStaysLiteral(t *testing.T) {
	para := firstParagraph(t, "[x][missing]")
	assert.Empty(t, mdast.FindByKind(para, mdast.NodeLink))
	assert.Equal(t, "[x][missing]", mdast.PlainText(para))
}

func TestInline_Image(t *testing.T) {
	para := firstParagraph(t, "![alt *text*](https://e.com/i.png)")

	images := mdast.FindByKind(para, mdast.NodeImage)
	require.Len(t, images, 1)
	img := images[0].Inline.Link
	assert.Equal(t, "https://e.com/i.png", img.Destination)
	assert.Equal(t, "alt text", img.Alt)
	assert.Nil(t, images[0].FirstChild, "images carry no children")
}

func TestInline_BangWithoutBracketIsText(t *testing.T) {
	para := firstParagraph(t, "hello! world")
	require.Equal(t, []mdast.NodeKind{mdast.NodeText}, inlineKinds(para))
}

func TestInline_Autolink(t *testing.T) {
	para := firstParagraph(t, "see <https://e.com/path> now")

	autos := mdast.FindByKind(para, mdast.NodeAutolink)
	require.Len(t, autos, 1)
	assert.Equal(t, "https://e.com/path", autos[0].Inline.Link.Destination)
}

func TestInline_BareURLIsNotAutolinked(t *testing.T) {
	para := firstParagraph(t, "see https://e.com now")
	assert.Empty(t, mdast.FindByKind(para, mdast.NodeAutolink))
}

func TestInline_InvalidAutolinkStaysText(t *testing.T) {
	for _, source := range []string{"<no scheme>", "<a:b>", "<https://e.com", "1 < 2"} {
		para := firstParagraph(t, source)
		assert.Empty(t, mdast.FindByKind(para, mdast.NodeAutolink), "source %q", source)
	}
}

func TestInline_AdjacentTextMerges(t *testing.T) {
	// Leftover delimiters and escapes collapse back into single text nodes.
	para := firstParagraph(t, `a *b \* c`)

	require.Equal(t, []mdast.NodeKind{mdast.NodeText}, inlineKinds(para))
	assert.Equal(t, "a *b * c", para.FirstChild.Inline.Text)
}
