// Package markdown is the single entry point for the engine: parse Markdown
// into a document tree and render it back out, either canonically or in the
// Telegram MarkdownV2 dialect. Callers that only need source-to-wire
// conversion use ToMarkdownV2; everything else goes through Parse and the
// renderers.
//
// Every function here is pure and total. Malformed input is not an error —
// it parses to a document whose unrecognized constructs degrade to literal
// text — so none of this surface returns an error value.
package markdown

import (
	"github.com/yaklabco/mdwire/pkg/mdast"
	"github.com/yaklabco/mdwire/pkg/parser"
	"github.com/yaklabco/mdwire/pkg/render"
)

// Parse parses source into a document tree.
func Parse(source string, opts parser.Options) *mdast.Document {
	return parser.Parse(source, opts)
}

// RenderCanonical renders doc as minimally-escaped Markdown that re-parses
// to a structurally equal tree.
func RenderCanonical(doc *mdast.Document) string {
	return render.Canonical(doc)
}

// RenderMarkdownV2 renders doc in the Telegram MarkdownV2 dialect with
// default renderer options.
func RenderMarkdownV2(doc *mdast.Document) string {
	return render.MarkdownV2(doc)
}

// RenderMarkdownV2With is RenderMarkdownV2 with explicit renderer options.
func RenderMarkdownV2With(doc *mdast.Document, ropts render.Options) string {
	return render.MarkdownV2With(doc, ropts)
}

// ToMarkdownV2 parses source and renders it in the Telegram MarkdownV2
// dialect in one step.
func ToMarkdownV2(source string, opts parser.Options) string {
	return render.MarkdownV2(parser.Parse(source, opts))
}
