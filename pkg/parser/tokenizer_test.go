package parser

import (
	"strings"
	"testing"

	"github.com/yaklabco/mdwire/pkg/mdast"
)

func TestTokenize_Empty(t *testing.T) {
	if tokens := Tokenize(""); len(tokens) != 0 {
		t.Errorf("expected 0 tokens for empty input, got %d", len(tokens))
	}
}

func TestTokenize_Lossless(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"plain text", "Hello, world!"},
		{"heading", "# Hello"},
		{"heading with text", "# Hello\nWorld"},
		{"overlong heading", "####### seven hashes"},
		{"hash without space", "#hash"},
		{"list", "- item 1\n- item 2"},
		{"ordered list", "1. first\n2. second"},
		{"paren ordinal stays text", "1) not a marker"},
		{"bare dash", "-"},
		{"blockquote", "> quoted text"},
		{"nested quotes", ">>> deep\n> > spaced"},
		{"quote only", ">"},
		{"quote trailing space", "> "},
		{"quoted heading", "> # Title"},
		{"quoted fence stays inline", "> ```\n> code\n> ```"},
		{"code fence", "```go\ncode\n```"},
		{"tilde fence", "~~~\ncode\n~~~"},
		{"fence trailing close", "```\ncode\n```   "},
		{"longer closer", "```\ncode\n`````"},
		{"unclosed fence", "```go\ncode"},
		{"repeated unclosed fences", "```a\n```b\n```c"},
		{"same line backticks", "```x```"},
		{"inline code", "Use `code` here"},
		{"emphasis", "*emphasis* and **strong**"},
		{"escapes", `\*not emphasis\*`},
		{"link", "[text](url)"},
		{"image", "![alt](src)"},
		{"thematic break", "---"},
		{"spaced break", "- - -"},
		{"blank lines", "a\n\n\nb"},
		{"whitespace only line", "  \n"},
		{"trailing newline", "para\n"},
		{"crlf", "line1\r\nline2\r\n"},
		{"tabs", "\tindented\ttext"},
		{"unicode", "héllo wörld ✓"},
		{"lone cr", "a\rb"},
		{"mixed document", "# Title\n\nBody with *emphasis*.\n\n- one\n- two\n\n> quote\n\n```\nraw\n```\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.content)

			if !mdast.ValidateTokens(tokens, len(tt.content)) {
				t.Errorf("tokens are not contiguous or do not cover content")
				for i, tok := range tokens {
					t.Logf("  token[%d]: kind=%v start=%d end=%d text=%q",
						i, tok.Kind, tok.StartOffset, tok.EndOffset, tok.Text(tt.content))
				}
			}

			var b strings.Builder
			for _, tok := range tokens {
				b.WriteString(tok.Text(tt.content))
			}
			if b.String() != tt.content {
				t.Errorf("token concatenation = %q, want %q", b.String(), tt.content)
			}
		})
	}
}

func TestTokenize_HeaderMarker(t *testing.T) {
	for _, content := range []string{
		"# Heading", "## Heading", "### Heading",
		"#### Heading", "##### Heading", "###### Heading",
	} {
		tokens := Tokenize(content)
		if len(tokens) == 0 || tokens[0].Kind != mdast.TokHeaderMarker {
			t.Errorf("%q: first token = %v, want TokHeaderMarker", content, tokens[0].Kind)
		}
	}

	for _, content := range []string{"####### seven", "#hash"} {
		for _, tok := range Tokenize(content) {
			if tok.Kind == mdast.TokHeaderMarker {
				t.Errorf("%q: unexpected TokHeaderMarker", content)
			}
		}
	}
}

func TestTokenize_ListMarker(t *testing.T) {
	for _, content := range []string{"- item", "+ item", "* item", "1. item", "10. item"} {
		tokens := Tokenize(content)
		if len(tokens) == 0 || tokens[0].Kind != mdast.TokListMarker {
			t.Errorf("%q: first token = %v, want TokListMarker", content, tokens[0].Kind)
		}
	}

	tokens := Tokenize("1) item")
	if tokens[0].Kind != mdast.TokText {
		t.Errorf("paren ordinal: first token = %v, want TokText", tokens[0].Kind)
	}
}

func TestTokenize_QuotePrefix(t *testing.T) {
	tokens := Tokenize("> # Hi")
	kinds := tokenKinds(tokens)
	want := []mdast.TokenKind{
		mdast.TokSpecialRun, mdast.TokSpaceRun, mdast.TokHeaderMarker,
		mdast.TokSpaceRun, mdast.TokText,
	}
	if !kindsEqual(kinds, want) {
		t.Errorf("quoted heading kinds = %v, want %v", kinds, want)
	}

	tokens = Tokenize(">>> deep")
	if tokens[0].Kind != mdast.TokSpecialRun || tokens[0].Text(">>> deep") != ">>>" {
		t.Errorf("expected one >>> run, got %v %q", tokens[0].Kind, tokens[0].Text(">>> deep"))
	}

	for _, tok := range Tokenize("> ```\n> code\n> ```") {
		if tok.Kind == mdast.TokFenceOpen || tok.Kind == mdast.TokFenceClose {
			t.Error("quoted fences must stay inline runs at the token level")
		}
	}
}

func TestTokenize_HRuleMarker(t *testing.T) {
	for _, content := range []string{"---", "***", "___", "- - -", "----------"} {
		tokens := Tokenize(content)
		if len(tokens) == 0 || tokens[0].Kind != mdast.TokHRuleMarker {
			t.Errorf("%q: first token = %v, want TokHRuleMarker", content, tokens[0].Kind)
		}
	}
}

func TestTokenize_FencePairing(t *testing.T) {
	content := "```go\ncode\n```"
	kinds := tokenKinds(Tokenize(content))
	want := []mdast.TokenKind{
		mdast.TokFenceOpen, mdast.TokNewline, mdast.TokText,
		mdast.TokNewline, mdast.TokFenceClose,
	}
	if !kindsEqual(kinds, want) {
		t.Errorf("fence kinds = %v, want %v", kinds, want)
	}

	tokens := Tokenize(content)
	if got := tokens[0].Text(content); got != "```go" {
		t.Errorf("fence open span = %q, want %q", got, "```go")
	}
}

func TestTokenize_FenceDegrade(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no closer", "```go\ncode"},
		{"shorter closer", "````\ncode\n```"},
		{"closer with info", "```\ncode\n``` tail"},
		{"same line close", "```x```"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, tok := range Tokenize(tt.content) {
				if tok.Kind == mdast.TokFenceOpen {
					t.Errorf("unexpected TokFenceOpen in %q", tt.content)
				}
			}
		})
	}
}

func TestTokenize_BlankLines(t *testing.T) {
	content := "a\n\nb"
	kinds := tokenKinds(Tokenize(content))
	want := []mdast.TokenKind{
		mdast.TokText, mdast.TokNewline, mdast.TokBlankLine, mdast.TokText,
	}
	if !kindsEqual(kinds, want) {
		t.Errorf("kinds = %v, want %v", kinds, want)
	}

	tokens := Tokenize("  \n")
	if len(tokens) != 1 || tokens[0].Kind != mdast.TokBlankLine {
		t.Fatalf("whitespace-only line: got %v", tokenKinds(tokens))
	}
	if tokens[0].Text("  \n") != "  \n" {
		t.Errorf("blank token should cover the whole line including newline")
	}
}

func TestTokenize_CRLF(t *testing.T) {
	content := "a\r\nb"
	tokens := Tokenize(content)
	if len(tokens) != 3 || tokens[1].Kind != mdast.TokNewline {
		t.Fatalf("unexpected tokens: %v", tokenKinds(tokens))
	}
	if got := tokens[1].Text(content); got != "\r\n" {
		t.Errorf("newline span = %q, want CRLF", got)
	}
}

func TestTokenize_SpecialRuns(t *testing.T) {
	content := "a ** b .. c !!"
	tokens := Tokenize(content)
	runs := 0
	for _, tok := range tokens {
		if tok.Kind == mdast.TokSpecialRun {
			runs++
			text := tok.Text(content)
			for i := 1; i < len(text); i++ {
				if text[i] != text[0] {
					t.Errorf("special run %q mixes characters", text)
				}
			}
		}
	}
	if runs != 3 {
		t.Errorf("expected 3 special runs, got %d", runs)
	}
}

func tokenKinds(tokens []mdast.Token) []mdast.TokenKind {
	kinds := make([]mdast.TokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func kindsEqual(a, b []mdast.TokenKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
