package parser

import (
	"github.com/yaklabco/mdwire/pkg/mdast"
)

// initialCapacityDivisor estimates token count as a fraction of input size.
const initialCapacityDivisor = 4

// tokenizer walks the source line by line and emits a lossless token stream.
type tokenizer struct {
	src    string
	lines  []mdast.LineInfo
	tokens []mdast.Token

	// failedFence remembers, per fence character, the widest fence-opener
	// shape for which a closer scan already failed, so runs of unclosed
	// openers do not rescan the document.
	failedFence map[byte]fenceFailure
}

type fenceFailure struct {
	fromLine  int
	minLen    int
	maxIndent int
}

// Tokenize converts source text into an ordered token stream. Concatenating
// the spans of the returned tokens reproduces the input byte for byte.
//
// Classification is line oriented: headings, list markers, horizontal rules,
// and fences are recognized at line starts, and a leading blockquote prefix
// is emitted as ordinary marker runs before classification continues on the
// rest of the line. Fences are paired here only at quote depth zero; a fence
// candidate with no valid closing line degrades to literal runs.
func Tokenize(source string) []mdast.Token {
	t := &tokenizer{
		src:         source,
		lines:       mdast.BuildLines(source),
		tokens:      make([]mdast.Token, 0, len(source)/initialCapacityDivisor+1),
		failedFence: make(map[byte]fenceFailure),
	}
	for li := 0; li < len(t.lines); {
		li = t.tokenizeLine(li)
	}
	return t.tokens
}

// tokenizeLine emits tokens for the line at index li and returns the index
// of the next unconsumed line. A resolved fence consumes its whole block.
func (t *tokenizer) tokenizeLine(li int) int {
	ln := t.lines[li]
	if isBlankLine(t.src[ln.StartOffset:ln.NewlineStart]) {
		t.emit(mdast.TokBlankLine, ln.StartOffset, ln.EndOffset)
		return li + 1
	}

	// Consume any blockquote prefix, emitting each > run and the whitespace
	// around it, then classify what remains.
	pos := ln.StartOffset
	quoted := false
	var sc lineScan
	for {
		sc = scanLine(t.src[pos:ln.NewlineStart])
		if sc.mark != markQuote {
			break
		}
		quoted = true
		if sc.indent > 0 {
			t.emit(mdast.TokSpaceRun, pos, pos+sc.indent)
		}
		runStart := pos + sc.markerPos
		runEnd := runStart
		for runEnd < ln.NewlineStart && t.src[runEnd] == '>' {
			runEnd++
		}
		t.emit(mdast.TokSpecialRun, runStart, runEnd)
		pos = runEnd
	}

	if sc.indent > 0 {
		t.emit(mdast.TokSpaceRun, pos, pos+sc.indent)
	}
	markerStart := pos + sc.markerPos

	switch sc.mark {
	case markBlank:
		// Trailing whitespace after a quote prefix, already emitted above.
	case markHeader:
		t.emit(mdast.TokHeaderMarker, markerStart, pos+sc.markerEnd)
		t.tokenizeInline(pos+sc.markerEnd, ln.NewlineStart)
	case markHRule:
		t.emit(mdast.TokHRuleMarker, markerStart, ln.NewlineStart)
	case markBullet, markOrdered:
		t.emit(mdast.TokListMarker, markerStart, pos+sc.markerEnd)
		t.tokenizeInline(pos+sc.markerEnd, ln.NewlineStart)
	case markFence:
		if !quoted {
			if next, ok := t.tryFenceBlock(li, markerStart, sc); ok {
				return next
			}
		}
		t.tokenizeInline(markerStart, ln.NewlineStart)
	default:
		t.tokenizeInline(markerStart, ln.NewlineStart)
	}

	t.emitLineEnd(ln)
	return li + 1
}

// tryFenceBlock resolves a fence candidate on line li. When a valid closing
// line exists the whole block is emitted, fence tokens wrapping literal
// content lines, and the index past the closer is returned. Without a closer
// the candidate is left for the caller to degrade.
func (t *tokenizer) tryFenceBlock(li, markerStart int, sc lineScan) (int, bool) {
	if f, ok := t.failedFence[sc.fenceChar]; ok &&
		li >= f.fromLine && sc.fenceLen >= f.minLen && sc.indentCols <= f.maxIndent {
		return 0, false
	}

	closeIdx := -1
	for j := li + 1; j < len(t.lines); j++ {
		jl := t.lines[j]
		if closesFence(t.src[jl.StartOffset:jl.NewlineStart], sc.fenceChar, sc.fenceLen, sc.indentCols) {
			closeIdx = j
			break
		}
	}
	if closeIdx < 0 {
		t.failedFence[sc.fenceChar] = fenceFailure{
			fromLine:  li,
			minLen:    sc.fenceLen,
			maxIndent: sc.indentCols,
		}
		return 0, false
	}

	open := t.lines[li]
	t.emit(mdast.TokFenceOpen, markerStart, open.NewlineStart)
	t.emitLineEnd(open)

	for j := li + 1; j < closeIdx; j++ {
		jl := t.lines[j]
		if isBlankLine(t.src[jl.StartOffset:jl.NewlineStart]) {
			t.emit(mdast.TokBlankLine, jl.StartOffset, jl.EndOffset)
			continue
		}
		t.emit(mdast.TokText, jl.StartOffset, jl.NewlineStart)
		t.emitLineEnd(jl)
	}

	cl := t.lines[closeIdx]
	closeIndent, _ := measureIndent(t.src[cl.StartOffset:cl.NewlineStart])
	if closeIndent > 0 {
		t.emit(mdast.TokSpaceRun, cl.StartOffset, cl.StartOffset+closeIndent)
	}
	t.emit(mdast.TokFenceClose, cl.StartOffset+closeIndent, cl.NewlineStart)
	t.emitLineEnd(cl)
	return closeIdx + 1, true
}

// tokenizeInline emits whitespace, special, and text runs for [from, to).
func (t *tokenizer) tokenizeInline(from, to int) {
	i := from
	for i < to {
		c := t.src[i]
		j := i + 1
		switch {
		case c == ' ' || c == '\t':
			for j < to && (t.src[j] == ' ' || t.src[j] == '\t') {
				j++
			}
			t.emit(mdast.TokSpaceRun, i, j)
		case isSpecialChar(c):
			for j < to && t.src[j] == c {
				j++
			}
			t.emit(mdast.TokSpecialRun, i, j)
		default:
			for j < to && !isRunBoundary(t.src[j]) {
				j++
			}
			t.emit(mdast.TokText, i, j)
		}
		i = j
	}
}

// emitLineEnd emits the line terminator token when the line has one.
func (t *tokenizer) emitLineEnd(ln mdast.LineInfo) {
	if ln.EndOffset > ln.NewlineStart {
		t.emit(mdast.TokNewline, ln.NewlineStart, ln.EndOffset)
	}
}

// emit appends a token unless the span is empty.
func (t *tokenizer) emit(kind mdast.TokenKind, start, end int) {
	if start >= end {
		return
	}
	t.tokens = append(t.tokens, mdast.Token{
		Kind:        kind,
		StartOffset: start,
		EndOffset:   end,
	})
}

// isSpecialChar reports whether c starts a special-character run.
func isSpecialChar(c byte) bool {
	switch c {
	case '*', '_', '~', '`', '[', ']', '(', ')', '!', '#', '>', '-', '+', '.':
		return true
	default:
		return false
	}
}

// isRunBoundary reports whether c terminates a plain text run.
func isRunBoundary(c byte) bool {
	return c == ' ' || c == '\t' || isSpecialChar(c)
}
