package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/mdwire/pkg/mdast"
)

// delimiter records one emphasis delimiter run awaiting resolution. The node
// holds the literal run text and stays in the tree until consumed, so a run
// that never pairs is already correct output.
type delimiter struct {
	node     *mdast.Node
	char     byte
	length   int
	canOpen  bool
	canClose bool
	active   bool
}

// scanDelims computes open and close capability for the run at pos using the
// left-/right-flanking rule. Underscores additionally require a non-word
// character on the outward side, which keeps snake_case identifiers intact.
func scanDelims(text string, pos, length int, c byte) (canOpen, canClose bool) {
	beforeSpace, beforePunct := classifyBoundary(text, pos, false)
	afterSpace, afterPunct := classifyBoundary(text, pos+length, true)

	leftFlanking := !afterSpace && !(afterPunct && !beforeSpace && !beforePunct)
	rightFlanking := !beforeSpace && !(beforePunct && !afterSpace && !afterPunct)

	canOpen = leftFlanking
	canClose = rightFlanking
	if c == '_' {
		canOpen = leftFlanking && (!rightFlanking || beforePunct)
		canClose = rightFlanking && (!leftFlanking || afterPunct)
	}
	return canOpen, canClose
}

// classifyBoundary examines the rune adjacent to a delimiter run, looking
// forward from pos or backward to it. Text boundaries count as whitespace.
func classifyBoundary(text string, pos int, forward bool) (isSpace, isPunct bool) {
	var r rune
	if forward {
		if pos >= len(text) {
			return true, false
		}
		r, _ = utf8.DecodeRuneInString(text[pos:])
	} else {
		if pos == 0 {
			return true, false
		}
		r, _ = utf8.DecodeLastRuneInString(text[:pos])
	}
	return unicode.IsSpace(r), isPunctRune(r)
}

func isPunctRune(r rune) bool {
	if r < utf8.RuneSelf {
		return isASCIIPunct(byte(r))
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// processEmphasis pairs delimiter runs bottom-up: each closer takes the
// nearest compatible opener, consuming the smaller run length and leaving
// remainders in play. Per-character floors keep failed opener searches from
// rescanning, bounding the pass by the recorded stack depth.
func processEmphasis(delims []*delimiter) {
	var openersBottom [3]int

	closerIdx := 0
	for closerIdx < len(delims) {
		closer := delims[closerIdx]
		if !closer.active || !closer.canClose {
			closerIdx++
			continue
		}
		slot := delimSlot(closer.char)

		openerIdx := -1
		for k := closerIdx - 1; k >= openersBottom[slot]; k-- {
			cand := delims[k]
			if cand.active && cand.canOpen && cand.char == closer.char {
				openerIdx = k
				break
			}
		}
		if openerIdx < 0 {
			openersBottom[slot] = closerIdx
			if !closer.canOpen {
				closer.active = false
			}
			closerIdx++
			continue
		}

		opener := delims[openerIdx]
		used := opener.length
		if closer.length < used {
			used = closer.length
		}

		emph := mdast.NewEmphasis(strengthFor(closer.char, used))
		gatherInterior(opener.node, closer.node, emph)
		mdast.InsertAfter(opener.node, emph)

		for k := openerIdx + 1; k < closerIdx; k++ {
			delims[k].active = false
		}
		shrink(opener, used)
		shrink(closer, used)
		if !closer.active {
			closerIdx++
		}
	}
}

// gatherInterior reparents the siblings strictly between opener and closer.
func gatherInterior(opener, closer, into *mdast.Node) {
	for n := opener.Next; n != nil && n != closer; {
		next := n.Next
		mdast.AppendChild(into, n)
		n = next
	}
}

// shrink consumes used delimiter characters, trimming the node's literal
// text or removing the node once the run is spent.
func shrink(d *delimiter, used int) {
	d.length -= used
	if d.length <= 0 {
		d.active = false
		if d.node.Parent != nil {
			mdast.RemoveChild(d.node.Parent, d.node)
		}
		return
	}
	d.node.Inline.Text = strings.Repeat(string(d.char), d.length)
}

func delimSlot(c byte) int {
	switch c {
	case '*':
		return 0
	case '_':
		return 1
	default:
		return 2
	}
}

// strengthFor maps a consumed delimiter count to emphasis strength.
func strengthFor(c byte, used int) mdast.EmphasisStrength {
	if c == '~' {
		return mdast.StrengthStrikethrough
	}
	switch used {
	case 1:
		return mdast.StrengthItalic
	case 2:
		return mdast.StrengthBold
	default:
		return mdast.StrengthBoldItalic
	}
}
