package parser

import "strings"

// tabStop is the column width a tab advances to when measuring indentation.
const tabStop = 4

// span marks a half-open byte range [start, end) within the source document.
type span struct {
	start int
	end   int
}

// lineMark classifies the block construct a line can start.
type lineMark uint8

const (
	markText lineMark = iota
	markBlank
	markHeader
	markHRule
	markFence
	markQuote
	markBullet
	markOrdered
)

// lineScan reports the block-relevant shape of one line. All offsets are byte
// positions relative to the start of the scanned text, which must not include
// the line terminator.
type lineScan struct {
	mark       lineMark
	indent     int // leading whitespace bytes
	indentCols int // leading whitespace width, tabs advance to tabStop columns
	markerPos  int // first byte of the marker
	markerEnd  int // one past the last marker byte
	contentPos int // first content byte after the marker and its padding
	contentCol int // column of contentPos, used for list item ownership
	level      int // heading level for markHeader
	fenceChar  byte
	fenceLen   int
	bullet     byte // marker byte for markBullet
	ordinal    int  // numeric value for markOrdered
}

// scanLine classifies a single line. Marker recognition follows block
// precedence: fences, headings, and horizontal rules require at most three
// columns of indentation, while list markers accept any indentation so that
// nested items classify at every level.
func scanLine(text string) lineScan {
	sc := lineScan{}
	sc.indent, sc.indentCols = measureIndent(text)
	if sc.indent == len(text) {
		sc.mark = markBlank
		return sc
	}

	i := sc.indent
	sc.markerPos = i
	c := text[i]

	if c == '>' {
		sc.mark = markQuote
		sc.markerEnd = i + 1
		sc.contentPos = sc.markerEnd
		if sc.contentPos < len(text) && (text[sc.contentPos] == ' ' || text[sc.contentPos] == '\t') {
			sc.contentPos++
		}
		return sc
	}

	if sc.indentCols <= 3 {
		switch c {
		case '#':
			if scanHeading(text, &sc) {
				return sc
			}
		case '`', '~':
			if scanFence(text, &sc) {
				return sc
			}
		}
		if (c == '-' || c == '*' || c == '_') && isHRuleLine(text[i:], c) {
			sc.mark = markHRule
			sc.markerEnd = len(text)
			sc.contentPos = len(text)
			return sc
		}
	}

	switch {
	case c == '-' || c == '+' || c == '*':
		if scanBullet(text, &sc) {
			return sc
		}
	case c >= '0' && c <= '9':
		if scanOrdinal(text, &sc) {
			return sc
		}
	}

	sc.mark = markText
	sc.markerEnd = i
	sc.contentPos = i
	return sc
}

// scanHeading matches one to six # characters followed by whitespace or end
// of line. Longer runs are ordinary text.
func scanHeading(text string, sc *lineScan) bool {
	i := sc.markerPos
	n := i
	for n < len(text) && text[n] == '#' {
		n++
	}
	level := n - i
	if level > 6 {
		return false
	}
	if n < len(text) && text[n] != ' ' && text[n] != '\t' {
		return false
	}
	sc.mark = markHeader
	sc.level = level
	sc.markerEnd = n
	sc.contentPos = n
	return true
}

// scanFence matches a run of three or more backticks or tildes. A backtick
// run with a matching run of the same length later on the line is an inline
// code-span delimiter, not a fence.
func scanFence(text string, sc *lineScan) bool {
	i := sc.markerPos
	ch := text[i]
	n := i
	for n < len(text) && text[n] == ch {
		n++
	}
	runLen := n - i
	if runLen < 3 {
		return false
	}
	if ch == '`' && hasBacktickRun(text[n:], runLen) {
		return false
	}
	sc.mark = markFence
	sc.fenceChar = ch
	sc.fenceLen = runLen
	sc.markerEnd = n
	sc.contentPos = n
	return true
}

// scanBullet matches a bullet marker followed by at least one space or tab.
// A bare bullet with no following content is ordinary text.
func scanBullet(text string, sc *lineScan) bool {
	i := sc.markerPos
	if i+1 >= len(text) || (text[i+1] != ' ' && text[i+1] != '\t') {
		return false
	}
	sc.mark = markBullet
	sc.bullet = text[i]
	sc.markerEnd = i + 1
	finishListMarker(text, sc)
	return true
}

// scanOrdinal matches up to nine digits, a dot, and at least one space or
// tab. Other delimiters such as N) stay literal.
func scanOrdinal(text string, sc *lineScan) bool {
	i := sc.markerPos
	n := i
	for n < len(text) && text[n] >= '0' && text[n] <= '9' {
		n++
	}
	if n-i > 9 {
		return false
	}
	if n >= len(text) || text[n] != '.' {
		return false
	}
	n++
	if n >= len(text) || (text[n] != ' ' && text[n] != '\t') {
		return false
	}
	ordinal := 0
	for _, d := range text[i : n-1] {
		ordinal = ordinal*10 + int(d-'0')
	}
	sc.mark = markOrdered
	sc.ordinal = ordinal
	sc.markerEnd = n
	finishListMarker(text, sc)
	return true
}

// finishListMarker consumes the padding after a list marker and records where
// the item's content starts, in bytes and in columns. An item whose first
// line is empty after the marker claims the column just past the padding.
func finishListMarker(text string, sc *lineScan) {
	col := sc.indentCols + (sc.markerEnd - sc.markerPos)
	j := sc.markerEnd
	for j < len(text) && (text[j] == ' ' || text[j] == '\t') {
		col = advanceColumn(col, text[j])
		j++
	}
	sc.contentPos = j
	sc.contentCol = col
	if j == len(text) {
		sc.contentCol = sc.indentCols + (sc.markerEnd - sc.markerPos) + 1
	}
}

// isHRuleLine reports whether the line consists of three or more of the same
// marker character with nothing but spaces and tabs between them.
func isHRuleLine(text string, marker byte) bool {
	count := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case marker:
			count++
		case ' ', '\t':
		default:
			return false
		}
	}
	return count >= 3
}

// closesFence reports whether a line closes a fence opened with the given
// character and length. The closer needs a run at least as long as the
// opener, nothing else on the line, and indentation no deeper than the
// opener's.
func closesFence(text string, ch byte, minLen, maxIndentCols int) bool {
	indent, indentCols := measureIndent(text)
	if indentCols > maxIndentCols {
		return false
	}
	i := indent
	for i < len(text) && text[i] == ch {
		i++
	}
	if i-indent < minLen {
		return false
	}
	for ; i < len(text); i++ {
		if text[i] != ' ' && text[i] != '\t' {
			return false
		}
	}
	return true
}

// hasBacktickRun reports whether text contains a backtick run of exactly n.
func hasBacktickRun(text string, n int) bool {
	for i := 0; i < len(text); {
		if text[i] != '`' {
			i++
			continue
		}
		j := i
		for j < len(text) && text[j] == '`' {
			j++
		}
		if j-i == n {
			return true
		}
		i = j
	}
	return false
}

// measureIndent returns the leading whitespace length in bytes and columns.
func measureIndent(text string) (bytes, cols int) {
	for bytes < len(text) {
		c := text[bytes]
		if c != ' ' && c != '\t' {
			break
		}
		cols = advanceColumn(cols, c)
		bytes++
	}
	return bytes, cols
}

// advanceColumn advances a column position over one whitespace byte.
func advanceColumn(col int, c byte) int {
	if c == '\t' {
		return col + tabStop - col%tabStop
	}
	return col + 1
}

// stripColumns returns the byte offset after removing up to cols columns of
// leading whitespace. A tab that straddles the boundary is consumed whole.
func stripColumns(text string, cols int) int {
	col := 0
	i := 0
	for i < len(text) && col < cols {
		c := text[i]
		if c != ' ' && c != '\t' {
			break
		}
		col = advanceColumn(col, c)
		i++
	}
	return i
}

// isBlankLine reports whether the line holds only spaces and tabs.
func isBlankLine(text string) bool {
	return strings.TrimRight(text, " \t") == ""
}
