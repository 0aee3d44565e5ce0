package parser

import (
	"strings"

	"github.com/yaklabco/mdwire/pkg/mdast"
)

// pendingInline records a leaf block whose raw text is inline-parsed after
// block parsing finishes, so reference definitions anywhere in the document
// resolve for every link.
type pendingInline struct {
	node *mdast.Node
	text string
}

// blockParser builds the block tree over borrowed line spans. Container
// recursion slices the same source string; no line is ever copied.
type blockParser struct {
	src          string
	opts         Options
	refs         *mdast.RefTable
	pending      []pendingInline
	depthLimited bool
}

// fenceSight locates fence closers within one nesting level, remembering the
// widest opener shape whose scan already failed so that runs of unclosed
// candidates do not rescan the level.
type fenceSight struct {
	p     *blockParser
	lines []span
	memo  map[byte]fenceFailure
}

// findCloser returns the index of the line closing a fence opened at from,
// or -1 when the fence never closes.
func (f *fenceSight) findCloser(from int, sc lineScan) int {
	if fail, ok := f.memo[sc.fenceChar]; ok &&
		from >= fail.fromLine && sc.fenceLen >= fail.minLen && sc.indentCols <= fail.maxIndent {
		return -1
	}
	for j := from + 1; j < len(f.lines); j++ {
		if closesFence(f.p.text(f.lines[j]), sc.fenceChar, sc.fenceLen, sc.indentCols) {
			return j
		}
	}
	if f.memo == nil {
		f.memo = make(map[byte]fenceFailure)
	}
	f.memo[sc.fenceChar] = fenceFailure{
		fromLine:  from,
		minLen:    sc.fenceLen,
		maxIndent: sc.indentCols,
	}
	return -1
}

// parseBlocks appends the blocks found in lines to parent. Block starts are
// recognized in precedence order: fenced code, heading, horizontal rule,
// blockquote, list item, indented code when enabled, then paragraph.
func (p *blockParser) parseBlocks(parent *mdast.Node, lines []span, depth int) {
	sight := &fenceSight{p: p, lines: lines}
	i := 0
	for i < len(lines) {
		text := p.text(lines[i])
		if isBlankLine(text) {
			i++
			continue
		}
		sc := scanLine(text)
		switch sc.mark {
		case markFence:
			if next, ok := p.parseFence(parent, lines, i, sc, sight); ok {
				i = next
				continue
			}
			i = p.parseParagraph(parent, lines, i, sight)
		case markHeader:
			p.parseHeader(parent, text, sc)
			i++
		case markHRule:
			mdast.AppendChild(parent, mdast.NewHorizontalRule())
			i++
		case markQuote:
			i = p.parseQuote(parent, lines, i, depth, sight)
		case markBullet, markOrdered:
			i = p.parseList(parent, lines, i, sc, depth, sight)
		default:
			if !p.opts.IgnoreIndentedCodeBlocks && sc.indentCols >= 4 {
				i = p.parseIndentedCode(parent, lines, i)
				continue
			}
			i = p.parseParagraph(parent, lines, i, sight)
		}
	}
}

// parseFence builds a fenced code block when the candidate at line i has a
// valid closer. The opener's indentation is stripped from content lines.
func (p *blockParser) parseFence(parent *mdast.Node, lines []span, i int, sc lineScan, sight *fenceSight) (int, bool) {
	closeIdx := sight.findCloser(i, sc)
	if closeIdx < 0 {
		return 0, false
	}

	info := strings.TrimSpace(p.text(lines[i])[sc.markerEnd:])
	language := ""
	if fields := strings.Fields(info); len(fields) > 0 {
		language = fields[0]
	}

	var content strings.Builder
	for j := i + 1; j < closeIdx; j++ {
		lineText := p.text(lines[j])
		content.WriteString(lineText[stripColumns(lineText, sc.indentCols):])
		content.WriteByte('\n')
	}

	mdast.AppendChild(parent, mdast.NewCodeBlock(&mdast.CodeAttrs{
		Language:    language,
		Content:     content.String(),
		Fenced:      true,
		FenceChar:   sc.fenceChar,
		FenceLength: sc.fenceLen,
	}))
	return closeIdx + 1, true
}

// parseHeader builds a heading from a single marked line.
func (p *blockParser) parseHeader(parent *mdast.Node, text string, sc lineScan) {
	node := mdast.NewHeader(sc.level)
	mdast.AppendChild(parent, node)
	if content := strings.TrimSpace(text[sc.markerEnd:]); content != "" {
		p.pending = append(p.pending, pendingInline{node: node, text: content})
	}
}

// parseQuote collects the consecutive quote-marked lines starting at i,
// strips one marker from each, and parses the remainders one level deeper.
// At the nesting cap the marked lines stay literal paragraph text.
func (p *blockParser) parseQuote(parent *mdast.Node, lines []span, i, depth int, sight *fenceSight) int {
	if depth+1 > p.opts.MaxNestingDepth {
		p.depthLimited = true
		return p.parseParagraph(parent, lines, i, sight)
	}

	inner := make([]span, 0, 4)
	j := i
	for j < len(lines) {
		text := p.text(lines[j])
		if isBlankLine(text) {
			break
		}
		sc := scanLine(text)
		if sc.mark != markQuote {
			break
		}
		inner = append(inner, span{start: lines[j].start + sc.contentPos, end: lines[j].end})
		j++
	}

	quote := mdast.NewBlockQuote()
	mdast.AppendChild(parent, quote)
	p.parseBlocks(quote, inner, depth+1)
	return j
}

// parseList collects consecutive compatible items into one list. An item
// owns every following line indented at least to its content column; a blank
// line followed by more list content marks the list loose.
func (p *blockParser) parseList(parent *mdast.Node, lines []span, i int, first lineScan, depth int, sight *fenceSight) int {
	if depth+1 > p.opts.MaxNestingDepth {
		p.depthLimited = true
		return p.parseParagraph(parent, lines, i, sight)
	}

	attrs := &mdast.ListAttrs{Ordered: first.mark == markOrdered, Tight: true}
	if attrs.Ordered {
		attrs.Start = first.ordinal
	} else {
		attrs.BulletMarker = first.bullet
	}
	list := mdast.NewList(attrs)
	mdast.AppendChild(parent, list)

	loose := false
	for i < len(lines) {
		text := p.text(lines[i])
		if isBlankLine(text) {
			break
		}
		sc := scanLine(text)
		if !compatibleMarker(first, sc) {
			break
		}

		content := make([]span, 0, 4)
		content = append(content, span{start: lines[i].start + sc.contentPos, end: lines[i].end})

		j := i + 1
		blanks := 0
		for j < len(lines) {
			lineText := p.text(lines[j])
			if isBlankLine(lineText) {
				blanks++
				j++
				continue
			}
			sub := scanLine(lineText)
			if sub.indentCols < sc.contentCol {
				break
			}
			if blanks > 0 {
				loose = true
				for b := 0; b < blanks; b++ {
					content = append(content, span{start: lines[j].start, end: lines[j].start})
				}
				blanks = 0
			}
			off := stripColumns(lineText, sc.contentCol)
			content = append(content, span{start: lines[j].start + off, end: lines[j].end})
			j++
		}

		item := mdast.NewListItem()
		mdast.AppendChild(list, item)
		p.parseBlocks(item, content, depth+1)

		// Unconsumed trailing blanks separate this item from whatever
		// follows; another compatible item makes the list loose.
		i = j - blanks
		if blanks > 0 && j < len(lines) {
			next := scanLine(p.text(lines[j]))
			if compatibleMarker(first, next) {
				loose = true
				i = j
			}
		}
	}

	attrs.Tight = !loose
	return i
}

// compatibleMarker reports whether sc continues the list opened by first.
// Bullets must repeat the same marker character; any ordinal continues an
// ordered list.
func compatibleMarker(first, sc lineScan) bool {
	if sc.mark != first.mark {
		return false
	}
	if sc.mark == markBullet {
		return sc.bullet == first.bullet
	}
	return true
}

// parseIndentedCode collects consecutive lines indented four or more
// columns. Interior blank lines are kept; trailing ones are not consumed.
func (p *blockParser) parseIndentedCode(parent *mdast.Node, lines []span, i int) int {
	var raw []string
	lastLine := i
	lastCode := -1
	j := i
	for j < len(lines) {
		text := p.text(lines[j])
		if isBlankLine(text) {
			raw = append(raw, "")
			j++
			continue
		}
		_, cols := measureIndent(text)
		if cols < 4 || scanLine(text).mark != markText {
			break
		}
		raw = append(raw, text[stripColumns(text, 4):])
		lastCode = len(raw) - 1
		lastLine = j
		j++
	}

	var content strings.Builder
	for _, line := range raw[:lastCode+1] {
		content.WriteString(line)
		content.WriteByte('\n')
	}
	mdast.AppendChild(parent, mdast.NewCodeBlock(&mdast.CodeAttrs{
		Content: content.String(),
	}))
	return lastLine + 1
}

// parseParagraph absorbs lines from i until a blank line or a
// higher-precedence block start. A fence candidate interrupts only when it
// actually closes; otherwise it reads as literal text. Reference definitions
// at the start of the run are recorded and produce no node.
func (p *blockParser) parseParagraph(parent *mdast.Node, lines []span, i int, sight *fenceSight) int {
	collected := make([]string, 0, 4)
	start := i
	for i < len(lines) {
		text := p.text(lines[i])
		if isBlankLine(text) {
			break
		}
		if i > start {
			sc := scanLine(text)
			if sc.mark == markFence {
				if sight.findCloser(i, sc) >= 0 {
					break
				}
			} else if sc.mark != markText {
				break
			}
		}
		collected = append(collected, strings.TrimSpace(text))
		i++
	}

	for len(collected) > 0 {
		def, ok := parseRefDef(collected[0])
		if !ok {
			break
		}
		p.refs.Define(def.Label, def.Destination, def.Title)
		collected = collected[1:]
	}
	if len(collected) == 0 {
		return i
	}

	node := mdast.NewParagraph()
	mdast.AppendChild(parent, node)
	p.pending = append(p.pending, pendingInline{node: node, text: strings.Join(collected, "\n")})
	return i
}

// text returns the source slice for a line span.
func (p *blockParser) text(s span) string {
	return p.src[s.start:s.end]
}
