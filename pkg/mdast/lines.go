package mdast

import "sort"

// LineInfo holds metadata for a single line of source.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of source).
	EndOffset int
}

// BuildLines constructs line metadata from source text.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(source string) []LineInfo {
	if len(source) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx := 0; idx < len(source); idx++ {
		if source[idx] == '\n' {
			// Check for CRLF.
			newlineStart := idx
			if idx > 0 && source[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Handle last line (may not have trailing newline).
	if lineStart <= len(source) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(source),
			EndOffset:    len(source),
		})
	}

	return lines
}

// LineAt converts a byte offset to 1-based line and column numbers using a
// line index built by BuildLines. Column counts bytes, not runes.
// Returns (0, 0) if the offset is out of range.
func LineAt(lines []LineInfo, offset int) (int, int) {
	if offset < 0 || len(lines) == 0 {
		return 0, 0
	}

	// Handle offset at or past end of source.
	lastLine := lines[len(lines)-1]
	if offset >= lastLine.EndOffset {
		return len(lines), offset - lastLine.StartOffset + 1
	}

	// Binary search to find the line containing the offset.
	lineIdx := sort.Search(len(lines), func(i int) bool {
		return lines[i].EndOffset > offset
	})

	if lineIdx >= len(lines) {
		lineIdx = len(lines) - 1
	}

	lineInfo := lines[lineIdx]
	if offset < lineInfo.StartOffset {
		return 0, 0
	}

	// 1-based line and column.
	return lineIdx + 1, offset - lineInfo.StartOffset + 1
}
