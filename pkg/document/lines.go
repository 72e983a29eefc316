package document

import "sort"

// BuildLines constructs line metadata from text.
// It handles both LF (\n) and CRLF (\r\n) line endings.
// Empty text yields a single empty line, since a caret always sits on some line.
func BuildLines(text []rune) []LineInfo {
	var lines []LineInfo
	lineStart := 0

	for idx, char := range text {
		if char == '\n' {
			// Check for CRLF.
			newlineStart := idx
			if idx > lineStart && text[idx-1] == '\r' {
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

	// Last line (may be empty, never has a terminator).
	lines = append(lines, LineInfo{
		StartOffset:  lineStart,
		NewlineStart: len(text),
		EndOffset:    len(text),
	})

	return lines
}

// LineIndexForOffset maps an absolute offset to a zero-based line index.
// Offsets are clamped first, so the result is always a valid line index.
// An offset on a line terminator belongs to the line it terminates.
func (d *Document) LineIndexForOffset(offset int) int {
	offset = d.Clamp(offset)

	// Binary search for the first line ending after the offset.
	lineIdx := sort.Search(len(d.lines), func(i int) bool {
		return d.lines[i].EndOffset > offset
	})

	if lineIdx >= len(d.lines) {
		lineIdx = len(d.lines) - 1
	}

	return lineIdx
}

// OffsetOf converts a zero-based line and column to an absolute offset.
// The column is clamped to the line's content, so the result is always a
// valid caret position. Returns false if the line is out of range.
func (d *Document) OffsetOf(line, col int) (int, bool) {
	info, ok := d.LineInfo(line)
	if !ok {
		return 0, false
	}
	col = max(0, min(col, info.NewlineStart-info.StartOffset))
	return info.StartOffset + col, true
}

// Column returns the zero-based column of an offset within its line.
func (d *Document) Column(offset int) int {
	offset = d.Clamp(offset)
	info := d.lines[d.LineIndexForOffset(offset)]
	return min(offset, info.NewlineStart) - info.StartOffset
}
