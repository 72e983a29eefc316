// Package document provides an immutable, line-indexed view of editor text.
// Offsets count characters (Unicode code points), not bytes.
package document

import "unicode/utf8"

// Document is an immutable snapshot of the editor text at a specific time.
// It holds the text as runes and the line metadata derived from it.
type Document struct {
	text  []rune
	lines []LineInfo
}

// LineInfo holds metadata for a single line of a Document.
type LineInfo struct {
	// StartOffset is the character index of the line start.
	StartOffset int

	// NewlineStart is the character index where the line terminator begins.
	// For the last line (no terminator) it equals EndOffset.
	NewlineStart int

	// EndOffset is the character index just after the terminator (or end of text).
	EndOffset int
}

// Line is a view of one newline-delimited unit of a Document.
type Line struct {
	// Index is the zero-based line number.
	Index int

	// Start is the absolute character offset of the first character.
	Start int

	// Text is the line content without its terminator.
	Text string
}

// Len returns the length of the line in characters.
func (l Line) Len() int {
	return utf8.RuneCountInString(l.Text)
}

// End returns the absolute offset just past the last character of the line.
func (l Line) End() int {
	return l.Start + l.Len()
}

// New creates a Document snapshot from text.
func New(text string) *Document {
	runes := []rune(text)
	return &Document{
		text:  runes,
		lines: BuildLines(runes),
	}
}

// Text returns the full document text.
func (d *Document) Text() string {
	return string(d.text)
}

// Len returns the document length in characters.
func (d *Document) Len() int {
	return len(d.text)
}

// Runes returns the document text as runes. The slice must not be modified.
func (d *Document) Runes() []rune {
	return d.text
}

// LineCount returns the number of lines. A document always has at least one line.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// LineInfo returns the metadata of the zero-based line index.
// Returns false if the index is out of range.
func (d *Document) LineInfo(index int) (LineInfo, bool) {
	if index < 0 || index >= len(d.lines) {
		return LineInfo{}, false
	}
	return d.lines[index], true
}

// Line returns the zero-based line, excluding its terminator.
// Returns false if the index is out of range.
func (d *Document) Line(index int) (Line, bool) {
	info, ok := d.LineInfo(index)
	if !ok {
		return Line{}, false
	}
	return Line{
		Index: index,
		Start: info.StartOffset,
		Text:  string(d.text[info.StartOffset:info.NewlineStart]),
	}, true
}

// Lines returns every line of the document in order.
func (d *Document) Lines() []Line {
	lines := make([]Line, 0, len(d.lines))
	for i := range d.lines {
		line, _ := d.Line(i)
		lines = append(lines, line)
	}
	return lines
}

// Slice returns the text between two offsets. Offsets are clamped to the document.
func (d *Document) Slice(start, end int) string {
	start = d.Clamp(start)
	end = d.Clamp(end)
	if end < start {
		return ""
	}
	return string(d.text[start:end])
}

// Clamp limits an offset to [0, Len()].
func (d *Document) Clamp(offset int) int {
	return max(0, min(offset, len(d.text)))
}

// Contains reports whether offset is a valid caret position in the document.
func (d *Document) Contains(offset int) bool {
	return offset >= 0 && offset <= len(d.text)
}
