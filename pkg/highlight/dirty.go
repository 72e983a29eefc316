package highlight

import "sort"

// ChangeType is the event that made lines dirty.
type ChangeType uint8

const (
	// ChangeText indicates the document text changed; every line is dirty.
	ChangeText ChangeType = iota

	// ChangeCursor indicates the caret moved; only the lines it left and
	// entered are dirty.
	ChangeCursor
)

// String returns the string representation of the change type.
func (ct ChangeType) String() string {
	switch ct {
	case ChangeText:
		return "text"
	case ChangeCursor:
		return "cursor"
	default:
		return "unknown"
	}
}

// DirtyLines tracks the lines a pass has to repaint.
type DirtyLines struct {
	lines map[int]struct{}
	full  bool
}

// NewDirtyLines creates an empty set.
func NewDirtyLines() *DirtyLines {
	return &DirtyLines{lines: make(map[int]struct{})}
}

// MarkLine marks a single line dirty. Negative indexes are ignored.
func (d *DirtyLines) MarkLine(index int) {
	if index < 0 {
		return
	}
	d.lines[index] = struct{}{}
}

// MarkAll marks the whole document dirty.
func (d *DirtyLines) MarkAll() {
	d.full = true
}

// IsFull reports whether every line is dirty.
func (d *DirtyLines) IsFull() bool {
	return d.full
}

// Lines returns the dirty lines below lineCount in ascending order.
func (d *DirtyLines) Lines(lineCount int) []int {
	if d.full {
		all := make([]int, lineCount)
		for i := range all {
			all[i] = i
		}
		return all
	}

	lines := make([]int, 0, len(d.lines))
	for index := range d.lines {
		if index < lineCount {
			lines = append(lines, index)
		}
	}
	sort.Ints(lines)
	return lines
}

// Clear empties the set.
func (d *DirtyLines) Clear() {
	clear(d.lines)
	d.full = false
}
