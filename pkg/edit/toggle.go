package edit

import (
	"fmt"

	"github.com/yaklabco/mdlive/pkg/scan"
)

// Delimiters recognized by the toggles.
const (
	BoldDelimiter   = "**"
	ItalicDelimiter = "*"
)

// Selection is a character range [Start, End) of a document. An empty
// selection is a bare cursor.
type Selection struct {
	Start int
	End   int
}

// Cursor returns an empty selection at offset.
func Cursor(offset int) Selection {
	return Selection{Start: offset, End: offset}
}

// Len returns the number of selected characters.
func (s Selection) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether nothing is selected.
func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// Normalize orders the bounds and clamps them to [0, textLen].
func (s Selection) Normalize(textLen int) Selection {
	if s.Start > s.End {
		s.Start, s.End = s.End, s.Start
	}
	s.Start = max(0, min(s.Start, textLen))
	s.End = max(0, min(s.End, textLen))
	return s
}

func (s Selection) String() string {
	return fmt.Sprintf("[%d:%d]", s.Start, s.End)
}

// Action tells what a toggle did.
type Action uint8

const (
	// Wrapped means delimiters were inserted around the selection.
	Wrapped Action = iota

	// Unwrapped means existing delimiters were removed.
	Unwrapped
)

// String returns the string representation of the action.
func (a Action) String() string {
	switch a {
	case Wrapped:
		return "wrapped"
	case Unwrapped:
		return "unwrapped"
	default:
		return "unknown"
	}
}

// ToggleResult is the outcome of a toggle.
type ToggleResult struct {
	// Text is the document after the edit.
	Text string

	// Selection covers the toggled text in the new document, never the
	// delimiters.
	Selection Selection

	// Action tells whether delimiters were inserted or removed.
	Action Action

	// Edits are the edits that turn the input text into Text.
	Edits []TextEdit
}

// ToggleBold wraps the selection in "**" or, when it is already wrapped,
// removes the delimiters. The selection is wrapped when it starts and ends
// with "**" itself, or when "**" sits immediately outside it.
func ToggleBold(text string, sel Selection) ToggleResult {
	runes := []rune(text)
	sel = sel.Normalize(len(runes))
	start, end := sel.Start, sel.End

	switch {
	case sel.Len() >= 4 && hasRun(runes, start, '*', 2) && hasRun(runes, end-2, '*', 2):
		return unwrap(runes, start, end, 2, Selection{Start: start, End: end - 4})
	case start >= 2 && hasRun(runes, start-2, '*', 2) && hasRun(runes, end, '*', 2):
		return unwrap(runes, start-2, end+2, 2, Selection{Start: start - 2, End: end - 2})
	default:
		return wrap(runes, sel, BoldDelimiter)
	}
}

// ToggleItalic wraps the selection in "*" or removes an existing "*" or "_"
// pair. A delimiter only counts when it is lone: a "*" that belongs to a
// "**" run is bold and is never stripped.
func ToggleItalic(text string, sel Selection) ToggleResult {
	runes := []rune(text)
	sel = sel.Normalize(len(runes))
	start, end := sel.Start, sel.End

	for _, delim := range []rune{'*', '_'} {
		switch {
		case sel.Len() >= 2 && isLoneDelim(runes, start, delim) && isLoneDelim(runes, end-1, delim):
			return unwrap(runes, start, end, 1, Selection{Start: start, End: end - 2})
		case start >= 1 && isLoneDelim(runes, start-1, delim) && isLoneDelim(runes, end, delim):
			return unwrap(runes, start-1, end+1, 1, Selection{Start: start - 1, End: end - 1})
		case sel.IsEmpty() && isEmptyPair(runes, start, delim) && !insideBold(runes, start-1):
			return unwrap(runes, start-1, end+1, 1, Cursor(start-1))
		}
	}

	return wrap(runes, sel, ItalicDelimiter)
}

// wrap inserts delim on both sides of sel.
func wrap(runes []rune, sel Selection, delim string) ToggleResult {
	builder := NewEditBuilder()
	builder.Insert(sel.Start, delim)
	builder.Insert(sel.End, delim)

	width := len([]rune(delim))
	return finish(runes, builder, Wrapped, sel, Selection{Start: sel.Start + width, End: sel.End + width})
}

// unwrap removes width delimiter characters at both ends of [outerStart, outerEnd).
func unwrap(runes []rune, outerStart, outerEnd, width int, sel Selection) ToggleResult {
	builder := NewEditBuilder()
	builder.Delete(outerStart, outerStart+width)
	builder.Delete(outerEnd-width, outerEnd)

	original := Selection{Start: outerStart + width, End: outerEnd - width}
	return finish(runes, builder, Unwrapped, original, sel)
}

// finish applies the built edits. If they do not validate, the text is
// returned unchanged with the original selection.
func finish(runes []rune, builder *EditBuilder, action Action, before, after Selection) ToggleResult {
	edits, err := PrepareEdits(builder.Edits, len(runes))
	if err != nil {
		return ToggleResult{Text: string(runes), Selection: before, Action: action}
	}

	return ToggleResult{
		Text:      string(ApplyEdits(runes, edits)),
		Selection: after,
		Action:    action,
		Edits:     edits,
	}
}

// hasRun reports whether runes[pos:pos+n] are all ch.
func hasRun(runes []rune, pos int, ch rune, n int) bool {
	if pos < 0 || pos+n > len(runes) {
		return false
	}
	for _, r := range runes[pos : pos+n] {
		if r != ch {
			return false
		}
	}
	return true
}

// isLoneDelim reports whether runes[pos] is ch and neither neighbor is ch.
func isLoneDelim(runes []rune, pos int, ch rune) bool {
	if pos < 0 || pos >= len(runes) || runes[pos] != ch {
		return false
	}
	if pos > 0 && runes[pos-1] == ch {
		return false
	}
	if pos+1 < len(runes) && runes[pos+1] == ch {
		return false
	}
	return true
}

// isEmptyPair reports whether the cursor at pos sits inside an empty
// delimiter pair that is not part of a longer run.
func isEmptyPair(runes []rune, pos int, ch rune) bool {
	return hasRun(runes, pos-1, ch, 2) &&
		(pos-2 < 0 || runes[pos-2] != ch) &&
		(pos+1 >= len(runes) || runes[pos+1] != ch)
}

// insideBold reports whether pos falls within a bold span of its line.
func insideBold(runes []rune, pos int) bool {
	lineStart := pos
	for lineStart > 0 && runes[lineStart-1] != '\n' {
		lineStart--
	}
	lineEnd := pos
	for lineEnd < len(runes) && runes[lineEnd] != '\n' {
		lineEnd++
	}

	for _, span := range scan.Scan(string(runes[lineStart:lineEnd])) {
		if span.Kind == scan.KindBold && pos >= lineStart+span.Start && pos < lineStart+span.End {
			return true
		}
	}
	return false
}
