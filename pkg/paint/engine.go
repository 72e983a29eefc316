package paint

import (
	"fmt"
	"sort"

	"github.com/yaklabco/mdlive/pkg/document"
	"github.com/yaklabco/mdlive/pkg/scan"
)

// Instruction paints Length characters starting at the line-relative Start.
type Instruction struct {
	Start  int        `json:"start"`
	Length int        `json:"length"`
	Style  Style      `json:"style"`
	Attrs  Attributes `json:"attrs"`
}

// End returns the line-relative offset just past the instruction.
func (i Instruction) End() int {
	return i.Start + i.Length
}

// String returns a compact debug representation.
func (i Instruction) String() string {
	return fmt.Sprintf("%s[%d+%d]", i.Style, i.Start, i.Length)
}

// CursorState is the caret as seen by one paint pass.
// The zero value is the caret at offset 0 on line 0.
type CursorState struct {
	// Offset is the absolute character offset in the document.
	Offset int

	// Line is the zero-based line holding the caret.
	Line int
}

// Nowhere is a cursor that reveals no markers. It stands in for caret
// positions outside the document.
//
//nolint:gochecknoglobals // Read-only sentinel value.
var Nowhere = CursorState{Offset: -1, Line: -1}

// IsNowhere reports whether the cursor is outside any document.
func (c CursorState) IsNowhere() bool {
	return c.Offset < 0 || c.Line < 0
}

// Within reports whether the caret lies in the inclusive range [start, end].
func (c CursorState) Within(start, end int) bool {
	return !c.IsNowhere() && c.Offset >= start && c.Offset <= end
}

// Engine turns the spans of a line into paint instructions.
// An Engine holds no per-pass state and may be shared.
type Engine struct {
	theme *Theme
}

// NewEngine creates an Engine. A nil theme uses DefaultTheme.
func NewEngine(theme *Theme) *Engine {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Engine{theme: theme}
}

// Theme returns the engine's theme.
func (e *Engine) Theme() *Theme {
	return e.theme
}

// Paint returns the instructions for one line.
//
// Heading markers are hidden unless the cursor is on the line. Bold and
// italic delimiters are hidden unless the cursor offset falls inside that
// span's whole range, boundaries included. Characters not covered by any
// instruction are plain text. The result is disjoint and ordered by Start.
func (e *Engine) Paint(line document.Line, spans []scan.Span, cursor CursorState) []Instruction {
	if len(spans) == 0 {
		return nil
	}

	out := make([]Instruction, 0, len(spans)*3)

	if heading, ok := scan.Heading(spans); ok {
		out = e.appendRange(out, heading.ContentStart, heading.ContentEnd, styleForKind(heading.Kind))
		if cursor.IsNowhere() || line.Index != cursor.Line {
			out = e.appendRange(out, heading.Start, heading.Start+heading.MarkerLength, HiddenMarker)
		}
	}

	for _, kind := range []scan.Kind{scan.KindBold, scan.KindItalic} {
		for _, span := range spans {
			if span.Kind != kind {
				continue
			}
			out = e.appendInline(out, line, span, cursor)
		}
	}

	return Compose(out)
}

// appendInline paints an emphasis span and, unless the cursor is inside it,
// hides its two delimiters.
func (e *Engine) appendInline(out []Instruction, line document.Line, span scan.Span, cursor CursorState) []Instruction {
	out = e.appendRange(out, span.ContentStart, span.ContentEnd, styleForKind(span.Kind))

	if cursor.Within(line.Start+span.Start, line.Start+span.End) {
		return out
	}

	openStart, openEnd := span.OpeningMarker()
	closeStart, closeEnd := span.ClosingMarker()
	out = e.appendRange(out, openStart, openEnd, HiddenMarker)
	return e.appendRange(out, closeStart, closeEnd, HiddenMarker)
}

func (e *Engine) appendRange(out []Instruction, start, end int, style Style) []Instruction {
	if end <= start {
		return out
	}
	return append(out, Instruction{
		Start:  start,
		Length: end - start,
		Style:  style,
		Attrs:  e.theme.Attributes(style),
	})
}

// Compose resolves overlapping instructions: a later instruction replaces
// the part of any earlier instruction it covers. The result is disjoint and
// ordered by Start. Empty instructions are dropped.
func Compose(instrs []Instruction) []Instruction {
	segments := make([]Instruction, 0, len(instrs))

	for _, ins := range instrs {
		if ins.Length <= 0 {
			continue
		}

		next := make([]Instruction, 0, len(segments)+2)
		for _, seg := range segments {
			if seg.End() <= ins.Start || ins.End() <= seg.Start {
				next = append(next, seg)
				continue
			}
			if seg.Start < ins.Start {
				left := seg
				left.Length = ins.Start - seg.Start
				next = append(next, left)
			}
			if seg.End() > ins.End() {
				right := seg
				right.Start = ins.End()
				right.Length = seg.End() - ins.End()
				next = append(next, right)
			}
		}
		segments = append(next, ins)
	}

	sort.Slice(segments, func(i, j int) bool {
		return segments[i].Start < segments[j].Start
	})

	return segments
}

// HiddenCount returns the number of hidden characters in a set of instructions.
func HiddenCount(instrs []Instruction) int {
	hidden := 0
	for _, ins := range instrs {
		if ins.Style == HiddenMarker {
			hidden += ins.Length
		}
	}
	return hidden
}
