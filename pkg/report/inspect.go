// Package report builds and writes the per-line breakdown printed by
// `mdlive inspect`: the spans each line scans to and the paint
// instructions produced for a given cursor.
package report

import (
	"github.com/yaklabco/mdlive/pkg/document"
	"github.com/yaklabco/mdlive/pkg/paint"
	"github.com/yaklabco/mdlive/pkg/scan"
)

// Inspection is the paint state of a whole document for one cursor.
type Inspection struct {
	Path   string
	Cursor paint.CursorState
	Lines  []LineReport
	Totals Totals
}

// LineReport is the paint state of one line.
type LineReport struct {
	Index        int
	Start        int
	Text         string
	Spans        []scan.Span
	Instructions []paint.Instruction
}

// Totals counts what the inspection found.
type Totals struct {
	Lines        int
	Spans        int
	Instructions int
	HiddenChars  int
}

// Inspect scans and paints every line of doc. A cursor offset outside the
// document is treated as no cursor at all.
func Inspect(path string, doc *document.Document, cursorOffset int, scanner *scan.Scanner, engine *paint.Engine) *Inspection {
	if scanner == nil {
		scanner = scan.NewScanner()
	}
	if engine == nil {
		engine = paint.NewEngine(nil)
	}

	cursor := paint.Nowhere
	if doc.Contains(cursorOffset) {
		cursor = paint.CursorState{Offset: cursorOffset, Line: doc.LineIndexForOffset(cursorOffset)}
	}

	insp := &Inspection{
		Path:   path,
		Cursor: cursor,
		Lines:  make([]LineReport, 0, doc.LineCount()),
	}

	for _, line := range doc.Lines() {
		spans := scanner.Scan(line.Text)
		instrs := engine.Paint(line, spans, cursor)

		insp.Lines = append(insp.Lines, LineReport{
			Index:        line.Index,
			Start:        line.Start,
			Text:         line.Text,
			Spans:        spans,
			Instructions: instrs,
		})

		insp.Totals.Spans += len(spans)
		insp.Totals.Instructions += len(instrs)
		insp.Totals.HiddenChars += paint.HiddenCount(instrs)
	}
	insp.Totals.Lines = len(insp.Lines)

	return insp
}
