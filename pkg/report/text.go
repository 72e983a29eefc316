package report

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/mdlive/internal/ui/pretty"
	"github.com/yaklabco/mdlive/pkg/paint"
)

// TextReporter formats inspections as styled terminal output:
//
//	notes.md  cursor 14 (line 3)
//	  3 | **d** e
//	      span   bold[0:5 content 2:3]
//	      paint  hidden[0+2] bold[2+1] hidden[3+2]
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStylesFor(pretty.NewRenderer(opts.Writer, colorEnabled), colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, insp *Inspection) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if insp == nil {
		return nil
	}

	fmt.Fprintf(r.bw, "%s  %s\n", r.styles.FilePath.Render(insp.Path), r.styles.Dim.Render(cursorLabel(insp.Cursor)))

	width := len(fmt.Sprint(max(len(insp.Lines)-1, 0)))
	for _, line := range insp.Lines {
		if len(line.Spans) == 0 && !r.opts.ShowPlain {
			continue
		}
		r.writeLine(line, width, line.Index == insp.Cursor.Line)
	}

	fmt.Fprintln(r.bw, r.styles.Dim.Render(fmt.Sprintf(
		"%d lines, %d spans, %d instructions, %d hidden",
		insp.Totals.Lines, insp.Totals.Spans, insp.Totals.Instructions, insp.Totals.HiddenChars,
	)))

	return nil
}

func (r *TextReporter) writeLine(line LineReport, width int, cursorLine bool) {
	bar := "|"
	if cursorLine {
		bar = r.styles.CursorBar.Render(">")
	}

	fmt.Fprintf(r.bw, "  %s %s %s\n",
		r.styles.Location.Render(fmt.Sprintf("%*d", width, line.Index)),
		bar,
		r.styles.LineText.Render(line.Text),
	)

	indent := strings.Repeat(" ", width+5)

	if len(line.Spans) > 0 {
		parts := make([]string, 0, len(line.Spans))
		for _, span := range line.Spans {
			parts = append(parts, span.String())
		}
		fmt.Fprintf(r.bw, "%s%s %s\n", indent, r.styles.Label.Render("span "), strings.Join(parts, " "))
	}

	if len(line.Instructions) > 0 {
		parts := make([]string, 0, len(line.Instructions))
		for _, ins := range line.Instructions {
			if ins.Style == paint.HiddenMarker {
				parts = append(parts, r.styles.Marker.Render(ins.String()))
				continue
			}
			parts = append(parts, ins.String())
		}
		fmt.Fprintf(r.bw, "%s%s %s\n", indent, r.styles.Label.Render("paint"), strings.Join(parts, " "))
	}
}

func cursorLabel(cursor paint.CursorState) string {
	if cursor.IsNowhere() {
		return "no cursor"
	}
	return fmt.Sprintf("cursor %d (line %d)", cursor.Offset, cursor.Line)
}
