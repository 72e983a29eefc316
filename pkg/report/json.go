package report

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/mdlive/pkg/paint"
)

// schemaVersion is bumped when the JSON shape changes incompatibly.
const schemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string     `json:"version"`
	Path    string     `json:"path"`
	Cursor  JSONCursor `json:"cursor"`
	Lines   []JSONLine `json:"lines"`
	Totals  JSONTotals `json:"totals"`
}

// JSONCursor is the cursor the inspection was painted for. Nowhere is
// true when the requested offset fell outside the document.
type JSONCursor struct {
	Offset  int  `json:"offset"`
	Line    int  `json:"line"`
	Nowhere bool `json:"nowhere,omitempty"`
}

// JSONLine is one line of the inspection.
type JSONLine struct {
	Index        int                 `json:"index"`
	Start        int                 `json:"start"`
	Text         string              `json:"text"`
	Spans        []JSONSpan          `json:"spans"`
	Instructions []paint.Instruction `json:"instructions"`
}

// JSONSpan is a recognized construct.
type JSONSpan struct {
	Kind         string `json:"kind"`
	Start        int    `json:"start"`
	End          int    `json:"end"`
	ContentStart int    `json:"contentStart"`
	ContentEnd   int    `json:"contentEnd"`
	MarkerLength int    `json:"markerLength"`
	Delim        string `json:"delim"`
}

// JSONTotals contains aggregate counts.
type JSONTotals struct {
	Lines        int `json:"lines"`
	Spans        int `json:"spans"`
	Instructions int `json:"instructions"`
	HiddenChars  int `json:"hiddenChars"`
}

// JSONReporter formats inspections as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, insp *Inspection) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(buildOutput(insp)); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

func buildOutput(insp *Inspection) *JSONOutput {
	output := &JSONOutput{
		Version: schemaVersion,
		Lines:   make([]JSONLine, 0),
	}
	if insp == nil {
		return output
	}

	output.Path = insp.Path
	output.Cursor = JSONCursor{
		Offset:  insp.Cursor.Offset,
		Line:    insp.Cursor.Line,
		Nowhere: insp.Cursor.IsNowhere(),
	}
	output.Totals = JSONTotals(insp.Totals)

	for _, line := range insp.Lines {
		jsonLine := JSONLine{
			Index:        line.Index,
			Start:        line.Start,
			Text:         line.Text,
			Spans:        make([]JSONSpan, 0, len(line.Spans)),
			Instructions: line.Instructions,
		}
		if jsonLine.Instructions == nil {
			jsonLine.Instructions = []paint.Instruction{}
		}

		for _, span := range line.Spans {
			jsonLine.Spans = append(jsonLine.Spans, JSONSpan{
				Kind:         span.Kind.String(),
				Start:        span.Start,
				End:          span.End,
				ContentStart: span.ContentStart,
				ContentEnd:   span.ContentEnd,
				MarkerLength: span.MarkerLength,
				Delim:        string(span.Delim),
			})
		}

		output.Lines = append(output.Lines, jsonLine)
	}

	return output
}
