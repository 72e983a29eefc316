package report_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdlive/pkg/document"
	"github.com/yaklabco/mdlive/pkg/paint"
	"github.com/yaklabco/mdlive/pkg/report"
)

const sample = "# Hi\n**b** c"

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    report.Format
		wantErr bool
	}{
		{"", report.FormatText, false},
		{"text", report.FormatText, false},
		{"json", report.FormatJSON, false},
		{"sarif", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := report.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, got.IsValid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestInspect(t *testing.T) {
	t.Parallel()

	insp := report.Inspect("doc.md", document.New(sample), 0, nil, nil)

	assert.Equal(t, paint.CursorState{Offset: 0, Line: 0}, insp.Cursor)
	require.Len(t, insp.Lines, 2)

	heading := insp.Lines[0]
	require.Len(t, heading.Instructions, 1)
	assert.Equal(t, paint.Heading1Text, heading.Instructions[0].Style)

	bold := insp.Lines[1]
	assert.Equal(t, 5, bold.Start)
	assert.Equal(t, 4, paint.HiddenCount(bold.Instructions))

	assert.Equal(t, report.Totals{Lines: 2, Spans: 2, Instructions: 4, HiddenChars: 4}, insp.Totals)
}

func TestInspect_CursorOutsideDocument(t *testing.T) {
	t.Parallel()

	insp := report.Inspect("doc.md", document.New(sample), 99, nil, nil)

	assert.True(t, insp.Cursor.IsNowhere())
	assert.Equal(t, 2, paint.HiddenCount(insp.Lines[0].Instructions))
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	reporter, err := report.New(report.Options{Writer: &buf, Format: report.FormatJSON})
	require.NoError(t, err)

	insp := report.Inspect("doc.md", document.New(sample), 7, nil, nil)
	require.NoError(t, reporter.Report(context.Background(), insp))

	var out report.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "doc.md", out.Path)
	assert.Equal(t, report.JSONCursor{Offset: 7, Line: 1}, out.Cursor)
	require.Len(t, out.Lines, 2)

	require.Len(t, out.Lines[1].Spans, 1)
	span := out.Lines[1].Spans[0]
	assert.Equal(t, "bold", span.Kind)
	assert.Equal(t, "*", span.Delim)
	assert.Equal(t, 2, span.MarkerLength)

	assert.Contains(t, buf.String(), `"style": "heading1"`)
	assert.Equal(t, 2, out.Totals.HiddenChars)
}

func TestJSONReporter_Compact(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	reporter := report.NewJSONReporter(report.Options{Writer: &buf, Compact: true})
	require.NoError(t, reporter.Report(context.Background(), report.Inspect("a.md", document.New("x"), 0, nil, nil)))

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
	assert.Contains(t, buf.String(), `"spans":[]`)
	assert.Contains(t, buf.String(), `"instructions":[]`)
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	reporter, err := report.New(report.Options{Writer: &buf, Color: "never", ShowPlain: true})
	require.NoError(t, err)

	insp := report.Inspect("doc.md", document.New(sample+"\nplain"), 0, nil, nil)
	require.NoError(t, reporter.Report(context.Background(), insp))

	out := buf.String()
	assert.Contains(t, out, "doc.md  cursor 0 (line 0)")
	assert.Contains(t, out, "0 > # Hi")
	assert.Contains(t, out, "1 | **b** c")
	assert.Contains(t, out, "heading1[0:4 content 2:4]")
	assert.Contains(t, out, "hidden[0+2] bold[2+1] hidden[3+2]")
	assert.Contains(t, out, "2 | plain")
	assert.Contains(t, out, "3 lines, 2 spans, 4 instructions, 4 hidden")
}

func TestTextReporter_HidesPlainLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	reporter := report.NewTextReporter(report.Options{Writer: &buf, Color: "never"})

	insp := report.Inspect("doc.md", document.New("plain\n*i*"), -1, nil, nil)
	require.NoError(t, reporter.Report(context.Background(), insp))

	out := buf.String()
	assert.Contains(t, out, "no cursor")
	assert.NotContains(t, out, "plain\n")
	assert.Contains(t, out, "1 | *i*")
}
