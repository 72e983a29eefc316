package document_test

import (
	"testing"

	"github.com/yaklabco/mdlive/pkg/document"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []document.LineInfo
	}{
		{
			name:    "empty content",
			content: "",
			expected: []document.LineInfo{
				{StartOffset: 0, NewlineStart: 0, EndOffset: 0},
			},
		},
		{
			name:    "single line no newline",
			content: "hello",
			expected: []document.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 5},
			},
		},
		{
			name:    "single line with LF",
			content: "hello\n",
			expected: []document.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 6, EndOffset: 6},
			},
		},
		{
			name:    "single line with CRLF",
			content: "hello\r\n",
			expected: []document.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 7},
				{StartOffset: 7, NewlineStart: 7, EndOffset: 7},
			},
		},
		{
			name:    "multiple lines LF",
			content: "line1\nline2\nline3",
			expected: []document.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 11, EndOffset: 12},
				{StartOffset: 12, NewlineStart: 17, EndOffset: 17},
			},
		},
		{
			name:    "multibyte characters count once",
			content: "héllo\nwörld",
			expected: []document.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 11, EndOffset: 11},
			},
		},
		{
			name:    "only newline",
			content: "\n",
			expected: []document.LineInfo{
				{StartOffset: 0, NewlineStart: 0, EndOffset: 1},
				{StartOffset: 1, NewlineStart: 1, EndOffset: 1},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			lines := document.BuildLines([]rune(testCase.content))

			if len(lines) != len(testCase.expected) {
				t.Fatalf("expected %d lines, got %d", len(testCase.expected), len(lines))
			}

			for i, exp := range testCase.expected {
				if lines[i] != exp {
					t.Errorf("line %d: expected %+v, got %+v", i, exp, lines[i])
				}
			}
		})
	}
}

func TestDocument_LineIndexForOffset(t *testing.T) {
	t.Parallel()

	doc := document.New("# Hi\nbody\n\nend")

	tests := []struct {
		name   string
		offset int
		want   int
	}{
		{"start of document", 0, 0},
		{"inside first line", 2, 0},
		{"newline of first line", 4, 0},
		{"start of second line", 5, 1},
		{"empty third line", 10, 2},
		{"last line", 12, 3},
		{"end of document", 14, 3},
		{"negative clamps to first line", -5, 0},
		{"past end clamps to last line", 99, 3},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := doc.LineIndexForOffset(testCase.offset); got != testCase.want {
				t.Errorf("LineIndexForOffset(%d) = %d, want %d", testCase.offset, got, testCase.want)
			}
		})
	}
}

func TestDocument_Line(t *testing.T) {
	t.Parallel()

	doc := document.New("# Hi\r\nbody")

	first, ok := doc.Line(0)
	if !ok {
		t.Fatal("line 0 not found")
	}
	if first.Text != "# Hi" || first.Start != 0 || first.Len() != 4 {
		t.Errorf("unexpected first line: %+v", first)
	}

	second, ok := doc.Line(1)
	if !ok {
		t.Fatal("line 1 not found")
	}
	if second.Text != "body" || second.Start != 6 || second.End() != 10 {
		t.Errorf("unexpected second line: %+v", second)
	}

	if _, ok := doc.Line(2); ok {
		t.Error("expected line 2 to be out of range")
	}
	if _, ok := doc.Line(-1); ok {
		t.Error("expected line -1 to be out of range")
	}
}

func TestDocument_OffsetOfAndColumn(t *testing.T) {
	t.Parallel()

	doc := document.New("abc\nde")

	offset, ok := doc.OffsetOf(1, 1)
	if !ok || offset != 5 {
		t.Errorf("OffsetOf(1, 1) = %d, %v; want 5, true", offset, ok)
	}

	offset, ok = doc.OffsetOf(0, 10)
	if !ok || offset != 3 {
		t.Errorf("OffsetOf(0, 10) = %d, %v; want 3, true", offset, ok)
	}

	if _, ok := doc.OffsetOf(5, 0); ok {
		t.Error("expected OffsetOf on missing line to fail")
	}

	if col := doc.Column(5); col != 1 {
		t.Errorf("Column(5) = %d, want 1", col)
	}
	if col := doc.Column(3); col != 3 {
		t.Errorf("Column(3) = %d, want 3", col)
	}
}

func TestDocument_Slice(t *testing.T) {
	t.Parallel()

	doc := document.New("héllo wörld")

	if got := doc.Slice(6, 11); got != "wörld" {
		t.Errorf("Slice(6, 11) = %q, want %q", got, "wörld")
	}
	if got := doc.Slice(-3, 2); got != "hé" {
		t.Errorf("Slice(-3, 2) = %q, want %q", got, "hé")
	}
	if got := doc.Slice(8, 2); got != "" {
		t.Errorf("Slice(8, 2) = %q, want empty", got)
	}
}
