package canvas_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdlive/internal/logging"
	"github.com/yaklabco/mdlive/internal/ui/canvas"
	"github.com/yaklabco/mdlive/pkg/highlight"
	"github.com/yaklabco/mdlive/pkg/paint"
)

// paintOnce runs a full pass over c.
func paintOnce(t *testing.T, c *canvas.Canvas) {
	t.Helper()
	session := highlight.NewSession(c, highlight.WithLogger(logging.NewWriter(io.Discard, "error")))
	t.Cleanup(session.Close)
	session.TextChanged()
}

func TestCanvas_ImplementsShell(t *testing.T) {
	t.Parallel()

	var _ highlight.Shell = canvas.New("")
}

func TestCanvas_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		cursor int
		want   string
	}{
		{"heading hidden off cursor line", "# Hi\nbody", 6, "Hi\nbody"},
		{"heading shown on cursor line", "# Hi\nbody", 1, "# Hi\nbody"},
		{"bold revealed at its start", "**bold** and *it*", 0, "**bold** and it"},
		{"italic revealed at its end", "**bold** and *it*", 17, "bold and *it*"},
		{"nowhere hides everything", "**bold** and *it*", -1, "bold and it"},
		{"underscore italic", "an _em_ word", 0, "an em word"},
		{"plain", "nothing here", 3, "nothing here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := canvas.New(tt.text)
			c.SetCursor(tt.cursor)
			paintOnce(t, c)

			assert.Equal(t, tt.want, c.Render())
		})
	}
}

func TestCanvas_RenderWithCaret(t *testing.T) {
	t.Parallel()

	caret := func(s string) string { return "[" + s + "]" }

	tests := []struct {
		name   string
		text   string
		cursor int
		want   string
	}{
		{"inside line", "ab\ncd", 1, "a[b]\ncd"},
		{"end of line", "ab\ncd", 2, "ab[ ]\ncd"},
		{"second line", "ab\ncd", 3, "ab\n[c]d"},
		{"end of document", "ab", 2, "ab[ ]"},
		{"inside revealed bold", "x **b**", 4, "x **[b]**"},
		{"outside document", "ab", 9, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := canvas.New(tt.text)
			c.SetCursor(tt.cursor)
			paintOnce(t, c)

			assert.Equal(t, tt.want, c.RenderWithCaret(caret))
		})
	}
}

func TestCanvas_ApplyPaintIsIdempotent(t *testing.T) {
	t.Parallel()

	c := canvas.New("**a**")
	instrs := []paint.Instruction{
		{Start: 0, Length: 2, Style: paint.HiddenMarker},
		{Start: 2, Length: 1, Style: paint.BoldText},
		{Start: 3, Length: 2, Style: paint.HiddenMarker},
	}

	c.ApplyPaint(0, instrs)
	first := c.Render()
	c.ApplyPaint(0, instrs)

	assert.Equal(t, first, c.Render())
	assert.Equal(t, "a", c.Render())
	assert.Equal(t, instrs, c.Painted(0))
	assert.Equal(t, 2, c.Applied())

	c.ApplyPaint(0, nil)
	assert.Empty(t, c.Painted(0))
	assert.Equal(t, "**a**", c.RenderLine(0))
}

func TestCanvas_SetTextDropsStalePaint(t *testing.T) {
	t.Parallel()

	c := canvas.New("a\n*b*\nc")
	c.SetCursor(-1)
	paintOnce(t, c)
	require.NotEmpty(t, c.Painted(1))

	c.SetText("a")
	assert.Empty(t, c.Painted(1))
	assert.Equal(t, "a", c.FullText())
	assert.Equal(t, 0, c.LineIndexForOffset(50))
	assert.Empty(t, c.RenderLine(3))
}

func TestCanvas_TabsAndWrapping(t *testing.T) {
	t.Parallel()

	c := canvas.New("\tx", canvas.WithTabWidth(2))
	assert.Equal(t, "  x", c.Render())

	c = canvas.New("aaa bbb ccc", canvas.WithWidth(5))
	assert.Equal(t, "aaa\nbbb\nccc", c.Render())

	c.SetWidth(0)
	assert.Equal(t, "aaa bbb ccc", c.Render())
}

func TestTerminalWidth_NotATerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.Equal(t, 80, canvas.TerminalWidth(&buf))
}

func TestCanvas_RenderLines(t *testing.T) {
	t.Parallel()

	c := canvas.New("a\n**b**\nc\nd")
	c.SetCursor(0)
	paintOnce(t, c)

	assert.Equal(t, []string{"b", "c"}, c.RenderLines(1, 2, nil))
	assert.Equal(t, []string{"d"}, c.RenderLines(3, 10, nil))
	assert.Empty(t, c.RenderLines(7, 2, nil))
	assert.Equal(t, []string{"[a]"}, c.RenderLines(0, 1, func(s string) string { return "[" + s + "]" }))
}
