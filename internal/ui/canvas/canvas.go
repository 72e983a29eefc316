// Package canvas is a terminal paint surface for a highlight session.
//
// A Canvas holds the document text, the caret and the last paint
// instructions of every line. Sessions paint into it through the
// highlight.Shell methods; Render turns the stored state into styled,
// wrapped terminal text with hidden markers collapsed.
package canvas

import (
	"io"
	"strings"
	"sync"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"golang.org/x/term"

	"github.com/yaklabco/mdlive/internal/ui/pretty"
	"github.com/yaklabco/mdlive/pkg/document"
	"github.com/yaklabco/mdlive/pkg/paint"
)

// DefaultTabWidth is the number of columns a tab expands to.
const DefaultTabWidth = 4

// defaultTermWidth is used when the terminal size cannot be read.
const defaultTermWidth = 80

// Canvas is safe for concurrent use.
type Canvas struct {
	mu sync.Mutex

	doc    *document.Document
	cursor int
	paints map[int][]paint.Instruction
	styles *pretty.PaintStyles

	width    int
	tabWidth int
	applied  int
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithStyles sets the terminal styles used for painted ranges.
func WithStyles(styles *pretty.PaintStyles) Option {
	return func(c *Canvas) {
		if styles != nil {
			c.styles = styles
		}
	}
}

// WithWidth wraps rendered lines at width columns. Zero disables wrapping.
func WithWidth(width int) Option {
	return func(c *Canvas) {
		if width >= 0 {
			c.width = width
		}
	}
}

// WithTabWidth sets how many spaces a tab renders as.
func WithTabWidth(width int) Option {
	return func(c *Canvas) {
		if width > 0 {
			c.tabWidth = width
		}
	}
}

// New creates a canvas holding text with the caret at offset 0.
func New(text string, opts ...Option) *Canvas {
	c := &Canvas{
		doc:      document.New(text),
		paints:   make(map[int][]paint.Instruction),
		styles:   pretty.NewPaintStyles(nil, paint.DefaultTheme(), false),
		tabWidth: DefaultTabWidth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FullText returns the current document content.
func (c *Canvas) FullText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doc.Text()
}

// CursorOffset returns the caret position.
func (c *Canvas) CursorOffset() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

// LineIndexForOffset maps an offset to a line, clamping to the document.
func (c *Canvas) LineIndexForOffset(offset int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doc.LineIndexForOffset(offset)
}

// ApplyPaint replaces the paint state of one line. Applying the same
// instructions twice leaves the canvas unchanged.
func (c *Canvas) ApplyPaint(line int, instrs []paint.Instruction) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.applied++
	if len(instrs) == 0 {
		delete(c.paints, line)
		return
	}
	c.paints[line] = append([]paint.Instruction(nil), instrs...)
}

// SetText replaces the document. Paint state for lines past the new end is
// dropped; the rest stays until the next pass repaints it.
func (c *Canvas) SetText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.doc = document.New(text)
	for line := range c.paints {
		if line >= c.doc.LineCount() {
			delete(c.paints, line)
		}
	}
}

// SetCursor moves the caret. The offset is stored as given so that a
// session sees out-of-range positions for what they are.
func (c *Canvas) SetCursor(offset int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cursor = offset
}

// SetWidth changes the wrap width.
func (c *Canvas) SetWidth(width int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.width = max(width, 0)
}

// Document returns the current document snapshot.
func (c *Canvas) Document() *document.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doc
}

// Painted returns the stored instructions of a line.
func (c *Canvas) Painted(line int) []paint.Instruction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paints[line]
}

// Applied returns how many ApplyPaint calls the canvas has received.
func (c *Canvas) Applied() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applied
}

// Render returns every line rendered, joined by newlines.
func (c *Canvas) Render() string {
	return c.renderAll(nil)
}

// RenderWithCaret renders like Render and draws the caret by passing the
// character under it (a space at line end) through caret. A caret outside
// the document is not drawn.
func (c *Canvas) RenderWithCaret(caret func(string) string) string {
	return c.renderAll(caret)
}

func (c *Canvas) renderAll(caret func(string) string) string {
	return strings.Join(c.RenderLines(0, c.Document().LineCount(), caret), "\n")
}

// RenderLines renders up to count lines starting at first, one wrapped
// string per document line. caret may be nil.
func (c *Canvas) RenderLines(first, count int, caret func(string) string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	caretLine := -1
	if caret != nil && c.doc.Contains(c.cursor) {
		caretLine = c.doc.LineIndexForOffset(c.cursor)
	}

	first = max(first, 0)
	last := min(first+count, c.doc.LineCount())

	lines := make([]string, 0, max(last-first, 0))
	for index := first; index < last; index++ {
		line, _ := c.doc.Line(index)
		col := -1
		if index == caretLine {
			col = c.cursor - line.Start
		}
		lines = append(lines, c.wrapLine(c.renderLine(line, col, caret)))
	}
	return lines
}

// RenderLine renders one line without wrapping or caret.
func (c *Canvas) RenderLine(index int) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	line, ok := c.doc.Line(index)
	if !ok {
		return ""
	}
	return c.renderLine(line, -1, nil)
}

// renderLine walks the line in runs of equal style. Hidden runs are
// dropped; the caret column, when set, is rendered on its own.
func (c *Canvas) renderLine(line document.Line, caretCol int, caret func(string) string) string {
	runes := []rune(line.Text)
	styles := make([]paint.Style, len(runes))
	for _, ins := range c.paints[line.Index] {
		for i := max(ins.Start, 0); i < min(ins.End(), len(runes)); i++ {
			styles[i] = ins.Style
		}
	}

	var b strings.Builder
	for start := 0; start < len(runes); {
		if start == caretCol {
			b.WriteString(caret(c.expand(runes[start : start+1])))
			start++
			continue
		}

		end := start + 1
		for end < len(runes) && styles[end] == styles[start] && end != caretCol {
			end++
		}

		if styles[start] != paint.HiddenMarker {
			b.WriteString(c.styles.Render(styles[start], c.expand(runes[start:end])))
		}
		start = end
	}

	if caretCol == len(runes) {
		b.WriteString(caret(" "))
	}

	return b.String()
}

func (c *Canvas) expand(runes []rune) string {
	text := string(runes)
	if !strings.ContainsRune(text, '\t') {
		return text
	}
	return strings.ReplaceAll(text, "\t", strings.Repeat(" ", c.tabWidth))
}

func (c *Canvas) wrapLine(rendered string) string {
	if c.width <= 0 {
		return rendered
	}
	return wrap.String(wordwrap.String(rendered, c.width), c.width)
}

// TerminalWidth returns the width of the terminal behind w, or a default
// when w is not a terminal.
func TerminalWidth(w io.Writer) int {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
