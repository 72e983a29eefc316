package highlight_test

import (
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdlive/internal/logging"
	"github.com/yaklabco/mdlive/pkg/document"
	"github.com/yaklabco/mdlive/pkg/highlight"
	"github.com/yaklabco/mdlive/pkg/paint"
)

// fakeShell records every ApplyPaint call.
type fakeShell struct {
	mu      sync.Mutex
	text    string
	cursor  int
	painted map[int][]paint.Instruction
	calls   []int
}

func newFakeShell(text string, cursor int) *fakeShell {
	return &fakeShell{text: text, cursor: cursor, painted: make(map[int][]paint.Instruction)}
}

func (f *fakeShell) FullText() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.text
}

func (f *fakeShell) CursorOffset() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cursor
}

func (f *fakeShell) LineIndexForOffset(offset int) int {
	return document.New(f.FullText()).LineIndexForOffset(offset)
}

func (f *fakeShell) ApplyPaint(line int, instrs []paint.Instruction) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.painted[line] = instrs
	f.calls = append(f.calls, line)
}

func (f *fakeShell) setText(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.text = text
}

func (f *fakeShell) moveTo(offset int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cursor = offset
}

// takeCalls returns the painted lines since the last call, sorted.
func (f *fakeShell) takeCalls() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	calls := f.calls
	f.calls = nil
	sort.Ints(calls)
	return calls
}

func (f *fakeShell) paintOf(line int) []paint.Instruction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.painted[line]
}

func quietLogger() highlight.Option {
	return highlight.WithLogger(logging.NewWriter(io.Discard, "debug"))
}

func TestSession_TextChangedRepaintsEveryLine(t *testing.T) {
	t.Parallel()

	shell := newFakeShell("# Title\nplain\n**bold**\n", 0)
	session := highlight.NewSession(shell, quietLogger())
	defer session.Close()

	session.TextChanged()

	assert.Equal(t, []int{0, 1, 2, 3}, shell.takeCalls())
	assert.Equal(t, 1, session.Stats().TextPasses)
	assert.Equal(t, 4, session.Stats().LinesPainted)
}

func TestSession_HeadingExample(t *testing.T) {
	t.Parallel()

	shell := newFakeShell("# Hi\nbody", 0)
	session := highlight.NewSession(shell, quietLogger())
	defer session.Close()

	session.TextChanged()
	assert.Equal(t, []int{0, 1}, shell.takeCalls())

	line0 := shell.paintOf(0)
	require.Len(t, line0, 1)
	assert.Equal(t, paint.Heading1Text, line0[0].Style)
	assert.Equal(t, 0, paint.HiddenCount(line0))
	assert.Empty(t, shell.paintOf(1))

	shell.moveTo(6)
	session.CursorMoved()
	require.True(t, session.Flush())

	assert.Equal(t, []int{0, 1}, shell.takeCalls())
	line0 = shell.paintOf(0)
	assert.Equal(t, 2, paint.HiddenCount(line0))
	assert.Equal(t, 1, session.Cursor().Line)
}

func TestSession_CursorMoveRepaintsOnlyTouchedLines(t *testing.T) {
	t.Parallel()

	shell := newFakeShell("**a**\nb\nc\n**d**\ne", 0)
	session := highlight.NewSession(shell, quietLogger(), highlight.WithCursorDebounce(time.Hour))
	defer session.Close()

	session.TextChanged()
	shell.takeCalls()

	// Offset 14 is inside "**d**" on line 3.
	shell.moveTo(14)
	session.CursorMoved()
	require.True(t, session.Pending())
	require.True(t, session.Flush())

	assert.Equal(t, []int{0, 3}, shell.takeCalls())
	assert.Equal(t, 0, paint.HiddenCount(shell.paintOf(3)))
	assert.Equal(t, 4, paint.HiddenCount(shell.paintOf(0)))
}

func TestSession_CursorMoveWithinLine(t *testing.T) {
	t.Parallel()

	shell := newFakeShell("one\n*two* three", 4)
	session := highlight.NewSession(shell, quietLogger(), highlight.WithCursorDebounce(time.Hour))
	defer session.Close()

	session.TextChanged()
	shell.takeCalls()
	assert.Equal(t, 0, paint.HiddenCount(shell.paintOf(1)))

	shell.moveTo(12)
	session.CursorMoved()
	require.True(t, session.Flush())

	assert.Equal(t, []int{1}, shell.takeCalls())
	assert.Equal(t, 2, paint.HiddenCount(shell.paintOf(1)))
}

func TestSession_RapidCursorMovesCoalesce(t *testing.T) {
	t.Parallel()

	shell := newFakeShell("**a**\nb\n**c**", 0)

	passes := make(chan struct{}, 16)
	session := highlight.NewSession(shell,
		quietLogger(),
		highlight.WithCursorDebounce(20*time.Millisecond),
		highlight.WithDispatcher(func(pass func()) {
			pass()
			passes <- struct{}{}
		}),
	)
	defer session.Close()

	session.TextChanged()
	shell.takeCalls()

	for _, offset := range []int{1, 2, 6, 7, 9, 10, 11} {
		shell.moveTo(offset)
		session.CursorMoved()
	}

	select {
	case <-passes:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced pass never ran")
	}

	select {
	case <-passes:
		t.Fatal("expected a single coalesced pass")
	case <-time.After(100 * time.Millisecond):
	}

	stats := session.Stats()
	assert.Equal(t, 1, stats.CursorPasses)
	assert.Equal(t, 11, session.Cursor().Offset)
	assert.Equal(t, 2, session.Cursor().Line)
	assert.Equal(t, []int{0, 2}, shell.takeCalls())
}

func TestSession_TextChangedCancelsPendingCursorPass(t *testing.T) {
	t.Parallel()

	shell := newFakeShell("**a**", 0)
	session := highlight.NewSession(shell, quietLogger(), highlight.WithCursorDebounce(time.Hour))
	defer session.Close()

	session.TextChanged()
	session.CursorMoved()
	require.True(t, session.Pending())

	shell.setText("**a** more")
	session.TextChanged()

	assert.False(t, session.Pending())
	assert.False(t, session.Flush())
	assert.Equal(t, 0, session.Stats().CursorPasses)
}

func TestSession_CursorOutsideDocumentHidesAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		offset int
	}{
		{"negative", -5},
		{"past end", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			shell := newFakeShell("**a**", tt.offset)
			session := highlight.NewSession(shell, quietLogger())
			defer session.Close()

			session.TextChanged()

			assert.True(t, session.Cursor().IsNowhere())
			assert.Equal(t, 4, paint.HiddenCount(shell.paintOf(0)))
		})
	}
}

func TestSession_CursorAtDocumentEnd(t *testing.T) {
	t.Parallel()

	shell := newFakeShell("**a**", 5)
	session := highlight.NewSession(shell, quietLogger())
	defer session.Close()

	session.TextChanged()

	assert.Equal(t, paint.CursorState{Offset: 5, Line: 0}, session.Cursor())
	assert.Equal(t, 0, paint.HiddenCount(shell.paintOf(0)))
}

func TestSession_OnlyChangedLinesRescanned(t *testing.T) {
	t.Parallel()

	shell := newFakeShell("a\nb\nc", 0)
	session := highlight.NewSession(shell, quietLogger())
	defer session.Close()

	session.TextChanged()
	assert.Equal(t, 3, session.Stats().Cache.Misses)

	shell.setText("a\n*b*\nc")
	session.TextChanged()

	stats := session.Stats().Cache
	assert.Equal(t, 4, stats.Misses)
	assert.Equal(t, 2, stats.Hits)
}

func TestSession_ShrinkingDocumentEvicts(t *testing.T) {
	t.Parallel()

	shell := newFakeShell("a\nb\nc\nd", 0)
	session := highlight.NewSession(shell, quietLogger())
	defer session.Close()

	session.TextChanged()
	shell.setText("a")
	session.TextChanged()

	assert.Equal(t, 3, session.Stats().Cache.Evicted)
	assert.Equal(t, 1, session.Document().LineCount())
}

func TestSession_ClosedIgnoresEvents(t *testing.T) {
	t.Parallel()

	shell := newFakeShell("x", 0)
	session := highlight.NewSession(shell, quietLogger())
	session.Close()

	session.TextChanged()
	session.CursorMoved()

	assert.Empty(t, shell.takeCalls())
	assert.False(t, session.Pending())
}
