// Package highlight drives incremental re-highlighting of a live document.
//
// A Session sits between an editor shell and the scan/paint core. The shell
// reports two events: text changes, which repaint every line immediately, and
// cursor moves, which are debounced and repaint only the lines the caret left
// and entered.
package highlight

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/mdlive/internal/logging"
	"github.com/yaklabco/mdlive/pkg/document"
	"github.com/yaklabco/mdlive/pkg/paint"
	"github.com/yaklabco/mdlive/pkg/scan"
)

// DefaultCursorDebounce is the quiet period before a cursor-move repaint.
const DefaultCursorDebounce = 30 * time.Millisecond

// Shell is the editor surface a Session reads from and paints to.
type Shell interface {
	// FullText returns the current document content.
	FullText() string

	// CursorOffset returns the current caret position.
	CursorOffset() int

	// LineIndexForOffset maps an absolute offset to a line number.
	LineIndexForOffset(offset int) int

	// ApplyPaint replaces the paint state of one line.
	ApplyPaint(line int, instrs []paint.Instruction)
}

// Dispatcher runs a debounced pass. The default runs it on the timer
// goroutine; shells with their own event loop can hand it over instead.
type Dispatcher func(pass func())

// Stats summarizes the work a Session has done.
type Stats struct {
	TextPasses   int
	CursorPasses int
	LinesPainted int
	Cache        CacheStats
}

// Session is the per-document highlighting state.
// All methods are safe for concurrent use; passes never run concurrently.
type Session struct {
	mu sync.Mutex

	shell     Shell
	engine    *paint.Engine
	cache     *SpanCache
	dirty     *DirtyLines
	debouncer *Debouncer
	dispatch  Dispatcher
	logger    *log.Logger
	delay     time.Duration

	doc    *document.Document
	cursor paint.CursorState
	stats  Stats
	closed bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for pass diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCursorDebounce sets the quiet period for cursor-move repaints.
func WithCursorDebounce(delay time.Duration) Option {
	return func(s *Session) {
		if delay >= 0 {
			s.delay = delay
		}
	}
}

// WithDispatcher sets how debounced passes are run.
func WithDispatcher(dispatch Dispatcher) Option {
	return func(s *Session) {
		if dispatch != nil {
			s.dispatch = dispatch
		}
	}
}

// WithEngine sets the paint engine.
func WithEngine(engine *paint.Engine) Option {
	return func(s *Session) {
		if engine != nil {
			s.engine = engine
		}
	}
}

// WithScanner sets the span scanner.
func WithScanner(scanner *scan.Scanner) Option {
	return func(s *Session) {
		if scanner != nil {
			s.cache = NewSpanCache(scanner)
		}
	}
}

// NewSession creates a Session bound to shell. Nothing is painted until the
// first TextChanged call.
func NewSession(shell Shell, opts ...Option) *Session {
	s := &Session{
		shell:    shell,
		engine:   paint.NewEngine(nil),
		cache:    NewSpanCache(nil),
		dirty:    NewDirtyLines(),
		logger:   logging.Default(),
		delay:    DefaultCursorDebounce,
		dispatch: func(pass func()) { pass() },
	}

	for _, opt := range opts {
		opt(s)
	}

	s.debouncer = NewDebouncer(s.delay, func() {
		s.dispatch(s.cursorPass)
	})

	return s
}

// TextChanged rescans the lines whose text changed and repaints every line.
// A pending cursor pass is dropped: this pass already uses the latest caret.
func (s *Session) TextChanged() {
	s.debouncer.Cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.doc = document.New(s.shell.FullText())
	s.cache.Truncate(s.doc.LineCount())
	s.cursor = s.readCursor()

	s.dirty.MarkAll()
	s.paintDirty(ChangeText)
}

// CursorMoved schedules a repaint for the caret's new position. Rapid calls
// within the debounce window collapse into one pass using the final position.
func (s *Session) CursorMoved() {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()

	if closed {
		return
	}
	s.debouncer.Trigger()
}

// Flush runs a pending cursor pass now. It returns false if none was pending.
func (s *Session) Flush() bool {
	return s.debouncer.Flush()
}

// Pending reports whether a cursor pass is scheduled.
func (s *Session) Pending() bool {
	return s.debouncer.Pending()
}

// Close drops any pending pass; later events are ignored.
func (s *Session) Close() {
	s.debouncer.Cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Cursor returns the caret as seen by the last pass.
func (s *Session) Cursor() paint.CursorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Document returns the snapshot used by the last text pass, or nil.
func (s *Session) Document() *document.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// Stats returns the session counters.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.stats
	stats.Cache = s.cache.Stats()
	return stats
}

// cursorPass repaints the line the caret left and the line it entered.
func (s *Session) cursorPass() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.doc == nil {
		s.doc = document.New(s.shell.FullText())
		s.dirty.MarkAll()
	}

	previous := s.cursor
	s.cursor = s.readCursor()

	s.dirty.MarkLine(previous.Line)
	s.dirty.MarkLine(s.cursor.Line)
	s.paintDirty(ChangeCursor)
}

// readCursor snapshots the shell caret for one pass. Offsets outside the
// document yield paint.Nowhere so no marker is revealed.
func (s *Session) readCursor() paint.CursorState {
	offset := s.shell.CursorOffset()
	if !s.doc.Contains(offset) {
		s.logger.Debug("cursor outside document",
			logging.FieldOffset, offset,
			logging.FieldLength, s.doc.Len(),
		)
		return paint.Nowhere
	}

	line := s.shell.LineIndexForOffset(offset)
	if line < 0 || line >= s.doc.LineCount() {
		line = s.doc.LineIndexForOffset(offset)
	}

	return paint.CursorState{Offset: offset, Line: line}
}

func (s *Session) paintDirty(change ChangeType) {
	lines := s.dirty.Lines(s.doc.LineCount())
	s.dirty.Clear()

	rescanned := 0
	for _, index := range lines {
		line, ok := s.doc.Line(index)
		if !ok {
			continue
		}

		spans, fresh := s.cache.Spans(index, line.Text)
		if fresh {
			rescanned++
		}

		s.shell.ApplyPaint(index, s.engine.Paint(line, spans, s.cursor))
	}

	switch change {
	case ChangeText:
		s.stats.TextPasses++
	case ChangeCursor:
		s.stats.CursorPasses++
	}
	s.stats.LinesPainted += len(lines)

	s.logger.Debug("repaint",
		logging.FieldChange, change,
		logging.FieldLines, len(lines),
		logging.FieldRescanned, rescanned,
		logging.FieldCursorLine, s.cursor.Line,
	)
}
