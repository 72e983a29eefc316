// Package editor is the interactive terminal editor hosting a highlight
// session. Keystrokes edit the buffer through pkg/edit; the session repaints
// a canvas which the view renders with the caret drawn in.
package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/yaklabco/mdlive/internal/logging"
	"github.com/yaklabco/mdlive/internal/ui/canvas"
	"github.com/yaklabco/mdlive/internal/ui/pretty"
	"github.com/yaklabco/mdlive/pkg/edit"
	"github.com/yaklabco/mdlive/pkg/fsutil"
	"github.com/yaklabco/mdlive/pkg/highlight"
	"github.com/yaklabco/mdlive/pkg/paint"
)

// Options configures an editor Model.
type Options struct {
	// Path is where the buffer is saved.
	Path string

	// Text is the initial buffer content.
	Text string

	// Snapshot is the state of Path when Text was read; nil for a new file.
	Snapshot *fsutil.Snapshot

	Theme          *paint.Theme
	Foreground     string
	Background     string
	CursorDebounce time.Duration
	TabWidth       int
	Backup         fsutil.BackupConfig
	ColorEnabled   bool
	Logger         *log.Logger
}

// cursorPassMsg carries a debounced repaint onto the update loop.
type cursorPassMsg struct {
	pass func()
}

// Model is the editor state. It is used through a pointer so the session's
// dispatcher and the program share one instance.
type Model struct {
	ctx context.Context

	path     string
	snapshot *fsutil.Snapshot
	backup   fsutil.BackupConfig

	canvas  *canvas.Canvas
	session *highlight.Session

	keys   KeyMap
	help   help.Model
	styles *pretty.Styles
	caret  func(string) string
	logger *log.Logger

	text   string
	length int
	cursor int
	anchor int

	top    int
	width  int
	height int

	dirty     bool
	quitArmed bool
	forceSave bool
	status    string
	statusErr bool
	quitting  bool

	sendMu sync.Mutex
	send   func(tea.Msg)
}

// New creates an editor with the caret at the start of the buffer and
// paints it once.
func New(ctx context.Context, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}

	renderer := lipgloss.DefaultRenderer()
	theme := opts.Theme
	if theme == nil {
		theme = paint.DefaultTheme()
	}

	m := &Model{
		ctx:      ctx,
		path:     opts.Path,
		snapshot: opts.Snapshot,
		backup:   opts.Backup,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		styles:   pretty.NewStyles(opts.ColorEnabled),
		caret:    func(s string) string { return s },
		logger:   logger,
		text:     opts.Text,
		length:   utf8.RuneCountInString(opts.Text),
		anchor:   -1,
	}

	if opts.ColorEnabled {
		reverse := renderer.NewStyle().Reverse(true)
		m.caret = func(s string) string { return reverse.Render(s) }
	}

	m.canvas = canvas.New(opts.Text,
		canvas.WithStyles(pretty.NewPaintStyles(renderer, theme, opts.ColorEnabled).
			WithColors(opts.Foreground, opts.Background)),
		canvas.WithTabWidth(opts.TabWidth),
	)

	sessionOpts := []highlight.Option{
		highlight.WithLogger(logger),
		highlight.WithEngine(paint.NewEngine(theme)),
		highlight.WithDispatcher(m.dispatch),
	}
	if opts.CursorDebounce > 0 {
		sessionOpts = append(sessionOpts, highlight.WithCursorDebounce(opts.CursorDebounce))
	}
	m.session = highlight.NewSession(m.canvas, sessionOpts...)
	m.session.TextChanged()

	return m
}

// SetSender routes debounced repaints through send, normally the
// program's Send. Without a sender they run on the timer goroutine.
func (m *Model) SetSender(send func(tea.Msg)) {
	m.sendMu.Lock()
	defer m.sendMu.Unlock()
	m.send = send
}

func (m *Model) dispatch(pass func()) {
	m.sendMu.Lock()
	send := m.send
	m.sendMu.Unlock()

	if send == nil {
		pass()
		return
	}
	send(cursorPassMsg{pass: pass})
}

// Close stops the session.
func (m *Model) Close() {
	m.session.Close()
}

// Text returns the buffer content.
func (m *Model) Text() string { return m.text }

// Cursor returns the caret offset.
func (m *Model) Cursor() int { return m.cursor }

// Selection returns the selected range; empty at the caret when nothing
// is selected.
func (m *Model) Selection() edit.Selection {
	if m.anchor < 0 {
		return edit.Cursor(m.cursor)
	}
	return edit.Selection{Start: m.anchor, End: m.cursor}.Normalize(m.length)
}

// Dirty reports whether the buffer differs from the file on disk.
func (m *Model) Dirty() bool { return m.dirty }

// Status returns the current status message.
func (m *Model) Status() string { return m.status }

// Session returns the highlight session.
func (m *Model) Session() *highlight.Session { return m.session }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case cursorPassMsg:
		msg.pass()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.canvas.SetWidth(msg.Width)
		m.scroll()
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		m.scroll()
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !key.Matches(msg, m.keys.Quit) {
		m.quitArmed = false
	}
	if !key.Matches(msg, m.keys.Save) {
		m.forceSave = false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Save):
		m.save()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.ToggleBold):
		m.toggle("bold", edit.ToggleBold)
	case key.Matches(msg, m.keys.ToggleItalic):
		m.toggle("italic", edit.ToggleItalic)

	case key.Matches(msg, m.keys.Left):
		m.moveTo(m.leftOf(), false)
	case key.Matches(msg, m.keys.Right):
		m.moveTo(m.rightOf(), false)
	case key.Matches(msg, m.keys.Up):
		m.moveTo(m.verticalOf(-1), false)
	case key.Matches(msg, m.keys.Down):
		m.moveTo(m.verticalOf(1), false)
	case key.Matches(msg, m.keys.Home):
		m.moveTo(m.lineEdge(false), false)
	case key.Matches(msg, m.keys.End):
		m.moveTo(m.lineEdge(true), false)

	case key.Matches(msg, m.keys.SelectLeft):
		m.moveTo(m.cursor-1, true)
	case key.Matches(msg, m.keys.SelectRight):
		m.moveTo(m.cursor+1, true)
	case key.Matches(msg, m.keys.SelectUp):
		m.moveTo(m.verticalOf(-1), true)
	case key.Matches(msg, m.keys.SelectDown):
		m.moveTo(m.verticalOf(1), true)

	case key.Matches(msg, m.keys.Newline):
		m.replaceSelection("\n")
	case key.Matches(msg, m.keys.Tab):
		m.replaceSelection("\t")
	case key.Matches(msg, m.keys.Backspace):
		m.deleteBackward()
	case key.Matches(msg, m.keys.Delete):
		m.deleteForward()

	case msg.Type == tea.KeySpace:
		m.replaceSelection(" ")
	case msg.Type == tea.KeyRunes && !msg.Alt:
		m.replaceSelection(string(msg.Runes))
	}

	return nil
}

// leftOf collapses a selection to its start, or steps one character left.
func (m *Model) leftOf() int {
	if sel := m.Selection(); !sel.IsEmpty() {
		return sel.Start
	}
	return m.cursor - 1
}

func (m *Model) rightOf() int {
	if sel := m.Selection(); !sel.IsEmpty() {
		return sel.End
	}
	return m.cursor + 1
}

func (m *Model) verticalOf(delta int) int {
	doc := m.canvas.Document()
	line := doc.LineIndexForOffset(m.cursor) + delta
	if offset, ok := doc.OffsetOf(line, doc.Column(m.cursor)); ok {
		return offset
	}
	if delta < 0 {
		return 0
	}
	return m.length
}

func (m *Model) lineEdge(end bool) int {
	doc := m.canvas.Document()
	line := doc.LineIndexForOffset(m.cursor)
	col := 0
	if end {
		col = m.length
	}
	offset, _ := doc.OffsetOf(line, col)
	return offset
}

// moveTo places the caret and schedules the debounced cursor repaint.
func (m *Model) moveTo(offset int, extend bool) {
	offset = max(0, min(offset, m.length))

	switch {
	case extend && m.anchor < 0:
		m.anchor = m.cursor
	case !extend:
		m.anchor = -1
	}

	if offset == m.cursor {
		return
	}
	m.cursor = offset
	m.canvas.SetCursor(offset)
	m.session.CursorMoved()
}

func (m *Model) replaceSelection(text string) {
	sel := m.Selection()

	builder := edit.NewEditBuilder()
	builder.ReplaceRange(sel.Start, sel.End, text)
	updated, err := builder.Apply(m.text)
	if err != nil {
		m.setError(fmt.Errorf("edit: %w", err))
		return
	}

	m.anchor = -1
	m.setText(updated, sel.Start+utf8.RuneCountInString(text))
}

func (m *Model) deleteBackward() {
	if m.Selection().IsEmpty() {
		if m.cursor == 0 {
			return
		}
		m.anchor = m.cursor - 1
	}
	m.replaceSelection("")
}

func (m *Model) deleteForward() {
	if m.Selection().IsEmpty() {
		if m.cursor >= m.length {
			return
		}
		m.anchor = m.cursor + 1
	}
	m.replaceSelection("")
}

func (m *Model) toggle(name string, fn func(string, edit.Selection) edit.ToggleResult) {
	result := fn(m.text, m.Selection())
	if result.Text == m.text {
		return
	}

	m.setText(result.Text, result.Selection.End)
	m.anchor = -1
	if !result.Selection.IsEmpty() {
		m.anchor = result.Selection.Start
	}
	m.setStatus(fmt.Sprintf("%s %s", name, result.Action))
}

// setText replaces the buffer and repaints immediately.
func (m *Model) setText(text string, cursor int) {
	m.text = text
	m.length = utf8.RuneCountInString(text)
	m.cursor = max(0, min(cursor, m.length))

	m.canvas.SetText(text)
	m.canvas.SetCursor(m.cursor)
	m.session.TextChanged()

	m.dirty = m.snapshot == nil || !m.snapshot.SameContent(text)
}

func (m *Model) save() {
	opts := fsutil.SaveOptions{Backup: m.backup, Expected: m.snapshot}
	if m.forceSave {
		opts.Expected = nil
	}

	snapshot, err := fsutil.SaveDocument(m.ctx, m.path, m.text, opts)
	switch {
	case errors.Is(err, fsutil.ErrModified):
		m.forceSave = true
		m.setError(errors.New("file changed on disk; press ctrl+s again to overwrite"))
		return
	case err != nil:
		m.setError(err)
		return
	}

	m.forceSave = false
	m.snapshot = snapshot
	m.dirty = false
	m.logger.Debug("saved", logging.FieldPath, m.path, logging.FieldLength, m.length)
	m.setStatus("saved " + m.path)
}

func (m *Model) quit() tea.Cmd {
	if m.dirty && !m.quitArmed {
		m.quitArmed = true
		m.setError(errors.New("unsaved changes; press ctrl+q again to quit"))
		return nil
	}
	m.quitting = true
	m.session.Close()
	return tea.Quit
}

func (m *Model) setStatus(status string) {
	m.status = status
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
	m.logger.Debug("editor", logging.FieldError, err)
}
