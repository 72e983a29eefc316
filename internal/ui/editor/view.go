package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// chromeRows is the number of rows below the text: status bar and help.
const chromeRows = 2

// textRows returns how many rows the text area has, or 0 when unknown.
func (m *Model) textRows() int {
	if m.height <= 0 {
		return 0
	}
	return max(m.height-chromeRows, 1)
}

// scroll keeps the caret line on screen, counting wrapped rows.
func (m *Model) scroll() {
	rows := m.textRows()
	if rows == 0 {
		m.top = 0
		return
	}

	caretLine := m.canvas.Document().LineIndexForOffset(m.cursor)
	if caretLine < m.top {
		m.top = caretLine
	}

	for m.top < caretLine {
		used := 0
		for _, rendered := range m.canvas.RenderLines(m.top, caretLine-m.top+1, nil) {
			used += strings.Count(rendered, "\n") + 1
		}
		if used <= rows {
			break
		}
		m.top++
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.body())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) body() string {
	rows := m.textRows()
	if rows == 0 {
		return strings.Join(m.canvas.RenderLines(0, m.canvas.Document().LineCount(), m.caret), "\n")
	}

	lines := strings.Split(strings.Join(m.canvas.RenderLines(m.top, rows, m.caret), "\n"), "\n")
	if len(lines) > rows {
		lines = lines[:rows]
	}
	for len(lines) < rows {
		lines = append(lines, m.styles.Dim.Render("~"))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) statusLine() string {
	doc := m.canvas.Document()

	name := m.path
	if name == "" {
		name = "[scratch]"
	}
	if m.dirty {
		name += " [+]"
	}

	position := fmt.Sprintf("Ln %d, Col %d", doc.LineIndexForOffset(m.cursor)+1, doc.Column(m.cursor)+1)
	if sel := m.Selection(); !sel.IsEmpty() {
		position += fmt.Sprintf(" (%d selected)", sel.Len())
	}

	left := m.styles.StatusBar.Render(fmt.Sprintf(" %s  %s ", name, position))

	message := m.status
	if m.statusErr {
		message = m.styles.Error.Render(message)
	} else if message != "" {
		message = m.styles.Success.Render(message)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", message)
}
