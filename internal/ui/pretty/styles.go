// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Status styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style

	// Inspect components
	FilePath  lipgloss.Style
	Location  lipgloss.Style
	Label     lipgloss.Style
	Marker    lipgloss.Style
	LineText  lipgloss.Style
	CursorBar lipgloss.Style

	// Diff styles
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// Editor chrome
	StatusBar lipgloss.Style
	KeyHelp   lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles(lipgloss.DefaultRenderer())
}

// NewStylesFor creates styles bound to a renderer, as returned by NewRenderer.
func NewStylesFor(renderer *lipgloss.Renderer, colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles(renderer)
}

func newColorStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Error:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Success: r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),

		FilePath:  r.NewStyle().Bold(true),
		Location:  r.NewStyle().Foreground(lipgloss.Color("8")),
		Label:     r.NewStyle().Foreground(lipgloss.Color("14")),
		Marker:    r.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true),
		LineText:  r.NewStyle().Foreground(lipgloss.Color("7")),
		CursorBar: r.NewStyle().Foreground(lipgloss.Color("11")),

		DiffHeader:  r.NewStyle().Bold(true),
		DiffHunk:    r.NewStyle().Foreground(lipgloss.Color("14")),
		DiffAdd:     r.NewStyle().Foreground(lipgloss.Color("10")),
		DiffRemove:  r.NewStyle().Foreground(lipgloss.Color("9")),
		DiffContext: r.NewStyle().Foreground(lipgloss.Color("8")),

		StatusBar: r.NewStyle().Reverse(true),
		KeyHelp:   r.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		Dim:  r.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: r.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:       plain,
		Warning:     plain,
		Success:     plain,
		FilePath:    plain,
		Location:    plain,
		Label:       plain,
		Marker:      plain,
		LineText:    plain,
		CursorBar:   plain,
		DiffHeader:  plain,
		DiffHunk:    plain,
		DiffAdd:     plain,
		DiffRemove:  plain,
		DiffContext: plain,
		StatusBar:   plain,
		KeyHelp:     plain,
		Dim:         plain,
		Bold:        plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return IsTerminal(writer)
	}
}

// IsTerminal reports whether writer is an interactive terminal.
func IsTerminal(writer io.Writer) bool {
	f, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewRenderer returns a renderer for w. When color is forced on for a
// writer that is not a terminal, the renderer still emits 256-color ANSI.
func NewRenderer(w io.Writer, colorEnabled bool) *lipgloss.Renderer {
	renderer := lipgloss.NewRenderer(w)
	if colorEnabled && renderer.ColorProfile() == termenv.Ascii {
		renderer.SetColorProfile(termenv.ANSI256)
	}
	return renderer
}
