package pretty

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/mdlive/pkg/paint"
)

// allStyles lists every style a paint instruction can carry.
var allStyles = []paint.Style{
	paint.BoldText,
	paint.ItalicText,
	paint.Heading1Text,
	paint.Heading2Text,
	paint.Heading3Text,
	paint.Heading4Text,
	paint.Heading5Text,
	paint.HiddenMarker,
}

// PaintStyles maps paint styles to terminal styles.
//
// Terminals cannot change font size, so a heading's positive SizeDelta is
// shown as underline on top of its other attributes.
type PaintStyles struct {
	styles map[paint.Style]lipgloss.Style
	plain  lipgloss.Style
	color  bool
}

// NewPaintStyles builds terminal styles from theme. With color disabled only
// the hidden attribute survives; everything else renders plain.
func NewPaintStyles(renderer *lipgloss.Renderer, theme *paint.Theme, colorEnabled bool) *PaintStyles {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	ps := &PaintStyles{
		styles: make(map[paint.Style]lipgloss.Style, len(allStyles)),
		plain:  renderer.NewStyle(),
		color:  colorEnabled,
	}

	for _, style := range allStyles {
		attrs := theme.Attributes(style)
		if !colorEnabled {
			ps.styles[style] = ps.plain
			continue
		}
		ps.styles[style] = fromAttributes(renderer, attrs)
	}

	return ps
}

func fromAttributes(renderer *lipgloss.Renderer, attrs paint.Attributes) lipgloss.Style {
	style := renderer.NewStyle().
		Bold(attrs.Bold).
		Italic(attrs.Italic)

	if attrs.SizeDelta > 0 {
		style = style.Underline(true)
	}
	if attrs.Foreground != "" {
		style = style.Foreground(lipgloss.Color(attrs.Foreground))
	}
	return style
}

// WithColors sets the default foreground and background of the document.
// Painted ranges keep their own colors and inherit the rest. Empty values
// leave the terminal defaults, and nothing changes with color disabled.
func (ps *PaintStyles) WithColors(foreground, background string) *PaintStyles {
	if !ps.color || (foreground == "" && background == "") {
		return ps
	}

	if foreground != "" {
		ps.plain = ps.plain.Foreground(lipgloss.Color(foreground))
	}
	if background != "" {
		ps.plain = ps.plain.Background(lipgloss.Color(background))
	}
	for style, s := range ps.styles {
		ps.styles[style] = s.Inherit(ps.plain)
	}
	return ps
}

// Style returns the terminal style for a paint style.
func (ps *PaintStyles) Style(style paint.Style) lipgloss.Style {
	if s, ok := ps.styles[style]; ok {
		return s
	}
	return ps.plain
}

// Render renders text with the terminal style for style.
func (ps *PaintStyles) Render(style paint.Style, text string) string {
	if text == "" {
		return ""
	}
	return ps.Style(style).Render(text)
}
