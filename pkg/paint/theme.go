package paint

import "github.com/yaklabco/mdlive/pkg/scan"

// Attributes are the per-style paint attributes a surface applies.
type Attributes struct {
	Bold   bool `json:"bold,omitempty"`
	Italic bool `json:"italic,omitempty"`

	// Hidden collapses the range: the surface does not display it.
	Hidden bool `json:"hidden,omitempty"`

	// SizeDelta is added to the base text size. Surfaces that cannot change
	// size (terminals) may ignore it.
	SizeDelta int `json:"sizeDelta,omitempty"`

	// Foreground is a surface-specific color; empty means the default.
	Foreground string `json:"foreground,omitempty"`
}

// Theme maps styles to paint attributes.
type Theme struct {
	styles map[Style]Attributes
}

// Default heading sizing: H1 is four points larger than body text and each
// deeper level one point smaller.
const (
	defaultHeadingSizeDelta = 4
	defaultHeadingSizeStep  = 1
)

// DefaultTheme returns the built-in theme: bold weight, italic slant, bold
// headings scaled by level, hidden markers collapsed.
func DefaultTheme() *Theme {
	return NewTheme(defaultHeadingSizeDelta, defaultHeadingSizeStep)
}

// NewTheme creates a theme whose H1 is sizeDelta larger than body text and
// each deeper level step smaller.
func NewTheme(sizeDelta, step int) *Theme {
	theme := &Theme{styles: make(map[Style]Attributes)}

	theme.Set(BoldText, Attributes{Bold: true})
	theme.Set(ItalicText, Attributes{Italic: true})
	theme.Set(HiddenMarker, Attributes{Hidden: true})

	for level := 1; level <= scan.MaxHeadingLevel; level++ {
		style, _ := HeadingStyle(level)
		theme.Set(style, Attributes{
			Bold:      true,
			SizeDelta: sizeDelta - (level-1)*step,
		})
	}

	return theme
}

// Set replaces the attributes of a style.
func (t *Theme) Set(style Style, attrs Attributes) {
	if t.styles == nil {
		t.styles = make(map[Style]Attributes)
	}
	t.styles[style] = attrs
}

// SetForeground sets the foreground color of a style, keeping its other attributes.
func (t *Theme) SetForeground(style Style, color string) {
	attrs := t.Attributes(style)
	attrs.Foreground = color
	t.Set(style, attrs)
}

// Attributes returns the attributes of a style. Unknown styles are plain.
func (t *Theme) Attributes(style Style) Attributes {
	if t == nil {
		return Attributes{}
	}
	return t.styles[style]
}
