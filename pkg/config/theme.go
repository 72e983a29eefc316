package config

import "github.com/yaklabco/mdlive/pkg/paint"

// PaintTheme builds the paint theme described by the configuration.
func (t ThemeConfig) PaintTheme() *paint.Theme {
	theme := paint.NewTheme(t.HeadingSizeDelta, t.HeadingSizeStep)

	if t.BoldColor != "" {
		theme.SetForeground(paint.BoldText, t.BoldColor)
	}
	if t.ItalicColor != "" {
		theme.SetForeground(paint.ItalicText, t.ItalicColor)
	}
	for i, color := range t.HeadingColors {
		style, ok := paint.HeadingStyle(i + 1)
		if !ok {
			break
		}
		if color != "" {
			theme.SetForeground(style, color)
		}
	}

	return theme
}
