// Package paint decides how each character range of a line is presented:
// painted with emphasis, hidden as a collapsed marker, or left plain.
package paint

import (
	"fmt"

	"github.com/yaklabco/mdlive/pkg/scan"
)

// Style identifies the visual treatment of a character range.
// PlainText is the implicit default and is never emitted.
type Style uint8

const (
	PlainText Style = iota
	BoldText
	ItalicText
	Heading1Text
	Heading2Text
	Heading3Text
	Heading4Text
	Heading5Text
	HiddenMarker
)

// HeadingStyle returns the style for a heading level in [1, scan.MaxHeadingLevel].
func HeadingStyle(level int) (Style, bool) {
	if level < 1 || level > scan.MaxHeadingLevel {
		return PlainText, false
	}
	return Heading1Text + Style(level-1), true
}

// IsHeading reports whether the style is one of the heading styles.
func (s Style) IsHeading() bool {
	return s >= Heading1Text && s <= Heading5Text
}

// HeadingLevel returns the heading level, or 0 for non-heading styles.
func (s Style) HeadingLevel() int {
	if !s.IsHeading() {
		return 0
	}
	return int(s-Heading1Text) + 1
}

// String returns the string representation of the style.
func (s Style) String() string {
	switch {
	case s == PlainText:
		return "plain"
	case s == BoldText:
		return "bold"
	case s == ItalicText:
		return "italic"
	case s == HiddenMarker:
		return "hidden"
	case s.IsHeading():
		return fmt.Sprintf("heading%d", s.HeadingLevel())
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// styleForKind maps a span kind to the style painted over its content.
func styleForKind(kind scan.Kind) Style {
	switch {
	case kind == scan.KindBold:
		return BoldText
	case kind == scan.KindItalic:
		return ItalicText
	case kind.IsHeading():
		style, _ := HeadingStyle(kind.HeadingLevel())
		return style
	default:
		return PlainText
	}
}
