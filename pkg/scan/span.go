// Package scan recognizes inline markdown constructs on a single line.
//
// A Scanner runs an ordered list of independent matchers over the line text.
// Each matcher is a pure function from runes to spans, so matchers can be
// tested in isolation and the scanner never carries state across lines.
package scan

import "fmt"

// Kind identifies the markdown construct a Span represents.
type Kind uint8

const (
	// KindBold is a `**text**` run.
	KindBold Kind = iota + 1

	// KindItalic is a `*text*` or `_text_` run.
	KindItalic

	// KindHeading1 through KindHeading5 are `#`..`#####` line prefixes.
	KindHeading1
	KindHeading2
	KindHeading3
	KindHeading4
	KindHeading5
)

// MaxHeadingLevel is the deepest heading level recognized.
const MaxHeadingLevel = 5

// HeadingKind returns the Kind for a heading level in [1, MaxHeadingLevel].
func HeadingKind(level int) (Kind, bool) {
	if level < 1 || level > MaxHeadingLevel {
		return 0, false
	}
	return KindHeading1 + Kind(level-1), true
}

// IsHeading reports whether the kind is one of the heading levels.
func (k Kind) IsHeading() bool {
	return k >= KindHeading1 && k <= KindHeading5
}

// HeadingLevel returns the heading level, or 0 for non-heading kinds.
func (k Kind) HeadingLevel() int {
	if !k.IsHeading() {
		return 0
	}
	return int(k-KindHeading1) + 1
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch {
	case k == KindBold:
		return "bold"
	case k == KindItalic:
		return "italic"
	case k.IsHeading():
		return fmt.Sprintf("heading%d", k.HeadingLevel())
	default:
		return "unknown"
	}
}

// Span is one recognized construct on a line.
// All offsets are line-relative character offsets; ranges are half-open.
type Span struct {
	Kind Kind

	// Start and End cover the whole marked region, delimiters included.
	Start int
	End   int

	// ContentStart and ContentEnd cover the inner region painted with the style.
	ContentStart int
	ContentEnd   int

	// MarkerLength is the width of the opening marker: `#`×N plus the space
	// for headings, 2 for bold, 1 for italic.
	MarkerLength int

	// Delim is the delimiter character ('#', '*' or '_').
	Delim rune
}

// Len returns the length of the whole span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Overlaps reports whether two spans share at least one character.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// ClosingMarker returns the half-open range of the closing delimiter.
// Headings have no closing marker and return an empty range at End.
func (s Span) ClosingMarker() (int, int) {
	return s.ContentEnd, s.End
}

// OpeningMarker returns the half-open range of the opening delimiter.
func (s Span) OpeningMarker() (int, int) {
	return s.Start, s.ContentStart
}

// String returns a compact debug representation.
func (s Span) String() string {
	return fmt.Sprintf("%s[%d:%d content %d:%d]", s.Kind, s.Start, s.End, s.ContentStart, s.ContentEnd)
}
