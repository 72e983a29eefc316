package scan

import "strings"

// Matcher recognizes one family of constructs on a line.
// Implementations must be pure: the same runes always yield the same spans,
// and spans from a single Matcher never overlap.
type Matcher interface {
	// Name identifies the matcher in debug output.
	Name() string

	// Match returns the spans found in the line, ordered by Start.
	Match(line []rune) []Span
}

// HeadingMatcher matches "N `#` characters, one space, one or more characters"
// at the start of a line.
type HeadingMatcher struct {
	Level int
}

// NewHeadingMatcher creates a matcher for the given heading level.
func NewHeadingMatcher(level int) HeadingMatcher {
	return HeadingMatcher{Level: level}
}

// Name implements Matcher.
func (m HeadingMatcher) Name() string {
	return "heading" + strings.Repeat("#", m.Level)
}

// Match implements Matcher.
func (m HeadingMatcher) Match(line []rune) []Span {
	kind, ok := HeadingKind(m.Level)
	if !ok {
		return nil
	}

	markerLen := m.Level + 1
	// Marker plus at least one content character.
	if len(line) <= markerLen {
		return nil
	}
	for i := range m.Level {
		if line[i] != '#' {
			return nil
		}
	}
	if line[m.Level] != ' ' {
		return nil
	}

	return []Span{{
		Kind:         kind,
		Start:        0,
		End:          len(line),
		ContentStart: markerLen,
		ContentEnd:   len(line),
		MarkerLength: markerLen,
		Delim:        '#',
	}}
}

// DelimitedMatcher matches a run of content enclosed by Width copies of Delim
// on each side, for example `**bold**` or `_italic_`. The content is one or
// more characters other than Delim.
//
// With Guard set, the opening run must not be preceded by Delim and the
// closing run must not be followed by Delim, so single delimiters that belong
// to a longer run are not mistaken for a pair.
type DelimitedMatcher struct {
	Kind  Kind
	Delim rune
	Width int
	Guard bool
}

// NewBoldMatcher matches `**text**`.
func NewBoldMatcher() DelimitedMatcher {
	return DelimitedMatcher{Kind: KindBold, Delim: '*', Width: 2}
}

// NewStarItalicMatcher matches `*text*` that is not part of a `**` run.
func NewStarItalicMatcher() DelimitedMatcher {
	return DelimitedMatcher{Kind: KindItalic, Delim: '*', Width: 1, Guard: true}
}

// NewUnderscoreItalicMatcher matches `_text_` that is not part of a `__` run.
func NewUnderscoreItalicMatcher() DelimitedMatcher {
	return DelimitedMatcher{Kind: KindItalic, Delim: '_', Width: 1, Guard: true}
}

// Name implements Matcher.
func (m DelimitedMatcher) Name() string {
	return m.Kind.String() + "(" + strings.Repeat(string(m.Delim), m.Width) + ")"
}

// Match implements Matcher. Matches are leftmost and non-overlapping: after a
// match the search resumes past its closing delimiter, after a failed attempt
// it resumes at the next character.
func (m DelimitedMatcher) Match(line []rune) []Span {
	if m.Width <= 0 {
		return nil
	}

	var spans []Span
	size := len(line)

	for start := 0; start < size; {
		if !m.runAt(line, start) || (m.Guard && start > 0 && line[start-1] == m.Delim) {
			start++
			continue
		}

		contentStart := start + m.Width
		closeAt := contentStart
		for closeAt < size && line[closeAt] != m.Delim {
			closeAt++
		}

		end := closeAt + m.Width
		if closeAt == contentStart || !m.runAt(line, closeAt) ||
			(m.Guard && end < size && line[end] == m.Delim) {
			start++
			continue
		}

		spans = append(spans, Span{
			Kind:         m.Kind,
			Start:        start,
			End:          end,
			ContentStart: contentStart,
			ContentEnd:   closeAt,
			MarkerLength: m.Width,
			Delim:        m.Delim,
		})
		start = end
	}

	return spans
}

// runAt reports whether Width copies of Delim start at idx.
func (m DelimitedMatcher) runAt(line []rune, idx int) bool {
	if idx < 0 || idx+m.Width > len(line) {
		return false
	}
	for i := idx; i < idx+m.Width; i++ {
		if line[i] != m.Delim {
			return false
		}
	}
	return true
}
