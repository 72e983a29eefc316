package scan

import "sort"

// Stage groups matchers that run together.
type Stage struct {
	// Name identifies the stage in debug output.
	Name string

	// Matchers run in order over the same line.
	Matchers []Matcher

	// FirstMatch keeps only the result of the first matcher that finds anything.
	FirstMatch bool

	// Exclusive drops a span that overlaps a span already kept by this stage.
	// Candidates are considered by Start, ties broken by matcher order.
	Exclusive bool

	// Claim reserves the ranges of kept spans: exclusive spans of later
	// stages that overlap a claimed range are dropped.
	Claim bool
}

// Scanner produces the spans of a line by running its stages in order.
type Scanner struct {
	Stages []Stage
}

// NewScanner creates a Scanner with the default grammar:
//  1. headings, levels 5 down to 1, first match wins
//  2. bold, claiming its range
//  3. italic `*` and `_` families, leftmost wins between the two
func NewScanner() *Scanner {
	headings := make([]Matcher, 0, MaxHeadingLevel)
	for level := MaxHeadingLevel; level >= 1; level-- {
		headings = append(headings, NewHeadingMatcher(level))
	}

	return &Scanner{
		Stages: []Stage{
			{Name: "heading", Matchers: headings, FirstMatch: true},
			{Name: "bold", Matchers: []Matcher{NewBoldMatcher()}, Exclusive: true, Claim: true},
			{
				Name:      "italic",
				Matchers:  []Matcher{NewStarItalicMatcher(), NewUnderscoreItalicMatcher()},
				Exclusive: true,
			},
		},
	}
}

//nolint:gochecknoglobals // Stateless default scanner shared by Scan.
var defaultScanner = NewScanner()

// Scan returns the spans of a line using the default grammar.
func Scan(line string) []Span {
	return defaultScanner.Scan(line)
}

// candidate is a span tagged with the position of the matcher that found it.
type candidate struct {
	span  Span
	order int
}

// Scan returns the spans of a line: the heading span first (if any),
// then inline spans ordered by Start.
func (s *Scanner) Scan(line string) []Span {
	runes := []rune(line)
	if len(runes) == 0 {
		return nil
	}

	var (
		kept    []Span
		claimed []Span
	)

	for _, stage := range s.Stages {
		candidates := stage.collect(runes)
		if len(candidates) == 0 {
			continue
		}

		var stageKept []Span
		for _, cand := range candidates {
			if stage.Exclusive && (overlapsAny(cand.span, stageKept) || overlapsAny(cand.span, claimed)) {
				continue
			}
			stageKept = append(stageKept, cand.span)
		}

		kept = append(kept, stageKept...)
		if stage.Claim {
			claimed = append(claimed, stageKept...)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		hi, hj := kept[i].Kind.IsHeading(), kept[j].Kind.IsHeading()
		if hi != hj {
			return hi
		}
		return kept[i].Start < kept[j].Start
	})

	return kept
}

// collect runs the stage's matchers and returns candidates ordered by Start.
func (st Stage) collect(line []rune) []candidate {
	var candidates []candidate

	for order, matcher := range st.Matchers {
		spans := matcher.Match(line)
		if len(spans) == 0 {
			continue
		}
		for _, span := range spans {
			candidates = append(candidates, candidate{span: span, order: order})
		}
		if st.FirstMatch {
			break
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].span.Start != candidates[j].span.Start {
			return candidates[i].span.Start < candidates[j].span.Start
		}
		return candidates[i].order < candidates[j].order
	})

	return candidates
}

func overlapsAny(span Span, others []Span) bool {
	for _, other := range others {
		if span.Overlaps(other) {
			return true
		}
	}
	return false
}

// Heading returns the heading span of a span list, if present.
func Heading(spans []Span) (Span, bool) {
	for _, span := range spans {
		if span.Kind.IsHeading() {
			return span, true
		}
	}
	return Span{}, false
}
