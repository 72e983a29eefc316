package scan_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/yaklabco/mdlive/pkg/scan"
)

// checkSpans verifies the structural invariants every scan result must hold.
func checkSpans(t interface{ Errorf(string, ...any) }, line string, spans []scan.Span) {
	size := len([]rune(line))
	headings := 0

	for i, span := range spans {
		if span.Start < 0 || span.End > size || span.Start >= span.End {
			t.Errorf("span %d %v out of range for line of length %d", i, span, size)
		}
		if span.ContentStart < span.Start || span.ContentEnd > span.End || span.ContentStart >= span.ContentEnd {
			t.Errorf("span %d %v has invalid content range", i, span)
		}
		if span.Kind.IsHeading() {
			headings++
			continue
		}
		for j := i + 1; j < len(spans); j++ {
			if !spans[j].Kind.IsHeading() && span.Overlaps(spans[j]) {
				t.Errorf("inline spans %v and %v overlap", span, spans[j])
			}
		}
	}

	if headings > 1 {
		t.Errorf("line %q has %d heading spans", line, headings)
	}
}

func FuzzScan(f *testing.F) {
	seeds := []string{
		"",
		"# Title",
		"##### x",
		"###### too deep",
		"**bold**",
		"*a* and _b_",
		"*_x_*",
		"***",
		"**unterminated",
		"_",
		"# **Big** _news_ *end*",
		"héllo *wörld*",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, line string) {
		// Scan should never panic.
		spans := scan.Scan(line)
		checkSpans(t, line, spans)
	})
}

func TestScan_PropertyInvariants(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		line := rapid.StringMatching(`[#*_ a-c]{0,24}`).Draw(t, "line")
		checkSpans(t, line, scan.Scan(line))
	})
}

func TestScan_PropertyNoMarkersNoSpans(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		line := rapid.StringMatching(`[a-zA-Z0-9 .,!?]{0,40}`).Draw(t, "line")
		if spans := scan.Scan(line); len(spans) != 0 {
			t.Fatalf("expected no spans for %q, got %v", line, spans)
		}
	})
}
