package edit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/yaklabco/mdlive/pkg/edit"
)

func sel(start, end int) edit.Selection {
	return edit.Selection{Start: start, End: end}
}

func TestToggleBold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		sel        edit.Selection
		wantText   string
		wantSel    edit.Selection
		wantAction edit.Action
	}{
		{"wraps plain word", "word", sel(0, 4), "**word**", sel(2, 6), edit.Wrapped},
		{"unwraps markers outside selection", "**word**", sel(2, 6), "word", sel(0, 4), edit.Unwrapped},
		{"unwraps markers inside selection", "**word**", sel(0, 8), "word", sel(0, 4), edit.Unwrapped},
		{"wraps word in sentence", "say word now", sel(4, 8), "say **word** now", sel(6, 10), edit.Wrapped},
		{"unwraps word in sentence", "say **word** now", sel(6, 10), "say word now", sel(4, 8), edit.Unwrapped},
		{"empty selection inserts pair", "ab", sel(1, 1), "a****b", sel(3, 3), edit.Wrapped},
		{"empty pair is removed", "a****b", sel(3, 3), "ab", sel(1, 1), edit.Unwrapped},
		{"reversed selection", "word", sel(4, 0), "**word**", sel(2, 6), edit.Wrapped},
		{"selection clamped", "word", sel(-3, 40), "**word**", sel(2, 6), edit.Wrapped},
		{"italic selection gets bold", "*word*", sel(1, 5), "***word***", sel(3, 7), edit.Wrapped},
		{"multibyte", "héllo wörld", sel(6, 11), "héllo **wörld**", sel(8, 13), edit.Wrapped},
		{"misaligned markers insert", "**word**", sel(1, 6), "****word****", sel(3, 8), edit.Wrapped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := edit.ToggleBold(tt.text, tt.sel)
			assert.Equal(t, tt.wantText, got.Text)
			assert.Equal(t, tt.wantSel, got.Selection)
			assert.Equal(t, tt.wantAction, got.Action)
		})
	}
}

func TestToggleItalic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		sel        edit.Selection
		wantText   string
		wantSel    edit.Selection
		wantAction edit.Action
	}{
		{"wraps plain word", "word", sel(0, 4), "*word*", sel(1, 5), edit.Wrapped},
		{"unwraps star outside", "*word*", sel(1, 5), "word", sel(0, 4), edit.Unwrapped},
		{"unwraps star inside", "*word*", sel(0, 6), "word", sel(0, 4), edit.Unwrapped},
		{"unwraps underscore outside", "_word_", sel(1, 5), "word", sel(0, 4), edit.Unwrapped},
		{"unwraps underscore inside", "a _word_ b", sel(2, 8), "a word b", sel(2, 6), edit.Unwrapped},
		{"bold is not italic", "**bold**", sel(2, 6), "***bold***", sel(3, 7), edit.Wrapped},
		{"bold markers in selection are not italic", "**bold**", sel(0, 8), "***bold***", sel(1, 9), edit.Wrapped},
		{"empty selection inserts pair", "ab", sel(1, 1), "a**b", sel(2, 2), edit.Wrapped},
		{"empty pair is removed", "a**b", sel(2, 2), "ab", sel(1, 1), edit.Unwrapped},
		{"cursor inside bold opener is not a pair", "**x**", sel(1, 1), "****x**", sel(2, 2), edit.Wrapped},
		{"mixed delimiters insert", "*word_", sel(1, 5), "**word*_", sel(2, 6), edit.Wrapped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := edit.ToggleItalic(tt.text, tt.sel)
			assert.Equal(t, tt.wantText, got.Text)
			assert.Equal(t, tt.wantSel, got.Selection)
			assert.Equal(t, tt.wantAction, got.Action)
		})
	}
}

func TestToggle_SelectionCoversContent(t *testing.T) {
	t.Parallel()

	got := edit.ToggleBold("one two three", sel(4, 7))
	runes := []rune(got.Text)
	assert.Equal(t, "two", string(runes[got.Selection.Start:got.Selection.End]))
	require.Len(t, got.Edits, 2)
	assert.Equal(t, edit.TextEdit{StartOffset: 4, EndOffset: 4, NewText: "**"}, got.Edits[0])
	assert.Equal(t, edit.TextEdit{StartOffset: 7, EndOffset: 7, NewText: "**"}, got.Edits[1])
}

func TestToggle_RoundTrip(t *testing.T) {
	t.Parallel()

	toggles := map[string]func(string, edit.Selection) edit.ToggleResult{
		"bold":   edit.ToggleBold,
		"italic": edit.ToggleItalic,
	}

	for name, toggle := range toggles {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rapid.Check(t, func(t *rapid.T) {
				text := rapid.StringMatching(`[a-z ]{0,30}`).Draw(t, "text")
				n := len([]rune(text))
				start := rapid.IntRange(0, n).Draw(t, "start")
				end := rapid.IntRange(start, n).Draw(t, "end")
				original := edit.Selection{Start: start, End: end}

				once := toggle(text, original)
				if once.Action != edit.Wrapped {
					t.Fatalf("first toggle of %q %v: got %v", text, original, once.Action)
				}
				twice := toggle(once.Text, once.Selection)
				if twice.Text != text {
					t.Fatalf("round trip of %q %v: got %q", text, original, twice.Text)
				}
				if twice.Selection != original {
					t.Fatalf("round trip of %q: selection %v, want %v", text, twice.Selection, original)
				}
			})
		})
	}
}

func TestSelection_Normalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, sel(1, 3), sel(3, 1).Normalize(5))
	assert.Equal(t, sel(0, 5), sel(-1, 9).Normalize(5))
	assert.True(t, edit.Cursor(2).IsEmpty())
	assert.Equal(t, 2, sel(1, 3).Len())
	assert.Equal(t, "[1:3]", sel(1, 3).String())
	assert.Equal(t, "wrapped", edit.Wrapped.String())
	assert.Equal(t, "unwrapped", edit.Unwrapped.String())
}
