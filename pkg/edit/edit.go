// Package edit provides text edits over character offsets and the inline
// bold/italic toggle operations built on them.
package edit

import "fmt"

// TextEdit represents a single text replacement in a document.
type TextEdit struct {
	// StartOffset is the character index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the character index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// Delta returns how many characters the edit adds (negative when it removes).
func (e TextEdit) Delta() int {
	return len([]rune(e.NewText)) - (e.EndOffset - e.StartOffset)
}

func (e TextEdit) String() string {
	return fmt.Sprintf("[%d:%d]=%q", e.StartOffset, e.EndOffset, e.NewText)
}

// EditBuilder accumulates text edits for a document.
type EditBuilder struct {
	Edits []TextEdit
}

// NewEditBuilder creates a new EditBuilder.
func NewEditBuilder() *EditBuilder {
	return &EditBuilder{
		Edits: make([]TextEdit, 0),
	}
}

// ReplaceRange adds an edit that replaces characters [start, end) with newText.
func (b *EditBuilder) ReplaceRange(start, end int, newText string) {
	b.Edits = append(b.Edits, TextEdit{
		StartOffset: start,
		EndOffset:   end,
		NewText:     newText,
	})
}

// Insert adds an edit that inserts text at the given offset.
func (b *EditBuilder) Insert(offset int, text string) {
	b.ReplaceRange(offset, offset, text)
}

// Delete adds an edit that deletes characters [start, end).
func (b *EditBuilder) Delete(start, end int) {
	b.ReplaceRange(start, end, "")
}

// Apply validates the accumulated edits and applies them to text.
func (b *EditBuilder) Apply(text string) (string, error) {
	return ApplyString(text, b.Edits)
}
