package edit

// ApplyEdits applies a sorted, validated slice of edits to text.
// Edits must be prepared with PrepareEdits before calling.
func ApplyEdits(text []rune, edits []TextEdit) []rune {
	if len(edits) == 0 {
		return text
	}

	delta := 0
	for _, e := range edits {
		delta += e.Delta()
	}

	out := make([]rune, 0, max(len(text)+delta, 0))

	cursor := 0
	for _, e := range edits {
		out = append(out, text[cursor:e.StartOffset]...)
		out = append(out, []rune(e.NewText)...)
		cursor = e.EndOffset
	}
	out = append(out, text[cursor:]...)

	return out
}

// ApplyString applies edits to a string. It is ApplyEdits for callers that
// do not hold a rune slice.
func ApplyString(text string, edits []TextEdit) (string, error) {
	runes := []rune(text)

	prepared, err := PrepareEdits(edits, len(runes))
	if err != nil {
		return "", err
	}
	return string(ApplyEdits(runes, prepared)), nil
}
