package edit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdlive/pkg/edit"
)

func TestEditBuilder_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		build func(b *edit.EditBuilder)
		want  string
	}{
		{
			name:  "no edits",
			text:  "hello",
			build: func(*edit.EditBuilder) {},
			want:  "hello",
		},
		{
			name: "insert and delete",
			text: "hello world",
			build: func(b *edit.EditBuilder) {
				b.Delete(5, 11)
				b.Insert(0, "> ")
			},
			want: "> hello",
		},
		{
			name: "replace multibyte",
			text: "naïve café",
			build: func(b *edit.EditBuilder) {
				b.ReplaceRange(6, 10, "thé")
			},
			want: "naïve thé",
		},
		{
			name: "two inserts at one offset keep order",
			text: "ab",
			build: func(b *edit.EditBuilder) {
				b.Insert(1, "1")
				b.Insert(1, "2")
			},
			want: "a12b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			builder := edit.NewEditBuilder()
			tt.build(builder)

			got, err := builder.Apply(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrepareEdits_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		edits []edit.TextEdit
		check func(t *testing.T, err error)
	}{
		{
			name:  "negative start",
			edits: []edit.TextEdit{{StartOffset: -1, EndOffset: 0}},
			check: func(t *testing.T, err error) {
				t.Helper()
				var verr *edit.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Contains(t, verr.Error(), "negative")
			},
		},
		{
			name:  "end before start",
			edits: []edit.TextEdit{{StartOffset: 3, EndOffset: 1}},
			check: func(t *testing.T, err error) {
				t.Helper()
				var verr *edit.ValidationError
				require.True(t, errors.As(err, &verr))
			},
		},
		{
			name:  "past end",
			edits: []edit.TextEdit{{StartOffset: 0, EndOffset: 9}},
			check: func(t *testing.T, err error) {
				t.Helper()
				var verr *edit.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Contains(t, verr.Error(), "exceeds text length 5")
			},
		},
		{
			name: "overlap",
			edits: []edit.TextEdit{
				{StartOffset: 2, EndOffset: 4},
				{StartOffset: 0, EndOffset: 3},
			},
			check: func(t *testing.T, err error) {
				t.Helper()
				var cerr *edit.ConflictError
				require.True(t, errors.As(err, &cerr))
				assert.Equal(t, 0, cerr.Edit1.StartOffset)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := edit.PrepareEdits(tt.edits, 5)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestPrepareEdits_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	edits := []edit.TextEdit{
		{StartOffset: 3, EndOffset: 3, NewText: "b"},
		{StartOffset: 0, EndOffset: 0, NewText: "a"},
	}

	prepared, err := edit.PrepareEdits(edits, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, prepared[0].StartOffset)
	assert.Equal(t, 3, edits[0].StartOffset)
}

func TestTextEdit_Delta(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, edit.TextEdit{StartOffset: 1, EndOffset: 1, NewText: "**"}.Delta())
	assert.Equal(t, -2, edit.TextEdit{StartOffset: 1, EndOffset: 3}.Delta())
	assert.Equal(t, 0, edit.TextEdit{StartOffset: 0, EndOffset: 1, NewText: "é"}.Delta())
}
