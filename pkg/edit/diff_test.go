package edit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdlive/pkg/edit"
)

func TestGenerateDiff_NoChanges(t *testing.T) {
	t.Parallel()

	assert.Nil(t, edit.GenerateDiff("a.md", "same\n", "same\n"))
	assert.False(t, edit.GenerateDiff("a.md", "", "").HasChanges())
	assert.Empty(t, edit.GenerateDiff("a.md", "x", "x").String())
}

func TestGenerateDiff_SingleLine(t *testing.T) {
	t.Parallel()

	original := "# Title\n\nsome word here\n\nend\n"
	modified := "# Title\n\nsome **word** here\n\nend\n"

	diff := edit.GenerateDiff("doc.md", original, modified)
	require.True(t, diff.HasChanges())
	assert.Equal(t, 1, diff.Additions)
	assert.Equal(t, 1, diff.Deletions)
	require.Len(t, diff.Hunks, 1)

	want := "--- a/doc.md\n" +
		"+++ b/doc.md\n" +
		"@@ -1,5 +1,5 @@\n" +
		" # Title\n" +
		" \n" +
		"-some word here\n" +
		"+some **word** here\n" +
		" \n" +
		" end\n"
	assert.Equal(t, want, diff.String())
}

func TestGenerateDiff_SeparateHunks(t *testing.T) {
	t.Parallel()

	lines := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	original := ""
	for _, l := range lines {
		original += l + "\n"
	}
	modified := "A\n" + original[2:len(original)-2] + "L\n"

	diff := edit.GenerateDiff("/abs/x.md", original, modified)
	require.True(t, diff.HasChanges())
	assert.Len(t, diff.Hunks, 2)
	assert.Equal(t, 2, diff.Additions)
	assert.Equal(t, 2, diff.Deletions)
	assert.Contains(t, diff.String(), "--- a/abs/x.md\n")
	assert.Equal(t, 1, diff.Hunks[0].OriginalStart)
	assert.Equal(t, 9, diff.Hunks[1].OriginalStart)
}
