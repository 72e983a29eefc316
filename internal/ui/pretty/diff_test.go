package pretty_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdlive/internal/ui/pretty"
	"github.com/yaklabco/mdlive/pkg/edit"
)

func TestFormatDiff(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	diff := edit.GenerateDiff("notes.md", "a\n-- b\nc\n", "a\n**-- b**\nc\n")
	require.True(t, diff.HasChanges())

	want := "diff --git a/notes.md b/notes.md\n" +
		"--- a/notes.md\n" +
		"+++ b/notes.md\n" +
		"@@ -1,3 +1,3 @@\n" +
		" a\n" +
		"--- b\n" +
		"+**-- b**\n" +
		" c\n" +
		"1 file changed, 1 insertion(+), 1 deletion(-)\n"

	assert.Equal(t, want, styles.FormatDiff(diff))
}

func TestFormatDiff_NoChanges(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Empty(t, styles.FormatDiff(nil))
	assert.Empty(t, styles.FormatDiff(edit.GenerateDiff("x.md", "same", "same")))
}

func TestRelativePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "docs/a.md", pretty.RelativePath("docs/a.md"))

	abs, err := filepath.Abs("a.md")
	require.NoError(t, err)
	assert.Equal(t, "a.md", pretty.RelativePath(abs))
}
