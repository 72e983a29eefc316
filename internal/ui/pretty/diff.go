package pretty

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/mdlive/pkg/edit"
)

// FormatDiff renders a diff in git style with a trailing change summary.
// It returns "" for a nil or empty diff.
func (s *Styles) FormatDiff(diff *edit.Diff) string {
	if !diff.HasChanges() {
		return ""
	}

	var b strings.Builder
	displayPath := RelativePath(diff.Path)

	fmt.Fprintln(&b, s.DiffHeader.Render(fmt.Sprintf("diff --git a/%s b/%s", displayPath, displayPath)))
	fmt.Fprintln(&b, s.DiffRemove.Render("--- a/"+displayPath))
	fmt.Fprintln(&b, s.DiffAdd.Render("+++ b/"+displayPath))

	// The first two lines of the unified form are the file headers above.
	lines := strings.Split(strings.TrimSuffix(diff.String(), "\n"), "\n")
	for _, line := range lines[2:] {
		fmt.Fprintln(&b, s.diffLine(line))
	}

	fmt.Fprintln(&b, s.diffSummary(diff.Additions, diff.Deletions))
	return b.String()
}

func (s *Styles) diffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "@@"):
		return s.DiffHunk.Render(line)
	case strings.HasPrefix(line, "+"):
		return s.DiffAdd.Render(line)
	case strings.HasPrefix(line, "-"):
		return s.DiffRemove.Render(line)
	default:
		return s.DiffContext.Render(line)
	}
}

func (s *Styles) diffSummary(additions, deletions int) string {
	parts := []string{"1 file changed"}

	if additions > 0 {
		parts = append(parts, s.DiffAdd.Render(fmt.Sprintf("%d %s(+)", additions, plural(additions, "insertion"))))
	}
	if deletions > 0 {
		parts = append(parts, s.DiffRemove.Render(fmt.Sprintf("%d %s(-)", deletions, plural(deletions, "deletion"))))
	}

	return strings.Join(parts, ", ")
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// RelativePath converts an absolute path to one relative to the current
// directory. Paths that would need more than two "../" hops are shortened
// to their base name.
func RelativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Base(path)
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return filepath.Base(path)
	}
	if strings.Count(rel, "..") > 2 {
		return filepath.Base(path)
	}
	return rel
}
