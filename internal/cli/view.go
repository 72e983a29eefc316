package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlive/internal/ui/canvas"
	"github.com/yaklabco/mdlive/pkg/config"
	"github.com/yaklabco/mdlive/pkg/fsutil"
	"github.com/yaklabco/mdlive/pkg/highlight"
)

// viewFlags holds the flags shared by view and watch.
type viewFlags struct {
	cursor int
	width  int
}

func addViewFlags(cmd *cobra.Command, flags *viewFlags) {
	cmd.Flags().IntVar(&flags.cursor, "cursor", -1,
		"caret offset in characters; markers near it stay visible (-1 hides all)")
	cmd.Flags().IntVarP(&flags.width, "width", "w", 0, "wrap width in columns (default: terminal width)")
}

func (f *viewFlags) cliConfig() *config.Config {
	return &config.Config{Render: config.RenderConfig{Width: f.width}}
}

func newViewCommand() *cobra.Command {
	flags := &viewFlags{}

	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "Print a highlighted rendering of a Markdown file",
		Long: `Render a Markdown file the way the editor shows it.

Headings, bold and italic text are styled and their markers are hidden. Pass
--cursor to see the document as it looks with the caret at that offset.`,
		Example: `  mdlive view README.md
  mdlive view --cursor 0 README.md
  mdlive view --width 60 --color always notes.md | less -R`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args[0], flags)
		},
	}

	addViewFlags(cmd, flags)

	return cmd
}

func runView(cmd *cobra.Command, path string, flags *viewFlags) error {
	st, err := loadSettings(cmd, flags.cliConfig())
	if err != nil {
		return err
	}

	text, _, err := fsutil.ReadDocument(commandContext(cmd), path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	surface := st.newCanvas(text, out)
	surface.SetCursor(flags.cursor)
	paintAll(st, surface)

	if _, err := fmt.Fprintln(out, surface.Render()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// paintAll runs one full highlighting pass over surface.
func paintAll(st *settings, surface *canvas.Canvas) {
	session := highlight.NewSession(surface, highlight.WithLogger(st.logger))
	defer session.Close()
	session.TextChanged()
}
