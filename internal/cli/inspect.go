package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlive/pkg/document"
	"github.com/yaklabco/mdlive/pkg/fsutil"
	"github.com/yaklabco/mdlive/pkg/paint"
	"github.com/yaklabco/mdlive/pkg/report"
)

type inspectFlags struct {
	cursor    int
	format    string
	compact   bool
	spansOnly bool
}

func newInspectCommand() *cobra.Command {
	flags := &inspectFlags{}

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Show the spans and paint instructions of each line",
		Long: `Scan every line of a Markdown file and print the spans found and the
paint instructions produced for a cursor position. Useful for checking how a
document will be highlighted, or for feeding other tools with --format json.`,
		Example: `  mdlive inspect README.md
  mdlive inspect --cursor 12 README.md
  mdlive inspect --format json --compact README.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], flags)
		},
	}

	cmd.Flags().IntVar(&flags.cursor, "cursor", -1, "caret offset in characters (-1 for none)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", string(report.FormatText), "output format: text, json")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minify JSON output")
	cmd.Flags().BoolVar(&flags.spansOnly, "spans-only", false, "omit lines without spans from text output")

	return cmd
}

func runInspect(cmd *cobra.Command, path string, flags *inspectFlags) error {
	ctx := commandContext(cmd)

	format, err := report.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	st, err := loadSettings(cmd, nil)
	if err != nil {
		return err
	}

	text, _, err := fsutil.ReadDocument(ctx, path)
	if err != nil {
		return err
	}

	engine := paint.NewEngine(st.cfg.Theme.PaintTheme())
	insp := report.Inspect(path, document.New(text), flags.cursor, nil, engine)

	reporter, err := report.New(report.Options{
		Writer:    cmd.OutOrStdout(),
		Format:    format,
		Color:     string(st.cfg.Render.Color),
		Compact:   flags.compact,
		ShowPlain: !flags.spansOnly,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	return reporter.Report(ctx, insp)
}
