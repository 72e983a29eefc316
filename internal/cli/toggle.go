package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlive/internal/logging"
	"github.com/yaklabco/mdlive/internal/ui/pretty"
	"github.com/yaklabco/mdlive/pkg/config"
	"github.com/yaklabco/mdlive/pkg/edit"
	"github.com/yaklabco/mdlive/pkg/fsutil"
)

// Emphasis kinds accepted by toggle.
const (
	toggleBold   = "bold"
	toggleItalic = "italic"
)

type toggleFlags struct {
	start     int
	end       int
	write     bool
	dryRun    bool
	noBackups bool
}

func newToggleCommand() *cobra.Command {
	flags := &toggleFlags{}

	cmd := &cobra.Command{
		Use:   "toggle bold|italic FILE",
		Short: "Wrap or unwrap a range in bold or italic markers",
		Long: `Toggle bold (**) or italic (*) emphasis on a character range of a file.

A range that is already emphasized, or sits directly between matching
markers, is unwrapped. Anything else is wrapped. An empty range inserts an
empty marker pair at --start.

By default the updated document is printed. Use --write to save it in place
or --dry-run to see the change as a diff.`,
		Example: `  mdlive toggle bold notes.md --start 10 --end 15
  mdlive toggle italic notes.md --start 4 --dry-run
  mdlive toggle bold notes.md --start 0 --end 5 --write --no-backups`,
		ValidArgs: []string{toggleBold, toggleItalic},
		Args:      cobra.MatchAll(cobra.ExactArgs(2), validToggleKind),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(cmd, args[0], args[1], flags)
		},
	}

	cmd.Flags().IntVarP(&flags.start, "start", "s", 0, "first character offset of the range")
	cmd.Flags().IntVarP(&flags.end, "end", "e", -1, "offset just past the range (default: --start)")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "save the result to FILE")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "print a diff instead of the document")
	cmd.Flags().BoolVar(&flags.noBackups, "no-backups", false, "do not keep a backup when writing")
	cmd.MarkFlagsMutuallyExclusive("write", "dry-run")

	return cmd
}

func validToggleKind(_ *cobra.Command, args []string) error {
	switch args[0] {
	case toggleBold, toggleItalic:
		return nil
	default:
		return fmt.Errorf("unknown emphasis %q: must be %s or %s", args[0], toggleBold, toggleItalic)
	}
}

func runToggle(cmd *cobra.Command, kind, path string, flags *toggleFlags) error {
	ctx := commandContext(cmd)

	st, err := loadSettings(cmd, &config.Config{NoBackups: flags.noBackups})
	if err != nil {
		return err
	}

	text, snapshot, err := fsutil.ReadDocument(ctx, path)
	if err != nil {
		return err
	}

	sel := edit.Selection{Start: flags.start, End: flags.end}
	if flags.end < 0 {
		sel.End = flags.start
	}

	var result edit.ToggleResult
	if kind == toggleBold {
		result = edit.ToggleBold(text, sel)
	} else {
		result = edit.ToggleItalic(text, sel)
	}

	st.logger.Debug("toggled",
		logging.FieldToggle, kind,
		logging.FieldSelection, result.Selection.String(),
		"action", result.Action.String(),
		logging.FieldDryRun, flags.dryRun,
	)

	out := cmd.OutOrStdout()

	switch {
	case flags.dryRun:
		diff := edit.GenerateDiff(path, text, result.Text)
		if !diff.HasChanges() {
			return nil
		}
		colorEnabled := st.colorEnabled(out)
		styles := pretty.NewStylesFor(pretty.NewRenderer(out, colorEnabled), colorEnabled)
		if _, err := fmt.Fprint(out, styles.FormatDiff(diff)); err != nil {
			return fmt.Errorf("write diff: %w", err)
		}
		return nil

	case flags.write:
		backup := st.backup()
		if _, err := fsutil.SaveDocument(ctx, path, result.Text, fsutil.SaveOptions{
			Backup:   backup,
			Expected: snapshot,
		}); err != nil {
			return err
		}
		fields := []any{
			logging.FieldPath, path,
			logging.FieldToggle, kind,
			logging.FieldSelection, result.Selection.String(),
		}
		if backup.Enabled {
			fields = append(fields, logging.FieldBackup, fsutil.BackupPath(path, backup.Mode))
		}
		st.logger.Info(kind+" "+result.Action.String(), fields...)
		return nil

	default:
		if _, err := fmt.Fprint(out, result.Text); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
}
