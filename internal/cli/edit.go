package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlive/internal/logging"
	"github.com/yaklabco/mdlive/internal/ui/editor"
	"github.com/yaklabco/mdlive/pkg/config"
	"github.com/yaklabco/mdlive/pkg/fsutil"
)

// logFilePermissions is the mode of a newly created --log file.
const logFilePermissions = 0o600

type editFlags struct {
	logFile   string
	debounce  time.Duration
	tabWidth  int
	noBackups bool
}

func newEditCommand() *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   "edit FILE",
		Short: "Open a Markdown file in the live-highlighting editor",
		Long: `Open FILE full screen with live highlighting. The file is created on the
first save if it does not exist.

Markers of headings, bold and italic text are hidden until the caret reaches
them. Ctrl+B and Ctrl+T toggle bold and italic on the selection, Ctrl+S saves
and Ctrl+Q quits. Press Ctrl+G for all key bindings.

The terminal belongs to the editor while it runs, so log records are only
kept when --log names a file.`,
		Example: `  mdlive edit README.md
  mdlive edit --log /tmp/mdlive.log --debug notes.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.logFile, "log", "", "append log records to this file")
	cmd.Flags().DurationVar(&flags.debounce, "debounce", 0, "cursor repaint delay (default from config)")
	cmd.Flags().IntVar(&flags.tabWidth, "tab-width", 0, "spaces inserted by the tab key (default from config)")
	cmd.Flags().BoolVar(&flags.noBackups, "no-backups", false, "do not keep a backup when saving")

	return cmd
}

func runEdit(cmd *cobra.Command, path string, flags *editFlags) (err error) {
	ctx := commandContext(cmd)

	cli := &config.Config{
		Editor: config.EditorConfig{
			CursorDebounce: flags.debounce,
			TabWidth:       flags.tabWidth,
		},
		NoBackups: flags.noBackups,
	}
	st, err := loadSettings(cmd, cli)
	if err != nil {
		return err
	}

	text, snapshot, err := fsutil.ReadDocument(ctx, path)
	switch {
	case errors.Is(err, fsutil.ErrNotFound):
		text, snapshot = "", nil
	case err != nil:
		return err
	}

	logger, closeLog, err := editorLogger(cmd, flags.logFile, st.cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeLog(); err == nil {
			err = closeErr
		}
	}()

	logger.Info("editing", logging.FieldPath, path, logging.FieldLength, len([]rune(text)))

	return editor.Run(logging.WithLogger(ctx, logger), editor.Options{
		Path:           path,
		Text:           text,
		Snapshot:       snapshot,
		Theme:          st.cfg.Theme.PaintTheme(),
		Foreground:     st.cfg.Theme.Foreground,
		Background:     st.cfg.Theme.Background,
		CursorDebounce: st.cfg.Editor.CursorDebounce,
		TabWidth:       st.cfg.Editor.TabWidth,
		Backup:         st.backup(),
		ColorEnabled:   st.colorEnabled(os.Stdout),
	})
}

// editorLogger returns a logger writing to path, or one that discards
// everything when path is empty.
func editorLogger(cmd *cobra.Command, path, level string) (*log.Logger, func() error, error) {
	if debug, _ := cmd.Flags().GetBool(flagDebug); debug {
		level = "debug"
	}

	if path == "" {
		return logging.NewWriter(io.Discard, level), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFilePermissions)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logging.NewWriter(f, level), f.Close, nil
}
