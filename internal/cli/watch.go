package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlive/internal/logging"
	"github.com/yaklabco/mdlive/internal/ui/pretty"
	"github.com/yaklabco/mdlive/internal/watch"
	"github.com/yaklabco/mdlive/pkg/fsutil"
	"github.com/yaklabco/mdlive/pkg/highlight"
)

type watchFlags struct {
	viewFlags
	debounce time.Duration
}

func newWatchCommand() *cobra.Command {
	flags := &watchFlags{}

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-render a Markdown file whenever it changes",
		Long: `Render a Markdown file like view, then keep rendering it each time the
file is saved. Edits made in another editor show up highlighted. Stop with
Ctrl+C.`,
		Example: `  mdlive watch README.md
  mdlive watch --debounce 500ms notes.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args[0], flags)
		},
	}

	addViewFlags(cmd, &flags.viewFlags)
	cmd.Flags().DurationVar(&flags.debounce, "debounce", watch.DefaultDebounce,
		"quiet period after a change before re-rendering")

	return cmd
}

func runWatch(cmd *cobra.Command, path string, flags *watchFlags) error {
	ctx := commandContext(cmd)

	st, err := loadSettings(cmd, flags.cliConfig())
	if err != nil {
		return err
	}

	text, snapshot, err := fsutil.ReadDocument(ctx, path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	surface := st.newCanvas(text, out)
	surface.SetCursor(flags.cursor)

	session := highlight.NewSession(surface, highlight.WithLogger(st.logger))
	defer session.Close()
	session.TextChanged()

	screen := newScreen(out)
	if err := screen.show(surface.Render()); err != nil {
		return err
	}

	watcher, err := watch.New(watch.Config{
		Path:     path,
		Debounce: flags.debounce,
		Logger:   st.logger,
	})
	if err != nil {
		return err
	}
	defer func() {
		if stopErr := watcher.Stop(); stopErr != nil {
			st.logger.Warn("stopping watcher", logging.FieldError, stopErr)
		}
	}()

	changes, err := watcher.Start(ctx)
	if err != nil {
		return err
	}
	st.logger.Debug("watching", logging.FieldPath, watcher.Path())

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}

			updated, next, err := fsutil.ReadDocument(ctx, path)
			if errors.Is(err, fsutil.ErrNotFound) {
				// Editors that save by rename briefly remove the file.
				continue
			}
			if err != nil {
				return err
			}
			if snapshot.SameContent(updated) {
				continue
			}
			snapshot = next

			surface.SetText(updated)
			session.TextChanged()
			st.logger.Debug("re-rendered", logging.FieldPath, path, logging.FieldLength, surface.Document().Len())

			if err := screen.show(surface.Render()); err != nil {
				return err
			}
		}
	}
}

// screen writes successive renderings, clearing a terminal between them.
type screen struct {
	w        io.Writer
	terminal *termenv.Output
}

func newScreen(w io.Writer) *screen {
	s := &screen{w: w}
	if pretty.IsTerminal(w) {
		s.terminal = termenv.NewOutput(w)
	}
	return s
}

func (s *screen) show(rendered string) error {
	if s.terminal != nil {
		s.terminal.ClearScreen()
	}
	if _, err := fmt.Fprintln(s.w, rendered); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
