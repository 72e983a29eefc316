package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlive/internal/configloader"
	"github.com/yaklabco/mdlive/internal/logging"
	"github.com/yaklabco/mdlive/internal/ui/canvas"
	"github.com/yaklabco/mdlive/internal/ui/pretty"
	"github.com/yaklabco/mdlive/pkg/config"
	"github.com/yaklabco/mdlive/pkg/fsutil"
)

// ErrConfig marks failures to load or validate configuration.
var ErrConfig = errors.New("invalid configuration")

// settings is the resolved configuration for one command run.
type settings struct {
	cfg    *config.Config
	result *configloader.LoadResult
	logger *log.Logger
}

// loadSettings merges configuration files, environment and the flags
// recorded in cli. The root --color flag overrides render.color when it was
// given explicitly.
func loadSettings(cmd *cobra.Command, cli *config.Config) (*settings, error) {
	ctx := commandContext(cmd)

	if cli == nil {
		cli = &config.Config{}
	}
	if flag := cmd.Flags().Lookup(flagColor); flag != nil && flag.Changed {
		cli.Render.Color = config.ColorMode(flag.Value.String())
	}

	configPath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cli,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	debug, _ := cmd.Flags().GetBool(flagDebug)
	if !debug {
		logging.SetLevel(result.Config.LogLevel)
	}

	logger := logging.Default()
	for _, path := range result.LoadedFrom {
		logger.Debug("loaded config", logging.FieldConfig, path)
	}
	for _, warning := range result.Warnings {
		logger.Warn("config", logging.FieldWarning, warning)
	}

	return &settings{cfg: result.Config, result: result, logger: logger}, nil
}

// colorEnabled resolves render.color against w.
func (s *settings) colorEnabled(w io.Writer) bool {
	return pretty.IsColorEnabled(string(s.cfg.Render.Color), w)
}

// renderWidth is the wrap width for output to w. Zero disables wrapping.
func (s *settings) renderWidth(w io.Writer) int {
	if s.cfg.Render.Width > 0 {
		return s.cfg.Render.Width
	}
	if pretty.IsTerminal(w) {
		return canvas.TerminalWidth(w)
	}
	return 0
}

// newCanvas builds a canvas styled for w.
func (s *settings) newCanvas(text string, w io.Writer) *canvas.Canvas {
	colorEnabled := s.colorEnabled(w)
	theme := s.cfg.Theme
	styles := pretty.NewPaintStyles(pretty.NewRenderer(w, colorEnabled), theme.PaintTheme(), colorEnabled).
		WithColors(theme.Foreground, theme.Background)

	return canvas.New(text,
		canvas.WithStyles(styles),
		canvas.WithWidth(s.renderWidth(w)),
		canvas.WithTabWidth(s.cfg.Editor.TabWidth),
	)
}

// backup returns the backup behavior for writes.
func (s *settings) backup() fsutil.BackupConfig {
	mode := fsutil.BackupMode(s.cfg.Backups.Mode)
	if mode == "" {
		mode = fsutil.BackupModeSidecar
	}
	return fsutil.BackupConfig{
		Enabled: s.cfg.BackupsEnabled(),
		Mode:    mode,
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
