// Package config defines core configuration types for mdlive.
// These types are pure data structures; discovery and merging live in
// internal/configloader.
package config

import "time"

// ColorMode controls whether terminal output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Flavor specifies the Markdown flavor used for HTML export.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// Backup modes.
const (
	BackupModeSidecar = "sidecar"
	BackupModeNone    = "none"
)

// Limits and defaults for editor settings.
const (
	DefaultCursorDebounce = 30 * time.Millisecond
	MaxCursorDebounce     = 5 * time.Second
	DefaultTabWidth       = 4
	DefaultTextSize       = 12
)

// ThemeConfig configures how painted styles look.
type ThemeConfig struct {
	// TextSize is the base text size in points, used by HTML export.
	TextSize int `yaml:"text_size"`

	// HeadingSizeDelta is how much larger than body text an H1 is.
	HeadingSizeDelta int `yaml:"heading_size_delta"`

	// HeadingSizeStep is how much smaller each deeper heading level is.
	HeadingSizeStep int `yaml:"heading_size_step"`

	// Foreground and Background are lipgloss colors; empty means the
	// terminal default.
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`

	BoldColor   string `yaml:"bold_color"`
	ItalicColor string `yaml:"italic_color"`

	// HeadingColors holds one color per heading level, H1 first.
	HeadingColors []string `yaml:"heading_colors"`
}

// EditorConfig configures the interactive editor.
type EditorConfig struct {
	// CursorDebounce is the quiet period before a cursor-move repaint.
	CursorDebounce time.Duration `yaml:"cursor_debounce"`

	// TabWidth is the number of spaces a tab key inserts.
	TabWidth int `yaml:"tab_width"`
}

// RenderConfig configures terminal rendering.
type RenderConfig struct {
	// Width wraps rendered lines; 0 means the terminal width.
	Width int `yaml:"width"`

	// Color controls colored output.
	Color ColorMode `yaml:"color"`
}

// ExportConfig configures HTML export.
type ExportConfig struct {
	Flavor Flavor `yaml:"flavor"`

	// Standalone wraps the output in a complete HTML page.
	Standalone bool `yaml:"standalone"`
}

// BackupsConfig controls backup behavior when writing files.
type BackupsConfig struct {
	Enabled *bool  `yaml:"enabled"`
	Mode    string `yaml:"mode"` // "sidecar" or "none"
}

// Config is the root configuration structure for mdlive.
type Config struct {
	Theme   ThemeConfig   `yaml:"theme"`
	Editor  EditorConfig  `yaml:"editor"`
	Render  RenderConfig  `yaml:"render"`
	Export  ExportConfig  `yaml:"export"`
	Backups BackupsConfig `yaml:"backups"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// CLI-level options (not persisted to config files).

	// NoBackups disables backup creation when writing.
	NoBackups bool `yaml:"-"`
}

// DefaultHeadingColors are the ANSI colors used for H1 through H5.
func DefaultHeadingColors() []string {
	return []string{"12", "14", "13", "11", "10"}
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	enabled := true
	return &Config{
		Theme: ThemeConfig{
			TextSize:         DefaultTextSize,
			HeadingSizeDelta: 4,
			HeadingSizeStep:  1,
			HeadingColors:    DefaultHeadingColors(),
		},
		Editor: EditorConfig{
			CursorDebounce: DefaultCursorDebounce,
			TabWidth:       DefaultTabWidth,
		},
		Render: RenderConfig{
			Width: 0,
			Color: ColorAuto,
		},
		Export: ExportConfig{
			Flavor: FlavorCommonMark,
		},
		Backups: BackupsConfig{
			Enabled: &enabled,
			Mode:    BackupModeSidecar,
		},
		LogLevel: "info",
	}
}

// BackupsEnabled reports whether writes should leave a backup behind.
func (c *Config) BackupsEnabled() bool {
	if c.NoBackups || c.Backups.Mode == BackupModeNone {
		return false
	}
	return c.Backups.Enabled == nil || *c.Backups.Enabled
}
