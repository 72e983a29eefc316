package configloader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdlive/pkg/config"
	"github.com/yaklabco/mdlive/pkg/scan"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "editor.cursor_debounce").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

func (r *ValidationResult) addError(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) addWarning(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// knownLogLevels lists valid log level values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate checks a configuration for errors and warnings. Zero values are
// treated as unset, so partial configurations from a single file validate.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if debounce := cfg.Editor.CursorDebounce; debounce < 0 {
		result.addError("editor.cursor_debounce", debounce, "cursor debounce must not be negative")
	} else if debounce > config.MaxCursorDebounce {
		result.addError("editor.cursor_debounce", debounce,
			"cursor debounce %s exceeds the maximum of %s", debounce, config.MaxCursorDebounce)
	}

	if cfg.Editor.TabWidth < 0 {
		result.addError("editor.tab_width", cfg.Editor.TabWidth, "tab width must be >= 0")
	}

	if cfg.Render.Width < 0 {
		result.addError("render.width", cfg.Render.Width, "width must be >= 0 (0 means terminal width)")
	}

	if cfg.Render.Color != "" && !cfg.Render.Color.IsValid() {
		result.addError("render.color", cfg.Render.Color,
			"invalid color mode %q; must be one of: auto, always, never", cfg.Render.Color)
	}

	if cfg.Export.Flavor != "" && !IsValidFlavor(cfg.Export.Flavor) {
		result.addError("export.flavor", cfg.Export.Flavor,
			"invalid flavor %q; must be one of: commonmark, gfm", cfg.Export.Flavor)
	}

	if cfg.Backups.Mode != "" && !IsValidBackupMode(cfg.Backups.Mode) {
		result.addError("backups.mode", cfg.Backups.Mode,
			"invalid backup mode %q; must be one of: sidecar, none", cfg.Backups.Mode)
	}

	if cfg.LogLevel != "" && !knownLogLevels[strings.ToLower(cfg.LogLevel)] {
		result.addError("log_level", cfg.LogLevel,
			"invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel)
	}

	validateTheme(cfg.Theme, result)

	return result
}

// validateTheme checks sizes and warns about colors lipgloss cannot use.
func validateTheme(theme config.ThemeConfig, result *ValidationResult) {
	if theme.TextSize < 0 {
		result.addError("theme.text_size", theme.TextSize, "text size must be >= 0")
	}
	if theme.HeadingSizeStep < 0 {
		result.addError("theme.heading_size_step", theme.HeadingSizeStep, "heading size step must be >= 0")
	}

	if len(theme.HeadingColors) > scan.MaxHeadingLevel {
		result.addWarning("theme.heading_colors", theme.HeadingColors,
			"only the first %d heading colors are used", scan.MaxHeadingLevel)
	}

	colors := map[string]string{
		"theme.foreground":   theme.Foreground,
		"theme.background":   theme.Background,
		"theme.bold_color":   theme.BoldColor,
		"theme.italic_color": theme.ItalicColor,
	}
	for i, color := range theme.HeadingColors {
		colors[fmt.Sprintf("theme.heading_colors[%d]", i)] = color
	}

	for field, color := range colors {
		if color != "" && !isColor(color) {
			result.addWarning(field, color, "color %q is not an ANSI number or #rrggbb hex value", color)
		}
	}
}

// isColor reports whether value is an ANSI color number (0-255) or a
// #rgb/#rrggbb hex value, the forms lipgloss accepts.
func isColor(value string) bool {
	if hex, ok := strings.CutPrefix(value, "#"); ok {
		if len(hex) != 3 && len(hex) != 6 {
			return false
		}
		_, err := strconv.ParseUint(hex, 16, 32)
		return err == nil
	}
	n, err := strconv.Atoi(value)
	return err == nil && n >= 0 && n <= 255
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidFlavor returns true if the flavor is valid.
func IsValidFlavor(f config.Flavor) bool {
	return f == config.FlavorCommonMark || f == config.FlavorGFM
}

// IsValidBackupMode returns true if the backup mode is valid.
func IsValidBackupMode(mode string) bool {
	return mode == config.BackupModeSidecar || mode == config.BackupModeNone
}
