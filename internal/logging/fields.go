// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"
	FieldWarning    = "warning"

	// Document fields.
	FieldLines  = "lines"
	FieldLength = "length"
	FieldOffset = "offset"
	FieldSpans  = "spans"

	// Highlighting fields.
	FieldChange     = "change"
	FieldRescanned  = "rescanned"
	FieldCursorLine = "cursor_line"
	FieldDebounce   = "debounce"

	// Edit fields.
	FieldToggle    = "toggle"
	FieldSelection = "selection"
	FieldDryRun    = "dry_run"
	FieldBackup    = "backup"

	// Export and watch fields.
	FieldFlavor = "flavor"
	FieldFormat = "format"
	FieldEvent  = "event"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
