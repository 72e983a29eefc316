// Package cli provides the Cobra command structure for mdlive.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlive/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Names of the global flags.
const (
	flagDebug  = "debug"
	flagConfig = "config"
	flagColor  = "color"
)

// NewRootCommand creates the root mdlive command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdlive",
		Short: "Live-highlighting Markdown editor for the terminal",
		Long: `mdlive edits Markdown with live inline highlighting.

Headings, bold and italic text are styled as you type. Their markers stay
hidden until the cursor reaches them, so the document reads like rendered
text while remaining plain Markdown on disk. Besides the interactive editor,
mdlive can preview, inspect and export documents and toggle emphasis from
scripts.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, flagDebug, false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, flagConfig, "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, flagColor, "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newEditCommand())
	rootCmd.AddCommand(newViewCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newToggleCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
