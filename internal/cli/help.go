package cli

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlive/internal/ui/pretty"
)

// HelpStyles contains Lipgloss styles for command help formatting.
type HelpStyles struct {
	Command     lipgloss.Style
	Heading     lipgloss.Style
	Subcommand  lipgloss.Style
	Flag        lipgloss.Style
	FlagType    lipgloss.Style
	Description lipgloss.Style
	Example     lipgloss.Style
}

// NewHelpStyles creates help styles bound to renderer.
func NewHelpStyles(renderer *lipgloss.Renderer, colorEnabled bool) *HelpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &HelpStyles{
			Command:     plain,
			Heading:     plain,
			Subcommand:  plain,
			Flag:        plain,
			FlagType:    plain,
			Description: plain,
			Example:     plain,
		}
	}

	return &HelpStyles{
		Command:     renderer.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Heading:     renderer.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Subcommand:  renderer.NewStyle().Foreground(lipgloss.Color("10")),
		Flag:        renderer.NewStyle().Foreground(lipgloss.Color("12")),
		FlagType:    renderer.NewStyle().Foreground(lipgloss.Color("8")),
		Description: renderer.NewStyle(),
		Example:     renderer.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// HelpFormatter renders styled help for Cobra commands. The color mode is
// read from the --color flag each time help is shown.
type HelpFormatter struct {
	defaultMode string
}

// NewHelpFormatter creates a help formatter. colorMode applies unless
// --color was given explicitly.
func NewHelpFormatter(colorMode string) *HelpFormatter {
	return &HelpFormatter{defaultMode: colorMode}
}

// Styles resolves the help styles for cmd.
func (h *HelpFormatter) Styles(cmd *cobra.Command) *HelpStyles {
	mode := h.defaultMode
	if flag := cmd.Flags().Lookup(flagColor); flag != nil && flag.Changed {
		mode = flag.Value.String()
	}

	out := cmd.OutOrStdout()
	colorEnabled := pretty.IsColorEnabled(mode, out)
	return NewHelpStyles(pretty.NewRenderer(out, colorEnabled), colorEnabled)
}

const usageTemplate = `{{ heading "Usage:" }}
{{- if .Runnable}}
  {{ command .UseLine }}
{{- end}}
{{- if .HasAvailableSubCommands}}
  {{ command .CommandPath }} [command]
{{- end}}

{{- if gt (len .Aliases) 0}}

{{ heading "Aliases:" }}
  {{ join .Aliases ", " }}
{{- end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ example .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Commands:" }}
{{- range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ description .Short }}
{{- end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Run "{{ command (print .CommandPath " [command] --help") }}" for details on a command.
{{- end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{ trimTrailingWhitespaces . }}

{{end}}{{ template "usage" . }}`

func (h *HelpFormatter) funcs(styles *HelpStyles) template.FuncMap {
	return template.FuncMap{
		"heading":                 styles.Heading.Render,
		"command":                 styles.Command.Render,
		"subcommand":              styles.Subcommand.Render,
		"description":             styles.Description.Render,
		"example":                 styles.Example.Render,
		"flags":                   func(fs any) string { return formatFlags(styles, fs) },
		"join":                    strings.Join,
		"rpad":                    rpad,
		"trimTrailingWhitespaces": trimTrailingWhitespaces,
	}
}

func (h *HelpFormatter) execute(cmd *cobra.Command, withHelp bool) error {
	tmpl := template.New("usage").Funcs(h.funcs(h.Styles(cmd)))
	if _, err := tmpl.Parse(usageTemplate); err != nil {
		return fmt.Errorf("parse usage template: %w", err)
	}

	root := tmpl
	if withHelp {
		var err error
		root, err = tmpl.New("help").Parse(helpTemplate)
		if err != nil {
			return fmt.Errorf("parse help template: %w", err)
		}
	}

	if err := root.Execute(cmd.OutOrStdout(), cmd); err != nil {
		return fmt.Errorf("render help: %w", err)
	}
	return nil
}

// ApplyToCommand installs the styled help and usage functions on cmd. Cobra
// inherits them down the command tree.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return h.execute(c, false)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := h.execute(c, true); err != nil {
			c.PrintErrln(err)
		}
	})
}

// formatFlags styles the output of a pflag FlagSet's FlagUsages.
func formatFlags(styles *HelpStyles, fs any) string {
	set, ok := fs.(interface{ FlagUsages() string })
	if !ok {
		return ""
	}

	usages := strings.TrimSuffix(set.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = formatFlagLine(styles, line)
	}
	return strings.Join(lines, "\n")
}

// formatFlagLine styles one "  -f, --flag type   description" line. Lines
// that do not split cleanly are returned unchanged.
func formatFlagLine(styles *HelpStyles, line string) string {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]

	names, desc, ok := splitFlagLine(trimmed)
	if !ok {
		return line
	}

	tokens := strings.Fields(names)
	for i, token := range tokens {
		if !strings.HasPrefix(token, "-") {
			tokens[i] = styles.FlagType.Render(token)
			continue
		}
		name, comma := strings.CutSuffix(token, ",")
		tokens[i] = styles.Flag.Render(name)
		if comma {
			tokens[i] += ","
		}
	}

	return indent + strings.Join(tokens, " ") + "   " + styles.Description.Render(desc)
}

// splitFlagLine splits at the first run of two or more spaces.
func splitFlagLine(line string) (string, string, bool) {
	idx := strings.Index(line, "  ")
	if idx < 0 {
		return line, "", false
	}
	desc := strings.TrimLeft(line[idx:], " ")
	if desc == "" {
		return line, "", false
	}
	return line[:idx], desc, true
}

func rpad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
