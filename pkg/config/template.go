package config

import (
	"bytes"
	"fmt"
	"strings"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Commented adds a description above every section.
	Commented bool
}

// sectionDocs describes each top-level section of the config file.
//
//nolint:gochecknoglobals // Read-only lookup table.
var sectionDocs = map[string]string{
	"theme":     "Colors and sizes of painted styles. Colors are ANSI numbers or hex values.",
	"editor":    "Interactive editor behavior. cursor_debounce is the quiet period before markers under the cursor are revealed.",
	"render":    "Terminal rendering. width 0 follows the terminal; color is auto, always or never.",
	"export":    "HTML export. flavor is commonmark or gfm.",
	"backups":   "Backups written next to a file before it is overwritten. mode is sidecar or none.",
	"log_level": "One of debug, info, warn, error.",
}

// GenerateTemplate renders the default configuration as a YAML file.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	body, err := NewConfig().ToYAML()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("# mdlive configuration\n")
	buf.WriteString("# Place this file at .mdlive.yml in a project or at ~/.config/mdlive/config.yaml.\n\n")

	if !opts.Commented {
		buf.Write(body)
		return buf.Bytes(), nil
	}

	for _, line := range strings.SplitAfter(string(body), "\n") {
		if line == "" {
			continue
		}
		if key, ok := topLevelKey(line); ok {
			if doc, found := sectionDocs[key]; found {
				if buf.Len() > 0 && !bytes.HasSuffix(buf.Bytes(), []byte("\n\n")) {
					buf.WriteByte('\n')
				}
				fmt.Fprintf(&buf, "# %s\n", doc)
			}
		}
		buf.WriteString(line)
	}

	return buf.Bytes(), nil
}

// topLevelKey returns the key of an unindented "key:" line.
func topLevelKey(line string) (string, bool) {
	if line == "" || line[0] == ' ' || line[0] == '-' || line[0] == '#' {
		return "", false
	}
	key, _, found := strings.Cut(line, ":")
	return key, found
}
