package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/yaklabco/mdlive/pkg/config"
)

// envVarPrefix is the prefix for all mdlive environment variables.
const envVarPrefix = "MDLIVE_"

// envField describes one environment variable: how to apply it and what it does.
type envField struct {
	description string
	apply       func(cfg *config.Config, value string) error
}

// envFields maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envFields = map[string]envField{
	"LOG_LEVEL": {
		description: "Log level: debug, info, warn, or error",
		apply: func(cfg *config.Config, value string) error {
			cfg.LogLevel = value
			return nil
		},
	},
	"CURSOR_DEBOUNCE": {
		description: "Cursor repaint debounce, e.g. 30ms",
		apply: func(cfg *config.Config, value string) error {
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("expected a duration such as 30ms: %w", err)
			}
			cfg.Editor.CursorDebounce = d
			return nil
		},
	},
	"TAB_WIDTH": {
		description: "Spaces inserted by the tab key",
		apply: func(cfg *config.Config, value string) error {
			return setInt(&cfg.Editor.TabWidth, value)
		},
	},
	"WIDTH": {
		description: "Render width (0 = terminal width)",
		apply: func(cfg *config.Config, value string) error {
			return setInt(&cfg.Render.Width, value)
		},
	},
	"COLOR": {
		description: "Color output: auto, always, or never",
		apply: func(cfg *config.Config, value string) error {
			cfg.Render.Color = config.ColorMode(value)
			return nil
		},
	},
	"FLAVOR": {
		description: "Export flavor: commonmark or gfm",
		apply: func(cfg *config.Config, value string) error {
			cfg.Export.Flavor = config.Flavor(value)
			return nil
		},
	},
	"HEADING_COLORS": {
		description: "Comma-separated heading colors, H1 first",
		apply: func(cfg *config.Config, value string) error {
			cfg.Theme.HeadingColors = parseSliceValue(value)
			return nil
		},
	},
	"BACKUPS_ENABLED": {
		description: "Write backups before overwriting: true or false",
		apply: func(cfg *config.Config, value string) error {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("expected true/false/1/0: %w", err)
			}
			cfg.Backups.Enabled = &b
			return nil
		},
	},
	"BACKUPS_MODE": {
		description: "Backup mode: sidecar or none",
		apply: func(cfg *config.Config, value string) error {
			cfg.Backups.Mode = value
			return nil
		},
	},
	"NO_BACKUPS": {
		description: "Disable backups: true or false",
		apply: func(cfg *config.Config, value string) error {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("expected true/false/1/0: %w", err)
			}
			cfg.NoBackups = b
			return nil
		},
	},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with MDLIVE_ (e.g., MDLIVE_FLAVOR).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, suffix := range sortedEnvSuffixes() {
		envVar := envVarPrefix + suffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := envFields[suffix].apply(cfg, value); err != nil {
			return fmt.Errorf("invalid value for %s: %q: %w", envVar, value, err)
		}
	}

	return nil
}

func setInt(target *int, value string) error {
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("expected an integer: %w", err)
	}
	*target = i
	return nil
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func sortedEnvSuffixes() []string {
	suffixes := make([]string, 0, len(envFields))
	for suffix := range envFields {
		suffixes = append(suffixes, suffix)
	}
	sort.Strings(suffixes)
	return suffixes
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envFields))
	for suffix, field := range envFields {
		vars[envVarPrefix+suffix] = field.description
	}
	return vars
}
