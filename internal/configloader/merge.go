package configloader

import "github.com/yaklabco/mdlive/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointers: override overwrites base if non-nil, so false can be set
//   - Slices: override replaces base entirely if override is non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	mergeTheme(&result.Theme, override.Theme)

	if override.Editor.CursorDebounce != 0 {
		result.Editor.CursorDebounce = override.Editor.CursorDebounce
	}
	if override.Editor.TabWidth != 0 {
		result.Editor.TabWidth = override.Editor.TabWidth
	}

	if override.Render.Width != 0 {
		result.Render.Width = override.Render.Width
	}
	if override.Render.Color != "" {
		result.Render.Color = override.Render.Color
	}

	if override.Export.Flavor != "" {
		result.Export.Flavor = override.Export.Flavor
	}
	// Standalone can only be switched on by a later layer.
	if override.Export.Standalone {
		result.Export.Standalone = true
	}

	if override.Backups.Enabled != nil {
		enabled := *override.Backups.Enabled
		result.Backups.Enabled = &enabled
	}
	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}

	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.NoBackups {
		result.NoBackups = true
	}

	return result
}

func mergeTheme(result *config.ThemeConfig, override config.ThemeConfig) {
	if override.TextSize != 0 {
		result.TextSize = override.TextSize
	}
	if override.HeadingSizeDelta != 0 {
		result.HeadingSizeDelta = override.HeadingSizeDelta
	}
	if override.HeadingSizeStep != 0 {
		result.HeadingSizeStep = override.HeadingSizeStep
	}

	colors := []struct {
		dst *string
		src string
	}{
		{&result.Foreground, override.Foreground},
		{&result.Background, override.Background},
		{&result.BoldColor, override.BoldColor},
		{&result.ItalicColor, override.ItalicColor},
	}
	for _, s := range colors {
		if s.src != "" {
			*s.dst = s.src
		}
	}

	if override.HeadingColors != nil {
		result.HeadingColors = make([]string, len(override.HeadingColors))
		copy(result.HeadingColors, override.HeadingColors)
	}
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
