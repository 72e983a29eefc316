package configloader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdlive/pkg/config"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(c *config.Config)
		wantField string
	}{
		{"negative debounce", func(c *config.Config) { c.Editor.CursorDebounce = -time.Millisecond }, "editor.cursor_debounce"},
		{"debounce too long", func(c *config.Config) { c.Editor.CursorDebounce = 6 * time.Second }, "editor.cursor_debounce"},
		{"unknown flavor", func(c *config.Config) { c.Export.Flavor = "mdx" }, "export.flavor"},
		{"unknown color mode", func(c *config.Config) { c.Render.Color = "sometimes" }, "render.color"},
		{"unknown backup mode", func(c *config.Config) { c.Backups.Mode = "xdg" }, "backups.mode"},
		{"negative width", func(c *config.Config) { c.Render.Width = -1 }, "render.width"},
		{"unknown log level", func(c *config.Config) { c.LogLevel = "loud" }, "log_level"},
		{"negative text size", func(c *config.Config) { c.Theme.TextSize = -2 }, "theme.text_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			tt.mutate(cfg)

			result := Validate(cfg)
			require.False(t, result.Valid())
			assert.Equal(t, tt.wantField, result.Errors[0].Field)
		})
	}
}

func TestValidate_DefaultsAndPartials(t *testing.T) {
	t.Parallel()

	assert.True(t, Validate(config.NewConfig()).Valid())
	assert.True(t, Validate(&config.Config{}).Valid())
	assert.True(t, Validate(nil).Valid())

	cfg := config.NewConfig()
	cfg.Editor.CursorDebounce = config.MaxCursorDebounce
	assert.True(t, Validate(cfg).Valid())
}

func TestValidate_ColorWarnings(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Theme.BoldColor = "reddish"
	cfg.Theme.HeadingColors = []string{"#fff", "#00ff00", "300", "7", "0", "1"}

	result := ValidateWithFile(cfg, "x.yml")
	require.True(t, result.Valid())
	require.True(t, result.HasWarnings())

	fields := make(map[string]bool)
	for _, w := range result.Warnings {
		fields[w.Field] = true
		assert.Equal(t, "x.yml", w.FilePath)
	}
	assert.True(t, fields["theme.bold_color"])
	assert.True(t, fields["theme.heading_colors[2]"])
	assert.True(t, fields["theme.heading_colors"])
	assert.False(t, fields["theme.heading_colors[0]"])
	assert.Len(t, result.AllMessages(), len(result.Warnings))
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Field: "render.color", Message: "bad", FilePath: "a.yml"}
	assert.Equal(t, "a.yml: render.color: bad", err.Error())
	assert.Equal(t, "bad", (&ValidationError{Message: "bad"}).Error())
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	off := false
	override := &config.Config{
		Theme:   config.ThemeConfig{HeadingColors: []string{"9"}, Foreground: "15"},
		Backups: config.BackupsConfig{Enabled: &off},
	}

	merged := merge(base, override)
	assert.Equal(t, []string{"9"}, merged.Theme.HeadingColors)
	assert.Equal(t, "15", merged.Theme.Foreground)
	assert.False(t, *merged.Backups.Enabled)
	assert.True(t, *base.Backups.Enabled, "base must not be modified")
	assert.Equal(t, base.Editor, merged.Editor)

	assert.Same(t, base, merge(base, nil))
	assert.Same(t, override, merge(nil, override))
	assert.Nil(t, MergeAll())
}
