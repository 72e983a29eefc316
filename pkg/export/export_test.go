package export_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdlive/pkg/export"
)

func TestRenderString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		flavor string
		source string
		want   string
	}{
		{"bold", export.FlavorCommonMark, "**bold**", "<p><strong>bold</strong></p>\n"},
		{"star italic", export.FlavorCommonMark, "*it*", "<p><em>it</em></p>\n"},
		{"underscore italic", export.FlavorCommonMark, "_it_", "<p><em>it</em></p>\n"},
		{"heading", export.FlavorCommonMark, "## Two", "<h2>Two</h2>\n"},
		{"gfm heading id", export.FlavorGFM, "## Two", "<h2 id=\"two\">Two</h2>\n"},
		{"gfm strikethrough", export.FlavorGFM, "~~x~~", "<p><del>x</del></p>\n"},
		{"commonmark ignores strikethrough", export.FlavorCommonMark, "~~x~~", "<p>~~x~~</p>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := export.New(tt.flavor).RenderString(tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_UnknownFlavor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, export.FlavorCommonMark, export.New("markdown-extra").Flavor())
	assert.False(t, export.IsValidFlavor("markdown-extra"))
	assert.True(t, export.IsValidFlavor(export.FlavorGFM))
}

func TestRender_Standalone(t *testing.T) {
	t.Parallel()

	got, err := export.New(export.FlavorCommonMark, export.WithStandalone("a & b")).RenderString("# Hi")
	require.NoError(t, err)
	assert.Contains(t, got, "<title>a &amp; b</title>")
	assert.Contains(t, got, "<body>\n<h1>Hi</h1>\n</body>")
}

func TestRender_StandaloneTextSize(t *testing.T) {
	t.Parallel()

	exp := export.New(export.FlavorGFM, export.WithStandalone("doc"), export.WithTextSize(14))
	got, err := exp.RenderString("text")
	require.NoError(t, err)
	assert.Contains(t, got, "<style>body { font-size: 14pt; }</style>\n</head>")

	plain, err := export.New(export.FlavorGFM, export.WithTextSize(14)).RenderString("text")
	require.NoError(t, err)
	assert.Equal(t, "<p>text</p>\n", plain)
}
