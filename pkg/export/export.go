// Package export renders a markdown document to HTML.
package export

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Markdown flavors understood by the exporter.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Exporter renders markdown to HTML with goldmark.
type Exporter struct {
	flavor     string
	standalone bool
	title      string
	textSize   int
	md         goldmark.Markdown
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithStandalone wraps the rendered body in a complete HTML page.
func WithStandalone(title string) Option {
	return func(e *Exporter) {
		e.standalone = true
		e.title = title
	}
}

// WithTextSize sets the body font size, in points, of a standalone page.
func WithTextSize(points int) Option {
	return func(e *Exporter) {
		e.textSize = points
	}
}

// New creates an exporter for the given flavor. Unknown flavors fall back to
// CommonMark.
func New(flavor string, opts ...Option) *Exporter {
	f := FlavorOrDefault(flavor)
	e := &Exporter{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Flavor returns the configured flavor.
func (e *Exporter) Flavor() string {
	return e.flavor
}

// Render writes the HTML rendering of source to w.
func (e *Exporter) Render(w io.Writer, source string) error {
	var body bytes.Buffer
	if err := e.md.Convert([]byte(source), &body); err != nil {
		return fmt.Errorf("convert markdown: %w", err)
	}

	if !e.standalone {
		if _, err := w.Write(body.Bytes()); err != nil {
			return fmt.Errorf("write html: %w", err)
		}
		return nil
	}

	var style string
	if e.textSize > 0 {
		style = fmt.Sprintf("<style>body { font-size: %dpt; }</style>\n", e.textSize)
	}

	_, err := fmt.Fprintf(w, pageTemplate, html.EscapeString(e.title), style, body.String())
	if err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}

// RenderString returns the HTML rendering of source.
func (e *Exporter) RenderString(source string) (string, error) {
	var buf bytes.Buffer
	if err := e.Render(&buf, source); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FlavorOrDefault returns flavor if it is known, CommonMark otherwise.
func FlavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

// IsValidFlavor reports whether flavor is known.
func IsValidFlavor(flavor string) bool {
	return flavor == FlavorCommonMark || flavor == FlavorGFM
}

//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option

	switch flavor {
	case FlavorGFM:
		opts = append(opts,
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		)
	case FlavorCommonMark:
		// No extensions for pure CommonMark.
	}

	return goldmark.New(opts...)
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
%s</head>
<body>
%s</body>
</html>
`
