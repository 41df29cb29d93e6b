package view

import (
	"bytes"
	"html"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// Formatter turns a content text field into safe HTML.
type Formatter interface {
	Format(text string) template.HTML
}

// PlainFormatter escapes text without interpreting markup.
type PlainFormatter struct{}

func (PlainFormatter) Format(text string) template.HTML {
	return template.HTML(html.EscapeString(text))
}

// MarkdownFormatter renders GitHub-flavored Markdown. Raw HTML embedded in
// content is dropped by goldmark's default renderer.
type MarkdownFormatter struct {
	md goldmark.Markdown
}

// NewMarkdownFormatter creates a MarkdownFormatter with GFM and code
// highlighting enabled.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
		),
	}
}

func (f *MarkdownFormatter) Format(text string) template.HTML {
	var buf bytes.Buffer
	if err := f.md.Convert([]byte(text), &buf); err != nil {
		return PlainFormatter{}.Format(text)
	}
	out := strings.TrimSpace(buf.String())
	// Single paragraphs are unwrapped so short fields stay inline.
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return template.HTML(out)
}
