// Package markdown renders blog post bodies written in Markdown to
// sanitized HTML ready for template output.
package markdown

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/raiconsult/web/internal/app/system/htmlsanitize"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

var engine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Strikethrough,
		extension.Linkify,
		extension.Typographer,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
	),
)

// Render converts Markdown source to HTML. The output is passed through
// the shared sanitization policy, so it is safe to embed in templates.
func Render(source string) (template.HTML, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := engine.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return htmlsanitize.SanitizeToHTML(buf.String()), nil
}

// RenderOrEscape renders Markdown, falling back to escaped plain text if
// the renderer fails. Handlers use this when a broken body should still
// produce a readable page.
func RenderOrEscape(source string) template.HTML {
	out, err := Render(source)
	if err != nil {
		return template.HTML(htmlsanitize.PlainTextToHTML(source))
	}
	return out
}
