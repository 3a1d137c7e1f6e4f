package server

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// renderMarkdown converts the assistant's markdown-flavored reply to HTML for
// web clients. Configures the parser with common extensions and hard line
// breaks, since chat replies rely on single newlines.
func renderMarkdown(text string) string {
	if text == "" {
		return ""
	}

	extensions := parser.CommonExtensions | parser.HardLineBreak
	mdParser := parser.NewWithExtensions(extensions)

	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: htmlFlags,
	})

	return string(markdown.ToHTML([]byte(text), mdParser, renderer))
}
