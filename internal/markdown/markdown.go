// Package markdown renders todo descriptions for the terminal.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

type renderer interface {
	Render(string) (string, error)
}

var (
	rendererMu sync.Mutex
	renderers  = map[int]renderer{}
)

// Render formats markdown text wrapped to width and indented by indent
// spaces. Blank input renders as an empty string. If the markdown renderer
// fails, the text is word-wrapped as-is.
func Render(width, indentBy int, input string) (out string) {
	value := trimTrailingNewlines(strings.ReplaceAll(input, "\r\n", "\n"))
	if strings.TrimSpace(value) == "" {
		return ""
	}
	width = max(width, 1)
	indentBy = max(indentBy, 0)
	renderWidth := max(width-indentBy, 1)

	defer func() {
		if recover() != nil {
			out = finish(wordwrap.String(value, renderWidth), indentBy)
		}
	}()

	rendered := wordwrap.String(value, renderWidth)
	if r := markdownRenderer(renderWidth); r != nil {
		if formatted, err := r.Render(value); err == nil {
			rendered = formatted
		}
	}
	return finish(rendered, indentBy)
}

// Plain word-wraps text without interpreting markdown.
func Plain(width int, input string) string {
	value := trimTrailingNewlines(strings.ReplaceAll(input, "\r\n", "\n"))
	return wordwrap.String(value, max(width, 1))
}

func finish(rendered string, indentBy int) string {
	rendered = trimTrailingNewlines(rendered)
	if strings.TrimSpace(rendered) == "" {
		return ""
	}
	if indentBy == 0 {
		return rendered
	}
	return indent.String(rendered, uint(indentBy))
}

func markdownRenderer(width int) renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	style.Document.Margin = nil
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}

func trimTrailingNewlines(value string) string {
	return strings.TrimRight(value, "\n")
}
