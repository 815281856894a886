package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

type MarkdownProps struct {
	Markdown    string
	Width       int
	Placeholder string
}

// Cache Glamour renderers by width to avoid expensive re-creation
var (
	rendererCache sync.Map // map[int]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders markdown through glamour, falling back to the raw
// text if rendering fails and to the placeholder when empty
func RenderMarkdown(props MarkdownProps) string {
	if strings.TrimSpace(props.Markdown) != "" {
		renderer, err := getRenderer(max(props.Width, 20))
		if err == nil {
			rendered, err := renderer.Render(props.Markdown)
			if err == nil {
				return strings.TrimSpace(rendered)
			}
		}
		return props.Markdown
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true).
		Render(props.Placeholder)
}
