package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
)

type DescriptionProps struct {
	Description string
	Placeholder string // shown when Description is empty
	Width       int
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

// RenderDescription renders markdown text such as a job description or
// cover letter. Plain text is returned if rendering fails.
func RenderDescription(props DescriptionProps) string {
	if strings.TrimSpace(props.Description) != "" {
		renderer, err := getRenderer(props.Width)
		if err == nil {
			rendered, err := renderer.Render(props.Description)
			if err == nil {
				return strings.TrimSpace(rendered)
			}
		}
		return props.Description
	}

	placeholder := props.Placeholder
	if placeholder == "" {
		placeholder = "No description"
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		Render(placeholder)
}
