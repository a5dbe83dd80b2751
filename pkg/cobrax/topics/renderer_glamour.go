package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics for the terminal
type GlamourRenderer struct {
	Width int // 0 keeps glamour's default wrapping
}

// NewGlamourRenderer creates a markdown renderer with automatic style detection
func NewGlamourRenderer(width int) *GlamourRenderer {
	return &GlamourRenderer{Width: width}
}

// Render converts markdown to styled terminal output. Other formats and
// rendering failures return the content unchanged.
func (r *GlamourRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
