package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour.
type GlamourRenderer struct {
	// Style is "auto", "notty", "dark", "light" or a path to a style file.
	Style string
	// Width wraps output; 0 keeps glamour's default.
	Width int
}

// NewGlamourRenderer creates a markdown renderer for a terminal (color) or
// for plain output.
func NewGlamourRenderer(color bool) *GlamourRenderer {
	r := &GlamourRenderer{Style: "auto"}
	if !color {
		r.Style = "notty"
	}
	return r
}

// Render converts markdown to terminal output. Other formats, and anything
// glamour fails on, are returned unchanged.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "notty", "dark", "light", "ascii", "dracula", "pink", "tokyo-night":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
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
