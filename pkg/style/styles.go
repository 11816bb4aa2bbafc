// Package style renders bmad-swarm's terminal output with lipgloss.
package style

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Theme holds the styles bound to one output.
type Theme struct {
	renderer *lipgloss.Renderer

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Path     lipgloss.Style
	Code     lipgloss.Style

	Clean     lipgloss.Style
	Modified  lipgloss.Style
	Missing   lipgloss.Style
	Unmanaged lipgloss.Style
	Ejected   lipgloss.Style

	markup *MarkupParser
}

// ColorEnabled reports whether w is a terminal that should get colour.
// NO_COLOR turns colour off everywhere.
func ColorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewTheme creates a theme for w. Without colour every style renders plain
// text.
func NewTheme(w io.Writer, color bool) *Theme {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	s := func() lipgloss.Style { return r.NewStyle() }
	t := &Theme{
		renderer: r,

		Title:    s().Foreground(HeadingColor).Bold(true),
		Subtitle: s().Foreground(PrimaryColor).Bold(true),
		Muted:    s().Foreground(MutedColor),
		Bold:     s().Bold(true),
		Success:  s().Foreground(SuccessColor).Bold(true),
		Error:    s().Foreground(ErrorColor).Bold(true),
		Warning:  s().Foreground(WarningColor).Bold(true),
		Info:     s().Foreground(InfoColor),
		Path:     s().Foreground(SecondaryColor).Italic(true),
		Code:     s().Foreground(PrimaryColor),

		Clean:     s().Foreground(CleanColor),
		Modified:  s().Foreground(ModifiedColor).Bold(true),
		Missing:   s().Foreground(MissingColor),
		Unmanaged: s().Foreground(MutedColor),
		Ejected:   s().Foreground(EjectedColor),
	}
	t.markup = newMarkupParser(t)
	return t
}

// Indicators
func (t *Theme) SuccessMark() string { return t.Success.Render("✓") }
func (t *Theme) ErrorMark() string   { return t.Error.Render("✗") }
func (t *Theme) WarningMark() string { return t.Warning.Render("!") }
func (t *Theme) InfoMark() string    { return t.Info.Render("•") }
func (t *Theme) PendingMark() string { return t.Muted.Render("○") }

// Indent pads every line of s by two spaces per level.
func (t *Theme) Indent(s string, level int) string {
	return t.renderer.NewStyle().PaddingLeft(level * 2).Render(s)
}
