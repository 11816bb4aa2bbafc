package style

import (
	"strings"

	"github.com/arthur-debert/bmad-swarm/pkg/generated"
	"github.com/charmbracelet/lipgloss"
)

// StateStyle returns the style for a managed file state.
func (t *Theme) StateStyle(s generated.State) lipgloss.Style {
	switch s {
	case generated.StateClean:
		return t.Clean
	case generated.StateModified:
		return t.Modified
	case generated.StateMissing:
		return t.Missing
	default:
		return t.Unmanaged
	}
}

// State renders a state label.
func (t *Theme) State(s generated.State) string {
	return t.StateStyle(s).Render(s.String())
}

// Table renders rows in aligned columns separated by two spaces. Cells may
// already be styled; widths ignore escape sequences. The header row is
// rendered with the Subtitle style.
func (t *Theme) Table(header []string, rows [][]string) string {
	cols := len(header)
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	widths := make([]int, cols)
	measure := func(r []string) {
		for i, c := range r {
			if w := lipgloss.Width(c); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(header)
	for _, r := range rows {
		measure(r)
	}

	line := func(r []string) string {
		var b strings.Builder
		for i, c := range r {
			b.WriteString(c)
			if i < len(r)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(c)+2))
			}
		}
		return b.String()
	}

	var out []string
	if len(header) > 0 {
		styled := make([]string, len(header))
		for i, h := range header {
			styled[i] = t.Subtitle.Render(h)
		}
		out = append(out, line(styled))
	}
	for _, r := range rows {
		out = append(out, line(r))
	}
	return strings.Join(out, "\n")
}
