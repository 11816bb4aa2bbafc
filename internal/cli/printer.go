package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/bmad-swarm/internal/commands"
	"github.com/arthur-debert/bmad-swarm/pkg/generators"
	"github.com/arthur-debert/bmad-swarm/pkg/style"
	"github.com/spf13/cobra"
)

// printer writes styled command output.
type printer struct {
	out   io.Writer
	theme *style.Theme
}

func newPrinter(cmd *cobra.Command) *printer {
	out := cmd.OutOrStdout()
	return &printer{out: out, theme: style.NewTheme(out, style.ColorEnabled(out))}
}

func (p *printer) println(s string) {
	fmt.Fprintln(p.out, s)
}

// markup prints a line with [tag]..[/tag] styling.
func (p *printer) markup(format string, args ...interface{}) {
	p.println(p.theme.Markup(fmt.Sprintf(format, args...)))
}

func (p *printer) heading(s string) {
	p.println(p.theme.Title.Render(s))
}

func (p *printer) dryRunNotice() {
	p.println("")
	p.println(p.theme.Warning.Render(commands.MsgDryRunNotice))
}

// report prints one line per generator section followed by the hand-edited
// files that were left alone.
func (p *printer) report(r *generators.Report) {
	if r == nil {
		return
	}
	for _, s := range r.Sections {
		mark := p.theme.SuccessMark()
		if len(s.Result.Modified) > 0 {
			mark = p.theme.WarningMark()
		}
		p.println(fmt.Sprintf(commands.MsgSectionFormat, mark, p.theme.Path.Render(s.Target), sectionSummary(s.Result)))

		if s.Name == generators.SectionAgents {
			for _, name := range s.Result.Skipped {
				p.println(p.theme.Indent(p.theme.Ejected.Render(fmt.Sprintf(commands.MsgEjectedUsing, name)), 1))
			}
		}
	}

	if modified := r.Modified(); len(modified) > 0 {
		p.println("")
		p.println(p.theme.Warning.Render(fmt.Sprintf(commands.MsgModifiedSkipped, len(modified))))
		for _, m := range modified {
			p.println(p.theme.Indent(p.theme.Modified.Render(m), 1))
		}
	}
}

func sectionSummary(r generators.Result) string {
	var parts []string
	add := func(n int, label string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, label))
		}
	}
	add(len(r.Generated), "generated")
	add(len(r.Unchanged), "unchanged")
	add(len(r.Skipped), "ejected")
	add(len(r.Modified), "modified")
	if len(parts) == 0 {
		return "nothing to do"
	}
	return strings.Join(parts, ", ")
}
