package cli

import (
	"fmt"
	"strconv"

	"github.com/arthur-debert/bmad-swarm/internal/commands"
	pkgcommands "github.com/arthur-debert/bmad-swarm/pkg/commands"
	"github.com/arthur-debert/bmad-swarm/pkg/generated"
	"github.com/spf13/cobra"
)

func newStatusCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   commands.MsgStatusShort,
		Long:    commands.MsgStatusLong,
		Args:    cobra.NoArgs,
		GroupID: groupCore,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := pkgcommands.Status(pkgcommands.StatusOptions{ProjectRoot: g.dir})
			if err != nil {
				return err
			}
			printStatus(newPrinter(cmd), result)
			return nil
		},
	}
}

func printStatus(p *printer, r *pkgcommands.StatusResult) {
	cfg := r.Config
	valueOr := func(s, fallback string) string {
		if s == "" {
			return fallback
		}
		return s
	}

	p.heading(commands.MsgStatusProject)
	p.println(p.theme.Table(nil, [][]string{
		{"Name", p.theme.Bold.Render(cfg.Project.Name)},
		{"Type", cfg.Project.Type},
		{"Stack", r.Stack()},
		{"Autonomy", cfg.Methodology.Autonomy},
		{"Phase", valueOr(r.Phase, "unknown")},
		{"State", valueOr(r.State, "unknown")},
	}))

	p.println("")
	p.heading(commands.MsgStatusAgents)
	if len(r.Agents) == 0 {
		p.println(p.theme.Muted.Render(commands.MsgNoAgents))
	} else {
		var rows [][]string
		for _, a := range r.Agents {
			mark := p.theme.SuccessMark()
			note := ""
			if !a.Enabled {
				mark = p.theme.PendingMark()
				note = p.theme.Muted.Render("disabled")
			}
			if a.Ejected {
				note = p.theme.Ejected.Render("ejected")
			}
			rows = append(rows, []string{mark, a.Name, note})
		}
		p.println(p.theme.Table(nil, rows))
	}

	p.println("")
	p.heading(commands.MsgStatusFiles)
	var rows [][]string
	for _, f := range r.Files {
		state := p.theme.State(f.State)
		if f.Ejected {
			state = p.theme.Ejected.Render("ejected")
		}
		rows = append(rows, []string{p.theme.Path.Render(f.Path), state})
	}
	p.println(p.theme.Table([]string{"FILE", "STATE"}, rows))
	if modified := r.Modified(); len(modified) > 0 {
		p.println("")
		p.println(p.theme.Warning.Render(fmt.Sprintf(commands.MsgStatusModified, len(modified))))
		for _, f := range modified {
			p.println(p.theme.Indent(p.theme.StateStyle(generated.StateModified).Render(f.Path), 1))
		}
	}

	p.println("")
	p.heading(commands.MsgStatusArtifacts)
	if len(r.Artifacts) == 0 {
		p.println(p.theme.Muted.Render(commands.MsgNoArtifacts))
		return
	}
	var counts [][]string
	for _, a := range r.Artifacts {
		counts = append(counts, []string{a.Dir, strconv.Itoa(a.Count)})
	}
	p.println(p.theme.Table(nil, counts))
}
