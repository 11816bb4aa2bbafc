package cli

import (
	"github.com/arthur-debert/bmad-swarm/internal/commands"
	pkgcommands "github.com/arthur-debert/bmad-swarm/pkg/commands"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newUpdateCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "update",
		Short:   commands.MsgUpdateShort,
		Long:    commands.MsgUpdateLong,
		Example: commands.MsgUpdateExample,
		Args:    cobra.NoArgs,
		GroupID: groupCore,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info().Str("dir", g.dir).Bool("force", g.force).Bool("dry_run", g.dryRun).Msg("Updating project")

			p := newPrinter(cmd)
			p.heading(commands.MsgRegenerating)

			result, err := pkgcommands.Update(pkgcommands.UpdateOptions{
				ProjectRoot: g.dir,
				Force:       g.force,
				DryRun:      g.dryRun,
			})
			if err != nil {
				return err
			}

			p.report(result.Report)
			if result.DryRun {
				p.dryRunNotice()
				return nil
			}
			p.println("")
			p.println(p.theme.Muted.Render(commands.MsgUpdateComplete))
			return nil
		},
	}
}
