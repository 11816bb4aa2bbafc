package cli

import (
	"github.com/arthur-debert/bmad-swarm/internal/commands"
	pkgcommands "github.com/arthur-debert/bmad-swarm/pkg/commands"
	"github.com/spf13/cobra"
)

func newStartCmd(g *globalOptions) *cobra.Command {
	var printOnly, dangerous bool

	cmd := &cobra.Command{
		Use:     "start",
		Short:   commands.MsgStartShort,
		Long:    commands.MsgStartLong,
		Args:    cobra.NoArgs,
		GroupID: groupCore,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := pkgcommands.Start(cmd.Context(), pkgcommands.StartOptions{
				ProjectRoot: g.dir,
				Print:       printOnly,
				Dangerous:   dangerous,
				Stdin:       cmd.InOrStdin(),
				Stdout:      cmd.OutOrStdout(),
				Stderr:      cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			if !result.Ran {
				newPrinter(cmd).println(result.CommandLine())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&printOnly, "print", false, commands.MsgFlagPrint)
	cmd.Flags().BoolVar(&dangerous, "dangerous", false, commands.MsgFlagDangerous)
	return cmd
}
