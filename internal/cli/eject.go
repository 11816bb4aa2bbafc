package cli

import (
	"fmt"

	"github.com/arthur-debert/bmad-swarm/internal/commands"
	"github.com/arthur-debert/bmad-swarm/pkg/assets"
	pkgcommands "github.com/arthur-debert/bmad-swarm/pkg/commands"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// agentNamesCompletion completes built-in agent names.
func agentNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return assets.AgentNames(), cobra.ShellCompDirectiveNoFileComp
}

// kindArg rejects anything but "agent" as the first argument.
func kindArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		return err
	}
	if args[0] != "agent" {
		return fmt.Errorf(commands.MsgErrUnknownKind, args[0])
	}
	return nil
}

func kindCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return []string{"agent"}, cobra.ShellCompDirectiveNoFileComp
	}
	return agentNamesCompletion(cmd, args[1:], toComplete)
}

func newEjectCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "eject agent <name>",
		Short:             commands.MsgEjectShort,
		Long:              commands.MsgEjectLong,
		Args:              kindArg,
		GroupID:           groupCore,
		ValidArgsFunction: kindCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[1]
			log.Info().Str("dir", g.dir).Str("agent", name).Msg("Ejecting agent")

			result, err := pkgcommands.Eject(pkgcommands.EjectOptions{ProjectRoot: g.dir, Agent: name})
			if err != nil {
				return err
			}

			p := newPrinter(cmd)
			p.println(fmt.Sprintf("%s %s", p.theme.SuccessMark(),
				fmt.Sprintf(commands.MsgEjected, p.theme.Bold.Render(result.Agent), p.theme.Path.Render(result.Path))))
			p.markup("[muted]%s[/muted]", commands.MsgEjectedHint)
			return nil
		},
	}
}

func newUnejectCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "uneject agent <name>",
		Short:             commands.MsgUnejectShort,
		Long:              commands.MsgUnejectAgent,
		Args:              kindArg,
		GroupID:           groupCore,
		ValidArgsFunction: kindCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[1]
			log.Info().Str("dir", g.dir).Str("agent", name).Msg("Unejecting agent")

			result, err := pkgcommands.Uneject(pkgcommands.EjectOptions{ProjectRoot: g.dir, Agent: name})
			if err != nil {
				return err
			}

			p := newPrinter(cmd)
			p.println(fmt.Sprintf("%s %s", p.theme.SuccessMark(),
				fmt.Sprintf(commands.MsgUnejected, p.theme.Bold.Render(result.Agent), p.theme.Path.Render(result.Path))))
			return nil
		},
	}
}
