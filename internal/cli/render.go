package cli

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/bmad-swarm/internal/commands"
	"github.com/arthur-debert/bmad-swarm/pkg/cobrax/topics"
	pkgcommands "github.com/arthur-debert/bmad-swarm/pkg/commands"
	"github.com/arthur-debert/bmad-swarm/pkg/style"
	"github.com/spf13/cobra"
)

func newRenderCmd(g *globalOptions) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:     "render <file>",
		Short:   commands.MsgRenderShort,
		Long:    commands.MsgRenderLong,
		Example: commands.MsgRenderExample,
		Args:    cobra.ExactArgs(1),
		GroupID: groupMisc,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := pkgcommands.Render(pkgcommands.RenderOptions{
				ProjectRoot: g.dir,
				File:        args[0],
			})
			if err != nil {
				return err
			}

			output := result.Output
			if pretty {
				output = topics.NewGlamourRenderer(style.ColorEnabled(cmd.OutOrStdout())).Render(output, ".md")
			}
			fmt.Fprint(cmd.OutOrStdout(), output)

			if len(result.Unresolved) > 0 {
				errOut := cmd.ErrOrStderr()
				theme := style.NewTheme(errOut, style.ColorEnabled(errOut))
				fmt.Fprintln(errOut, theme.Warning.Render(
					fmt.Sprintf(commands.MsgUnresolvedWarning, strings.Join(result.Unresolved, ", "))))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, commands.MsgFlagPretty)
	return cmd
}
