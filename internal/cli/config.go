package cli

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/bmad-swarm/internal/commands"
	pkgcommands "github.com/arthur-debert/bmad-swarm/pkg/commands"
	"github.com/arthur-debert/bmad-swarm/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(g *globalOptions) *cobra.Command {
	var (
		format   string
		defaults bool
	)

	cmd := &cobra.Command{
		Use:     "config",
		Short:   commands.MsgConfigShort,
		Args:    cobra.NoArgs,
		GroupID: groupCore,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := config.Format(strings.ToLower(format))
			if f != config.FormatYAML && f != config.FormatTOML {
				return fmt.Errorf("unknown format %q (yaml or toml)", format)
			}

			result, err := pkgcommands.ShowConfig(pkgcommands.ShowConfigOptions{
				ProjectRoot: g.dir,
				Format:      f,
				Defaults:    defaults,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), result.Content)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(config.FormatYAML), commands.MsgFlagFormat)
	cmd.Flags().BoolVar(&defaults, "defaults", false, commands.MsgFlagDefaults)
	_ = cmd.RegisterFlagCompletionFunc("format", fixedCompletion([]string{"yaml", "toml"}))
	return cmd
}
