package cli

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/bmad-swarm/internal/commands"
	pkgcommands "github.com/arthur-debert/bmad-swarm/pkg/commands"
	"github.com/arthur-debert/bmad-swarm/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newInitCmd(g *globalOptions) *cobra.Command {
	var (
		answers pkgcommands.Answers
		preset  string
	)

	cmd := &cobra.Command{
		Use:     "init",
		Short:   commands.MsgInitShort,
		Long:    commands.MsgInitLong,
		Example: commands.MsgInitExample,
		Args:    cobra.NoArgs,
		GroupID: groupCore,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info().Str("dir", g.dir).Str("template", preset).Bool("dry_run", g.dryRun).Msg("Initializing project")

			p := newPrinter(cmd)
			p.heading(commands.MsgCreatingProject)

			result, err := pkgcommands.Init(pkgcommands.InitOptions{
				ProjectRoot: g.dir,
				Answers:     answers,
				Preset:      preset,
				DryRun:      g.dryRun,
			})
			if err != nil {
				return err
			}

			root := filepath.Dir(result.ConfigPath)
			p.println(fmt.Sprintf("%s %s", p.theme.SuccessMark(),
				fmt.Sprintf(commands.MsgWroteFile, p.theme.Path.Render(filepath.Base(result.ConfigPath)))))
			p.report(result.Report)
			if len(result.ArtifactDirs) > 0 {
				artifacts := filepath.Dir(result.ArtifactDirs[0])
				if rel, err := filepath.Rel(root, artifacts); err == nil {
					artifacts = rel
				}
				p.println(fmt.Sprintf("%s %s", p.theme.SuccessMark(), fmt.Sprintf(commands.MsgCreatedArtifacts, p.theme.Path.Render(artifacts))))
			}
			p.println(fmt.Sprintf("%s %s", p.theme.SuccessMark(),
				fmt.Sprintf(commands.MsgWroteFile, p.theme.Path.Render(filepath.Base(result.ProjectFile)))))

			if result.DryRun {
				p.dryRunNotice()
				return nil
			}
			p.println("")
			p.markup("[success]%s[/success]", commands.MsgInitReady)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&answers.Name, "name", "n", "", commands.MsgFlagName)
	f.StringVar(&answers.Description, "description", "", commands.MsgFlagDescription)
	f.StringVarP(&answers.Type, "type", "t", "", commands.MsgFlagType)
	f.StringVar(&answers.Language, "language", "", commands.MsgFlagLanguage)
	f.StringVar(&answers.Framework, "framework", "", commands.MsgFlagFramework)
	f.StringVar(&answers.Database, "database", "", commands.MsgFlagDatabase)
	f.StringVar(&answers.Testing, "testing", "", commands.MsgFlagTesting)
	f.StringVar(&answers.Autonomy, "autonomy", "", commands.MsgFlagAutonomy)
	f.StringVar(&preset, "template", "", commands.MsgFlagTemplate)

	_ = cmd.RegisterFlagCompletionFunc("template", fixedCompletion(pkgcommands.PresetNames()))
	_ = cmd.RegisterFlagCompletionFunc("type", fixedCompletion(config.ValidProjectTypes))
	_ = cmd.RegisterFlagCompletionFunc("autonomy", fixedCompletion(config.ValidAutonomyLevels))

	return cmd
}

func fixedCompletion(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
