package cli

import (
	"fmt"

	"github.com/arthur-debert/bmad-swarm/internal/commands"
	"github.com/arthur-debert/bmad-swarm/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   commands.MsgVersionShort,
		Long:    commands.MsgVersionLong,
		Args:    cobra.NoArgs,
		GroupID: groupMisc,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, commands.MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, commands.MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, commands.MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   commands.MsgTopicsShort,
		Long:    commands.MsgTopicsLong,
		Args:    cobra.NoArgs,
		GroupID: groupMisc,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd != cmd.Root() {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return fmt.Errorf(commands.MsgErrHelpMissing)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 commands.MsgCompletionShort,
		Long:                  commands.MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               groupMisc,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   commands.MsgManShort,
		Args:    cobra.NoArgs,
		Hidden:  true,
		GroupID: groupMisc,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "BMAD-SWARM",
				Section: "1",
				Source:  "bmad-swarm " + version.Version,
				Manual:  "bmad-swarm manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
