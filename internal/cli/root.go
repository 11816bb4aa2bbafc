// Package cli wires the bmad-swarm commands into a cobra command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/bmad-swarm/internal/commands"
	"github.com/arthur-debert/bmad-swarm/internal/version"
	"github.com/arthur-debert/bmad-swarm/pkg/cobrax/topics"
	"github.com/arthur-debert/bmad-swarm/pkg/errors"
	"github.com/arthur-debert/bmad-swarm/pkg/logging"
	"github.com/arthur-debert/bmad-swarm/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	groupCore = "core"
	groupMisc = "misc"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	verbosity int
	dryRun    bool
	force     bool
	dir       string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "bmad-swarm",
		Short:   commands.MsgRootShort,
		Long:    commands.MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(commands.MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", commands.MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, commands.MsgFlagDryRun)
	rootCmd.PersistentFlags().BoolVar(&opts.force, "force", false, commands.MsgFlagForce)
	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", "", commands.MsgFlagDir)
	_ = rootCmd.MarkPersistentFlagDirname("dir")

	rootCmd.AddGroup(&cobra.Group{ID: groupCore, Title: commands.MsgGroupCore})
	rootCmd.AddGroup(&cobra.Group{ID: groupMisc, Title: commands.MsgGroupMisc})
	rootCmd.SetUsageTemplate(commands.MsgUsageTemplate)

	rootCmd.AddCommand(newInitCmd(opts))
	rootCmd.AddCommand(newUpdateCmd(opts))
	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newStartCmd(opts))
	rootCmd.AddCommand(newEjectCmd(opts))
	rootCmd.AddCommand(newUnejectCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	topicOpts := topics.Options{
		Extensions: []string{".txt", ".md"},
		Renderer:   topics.NewGlamourRenderer(style.ColorEnabled(os.Stdout)),
	}
	if err := topics.InitializeWithOptions(rootCmd, commands.HelpTopics(), topicOpts); err != nil {
		// Topics are embedded; failing here means a broken build.
		panic(err)
	}

	return rootCmd
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		log.Debug().
			Str("code", string(errors.GetErrorCode(err))).
			Interface("details", errors.GetErrorDetails(err)).
			Msg("command failed")
		theme := style.NewTheme(stderr, style.ColorEnabled(stderr))
		fmt.Fprintln(stderr, theme.Error.Render(commands.MsgErrorPrefix)+" "+err.Error())
		// start exits with the status of claude
		if code, ok := errors.GetErrorDetails(err)["exit_code"].(int); ok && code > 0 {
			return code
		}
		return 1
	}
	return 0
}
