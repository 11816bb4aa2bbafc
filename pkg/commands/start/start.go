// Package start implements `bmad-swarm start`: launch Claude Code with the
// orchestrator system prompt appended.
//
// The claude binary is looked up on PATH. BMAD_SWARM_CLAUDE overrides it.
package start

import (
	"context"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/bmad-swarm/pkg/errors"
	"github.com/arthur-debert/bmad-swarm/pkg/filesystem"
	"github.com/arthur-debert/bmad-swarm/pkg/logging"
	"github.com/arthur-debert/bmad-swarm/pkg/paths"
)

const (
	// DefaultBinary is the Claude Code executable.
	DefaultBinary = "claude"
	// EnvBinary overrides DefaultBinary.
	EnvBinary = "BMAD_SWARM_CLAUDE"
)

// StartOptions defines the options for the Start command.
type StartOptions struct {
	ProjectRoot string
	// Print builds the command line without running it.
	Print bool
	// Dangerous adds --dangerously-skip-permissions.
	Dangerous bool
	// Binary defaults to $BMAD_SWARM_CLAUDE, then DefaultBinary.
	Binary string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// StartResult describes the launched (or printed) command.
type StartResult struct {
	Binary string
	Args   []string
	// Ran is false when Print was set.
	Ran      bool
	ExitCode int
}

// CommandLine is the shell form of the command.
func (r *StartResult) CommandLine() string {
	return strings.Join(append([]string{r.Binary}, r.Args...), " ")
}

// Start checks for the generated system prompt and runs claude with the
// terminal attached. A non-zero exit of claude is returned as ErrLaunch with
// an "exit_code" detail.
func Start(ctx context.Context, opts StartOptions) (*StartResult, error) {
	log := logging.GetLogger("commands.start")
	log.Debug().Str("command", "Start").Bool("print", opts.Print).Msg("Executing command")

	p, err := paths.New(opts.ProjectRoot)
	if err != nil {
		return nil, err
	}

	prompt := p.SystemPromptFile()
	if _, err := filesystem.NewOS().Stat(prompt); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.New(errors.ErrProjectMissing,
				"no .claude/system-prompt.txt found. Run `bmad-swarm init` first").
				WithDetail("path", prompt)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", prompt)
	}

	result := &StartResult{
		Binary: binary(opts.Binary),
		Args:   []string{"--append-system-prompt", prompt},
	}
	if opts.Dangerous {
		result.Args = append(result.Args, "--dangerously-skip-permissions")
	}
	if opts.Print {
		return result, nil
	}

	cmd := exec.CommandContext(ctx, result.Binary, result.Args...)
	cmd.Dir = p.Root()
	cmd.Stdin, cmd.Stdout, cmd.Stderr = opts.Stdin, opts.Stdout, opts.Stderr

	log.Info().Str("cmd", result.CommandLine()).Msg("Launching claude")
	result.Ran = true
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, errors.Wrapf(err, errors.ErrLaunch, "%s exited with status %d",
				result.Binary, result.ExitCode).
				WithDetail("exit_code", result.ExitCode)
		}
		return result, errors.Wrapf(err, errors.ErrLaunch, "failed to launch %s", result.Binary)
	}
	return result, nil
}

func binary(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvBinary); env != "" {
		return env
	}
	return DefaultBinary
}
