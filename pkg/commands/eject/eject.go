// Package eject implements `bmad-swarm eject agent` and `uneject agent`.
package eject

import (
	"github.com/arthur-debert/bmad-swarm/pkg/commands/internal/project"
	"github.com/arthur-debert/bmad-swarm/pkg/generators"
	"github.com/arthur-debert/bmad-swarm/pkg/logging"
)

// EjectOptions defines the options for Eject and Uneject.
type EjectOptions struct {
	ProjectRoot string
	Agent       string
}

// EjectResult reports where the ejected copy lives.
type EjectResult struct {
	Agent string
	// Path is relative to the project root.
	Path string
}

// Eject copies a built-in agent to overrides/agents/ where it takes priority
// over the package version.
func Eject(opts EjectOptions) (*EjectResult, error) {
	log := logging.GetLogger("commands.eject")
	log.Debug().Str("command", "Eject").Str("agent", opts.Agent).Msg("Executing command")

	proj, err := project.Open(opts.ProjectRoot, nil)
	if err != nil {
		return nil, err
	}

	path, err := generators.EjectAgent(proj.FS, proj.Paths, nil, opts.Agent)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "Eject").Str("path", path).Msg("Command finished")
	return &EjectResult{Agent: opts.Agent, Path: proj.Paths.Rel(path)}, nil
}

// Uneject removes an ejected agent and regenerates it from the package.
func Uneject(opts EjectOptions) (*EjectResult, error) {
	log := logging.GetLogger("commands.eject")
	log.Debug().Str("command", "Uneject").Str("agent", opts.Agent).Msg("Executing command")

	proj, err := project.Open(opts.ProjectRoot, nil)
	if err != nil {
		return nil, err
	}

	if err := generators.UnejectAgent(proj.FS, proj.Paths, nil, opts.Agent); err != nil {
		return nil, err
	}

	// the unmanaged copy in .claude/agents/ carries no header, so it is
	// replaced here
	if _, err := proj.Generator(generators.Options{}).Agents(); err != nil {
		return nil, err
	}

	log.Info().Str("command", "Uneject").Str("agent", opts.Agent).Msg("Command finished")
	return &EjectResult{Agent: opts.Agent, Path: proj.Paths.Rel(proj.Paths.AgentFile(opts.Agent))}, nil
}
