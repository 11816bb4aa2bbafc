// Package update implements `bmad-swarm update`: regenerate every managed
// file from the package content and swarm.yaml. User-owned files
// (swarm.yaml, overrides/, artifacts/, source) are never touched.
package update

import (
	"github.com/arthur-debert/bmad-swarm/pkg/commands/internal/project"
	"github.com/arthur-debert/bmad-swarm/pkg/generators"
	"github.com/arthur-debert/bmad-swarm/pkg/logging"
)

// UpdateOptions defines the options for the Update command.
type UpdateOptions struct {
	ProjectRoot string
	// Force overwrites managed files that were edited by hand.
	Force  bool
	DryRun bool
	// Overrides are dotted configuration keys applied over swarm.yaml.
	Overrides map[string]interface{}
}

// UpdateResult reports what Update regenerated.
type UpdateResult struct {
	Root   string
	Report *generators.Report
	DryRun bool
}

// Update regenerates the managed files of the project.
func Update(opts UpdateOptions) (*UpdateResult, error) {
	log := logging.GetLogger("commands.update")
	log.Debug().Str("command", "Update").Bool("force", opts.Force).Msg("Executing command")

	proj, err := project.Open(opts.ProjectRoot, opts.Overrides)
	if err != nil {
		return nil, err
	}

	report, err := proj.Generator(generators.Options{Force: opts.Force, DryRun: opts.DryRun}).GenerateAll()
	if err != nil {
		return nil, err
	}

	if modified := report.Modified(); len(modified) > 0 {
		log.Warn().Strs("files", modified).Msg("Left hand-edited files alone")
	}
	log.Info().Str("command", "Update").Str("root", proj.Paths.Root()).Msg("Command finished")
	return &UpdateResult{Root: proj.Paths.Root(), Report: report, DryRun: opts.DryRun}, nil
}
