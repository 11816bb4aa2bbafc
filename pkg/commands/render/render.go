// Package render implements `bmad-swarm render`: render any template file
// against the project's data context.
package render

import (
	"github.com/arthur-debert/bmad-swarm/pkg/commands/internal/project"
	"github.com/arthur-debert/bmad-swarm/pkg/errors"
	"github.com/arthur-debert/bmad-swarm/pkg/generators"
	"github.com/arthur-debert/bmad-swarm/pkg/logging"
	"github.com/arthur-debert/bmad-swarm/pkg/template"
)

// RenderOptions defines the options for the Render command.
type RenderOptions struct {
	ProjectRoot string
	// File is the template to render. Relative paths are resolved against
	// the current directory, not the project.
	File string
}

// RenderResult holds the rendered text.
type RenderResult struct {
	Output string
	// Unresolved lists placeholders left in the output.
	Unresolved []string
}

// Render renders opts.File.
func Render(opts RenderOptions) (*RenderResult, error) {
	log := logging.GetLogger("commands.render")
	log.Debug().Str("command", "Render").Str("file", opts.File).Msg("Executing command")

	if opts.File == "" {
		return nil, errors.New(errors.ErrInvalidInput, "a template file is required")
	}

	proj, err := project.Open(opts.ProjectRoot, nil)
	if err != nil {
		return nil, err
	}

	data, err := proj.FS.ReadFile(opts.File)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read template %s", opts.File).
			WithDetail("path", opts.File)
	}

	ctx, err := proj.Generator(generators.Options{}).Context()
	if err != nil {
		return nil, err
	}

	out := template.NewRenderer().Render(opts.File, string(data), ctx)
	result := &RenderResult{Output: out, Unresolved: template.Unresolved(out)}
	if len(result.Unresolved) > 0 {
		log.Warn().Strs("placeholders", result.Unresolved).Msg("Unresolved placeholders in output")
	}
	return result, nil
}
