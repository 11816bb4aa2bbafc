// Package showconfig implements `bmad-swarm config`: print the effective
// configuration after defaults, swarm.yaml and environment are merged.
package showconfig

import (
	"github.com/arthur-debert/bmad-swarm/pkg/commands/internal/project"
	"github.com/arthur-debert/bmad-swarm/pkg/config"
	"github.com/arthur-debert/bmad-swarm/pkg/logging"
)

// ShowConfigOptions defines the options for the ShowConfig command.
type ShowConfigOptions struct {
	ProjectRoot string
	// Format defaults to YAML.
	Format config.Format
	// Defaults prints the built-in defaults and ignores the project.
	Defaults bool
}

// ShowConfigResult holds the encoded configuration.
type ShowConfigResult struct {
	Format  config.Format
	Content string
}

// ShowConfig encodes the effective configuration.
func ShowConfig(opts ShowConfigOptions) (*ShowConfigResult, error) {
	log := logging.GetLogger("commands.config")
	log.Debug().Str("command", "ShowConfig").Str("format", string(opts.Format)).Msg("Executing command")

	format := opts.Format
	if format == "" {
		format = config.FormatYAML
	}

	var cfg *config.Config
	if opts.Defaults {
		cfg = config.Default()
	} else {
		proj, err := project.Open(opts.ProjectRoot, nil)
		if err != nil {
			return nil, err
		}
		cfg = proj.Config
	}

	content, err := config.Marshal(cfg, format)
	if err != nil {
		return nil, err
	}
	return &ShowConfigResult{Format: format, Content: string(content)}, nil
}
