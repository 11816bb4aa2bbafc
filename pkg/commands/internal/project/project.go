// Package project opens an initialized bmad-swarm project for the commands.
package project

import (
	"github.com/arthur-debert/bmad-swarm/pkg/assets"
	"github.com/arthur-debert/bmad-swarm/pkg/config"
	"github.com/arthur-debert/bmad-swarm/pkg/errors"
	"github.com/arthur-debert/bmad-swarm/pkg/filesystem"
	"github.com/arthur-debert/bmad-swarm/pkg/generators"
	"github.com/arthur-debert/bmad-swarm/pkg/paths"
	"github.com/arthur-debert/bmad-swarm/pkg/types"
)

// Project is a loaded project: its layout, configuration and filesystem.
type Project struct {
	FS     types.FS
	Paths  *paths.ProjectPaths
	Config *config.Config
}

// Open loads the project at root. A project without swarm.yaml (or
// swarm.toml) is reported as ErrProjectMissing.
func Open(root string, overrides map[string]interface{}) (*Project, error) {
	p, err := paths.New(root)
	if err != nil {
		return nil, err
	}

	if _, _, ok := config.FindProjectFile(p); !ok {
		return nil, errors.Newf(errors.ErrProjectMissing,
			"no swarm.yaml found in %s. Run `bmad-swarm init` first", p.Root()).
			WithDetail("root", p.Root())
	}

	cfg, err := config.Load(p, config.Options{
		Overrides:   overrides,
		KnownAgents: assets.AgentNames(),
	})
	if err != nil {
		return nil, err
	}

	return &Project{FS: filesystem.NewOS(), Paths: p, Config: cfg}, nil
}

// Generator returns a generator for the project.
func (p *Project) Generator(opts generators.Options) *generators.Generator {
	return generators.New(p.FS, p.Paths, p.Config, opts)
}
