// Package generators produces a project's managed files (agents, rules,
// hooks, system prompt, CLAUDE.md, settings) from the package content and
// the swarm configuration.
//
// Every managed file is written through generated.Manager, so files a user
// has edited by hand are skipped and reported unless Force is set.
package generators

import (
	"io/fs"

	"github.com/arthur-debert/bmad-swarm/pkg/assets"
	"github.com/arthur-debert/bmad-swarm/pkg/config"
	"github.com/arthur-debert/bmad-swarm/pkg/generated"
	"github.com/arthur-debert/bmad-swarm/pkg/logging"
	"github.com/arthur-debert/bmad-swarm/pkg/paths"
	"github.com/arthur-debert/bmad-swarm/pkg/plugins"
	"github.com/arthur-debert/bmad-swarm/pkg/template"
	"github.com/arthur-debert/bmad-swarm/pkg/types"
	"github.com/rs/zerolog"
)

const (
	filePerm   fs.FileMode = 0644
	scriptPerm fs.FileMode = 0755
)

// Options control how generators write.
type Options struct {
	// Force overwrites files that were edited by hand.
	Force bool
	// DryRun computes results without writing anything.
	DryRun bool
	// Source overrides the embedded package content.
	Source assets.Source
}

// Result lists what a generator did, by item name (agent name or file name).
type Result struct {
	// Generated items were created or rewritten.
	Generated []string
	// Skipped items were deliberately not generated (ejected agents).
	Skipped []string
	// Modified items were left alone because they were edited by hand.
	Modified []string
	// Unchanged items already had the exact content.
	Unchanged []string
}

func (r *Result) record(name string, o generated.Outcome) {
	switch o {
	case generated.OutcomeCreated, generated.OutcomeUpdated:
		r.Generated = append(r.Generated, name)
	case generated.OutcomeUnchanged:
		r.Unchanged = append(r.Unchanged, name)
	case generated.OutcomeSkippedModified:
		r.Modified = append(r.Modified, name)
	}
}

// Generator renders and writes the managed files of one project.
type Generator struct {
	fs       types.FS
	paths    *paths.ProjectPaths
	cfg      *config.Config
	opts     Options
	source   assets.Source
	manager  *generated.Manager
	renderer *template.Renderer
	logger   zerolog.Logger

	plugins []plugins.Agent
	names   []string
	loaded  bool
}

// New creates a Generator for the project at p configured by cfg.
func New(fsys types.FS, p *paths.ProjectPaths, cfg *config.Config, opts Options) *Generator {
	src := opts.Source
	if src == nil {
		src = assets.Embedded{}
	}
	return &Generator{
		fs:       fsys,
		paths:    p,
		cfg:      cfg,
		opts:     opts,
		source:   src,
		manager:  generated.NewManager(fsys).WithDryRun(opts.DryRun),
		renderer: template.NewRenderer(),
		logger:   logging.GetLogger("generators"),
	}
}

// agents returns every agent name (built-in and plugin, sorted) and the
// active plugins. Plugins are discovered once.
func (g *Generator) agents() ([]string, []plugins.Agent, error) {
	if !g.loaded {
		found, err := plugins.Discover(g.fs, g.paths.Root(), g.cfg.Plugins.AgentsDir)
		if err != nil {
			return nil, nil, err
		}
		g.names, g.plugins = plugins.Merge(g.source.AgentNames(), found)
		g.loaded = true
	}
	return g.names, g.plugins, nil
}

// Context returns the data context templates are rendered against.
func (g *Generator) Context() (template.Context, error) {
	names, _, err := g.agents()
	if err != nil {
		return nil, err
	}
	return DataContext(g.cfg, names), nil
}

func (g *Generator) render(name, tmpl string, ctx template.Context) string {
	return g.renderer.Render(name, tmpl, ctx)
}

func (g *Generator) write(path, body string, style generated.HeaderStyle, perm fs.FileMode) (generated.Outcome, error) {
	out, err := g.manager.WriteIfUnmodified(path, body, style, perm, g.opts.Force)
	if err != nil {
		return out, err
	}
	g.logger.Debug().
		Str("path", g.paths.Rel(path)).
		Str("outcome", out.String()).
		Bool("dry_run", g.opts.DryRun).
		Msg("managed file")
	return out, nil
}
