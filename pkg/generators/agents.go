package generators

import (
	stderrors "errors"
	"io/fs"
	"regexp"
	"strings"

	"github.com/arthur-debert/bmad-swarm/pkg/assets"
	"github.com/arthur-debert/bmad-swarm/pkg/config"
	"github.com/arthur-debert/bmad-swarm/pkg/errors"
	"github.com/arthur-debert/bmad-swarm/pkg/generated"
	"github.com/arthur-debert/bmad-swarm/pkg/paths"
	"github.com/arthur-debert/bmad-swarm/pkg/plugins"
	"github.com/arthur-debert/bmad-swarm/pkg/types"
)

const projectInfoHeading = "## Project Info"

// Project Info is always the last section; everything from its heading on
// is replaced.
var projectInfoRe = regexp.MustCompile(`\n+## Project Info\n(?s:.*)$`)

// Agents generates .claude/agents/<name>.md for every enabled agent.
//
// Content is layered: the package definition rendered against the data
// context, then the agent's swarm.yaml customizations, then a Project Info
// section. An agent ejected to overrides/agents/ is rendered from that copy
// instead and written without a header; it is reported as Skipped.
func (g *Generator) Agents() (Result, error) {
	var res Result

	names, active, err := g.agents()
	if err != nil {
		return res, err
	}
	ctx := DataContext(g.cfg, names)

	pluginByName := make(map[string]plugins.Agent, len(active))
	for _, p := range active {
		pluginByName[p.Name] = p
	}

	for _, name := range names {
		if !g.cfg.AgentEnabled(name) {
			g.logger.Debug().Str("agent", name).Msg("agent disabled")
			continue
		}
		outPath := g.paths.AgentFile(name)

		ejected, ok, err := g.readIfExists(g.paths.EjectedAgentFile(name))
		if err != nil {
			return res, err
		}
		if ok {
			body := g.render("ejected/"+name, ejected, ctx)
			if err := g.manager.WriteUnmanaged(outPath, body, filePerm); err != nil {
				return res, err
			}
			res.Skipped = append(res.Skipped, name)
			continue
		}

		var tmpl string
		if p, isPlugin := pluginByName[name]; isPlugin {
			tmpl, err = plugins.Load(g.fs, p)
		} else {
			tmpl, err = g.source.Agent(name)
		}
		if err != nil {
			g.logger.Warn().Err(err).Str("agent", name).Msg("no template for agent")
			continue
		}

		body := g.render("agents/"+name, tmpl, ctx)
		if ac, has := g.cfg.Agent(name); has {
			body = applyAgentOverrides(body, ac)
		}
		body = injectProjectInfo(body, g.cfg)

		out, err := g.write(outPath, body, generated.MarkupComment, filePerm)
		if err != nil {
			return res, err
		}
		res.record(name, out)
	}
	return res, nil
}

func (g *Generator) readIfExists(path string) (string, bool, error) {
	data, err := g.fs.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path)
	}
	return string(data), true, nil
}

// applyAgentOverrides appends extra context and rules and records the
// preferred model as a leading comment.
func applyAgentOverrides(content string, ac config.AgentConfig) string {
	if ac.ExtraContext != "" {
		content += "\n\n## Project-Specific Context\n\n" + ac.ExtraContext + "\n"
	}

	if len(ac.ExtraRules) > 0 {
		var b strings.Builder
		b.WriteString(content)
		b.WriteString("\n\n## Additional Rules\n\n")
		for _, rule := range ac.ExtraRules {
			b.WriteString("- " + rule + "\n")
		}
		content = b.String()
	}

	if ac.Model != "" {
		content = "<!-- preferred-model: " + ac.Model + " -->\n" + content
	}
	return content
}

// injectProjectInfo replaces any Project Info section with one describing
// the current configuration.
func injectProjectInfo(content string, cfg *config.Config) string {
	content = projectInfoRe.ReplaceAllString(content, "")
	content = strings.TrimRight(content, " \t\r\n")

	lines := []string{projectInfoHeading, ""}
	lines = append(lines, "- **Project**: "+cfg.Project.Name)
	if cfg.Project.Description != "" {
		lines = append(lines, "- **Description**: "+cfg.Project.Description)
	}
	lines = append(lines, "- **Type**: "+cfg.Project.Type)
	if cfg.Stack.Language != "" {
		lines = append(lines, "- **Language**: "+cfg.Stack.Language)
	}
	if cfg.Stack.Framework != "" {
		lines = append(lines, "- **Framework**: "+cfg.Stack.Framework)
	}
	if cfg.Stack.Database != "" {
		lines = append(lines, "- **Database**: "+cfg.Stack.Database)
	}
	lines = append(lines,
		"- **Artifacts**: "+cfg.Output.ArtifactsDir,
		"- **Code**: "+cfg.Output.CodeDir,
		"- **Autonomy**: "+cfg.Methodology.Autonomy,
	)

	return content + "\n\n" + strings.Join(lines, "\n") + "\n"
}

// EjectAgent copies the package definition of a built-in agent to
// overrides/agents/ so it can be customized freely. It returns the path of
// the copy.
func EjectAgent(fsys types.FS, p *paths.ProjectPaths, src assets.Source, name string) (string, error) {
	if src == nil {
		src = assets.Embedded{}
	}
	if err := checkAgent(src, name); err != nil {
		return "", err
	}

	content, err := src.Agent(name)
	if err != nil {
		return "", err
	}

	target := p.EjectedAgentFile(name)
	if _, err := fsys.Stat(target); err == nil {
		return "", errors.Newf(errors.ErrAgentEjected, "agent %q is already ejected at %s", name, target).
			WithDetail("path", target)
	}

	header := "<!-- EJECTED from bmad-swarm - this file takes priority over the package version -->\n" +
		"<!-- To return to package version, run: bmad-swarm uneject agent " + name + " -->\n\n"

	if err := fsys.MkdirAll(p.OverridesAgentsDir(), 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", p.OverridesAgentsDir())
	}
	if err := fsys.WriteFile(target, []byte(header+content), filePerm); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", target)
	}
	return target, nil
}

// UnejectAgent removes an ejected agent so the package version is used
// again.
func UnejectAgent(fsys types.FS, p *paths.ProjectPaths, src assets.Source, name string) error {
	if src == nil {
		src = assets.Embedded{}
	}
	if err := checkAgent(src, name); err != nil {
		return err
	}

	target := p.EjectedAgentFile(name)
	if _, err := fsys.Stat(target); err != nil {
		return errors.Newf(errors.ErrAgentNotEjected, "agent %q is not ejected (no file at %s)", name, target).
			WithDetail("path", target)
	}
	if err := fsys.Remove(target); err != nil {
		return errors.Wrapf(err, errors.ErrFileRemove, "failed to remove %s", target)
	}
	return nil
}

func checkAgent(src assets.Source, name string) error {
	if err := paths.ValidateName(name); err != nil {
		return err
	}
	known := src.AgentNames()
	for _, n := range known {
		if n == name {
			return nil
		}
	}
	return errors.Newf(errors.ErrAgentUnknown, "unknown agent: %q. Valid agents: %s", name, strings.Join(known, ", ")).
		WithDetail("agent", name)
}
