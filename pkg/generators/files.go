package generators

import (
	"path/filepath"

	"github.com/arthur-debert/bmad-swarm/pkg/assets"
	"github.com/arthur-debert/bmad-swarm/pkg/generated"
	"github.com/arthur-debert/bmad-swarm/pkg/paths"
)

const fallbackSystemPrompt = "You are the orchestrator. Coordinate all work by delegating to specialist agents.\n"

// Rules generates .claude/rules/*.md in file name order.
func (g *Generator) Rules() (Result, error) {
	var res Result
	ctx, err := g.Context()
	if err != nil {
		return res, err
	}

	for _, file := range g.source.RuleFiles() {
		tmpl, err := g.source.Rule(file)
		if err != nil {
			return res, err
		}
		body := g.render("rules/"+file, tmpl, ctx)
		out, err := g.write(filepath.Join(g.paths.RulesDir(), file), body, generated.MarkupComment, filePerm)
		if err != nil {
			return res, err
		}
		res.record(file, out)
	}
	return res, nil
}

// SystemPrompt generates .claude/system-prompt.txt. A minimal prompt is used
// when the package has no template.
func (g *Generator) SystemPrompt() (Result, error) {
	var res Result
	ctx, err := g.Context()
	if err != nil {
		return res, err
	}

	tmpl, err := g.source.Template(assets.SystemPromptTemplate)
	if err != nil {
		g.logger.Debug().Err(err).Msg("using fallback system prompt")
		tmpl = fallbackSystemPrompt
	}

	body := g.render(assets.SystemPromptTemplate, tmpl, ctx)
	out, err := g.write(g.paths.SystemPromptFile(), body, generated.MarkupComment, filePerm)
	if err != nil {
		return res, err
	}
	res.record(paths.SystemPromptFile, out)
	return res, nil
}

// ClaudeMD generates the project's CLAUDE.md.
func (g *Generator) ClaudeMD() (Result, error) {
	var res Result
	ctx, err := g.Context()
	if err != nil {
		return res, err
	}

	tmpl, err := g.source.Template(assets.ClaudeMDTemplate)
	if err != nil {
		return res, err
	}

	body := g.render(assets.ClaudeMDTemplate, tmpl, ctx)
	out, err := g.write(g.paths.ClaudeMD(), body, generated.MarkupComment, filePerm)
	if err != nil {
		return res, err
	}
	res.record(paths.ClaudeMDFile, out)
	return res, nil
}

// Hooks generates the executable hook scripts in .claude/hooks/. The header
// goes below the shebang.
func (g *Generator) Hooks() (Result, error) {
	var res Result
	ctx, err := g.Context()
	if err != nil {
		return res, err
	}

	for _, file := range g.source.HookFiles() {
		tmpl, err := g.source.Hook(file)
		if err != nil {
			return res, err
		}
		body := g.render("hooks/"+file, tmpl, ctx)
		out, err := g.write(filepath.Join(g.paths.HooksDir(), file), body, generated.StyleForPath(file), scriptPerm)
		if err != nil {
			return res, err
		}
		res.record(file, out)
	}
	return res, nil
}

// Settings copies the package settings.json. JSON has no comment syntax, so
// the file carries no header and is always rewritten.
func (g *Generator) Settings() (Result, error) {
	var res Result

	content, err := g.source.Template(assets.SettingsTemplate)
	if err != nil {
		return res, err
	}

	target := g.paths.SettingsFile()
	existing, ok, err := g.readIfExists(target)
	if err != nil {
		return res, err
	}
	if ok && existing == content {
		res.Unchanged = append(res.Unchanged, paths.SettingsFile)
		return res, nil
	}

	if err := g.manager.WriteUnmanaged(target, content, filePerm); err != nil {
		return res, err
	}
	res.Generated = append(res.Generated, paths.SettingsFile)
	return res, nil
}
