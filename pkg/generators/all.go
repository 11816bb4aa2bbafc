package generators

import (
	"path/filepath"

	"github.com/arthur-debert/bmad-swarm/pkg/logging"
)

// Section is the result of one generator within a full run.
type Section struct {
	Name   string
	Target string
	Result Result
}

// Report collects the results of GenerateAll in run order.
type Report struct {
	Sections []Section
}

// Modified lists every hand-edited file that was left alone, as
// "<section>/<item>".
func (r *Report) Modified() []string {
	var out []string
	for _, s := range r.Sections {
		for _, m := range s.Result.Modified {
			out = append(out, s.Name+"/"+m)
		}
	}
	return out
}

// Section returns the named section.
func (r *Report) Section(name string) (Section, bool) {
	for _, s := range r.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// Section names.
const (
	SectionAgents       = "agents"
	SectionRules        = "rules"
	SectionSystemPrompt = "system-prompt"
	SectionClaudeMD     = "claude-md"
	SectionHooks        = "hooks"
	SectionSettings     = "settings"
)

// GenerateAll runs every generator in order and stops at the first error.
func (g *Generator) GenerateAll() (*Report, error) {
	done := logging.LogOperationStart(g.logger, "generate-all")
	defer done()

	steps := []struct {
		name   string
		target string
		run    func() (Result, error)
	}{
		{SectionAgents, g.paths.Rel(g.paths.AgentsDir()), g.Agents},
		{SectionRules, g.paths.Rel(g.paths.RulesDir()), g.Rules},
		{SectionSystemPrompt, g.paths.Rel(g.paths.SystemPromptFile()), g.SystemPrompt},
		{SectionClaudeMD, g.paths.Rel(g.paths.ClaudeMD()), g.ClaudeMD},
		{SectionHooks, g.paths.Rel(g.paths.HooksDir()), g.Hooks},
		{SectionSettings, g.paths.Rel(g.paths.SettingsFile()), g.Settings},
	}

	report := &Report{}
	for _, step := range steps {
		res, err := step.run()
		if err != nil {
			return report, err
		}
		report.Sections = append(report.Sections, Section{Name: step.name, Target: step.target, Result: res})
	}
	return report, nil
}

// ManagedFile is a file GenerateAll would protect with a header.
type ManagedFile struct {
	Section string
	Path    string
	// Ejected agents are written without a header.
	Ejected bool
}

// ManagedFiles lists the files the current configuration manages.
func (g *Generator) ManagedFiles() ([]ManagedFile, error) {
	names, _, err := g.agents()
	if err != nil {
		return nil, err
	}

	var files []ManagedFile
	for _, name := range names {
		if !g.cfg.AgentEnabled(name) {
			continue
		}
		_, ejected, err := g.readIfExists(g.paths.EjectedAgentFile(name))
		if err != nil {
			return nil, err
		}
		files = append(files, ManagedFile{Section: SectionAgents, Path: g.paths.AgentFile(name), Ejected: ejected})
	}
	for _, file := range g.source.RuleFiles() {
		files = append(files, ManagedFile{Section: SectionRules, Path: filepath.Join(g.paths.RulesDir(), file)})
	}
	files = append(files,
		ManagedFile{Section: SectionSystemPrompt, Path: g.paths.SystemPromptFile()},
		ManagedFile{Section: SectionClaudeMD, Path: g.paths.ClaudeMD()},
	)
	for _, file := range g.source.HookFiles() {
		files = append(files, ManagedFile{Section: SectionHooks, Path: filepath.Join(g.paths.HooksDir(), file)})
	}
	return files, nil
}
