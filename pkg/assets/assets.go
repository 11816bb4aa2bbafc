// Package assets embeds the content bmad-swarm generates projects from:
// agent definitions, rules, hook scripts and file templates.
package assets

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/bmad-swarm/pkg/errors"
)

//go:embed agents rules hooks templates
var content embed.FS

const (
	agentsDir    = "agents"
	rulesDir     = "rules"
	hooksDir     = "hooks"
	templatesDir = "templates"
)

// Template names under templates/.
const (
	SystemPromptTemplate = "system-prompt.txt.template"
	ClaudeMDTemplate     = "CLAUDE.md.template"
	SettingsTemplate     = "settings.json.template"
	SwarmYAMLTemplate    = "swarm.yaml.template"
)

// FS returns the embedded content as a read-only filesystem.
func FS() fs.FS {
	return content
}

// AgentNames returns the built-in agent names, sorted.
func AgentNames() []string {
	names, _ := list(agentsDir, ".md")
	for i, n := range names {
		names[i] = strings.TrimSuffix(n, ".md")
	}
	return names
}

// IsAgent reports whether name is a built-in agent.
func IsAgent(name string) bool {
	for _, n := range AgentNames() {
		if n == name {
			return true
		}
	}
	return false
}

// Agent returns the package definition of a built-in agent.
func Agent(name string) (string, error) {
	return read(path.Join(agentsDir, name+".md"))
}

// RuleFiles returns the rule file names, sorted.
func RuleFiles() []string {
	names, _ := list(rulesDir, ".md")
	return names
}

// Rule returns the content of a rule template.
func Rule(file string) (string, error) {
	return read(path.Join(rulesDir, file))
}

// HookFiles returns the hook script names, sorted.
func HookFiles() []string {
	names, _ := list(hooksDir, ".cjs")
	return names
}

// Hook returns the content of a hook script template.
func Hook(file string) (string, error) {
	return read(path.Join(hooksDir, file))
}

// Template returns a file template by name.
func Template(name string) (string, error) {
	return read(path.Join(templatesDir, name))
}

func read(name string) (string, error) {
	data, err := fs.ReadFile(content, name)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTemplateNotFound, "no package template %s", name).
			WithDetail("template", name)
	}
	return string(data), nil
}

func list(dir, ext string) ([]string, error) {
	entries, err := fs.ReadDir(content, dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateRead, "failed to list %s", dir)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ext) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
