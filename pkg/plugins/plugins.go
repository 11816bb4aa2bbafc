// Package plugins discovers user-defined agents that extend the built-in set.
package plugins

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/bmad-swarm/pkg/errors"
	"github.com/arthur-debert/bmad-swarm/pkg/types"
)

// DefaultAgentsDir is used when the configuration names no plugin directory.
const DefaultAgentsDir = "plugins/agents"

// Agent is a plugin agent definition on disk.
type Agent struct {
	Name string
	Path string
}

// Discover lists the *.md files in agentsDir (relative to projectRoot unless
// absolute). A missing directory yields no plugins.
func Discover(fsys types.FS, projectRoot, agentsDir string) ([]Agent, error) {
	if agentsDir == "" {
		agentsDir = DefaultAgentsDir
	}
	dir := agentsDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(projectRoot, agentsDir)
	}

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read plugin directory %s", dir)
	}

	var agents []Agent
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		agents = append(agents, Agent{
			Name: strings.TrimSuffix(e.Name(), ".md"),
			Path: filepath.Join(dir, e.Name()),
		})
	}
	sort.Slice(agents, func(i, j int) bool { return agents[i].Name < agents[j].Name })
	return agents, nil
}

// Load reads a plugin agent's definition.
func Load(fsys types.FS, a Agent) (string, error) {
	data, err := fsys.ReadFile(a.Path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead, "failed to read plugin agent %s", a.Name)
	}
	return string(data), nil
}

// Merge combines built-in agent names with plugins. Plugins that share a
// name with a built-in agent are dropped. It returns the sorted union of
// names and the plugins that remain active.
func Merge(builtIn []string, plugins []Agent) ([]string, []Agent) {
	known := make(map[string]bool, len(builtIn))
	for _, n := range builtIn {
		known[n] = true
	}

	all := append([]string(nil), builtIn...)
	var active []Agent
	for _, p := range plugins {
		if known[p.Name] {
			continue
		}
		known[p.Name] = true
		active = append(active, p)
		all = append(all, p.Name)
	}
	sort.Strings(all)
	return all, active
}
