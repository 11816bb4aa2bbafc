// Package status implements `bmad-swarm status`: a summary of the project
// configuration, its lifecycle state and the drift of every managed file.
package status

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/bmad-swarm/pkg/commands/internal/project"
	"github.com/arthur-debert/bmad-swarm/pkg/config"
	"github.com/arthur-debert/bmad-swarm/pkg/errors"
	"github.com/arthur-debert/bmad-swarm/pkg/generated"
	"github.com/arthur-debert/bmad-swarm/pkg/generators"
	"github.com/arthur-debert/bmad-swarm/pkg/logging"
	"github.com/arthur-debert/bmad-swarm/pkg/types"
	"gopkg.in/yaml.v3"
)

// ArtifactSubdirs are counted in the report, in this order.
var ArtifactSubdirs = []string{"exploration", "planning", "design", "implementation", "reviews", "context"}

// StatusOptions defines the options for the Status command.
type StatusOptions struct {
	ProjectRoot string
}

// FileStatus is the drift state of one managed file.
type FileStatus struct {
	Section string
	// Path is relative to the project root.
	Path    string
	State   generated.State
	Ejected bool
}

// AgentStatus describes one agent.
type AgentStatus struct {
	Name    string
	Enabled bool
	Ejected bool
}

// ArtifactCount is the number of markdown files under an artifact subdir.
type ArtifactCount struct {
	Dir   string
	Count int
}

// StatusResult is the project report.
type StatusResult struct {
	Root   string
	Config *config.Config
	// Phase and State come from project.yaml; empty when it is missing.
	Phase     string
	State     string
	Agents    []AgentStatus
	Files     []FileStatus
	Artifacts []ArtifactCount
}

// Modified returns the files edited by hand.
func (r *StatusResult) Modified() []FileStatus {
	var out []FileStatus
	for _, f := range r.Files {
		if f.State == generated.StateModified {
			out = append(out, f)
		}
	}
	return out
}

// Stack is the "language + framework" summary line.
func (r *StatusResult) Stack() string {
	var parts []string
	for _, s := range []string{r.Config.Stack.Language, r.Config.Stack.Framework} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return "not specified"
	}
	return strings.Join(parts, " + ")
}

type projectState struct {
	Phase  string `yaml:"phase"`
	Status string `yaml:"status"`
}

// Status inspects the project at opts.ProjectRoot.
func Status(opts StatusOptions) (*StatusResult, error) {
	log := logging.GetLogger("commands.status")
	log.Debug().Str("command", "Status").Msg("Executing command")

	proj, err := project.Open(opts.ProjectRoot, nil)
	if err != nil {
		return nil, err
	}
	p := proj.Paths

	result := &StatusResult{Root: p.Root(), Config: proj.Config}

	// 1. Lifecycle state
	data, err := proj.FS.ReadFile(p.ProjectFile())
	switch {
	case err == nil:
		var st projectState
		if err := yaml.Unmarshal(data, &st); err != nil {
			log.Warn().Err(err).Str("path", p.ProjectFile()).Msg("Unreadable project.yaml")
		}
		result.Phase, result.State = st.Phase, st.Status
	case !stderrors.Is(err, fs.ErrNotExist):
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", p.ProjectFile())
	}

	// 2. Managed files
	gen := proj.Generator(generators.Options{})
	files, err := gen.ManagedFiles()
	if err != nil {
		return nil, err
	}
	manager := generated.NewManager(proj.FS)
	ejected := make(map[string]bool)
	for _, f := range files {
		st, err := manager.Inspect(f.Path)
		if err != nil {
			return nil, err
		}
		result.Files = append(result.Files, FileStatus{
			Section: f.Section,
			Path:    p.Rel(f.Path),
			State:   st.State,
			Ejected: f.Ejected,
		})
		if f.Ejected {
			ejected[strings.TrimSuffix(filepath.Base(f.Path), ".md")] = true
		}
	}

	// 3. Agents
	ctx, err := gen.Context()
	if err != nil {
		return nil, err
	}
	enabled := make(map[string]bool)
	for _, name := range ctx["agents"].(map[string]interface{})["names"].([]string) {
		enabled[name] = true
	}
	names, err := agentNames(proj.FS, p.AgentsDir(), enabled)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		result.Agents = append(result.Agents, AgentStatus{Name: name, Enabled: enabled[name], Ejected: ejected[name]})
	}

	// 4. Artifacts
	artifacts := p.ArtifactsDir(proj.Config.Output.ArtifactsDir)
	for _, dir := range ArtifactSubdirs {
		n, err := countMarkdown(proj.FS, filepath.Join(artifacts, dir))
		if err != nil {
			return nil, err
		}
		if n > 0 {
			result.Artifacts = append(result.Artifacts, ArtifactCount{Dir: dir, Count: n})
		}
	}

	log.Info().Str("command", "Status").Int("modified", len(result.Modified())).Msg("Command finished")
	return result, nil
}

// agentNames merges the configured agents with whatever is on disk, so stale
// agent files show up as disabled.
func agentNames(fsys types.FS, dir string, enabled map[string]bool) ([]string, error) {
	seen := make(map[string]bool, len(enabled))
	var names []string
	for name := range enabled {
		seen[name] = true
		names = append(names, name)
	}

	entries, err := fsys.ReadDir(dir)
	if err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", dir)
	}
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if e.IsDir() || name == e.Name() || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// countMarkdown counts *.md files below dir. A missing dir counts zero.
func countMarkdown(fsys types.FS, dir string) (int, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", dir)
	}
	n := 0
	for _, e := range entries {
		if e.IsDir() {
			sub, err := countMarkdown(fsys, filepath.Join(dir, e.Name()))
			if err != nil {
				return 0, err
			}
			n += sub
			continue
		}
		if strings.HasSuffix(e.Name(), ".md") {
			n++
		}
	}
	return n, nil
}
