package initialize

import (
	"encoding/json"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/bmad-swarm/pkg/assets"
	"github.com/arthur-debert/bmad-swarm/pkg/config"
	"github.com/arthur-debert/bmad-swarm/pkg/errors"
	"github.com/arthur-debert/bmad-swarm/pkg/filesystem"
	"github.com/arthur-debert/bmad-swarm/pkg/generated"
	"github.com/arthur-debert/bmad-swarm/pkg/generators"
	"github.com/arthur-debert/bmad-swarm/pkg/logging"
	"github.com/arthur-debert/bmad-swarm/pkg/paths"
	"github.com/arthur-debert/bmad-swarm/pkg/template"
	"github.com/arthur-debert/bmad-swarm/pkg/types"
	"gopkg.in/yaml.v3"
)

// Answers describe the new project. Empty fields take the defaults.
type Answers struct {
	Name        string
	Description string
	Type        string
	Language    string
	Framework   string
	Database    string
	Testing     string
	Autonomy    string
}

// DefaultAnswers are used for anything not given.
var DefaultAnswers = Answers{
	Name:     "my-project",
	Type:     "web-app",
	Language: "TypeScript",
	Autonomy: "guided",
}

// Presets are stack templates selectable with --template.
var Presets = map[string]Answers{
	"next-app":    {Language: "TypeScript", Framework: "Next.js", Testing: "Jest"},
	"express-api": {Language: "TypeScript", Framework: "Express", Testing: "Jest"},
	"react-app":   {Language: "TypeScript", Framework: "React", Testing: "Vitest"},
	"node-cli":    {Language: "JavaScript", Testing: "node:test", Type: "cli"},
	"python-api":  {Language: "Python", Framework: "FastAPI", Testing: "pytest", Type: "api"},
}

// PresetNames returns the preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ArtifactDirs are created under the artifacts directory.
var ArtifactDirs = []string{
	"exploration",
	"planning",
	"design",
	"design/decisions",
	"implementation",
	"implementation/stories",
	"reviews",
	"context",
}

// InitOptions defines the options for the Init command.
type InitOptions struct {
	// ProjectRoot is where the project is created. Empty means the current
	// directory.
	ProjectRoot string
	// Answers given explicitly; they win over the preset.
	Answers Answers
	// Preset names a stack template from Presets.
	Preset string
	DryRun bool
	// FS defaults to the OS filesystem.
	FS types.FS
	// Now stamps project.yaml. Zero means time.Now.
	Now time.Time
}

// InitResult reports what Init created.
type InitResult struct {
	Answers      Answers
	ConfigPath   string
	ProjectFile  string
	ArtifactDirs []string
	Report       *generators.Report
	DryRun       bool
}

type projectState struct {
	Project struct {
		Name string `yaml:"name"`
		Type string `yaml:"type"`
	} `yaml:"project"`
	Phase   string `yaml:"phase"`
	Status  string `yaml:"status"`
	Created string `yaml:"created"`
}

// Init creates swarm.yaml, project.yaml and the artifact directories of a new
// project, then generates every managed file.
func Init(opts InitOptions) (*InitResult, error) {
	log := logging.GetLogger("commands.init")
	log.Debug().Str("command", "Init").Str("preset", opts.Preset).Msg("Executing command")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	p, err := paths.New(opts.ProjectRoot)
	if err != nil {
		return nil, err
	}

	for _, existing := range []string{p.ConfigYAML(), p.ConfigTOML()} {
		if _, err := fsys.Stat(existing); err == nil {
			return nil, errors.Newf(errors.ErrProjectExists,
				"this project already has a %s. Use `bmad-swarm update` to regenerate", filepath.Base(existing)).
				WithDetail("path", existing)
		}
	}

	answers, err := resolveAnswers(opts.Answers, opts.Preset)
	if err != nil {
		return nil, err
	}

	// 1. swarm.yaml, checked by loading it back
	swarmYAML, err := renderSwarmYAML(answers)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Parse([]byte(swarmYAML), config.FormatYAML, config.Options{
		SkipEnv:     true,
		KnownAgents: assets.AgentNames(),
	})
	if err != nil {
		return nil, err
	}

	manager := generated.NewManager(fsys).WithDryRun(opts.DryRun)
	if err := manager.WriteUnmanaged(p.ConfigYAML(), swarmYAML, 0644); err != nil {
		return nil, err
	}

	// 2. Managed files
	report, err := generators.New(fsys, p, cfg, generators.Options{DryRun: opts.DryRun}).GenerateAll()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrGenerate, "failed to generate project files")
	}

	result := &InitResult{
		Answers:     answers,
		ConfigPath:  p.ConfigYAML(),
		ProjectFile: p.ProjectFile(),
		Report:      report,
		DryRun:      opts.DryRun,
	}

	// 3. Artifact and override directories
	artifacts := p.ArtifactsDir(cfg.Output.ArtifactsDir)
	for _, dir := range ArtifactDirs {
		result.ArtifactDirs = append(result.ArtifactDirs, filepath.Join(artifacts, filepath.FromSlash(dir)))
	}
	if !opts.DryRun {
		for _, dir := range append(result.ArtifactDirs, p.OverridesAgentsDir()) {
			if err := fsys.MkdirAll(dir, 0755); err != nil {
				return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir)
			}
		}
	}

	// 4. project.yaml
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	var state projectState
	state.Project.Name = answers.Name
	state.Project.Type = answers.Type
	state.Phase = "not-started"
	state.Status = "initialized"
	state.Created = now.Format("2006-01-02")

	data, err := yaml.Marshal(&state)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode project.yaml")
	}
	if err := manager.WriteUnmanaged(p.ProjectFile(), string(data), 0644); err != nil {
		return nil, err
	}

	log.Info().Str("command", "Init").
		Str("project", answers.Name).
		Str("root", p.Root()).
		Bool("dryRun", opts.DryRun).
		Msg("Command finished")
	return result, nil
}

// resolveAnswers layers defaults, the preset and the explicit answers.
func resolveAnswers(given Answers, preset string) (Answers, error) {
	answers := DefaultAnswers
	if preset != "" {
		p, ok := Presets[preset]
		if !ok {
			return answers, errors.Newf(errors.ErrInvalidInput, "unknown template %q. Available: %s",
				preset, strings.Join(PresetNames(), ", ")).WithDetail("template", preset)
		}
		answers = overlay(answers, p)
		// a preset replaces the whole stack
		answers.Framework = p.Framework
		answers.Database = p.Database
	}
	return overlay(answers, given), nil
}

func overlay(base, top Answers) Answers {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&base.Name, top.Name)
	set(&base.Description, top.Description)
	set(&base.Type, top.Type)
	set(&base.Language, top.Language)
	set(&base.Framework, top.Framework)
	set(&base.Database, top.Database)
	set(&base.Testing, top.Testing)
	set(&base.Autonomy, top.Autonomy)
	return base
}

// renderSwarmYAML fills the package swarm.yaml template. Values are encoded
// as single-line YAML scalars so names like "a: b" survive.
func renderSwarmYAML(a Answers) (string, error) {
	tmpl, err := assets.Template(assets.SwarmYAMLTemplate)
	if err != nil {
		return "", err
	}

	ctx := template.Context{
		"project": map[string]any{
			"name":        yamlScalar(a.Name),
			"description": yamlScalar(a.Description),
			"type":        yamlScalar(a.Type),
		},
		"stack": map[string]any{
			"language":  yamlScalar(a.Language),
			"framework": yamlScalar(a.Framework),
			"database":  yamlScalar(a.Database),
			"testing":   yamlScalar(a.Testing),
		},
		"methodology": map[string]any{
			"autonomy": yamlScalar(a.Autonomy),
		},
	}
	return template.Render(tmpl, ctx), nil
}

// yamlScalar encodes s for use after "key: ". Empty stays empty so the
// template's conditionals still see it as unset.
func yamlScalar(s string) string {
	if s == "" {
		return ""
	}
	if out, err := yaml.Marshal(s); err == nil {
		enc := strings.TrimSuffix(string(out), "\n")
		if !strings.Contains(enc, "\n") {
			return enc
		}
	}
	// JSON strings are valid double-quoted YAML and never span lines
	out, _ := json.Marshal(s)
	return string(out)
}
