package generators

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/bmad-swarm/pkg/assets"
	"github.com/arthur-debert/bmad-swarm/pkg/config"
	"github.com/arthur-debert/bmad-swarm/pkg/errors"
	"github.com/arthur-debert/bmad-swarm/pkg/filesystem"
	"github.com/arthur-debert/bmad-swarm/pkg/generated"
	"github.com/arthur-debert/bmad-swarm/pkg/paths"
	"github.com/arthur-debert/bmad-swarm/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseConfig = `
project:
  name: demo
  type: web-app
  description: A demo app
stack:
  language: Go
  framework: Gin
  database: Postgres
  testing: go test
methodology:
  autonomy: guided
`

type fixture struct {
	fs    types.FS
	paths *paths.ProjectPaths
	cfg   *config.Config
}

func newFixture(t *testing.T, yaml string) *fixture {
	t.Helper()
	cfg, err := config.Parse([]byte(yaml), config.FormatYAML, config.Options{SkipEnv: true})
	require.NoError(t, err)
	p, err := paths.New("/proj")
	require.NoError(t, err)
	return &fixture{fs: filesystem.NewMemory(), paths: p, cfg: cfg}
}

func (f *fixture) generator(opts Options) *Generator {
	return New(f.fs, f.paths, f.cfg, opts)
}

func (f *fixture) read(t *testing.T, path string) string {
	t.Helper()
	data, err := f.fs.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func (f *fixture) exists(path string) bool {
	_, err := f.fs.Stat(path)
	return err == nil
}

func TestGenerateAll(t *testing.T) {
	f := newFixture(t, baseConfig)

	report, err := f.generator(Options{}).GenerateAll()
	require.NoError(t, err)

	var names []string
	for _, s := range report.Sections {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		SectionAgents, SectionRules, SectionSystemPrompt, SectionClaudeMD, SectionHooks, SectionSettings,
	}, names)

	agents, ok := report.Section(SectionAgents)
	require.True(t, ok)
	assert.Equal(t, assets.AgentNames(), agents.Result.Generated)
	assert.Equal(t, filepath.Join(".claude", "agents"), agents.Target)

	for _, name := range assets.AgentNames() {
		content := f.read(t, f.paths.AgentFile(name))
		assert.True(t, strings.HasPrefix(content, "<!-- bmad-generated:"), name)
		assert.False(t, generated.HasDrifted(content), name)
		assert.Contains(t, content, "- **Project**: demo")
		assert.NotContains(t, content, "{{project.name}}")
	}

	for _, file := range assets.RuleFiles() {
		assert.True(t, f.exists(filepath.Join(f.paths.RulesDir(), file)), file)
	}

	prompt := f.read(t, f.paths.SystemPromptFile())
	assert.Contains(t, prompt, "orchestrator of the demo swarm")
	assert.Contains(t, prompt, "Autonomy is guided")
	assert.NotContains(t, prompt, "Autonomy is auto")

	claude := f.read(t, f.paths.ClaudeMD())
	assert.Contains(t, claude, "# demo")
	assert.Contains(t, claude, "- **Stack**: Go, Gin, Postgres")
	assert.Contains(t, claude, "- **Framework**: Gin")

	for _, file := range assets.HookFiles() {
		path := filepath.Join(f.paths.HooksDir(), file)
		content := f.read(t, path)
		assert.True(t, strings.HasPrefix(content, "#!/usr/bin/env node\n// bmad-generated:"), file)
		info, err := f.fs.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, scriptPerm, info.Mode().Perm(), file)
	}

	settings := f.read(t, f.paths.SettingsFile())
	want, err := assets.Template(assets.SettingsTemplate)
	require.NoError(t, err)
	assert.Equal(t, want, settings)
}

func TestGenerateAllIsIdempotent(t *testing.T) {
	f := newFixture(t, baseConfig)
	_, err := f.generator(Options{}).GenerateAll()
	require.NoError(t, err)

	report, err := f.generator(Options{}).GenerateAll()
	require.NoError(t, err)

	for _, s := range report.Sections {
		assert.Empty(t, s.Result.Generated, s.Name)
		assert.Empty(t, s.Result.Modified, s.Name)
		assert.NotEmpty(t, s.Result.Unchanged, s.Name)
	}
	assert.Empty(t, report.Modified())
}

func TestModifiedFilesAreSkipped(t *testing.T) {
	f := newFixture(t, baseConfig)
	_, err := f.generator(Options{}).GenerateAll()
	require.NoError(t, err)

	path := f.paths.AgentFile("developer")
	edited := f.read(t, path) + "\nMy own notes.\n"
	require.NoError(t, f.fs.WriteFile(path, []byte(edited), 0644))

	report, err := f.generator(Options{}).GenerateAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"agents/developer"}, report.Modified())
	assert.Equal(t, edited, f.read(t, path))

	t.Run("force overwrites", func(t *testing.T) {
		res, err := f.generator(Options{Force: true}).Agents()
		require.NoError(t, err)
		assert.Equal(t, []string{"developer"}, res.Generated)
		assert.NotContains(t, f.read(t, path), "My own notes.")
		assert.False(t, generated.HasDrifted(f.read(t, path)))
	})
}

func TestDryRunWritesNothing(t *testing.T) {
	f := newFixture(t, baseConfig)

	report, err := f.generator(Options{DryRun: true}).GenerateAll()
	require.NoError(t, err)

	agents, _ := report.Section(SectionAgents)
	assert.NotEmpty(t, agents.Result.Generated)
	settings, _ := report.Section(SectionSettings)
	assert.Equal(t, []string{paths.SettingsFile}, settings.Result.Generated)

	assert.False(t, f.exists(f.paths.ClaudeDir()))
	assert.False(t, f.exists(f.paths.ClaudeMD()))
}

func TestDisabledAgents(t *testing.T) {
	f := newFixture(t, baseConfig+`
agents:
  qa:
    enabled: false
  researcher:
    enabled: "false"
`)
	g := f.generator(Options{})

	res, err := g.Agents()
	require.NoError(t, err)
	assert.NotContains(t, res.Generated, "qa")
	assert.NotContains(t, res.Generated, "researcher")
	assert.Contains(t, res.Generated, "developer")
	assert.False(t, f.exists(f.paths.AgentFile("qa")))

	_, err = g.ClaudeMD()
	require.NoError(t, err)
	claude := f.read(t, f.paths.ClaudeMD())
	assert.Contains(t, claude, "(7 agents)")
	assert.NotContains(t, claude, "qa,")
}

func TestAgentOverrides(t *testing.T) {
	f := newFixture(t, baseConfig+`
agents:
  developer:
    extra_context: Always use the repository pattern.
    extra_rules:
      - No global state
      - Wrap every error
    model: opus
`)

	_, err := f.generator(Options{}).Agents()
	require.NoError(t, err)

	content := f.read(t, f.paths.AgentFile("developer"))
	h, ok := generated.ParseHeader(content)
	require.True(t, ok)

	assert.True(t, strings.HasPrefix(h.Body, "<!-- preferred-model: opus -->\n---\nname: developer\n"))
	assert.Contains(t, h.Body, "## Project-Specific Context\n\nAlways use the repository pattern.\n")
	assert.Contains(t, h.Body, "## Additional Rules\n\n- No global state\n- Wrap every error\n")
	assert.True(t, strings.HasSuffix(h.Body, "- **Autonomy**: guided\n"))

	ctxIdx := strings.Index(h.Body, "## Project-Specific Context")
	infoIdx := strings.Index(h.Body, projectInfoHeading)
	assert.Less(t, ctxIdx, infoIdx)
}

func TestInjectProjectInfo(t *testing.T) {
	f := newFixture(t, baseConfig)

	t.Run("appends section", func(t *testing.T) {
		out := injectProjectInfo("# Agent\n\nDo things.\n", f.cfg)
		assert.True(t, strings.HasPrefix(out, "# Agent\n\nDo things.\n\n## Project Info\n\n- **Project**: demo\n"))
		assert.Contains(t, out, "- **Description**: A demo app\n")
		assert.Contains(t, out, "- **Language**: Go\n")
		assert.Contains(t, out, "- **Artifacts**: ./artifacts\n")
	})

	t.Run("replaces existing section", func(t *testing.T) {
		in := "# Agent\n\n## Project Info\n\n- **Project**: stale\n- **Type**: cli\n"
		out := injectProjectInfo(in, f.cfg)
		assert.Equal(t, 1, strings.Count(out, projectInfoHeading))
		assert.NotContains(t, out, "stale")
	})

	t.Run("idempotent", func(t *testing.T) {
		once := injectProjectInfo("# Agent\n", f.cfg)
		assert.Equal(t, once, injectProjectInfo(once, f.cfg))
	})

	t.Run("omits empty stack fields", func(t *testing.T) {
		bare := newFixture(t, "project:\n  name: bare\n")
		out := injectProjectInfo("# Agent\n", bare.cfg)
		assert.NotContains(t, out, "**Language**")
		assert.NotContains(t, out, "**Description**")
		assert.Contains(t, out, "- **Type**: other\n")
	})
}

func TestEjectedAgents(t *testing.T) {
	f := newFixture(t, baseConfig)

	target, err := EjectAgent(f.fs, f.paths, nil, "qa")
	require.NoError(t, err)
	assert.Equal(t, f.paths.EjectedAgentFile("qa"), target)

	ejected := f.read(t, target)
	assert.True(t, strings.HasPrefix(ejected, "<!-- EJECTED from bmad-swarm"))
	assert.Contains(t, ejected, "bmad-swarm uneject agent qa")
	original, err := assets.Agent("qa")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ejected, original))

	custom := strings.Replace(ejected, "---\nname: qa", "---\nname: qa\n# customized for {{project.name}}", 1)
	require.NoError(t, f.fs.WriteFile(target, []byte(custom), 0644))

	res, err := f.generator(Options{}).Agents()
	require.NoError(t, err)
	assert.Equal(t, []string{"qa"}, res.Skipped)
	assert.NotContains(t, res.Generated, "qa")

	out := f.read(t, f.paths.AgentFile("qa"))
	_, managed := generated.ParseHeader(out)
	assert.False(t, managed)
	assert.Contains(t, out, "# customized for demo")

	t.Run("eject twice", func(t *testing.T) {
		_, err := EjectAgent(f.fs, f.paths, nil, "qa")
		assert.True(t, errors.IsErrorCode(err, errors.ErrAgentEjected))
	})

	t.Run("uneject", func(t *testing.T) {
		require.NoError(t, UnejectAgent(f.fs, f.paths, nil, "qa"))
		assert.False(t, f.exists(target))

		err := UnejectAgent(f.fs, f.paths, nil, "qa")
		assert.True(t, errors.IsErrorCode(err, errors.ErrAgentNotEjected))

		// the unmanaged copy is replaced on the next run
		res, err := f.generator(Options{}).Agents()
		require.NoError(t, err)
		assert.Contains(t, res.Generated, "qa")
		_, managed := generated.ParseHeader(f.read(t, f.paths.AgentFile("qa")))
		assert.True(t, managed)
	})
}

func TestEjectErrors(t *testing.T) {
	f := newFixture(t, baseConfig)

	tests := []struct {
		name  string
		agent string
		code  errors.ErrorCode
	}{
		{"unknown", "wizard", errors.ErrAgentUnknown},
		{"traversal", "../qa", errors.ErrInvalidInput},
		{"empty", "", errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EjectAgent(f.fs, f.paths, nil, tt.agent)
			assert.True(t, errors.IsErrorCode(err, tt.code), "eject: %v", err)

			err = UnejectAgent(f.fs, f.paths, nil, tt.agent)
			assert.True(t, errors.IsErrorCode(err, tt.code), "uneject: %v", err)
		})
	}
}

func TestPluginAgents(t *testing.T) {
	f := newFixture(t, baseConfig)
	dir := filepath.Join(f.paths.Root(), "plugins", "agents")
	require.NoError(t, f.fs.MkdirAll(dir, 0755))
	require.NoError(t, f.fs.WriteFile(filepath.Join(dir, "security.md"),
		[]byte("---\nname: security\n---\n\n# Security for {{project.name}}\n"), 0644))

	g := f.generator(Options{})
	res, err := g.Agents()
	require.NoError(t, err)
	assert.Contains(t, res.Generated, "security")

	content := f.read(t, f.paths.AgentFile("security"))
	assert.Contains(t, content, "# Security for demo")
	assert.Contains(t, content, projectInfoHeading)

	ctx, err := g.Context()
	require.NoError(t, err)
	assert.Equal(t, len(assets.AgentNames())+1, ctx["agents"].(map[string]interface{})["count"])
}

func TestClaudeMDWithoutOptionalStack(t *testing.T) {
	f := newFixture(t, "project:\n  name: bare\n  type: cli\n")

	_, err := f.generator(Options{}).ClaudeMD()
	require.NoError(t, err)

	claude := f.read(t, f.paths.ClaudeMD())
	assert.Contains(t, claude, "- **Stack**: Not specified")
	assert.NotContains(t, claude, "**Framework**")
	assert.NotContains(t, claude, "**Database**")
	assert.NotContains(t, claude, "**Testing**")
	assert.NotContains(t, claude, "{{")
}

type noPromptSource struct {
	assets.Embedded
}

func (noPromptSource) Template(name string) (string, error) {
	if name == assets.SystemPromptTemplate {
		return "", errors.New(errors.ErrTemplateNotFound, "gone")
	}
	return assets.Template(name)
}

func TestSystemPromptFallback(t *testing.T) {
	f := newFixture(t, baseConfig)

	res, err := f.generator(Options{Source: noPromptSource{}}).SystemPrompt()
	require.NoError(t, err)
	assert.Equal(t, []string{paths.SystemPromptFile}, res.Generated)

	want := generated.Compose(fallbackSystemPrompt, generated.MarkupComment)
	assert.Equal(t, want, f.read(t, f.paths.SystemPromptFile()))
}

func TestSettingsRewritesEditedFile(t *testing.T) {
	f := newFixture(t, baseConfig)
	g := f.generator(Options{})

	_, err := g.Settings()
	require.NoError(t, err)
	require.NoError(t, f.fs.WriteFile(f.paths.SettingsFile(), []byte("{}"), 0644))

	res, err := g.Settings()
	require.NoError(t, err)
	assert.Equal(t, []string{paths.SettingsFile}, res.Generated)
	assert.NotEqual(t, "{}", f.read(t, f.paths.SettingsFile()))
}

func TestManagedFiles(t *testing.T) {
	f := newFixture(t, baseConfig+"agents:\n  qa:\n    enabled: false\n")
	_, err := EjectAgent(f.fs, f.paths, nil, "architect")
	require.NoError(t, err)

	files, err := f.generator(Options{}).ManagedFiles()
	require.NoError(t, err)

	byPath := make(map[string]ManagedFile, len(files))
	for _, mf := range files {
		byPath[mf.Path] = mf
	}

	assert.NotContains(t, byPath, f.paths.AgentFile("qa"))
	assert.True(t, byPath[f.paths.AgentFile("architect")].Ejected)
	assert.False(t, byPath[f.paths.AgentFile("developer")].Ejected)
	assert.Contains(t, byPath, f.paths.ClaudeMD())
	assert.Contains(t, byPath, f.paths.SystemPromptFile())
	assert.NotContains(t, byPath, f.paths.SettingsFile())

	want := len(assets.AgentNames()) - 1 + len(assets.RuleFiles()) + 2 + len(assets.HookFiles())
	assert.Len(t, files, want)
}
