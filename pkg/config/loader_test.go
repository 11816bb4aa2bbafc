package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/bmad-swarm/pkg/errors"
	"github.com/arthur-debert/bmad-swarm/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAgents = []string{"architect", "developer", "orchestrator", "qa"}

func projectWith(t *testing.T, files map[string]string) *paths.ProjectPaths {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	p, err := paths.New(dir)
	require.NoError(t, err)
	return p
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "my-project", cfg.Project.Name)
	assert.Equal(t, "other", cfg.Project.Type)
	assert.Equal(t, "guided", cfg.Methodology.Autonomy)
	assert.Equal(t, PhaseNames, cfg.EnabledPhases())
	assert.Equal(t, 2, cfg.ParallelDevs())
	assert.True(t, cfg.Methodology.Quality.RequireTests)
	assert.True(t, cfg.Methodology.Quality.RequireReview)
	assert.Equal(t, []string{"prd", "architecture"}, cfg.Methodology.Quality.RequireHumanApproval)
	assert.True(t, cfg.Methodology.Ideation.Enabled)
	assert.Len(t, cfg.Methodology.Ideation.DefaultPerspectives, 4)
	assert.Equal(t, "./artifacts", cfg.Output.ArtifactsDir)
	assert.Equal(t, "./src", cfg.Output.CodeDir)
	assert.Equal(t, "plugins/agents", cfg.Plugins.AgentsDir)
	assert.NotNil(t, cfg.Agents)
}

func TestLoad(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		p := projectWith(t, nil)
		_, err := Load(p, Options{SkipEnv: true})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
		assert.Contains(t, err.Error(), "swarm.yaml not found")
	})

	t.Run("yaml merged over defaults", func(t *testing.T) {
		p := projectWith(t, map[string]string{
			"swarm.yaml": `
project:
  name: shop
  type: web-app
stack:
  language: TypeScript
  framework: Next.js
methodology:
  autonomy: auto
  phases:
    ideation:
      enabled: false
    implementation:
      parallel_devs: 4
agents:
  developer:
    extra_context: Use pnpm.
    extra_rules:
      - Keep functions small
    model: opus
  qa:
    enabled: false
`,
		})

		cfg, err := Load(p, Options{SkipEnv: true, KnownAgents: testAgents})
		require.NoError(t, err)

		assert.Equal(t, "shop", cfg.Project.Name)
		assert.Equal(t, "web-app", cfg.Project.Type)
		assert.Equal(t, "TypeScript", cfg.Stack.Language)
		assert.Equal(t, "Next.js", cfg.Stack.Framework)
		assert.Equal(t, "auto", cfg.Methodology.Autonomy)
		assert.Equal(t, []string{"exploration", "definition", "design", "implementation", "delivery"}, cfg.EnabledPhases())
		assert.Equal(t, 4, cfg.ParallelDevs())
		// untouched defaults survive the merge
		assert.Equal(t, "./artifacts", cfg.Output.ArtifactsDir)
		assert.True(t, cfg.Methodology.Quality.RequireTests)

		dev, ok := cfg.Agent("developer")
		require.True(t, ok)
		assert.Equal(t, "Use pnpm.", dev.ExtraContext)
		assert.Equal(t, []string{"Keep functions small"}, dev.ExtraRules)
		assert.Equal(t, "opus", dev.Model)
		assert.True(t, cfg.AgentEnabled("developer"))
		assert.False(t, cfg.AgentEnabled("qa"))
		assert.True(t, cfg.AgentEnabled("architect"))
	})

	t.Run("toml when no yaml", func(t *testing.T) {
		p := projectWith(t, map[string]string{
			"swarm.toml": `
[project]
name = "tooling"
type = "cli"

[methodology]
autonomy = "collaborative"
`,
		})

		cfg, err := Load(p, Options{SkipEnv: true})
		require.NoError(t, err)
		assert.Equal(t, "tooling", cfg.Project.Name)
		assert.Equal(t, "cli", cfg.Project.Type)
		assert.Equal(t, "collaborative", cfg.Methodology.Autonomy)
	})

	t.Run("yaml wins over toml", func(t *testing.T) {
		p := projectWith(t, map[string]string{
			"swarm.yaml": "project:\n  name: from-yaml\n",
			"swarm.toml": "[project]\nname = \"from-toml\"\n",
		})

		cfg, err := Load(p, Options{SkipEnv: true})
		require.NoError(t, err)
		assert.Equal(t, "from-yaml", cfg.Project.Name)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		p := projectWith(t, map[string]string{"swarm.yaml": "project: [unclosed\n"})
		_, err := Load(p, Options{SkipEnv: true})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid values", func(t *testing.T) {
		p := projectWith(t, map[string]string{
			"swarm.yaml": `
project:
  name: x
  type: spaceship
methodology:
  autonomy: yolo
agents:
  wizard:
    model: gpt
`,
		})

		_, err := Load(p, Options{SkipEnv: true, KnownAgents: testAgents})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))

		problems, ok := errors.GetErrorDetails(err)["problems"].([]string)
		require.True(t, ok)
		assert.Len(t, problems, 3)
	})
}

func TestLoadEnvAndOverrides(t *testing.T) {
	p := projectWith(t, map[string]string{"swarm.yaml": "project:\n  name: app\n"})

	t.Setenv("BMAD_SWARM_METHODOLOGY__AUTONOMY", "auto")
	t.Setenv("BMAD_SWARM_METHODOLOGY__PHASES__IMPLEMENTATION__PARALLEL_DEVS", "3")
	t.Setenv("BMAD_SWARM_STACK__LANGUAGE", "Go")
	t.Setenv("BMAD_SWARM_ROOT", "/ignored")

	cfg, err := Load(p, Options{
		Overrides: map[string]interface{}{"stack.language": "Rust"},
	})
	require.NoError(t, err)

	assert.Equal(t, "auto", cfg.Methodology.Autonomy)
	assert.Equal(t, 3, cfg.ParallelDevs())
	assert.Equal(t, "Rust", cfg.Stack.Language, "overrides beat env")
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("project:\n  name: inline\n"), FormatYAML, Options{SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, "inline", cfg.Project.Name)

	_, err = Parse([]byte("methodology:\n  phases:\n    implementation:\n      parallel_devs: 0\n"), FormatYAML, Options{SkipEnv: true})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "methodology.autonomy", envKey("BMAD_SWARM_METHODOLOGY__AUTONOMY"))
	assert.Equal(t, "output.artifacts_dir", envKey("BMAD_SWARM_OUTPUT__ARTIFACTS_DIR"))
	assert.Equal(t, "", envKey("BMAD_SWARM_STATE_DIR"))
}
