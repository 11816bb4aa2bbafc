package update

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/bmad-swarm/pkg/commands/initialize"
	"github.com/arthur-debert/bmad-swarm/pkg/errors"
	"github.com/arthur-debert/bmad-swarm/pkg/generators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	_, err := initialize.Init(initialize.InitOptions{ProjectRoot: root, Answers: initialize.Answers{Name: "shop"}})
	require.NoError(t, err)
	return root
}

func TestUpdate(t *testing.T) {
	root := newProject(t)

	result, err := Update(UpdateOptions{ProjectRoot: root})
	require.NoError(t, err)
	assert.Equal(t, root, result.Root)
	for _, s := range result.Report.Sections {
		assert.Empty(t, s.Result.Generated, s.Name)
	}

	swarm := filepath.Join(root, "swarm.yaml")
	data, err := os.ReadFile(swarm)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(swarm, append(data, []byte("agents:\n  qa:\n    extra_context: Be strict.\n")...), 0644))

	result, err = Update(UpdateOptions{ProjectRoot: root})
	require.NoError(t, err)
	agents, _ := result.Report.Section(generators.SectionAgents)
	assert.Equal(t, []string{"qa"}, agents.Result.Generated)

	qa, err := os.ReadFile(filepath.Join(root, ".claude", "agents", "qa.md"))
	require.NoError(t, err)
	assert.Contains(t, string(qa), "Be strict.")
}

func TestUpdateKeepsHandEdits(t *testing.T) {
	root := newProject(t)
	claude := filepath.Join(root, "CLAUDE.md")
	f, err := os.OpenFile(claude, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString("\nlocal notes\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	result, err := Update(UpdateOptions{ProjectRoot: root})
	require.NoError(t, err)
	assert.Equal(t, []string{"claude-md/CLAUDE.md"}, result.Report.Modified())

	result, err = Update(UpdateOptions{ProjectRoot: root, Force: true})
	require.NoError(t, err)
	assert.Empty(t, result.Report.Modified())
	data, err := os.ReadFile(claude)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "local notes")
}

func TestUpdateOverrides(t *testing.T) {
	root := newProject(t)

	result, err := Update(UpdateOptions{
		ProjectRoot: root,
		DryRun:      true,
		Overrides:   map[string]interface{}{"methodology.autonomy": "auto"},
	})
	require.NoError(t, err)
	prompt, _ := result.Report.Section(generators.SectionSystemPrompt)
	assert.Equal(t, []string{"system-prompt.txt"}, prompt.Result.Generated)

	data, err := os.ReadFile(filepath.Join(root, ".claude", "system-prompt.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Autonomy is guided")
}

func TestUpdateWithoutProject(t *testing.T) {
	_, err := Update(UpdateOptions{ProjectRoot: t.TempDir()})
	assert.True(t, errors.IsErrorCode(err, errors.ErrProjectMissing))
}

func TestUpdateInvalidConfig(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "swarm.yaml"),
		[]byte("project:\n  name: x\nagents:\n  wizard:\n    model: gpt\n"), 0644))

	_, err := Update(UpdateOptions{ProjectRoot: root})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}
