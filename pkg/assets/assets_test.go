package assets

import (
	"strings"
	"testing"

	"github.com/arthur-debert/bmad-swarm/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentNames(t *testing.T) {
	assert.Equal(t, []string{
		"architect", "developer", "ideator", "orchestrator", "qa",
		"researcher", "reviewer", "story-engineer", "strategist",
	}, AgentNames())

	assert.True(t, IsAgent("developer"))
	assert.False(t, IsAgent("wizard"))
}

func TestAgent(t *testing.T) {
	for _, name := range AgentNames() {
		t.Run(name, func(t *testing.T) {
			body, err := Agent(name)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(body, "---\nname: "+name+"\n"), "frontmatter names the agent")
		})
	}

	_, err := Agent("wizard")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateNotFound))
}

func TestRulesAndHooks(t *testing.T) {
	assert.Equal(t, []string{
		"coding-standards.md", "orchestrator-identity.md",
		"orchestrator-methodology.md", "quality-standards.md",
	}, RuleFiles())

	hooks := HookFiles()
	require.NotEmpty(t, hooks)
	for _, h := range hooks {
		body, err := Hook(h)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(body, "#!/usr/bin/env node\n"), h)
	}
}

func TestTemplates(t *testing.T) {
	for _, name := range []string{SystemPromptTemplate, ClaudeMDTemplate, SettingsTemplate, SwarmYAMLTemplate} {
		body, err := Template(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, body)
	}

	_, err := Template("missing.template")
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateNotFound))
}
