package eject

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/bmad-swarm/pkg/commands/initialize"
	"github.com/arthur-debert/bmad-swarm/pkg/errors"
	"github.com/arthur-debert/bmad-swarm/pkg/generated"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEjectAndUneject(t *testing.T) {
	root := t.TempDir()
	_, err := initialize.Init(initialize.InitOptions{ProjectRoot: root})
	require.NoError(t, err)

	result, err := Eject(EjectOptions{ProjectRoot: root, Agent: "developer"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("overrides", "agents", "developer.md"), result.Path)

	data, err := os.ReadFile(filepath.Join(root, result.Path))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<!-- EJECTED from bmad-swarm"))

	_, err = Eject(EjectOptions{ProjectRoot: root, Agent: "developer"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrAgentEjected))

	result, err = Uneject(EjectOptions{ProjectRoot: root, Agent: "developer"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(".claude", "agents", "developer.md"), result.Path)

	_, err = os.Stat(filepath.Join(root, "overrides", "agents", "developer.md"))
	assert.True(t, os.IsNotExist(err))

	data, err = os.ReadFile(filepath.Join(root, result.Path))
	require.NoError(t, err)
	_, managed := generated.ParseHeader(string(data))
	assert.True(t, managed)
}

func TestEjectErrors(t *testing.T) {
	root := t.TempDir()
	_, err := initialize.Init(initialize.InitOptions{ProjectRoot: root})
	require.NoError(t, err)

	_, err = Eject(EjectOptions{ProjectRoot: root, Agent: "wizard"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrAgentUnknown))

	_, err = Uneject(EjectOptions{ProjectRoot: root, Agent: "qa"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrAgentNotEjected))

	_, err = Eject(EjectOptions{ProjectRoot: t.TempDir(), Agent: "qa"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrProjectMissing))
}
