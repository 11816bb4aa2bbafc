// Package commands provides high-level command implementations for
// bmad-swarm.
//
// Each command is implemented in its own subdirectory:
//   - initialize/ - Init command
//   - update/     - Update command
//   - status/     - Status command
//   - eject/      - Eject and Uneject commands
//   - render/     - Render command
//   - showconfig/ - ShowConfig command
//   - start/      - Start command
//   - internal/   - Shared project loading
//
// This file re-exports the command functions so the CLI depends on one
// package.
package commands

import (
	"context"

	"github.com/arthur-debert/bmad-swarm/pkg/commands/eject"
	"github.com/arthur-debert/bmad-swarm/pkg/commands/initialize"
	"github.com/arthur-debert/bmad-swarm/pkg/commands/render"
	"github.com/arthur-debert/bmad-swarm/pkg/commands/showconfig"
	"github.com/arthur-debert/bmad-swarm/pkg/commands/start"
	"github.com/arthur-debert/bmad-swarm/pkg/commands/status"
	"github.com/arthur-debert/bmad-swarm/pkg/commands/update"
)

// Init creates a new project.
type (
	InitOptions = initialize.InitOptions
	InitResult  = initialize.InitResult
	Answers     = initialize.Answers
)

func Init(opts InitOptions) (*InitResult, error) {
	return initialize.Init(opts)
}

// Update regenerates the managed files.
type (
	UpdateOptions = update.UpdateOptions
	UpdateResult  = update.UpdateResult
)

func Update(opts UpdateOptions) (*UpdateResult, error) {
	return update.Update(opts)
}

// Status reports configuration, lifecycle state and drift.
type (
	StatusOptions = status.StatusOptions
	StatusResult  = status.StatusResult
)

func Status(opts StatusOptions) (*StatusResult, error) {
	return status.Status(opts)
}

// Eject and Uneject move an agent definition in and out of overrides/.
type (
	EjectOptions = eject.EjectOptions
	EjectResult  = eject.EjectResult
)

func Eject(opts EjectOptions) (*EjectResult, error) {
	return eject.Eject(opts)
}

func Uneject(opts EjectOptions) (*EjectResult, error) {
	return eject.Uneject(opts)
}

// Render renders a template file against the project data context.
type (
	RenderOptions = render.RenderOptions
	RenderResult  = render.RenderResult
)

func Render(opts RenderOptions) (*RenderResult, error) {
	return render.Render(opts)
}

// ShowConfig encodes the effective configuration.
type (
	ShowConfigOptions = showconfig.ShowConfigOptions
	ShowConfigResult  = showconfig.ShowConfigResult
)

func ShowConfig(opts ShowConfigOptions) (*ShowConfigResult, error) {
	return showconfig.ShowConfig(opts)
}

// Start launches Claude Code with the orchestrator system prompt.
type (
	StartOptions = start.StartOptions
	StartResult  = start.StartResult
)

func Start(ctx context.Context, opts StartOptions) (*StartResult, error) {
	return start.Start(ctx, opts)
}

// PresetNames lists the stack templates accepted by Init.
func PresetNames() []string {
	return initialize.PresetNames()
}
