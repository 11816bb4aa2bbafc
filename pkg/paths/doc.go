// Package paths provides centralized path handling for bmad-swarm.
//
// A ProjectPaths value maps the fixed project layout onto a root directory:
//
//	swarm.yaml / swarm.toml     project configuration
//	project.yaml                project state written by init
//	CLAUDE.md                   generated project instructions
//	.claude/agents/*.md         generated agent definitions
//	.claude/rules/*.md          generated rules
//	.claude/hooks/*.cjs         generated hook scripts
//	.claude/settings.json       copied settings
//	.claude/system-prompt.txt   generated system prompt
//	overrides/agents/*.md       ejected agents, never regenerated
//
// # Environment Variables
//
//   - BMAD_SWARM_ROOT: project root when none is given explicitly
//   - BMAD_SWARM_STATE_DIR: override for $XDG_STATE_HOME/bmad-swarm (log file)
package paths
