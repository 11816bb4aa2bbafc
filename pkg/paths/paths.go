// Package paths provides centralized path handling for bmad-swarm projects.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/bmad-swarm/pkg/errors"
)

// Environment variable names
const (
	// EnvProjectRoot points at the project when no --dir is given
	EnvProjectRoot = "BMAD_SWARM_ROOT"

	// EnvStateDir overrides the XDG state directory for bmad-swarm
	EnvStateDir = "BMAD_SWARM_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Project layout. These names are part of the on-disk contract with the
// agent runtime and are not configurable.
const (
	AppDirName = "bmad-swarm"

	ConfigFileYAML = "swarm.yaml"
	ConfigFileTOML = "swarm.toml"
	ProjectFile    = "project.yaml"
	ClaudeMDFile   = "CLAUDE.md"

	ClaudeDirName      = ".claude"
	AgentsDirName      = "agents"
	HooksDirName       = "hooks"
	RulesDirName       = "rules"
	SettingsFile       = "settings.json"
	SystemPromptFile   = "system-prompt.txt"
	OverridesDirName   = "overrides"
	MethodologyDirName = "methodology"

	LogFileName = "bmad-swarm.log"
)

// ProjectPaths resolves every location bmad-swarm reads or writes inside a
// project.
type ProjectPaths struct {
	root string
}

// New creates a ProjectPaths for projectRoot. An empty root falls back to
// $BMAD_SWARM_ROOT and then to the current working directory.
func New(projectRoot string) (*ProjectPaths, error) {
	root := projectRoot
	if root == "" {
		root = os.Getenv(EnvProjectRoot)
	}
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to get current directory")
		}
		root = cwd
	}

	abs, err := filepath.Abs(expandHome(root))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", root)
	}
	return &ProjectPaths{root: abs}, nil
}

// Root returns the project root directory
func (p *ProjectPaths) Root() string {
	return p.root
}

// ConfigYAML returns the path of swarm.yaml
func (p *ProjectPaths) ConfigYAML() string {
	return filepath.Join(p.root, ConfigFileYAML)
}

// ConfigTOML returns the path of swarm.toml
func (p *ProjectPaths) ConfigTOML() string {
	return filepath.Join(p.root, ConfigFileTOML)
}

func (p *ProjectPaths) ProjectFile() string {
	return filepath.Join(p.root, ProjectFile)
}

func (p *ProjectPaths) ClaudeDir() string {
	return filepath.Join(p.root, ClaudeDirName)
}

func (p *ProjectPaths) AgentsDir() string {
	return filepath.Join(p.ClaudeDir(), AgentsDirName)
}

func (p *ProjectPaths) HooksDir() string {
	return filepath.Join(p.ClaudeDir(), HooksDirName)
}

func (p *ProjectPaths) RulesDir() string {
	return filepath.Join(p.ClaudeDir(), RulesDirName)
}

func (p *ProjectPaths) SettingsFile() string {
	return filepath.Join(p.ClaudeDir(), SettingsFile)
}

func (p *ProjectPaths) SystemPromptFile() string {
	return filepath.Join(p.ClaudeDir(), SystemPromptFile)
}

func (p *ProjectPaths) ClaudeMD() string {
	return filepath.Join(p.root, ClaudeMDFile)
}

// AgentFile returns the generated location of an agent definition
func (p *ProjectPaths) AgentFile(name string) string {
	return filepath.Join(p.AgentsDir(), name+".md")
}

func (p *ProjectPaths) OverridesAgentsDir() string {
	return filepath.Join(p.root, OverridesDirName, AgentsDirName)
}

func (p *ProjectPaths) OverridesMethodologyDir() string {
	return filepath.Join(p.root, OverridesDirName, MethodologyDirName)
}

// EjectedAgentFile returns where an ejected copy of an agent lives
func (p *ProjectPaths) EjectedAgentFile(name string) string {
	return filepath.Join(p.OverridesAgentsDir(), name+".md")
}

// ArtifactsDir resolves the configured artifacts directory against the root.
// An empty value means the default "artifacts".
func (p *ProjectPaths) ArtifactsDir(configured string) string {
	if configured == "" {
		configured = "artifacts"
	}
	return p.Resolve(configured)
}

// Resolve joins a project-relative path onto the root. Absolute and ~ paths
// are returned expanded but otherwise untouched.
func (p *ProjectPaths) Resolve(rel string) string {
	rel = expandHome(rel)
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(p.root, rel)
}

// Rel returns path relative to the project root, or path itself when it
// lies outside.
func (p *ProjectPaths) Rel(path string) string {
	rel, err := filepath.Rel(p.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

// StateDir returns the directory for bmad-swarm's own state (logs)
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the path to the bmad-swarm log file.
// Respects XDG_STATE_HOME and BMAD_SWARM_STATE_DIR.
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~user is left alone
		return path
	}

	return path
}

// ExpandHome is the exported version of expandHome
func ExpandHome(path string) string {
	return expandHome(path)
}
