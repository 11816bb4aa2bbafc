package config

import "sort"

// Config is the effective swarm configuration of a project.
type Config struct {
	Project     ProjectConfig          `koanf:"project" yaml:"project" toml:"project"`
	Stack       StackConfig            `koanf:"stack" yaml:"stack" toml:"stack"`
	Methodology MethodologyConfig      `koanf:"methodology" yaml:"methodology" toml:"methodology"`
	Agents      map[string]AgentConfig `koanf:"agents" yaml:"agents,omitempty" toml:"agents,omitempty"`
	Output      OutputConfig           `koanf:"output" yaml:"output" toml:"output"`
	Plugins     PluginsConfig          `koanf:"plugins" yaml:"plugins" toml:"plugins"`
}

type ProjectConfig struct {
	Name        string `koanf:"name" yaml:"name" toml:"name"`
	Type        string `koanf:"type" yaml:"type" toml:"type"`
	Description string `koanf:"description" yaml:"description,omitempty" toml:"description,omitempty"`
}

type StackConfig struct {
	Language  string `koanf:"language" yaml:"language,omitempty" toml:"language,omitempty"`
	Framework string `koanf:"framework" yaml:"framework,omitempty" toml:"framework,omitempty"`
	Database  string `koanf:"database" yaml:"database,omitempty" toml:"database,omitempty"`
	Testing   string `koanf:"testing" yaml:"testing,omitempty" toml:"testing,omitempty"`
}

type MethodologyConfig struct {
	Autonomy string                 `koanf:"autonomy" yaml:"autonomy" toml:"autonomy"`
	Phases   map[string]PhaseConfig `koanf:"phases" yaml:"phases" toml:"phases"`
	Quality  QualityConfig          `koanf:"quality" yaml:"quality" toml:"quality"`
	Ideation IdeationConfig         `koanf:"ideation" yaml:"ideation" toml:"ideation"`
}

type PhaseConfig struct {
	Enabled bool `koanf:"enabled" yaml:"enabled" toml:"enabled"`
	// ParallelDevs only applies to the implementation phase.
	ParallelDevs int `koanf:"parallel_devs" yaml:"parallel_devs,omitempty" toml:"parallel_devs,omitempty"`
}

type QualityConfig struct {
	RequireTests         bool     `koanf:"require_tests" yaml:"require_tests" toml:"require_tests"`
	RequireReview        bool     `koanf:"require_review" yaml:"require_review" toml:"require_review"`
	RequireHumanApproval []string `koanf:"require_human_approval" yaml:"require_human_approval" toml:"require_human_approval"`
}

type IdeationConfig struct {
	Enabled             bool     `koanf:"enabled" yaml:"enabled" toml:"enabled"`
	DefaultPerspectives []string `koanf:"default_perspectives" yaml:"default_perspectives" toml:"default_perspectives"`
}

// AgentConfig customizes one agent. A nil Enabled means enabled.
type AgentConfig struct {
	Enabled      *bool    `koanf:"enabled" yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	ExtraContext string   `koanf:"extra_context" yaml:"extra_context,omitempty" toml:"extra_context,omitempty"`
	ExtraRules   []string `koanf:"extra_rules" yaml:"extra_rules,omitempty" toml:"extra_rules,omitempty"`
	Model        string   `koanf:"model" yaml:"model,omitempty" toml:"model,omitempty"`
}

type OutputConfig struct {
	ArtifactsDir string `koanf:"artifacts_dir" yaml:"artifacts_dir" toml:"artifacts_dir"`
	CodeDir      string `koanf:"code_dir" yaml:"code_dir" toml:"code_dir"`
}

type PluginsConfig struct {
	AgentsDir string `koanf:"agents_dir" yaml:"agents_dir" toml:"agents_dir"`
}

// Phase names in lifecycle order.
var PhaseNames = []string{"ideation", "exploration", "definition", "design", "implementation", "delivery"}

var (
	ValidProjectTypes   = []string{"web-app", "api", "cli", "library", "mobile", "monorepo", "other"}
	ValidAutonomyLevels = []string{"auto", "guided", "collaborative"}
)

// AgentEnabled reports whether an agent should be generated. Agents are
// enabled unless explicitly disabled.
func (c *Config) AgentEnabled(name string) bool {
	ac, ok := c.Agents[name]
	if !ok || ac.Enabled == nil {
		return true
	}
	return *ac.Enabled
}

// Agent returns the customization for name, if any.
func (c *Config) Agent(name string) (AgentConfig, bool) {
	ac, ok := c.Agents[name]
	return ac, ok
}

// EnabledPhases lists enabled phases, known phases first in lifecycle order
// followed by any extra phases sorted by name.
func (c *Config) EnabledPhases() []string {
	var enabled []string
	seen := make(map[string]bool, len(PhaseNames))
	for _, name := range PhaseNames {
		seen[name] = true
		if p, ok := c.Methodology.Phases[name]; ok && p.Enabled {
			enabled = append(enabled, name)
		}
	}
	var extra []string
	for name, p := range c.Methodology.Phases {
		if !seen[name] && p.Enabled {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(enabled, extra...)
}

// ParallelDevs returns the configured implementation parallelism.
func (c *Config) ParallelDevs() int {
	return c.Methodology.Phases["implementation"].ParallelDevs
}
