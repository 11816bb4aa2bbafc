package config

import (
	"fmt"
	"sort"
	"strings"
)

// Validate checks cfg and returns every problem found. knownAgents limits
// the keys allowed under "agents"; nil disables that check.
func Validate(cfg *Config, knownAgents []string) []string {
	var problems []string

	if strings.TrimSpace(cfg.Project.Name) == "" {
		problems = append(problems, "project.name is required and cannot be empty")
	}

	if cfg.Project.Type != "" && !contains(ValidProjectTypes, cfg.Project.Type) {
		problems = append(problems, fmt.Sprintf("project.type %q is invalid. Valid options: %s",
			cfg.Project.Type, strings.Join(ValidProjectTypes, ", ")))
	}

	if cfg.Methodology.Autonomy != "" && !contains(ValidAutonomyLevels, cfg.Methodology.Autonomy) {
		problems = append(problems, fmt.Sprintf("methodology.autonomy %q is invalid. Valid options: %s",
			cfg.Methodology.Autonomy, strings.Join(ValidAutonomyLevels, ", ")))
	}

	if impl, ok := cfg.Methodology.Phases["implementation"]; ok && impl.ParallelDevs < 1 {
		problems = append(problems, fmt.Sprintf(
			"methodology.phases.implementation.parallel_devs must be a positive integer, got: %d", impl.ParallelDevs))
	}

	if knownAgents != nil {
		names := make([]string, 0, len(cfg.Agents))
		for name := range cfg.Agents {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if !contains(knownAgents, name) {
				problems = append(problems, fmt.Sprintf("agents.%s is not a recognized agent. Valid agents: %s",
					name, strings.Join(knownAgents, ", ")))
			}
		}
	}

	return problems
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
