package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Config)
		wantErrs []string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:     "empty name",
			mutate:   func(c *Config) { c.Project.Name = "   " },
			wantErrs: []string{"project.name is required"},
		},
		{
			name:     "bad type",
			mutate:   func(c *Config) { c.Project.Type = "desktop" },
			wantErrs: []string{`project.type "desktop" is invalid`},
		},
		{
			name:     "bad autonomy",
			mutate:   func(c *Config) { c.Methodology.Autonomy = "manual" },
			wantErrs: []string{`methodology.autonomy "manual" is invalid`},
		},
		{
			name: "parallel devs below one",
			mutate: func(c *Config) {
				c.Methodology.Phases["implementation"] = PhaseConfig{Enabled: true, ParallelDevs: 0}
			},
			wantErrs: []string{"parallel_devs must be a positive integer, got: 0"},
		},
		{
			name: "unknown agents reported in order",
			mutate: func(c *Config) {
				c.Agents["zeta"] = AgentConfig{}
				c.Agents["alpha"] = AgentConfig{}
				c.Agents["developer"] = AgentConfig{}
			},
			wantErrs: []string{"agents.alpha is not a recognized agent", "agents.zeta is not a recognized agent"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			problems := Validate(cfg, testAgents)
			assert.Len(t, problems, len(tt.wantErrs))
			for i, want := range tt.wantErrs {
				if i < len(problems) {
					assert.Contains(t, problems[i], want)
				}
			}
		})
	}
}

func TestValidateWithoutKnownAgents(t *testing.T) {
	cfg := Default()
	cfg.Agents["anything"] = AgentConfig{}
	assert.Empty(t, Validate(cfg, nil))
}
