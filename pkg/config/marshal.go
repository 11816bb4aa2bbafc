package config

import (
	"bytes"

	"github.com/arthur-debert/bmad-swarm/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Marshal renders cfg in the given format.
func Marshal(cfg *Config, format Format) ([]byte, error) {
	switch format {
	case FormatYAML, "":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
		}
		return buf.Bytes(), nil
	case FormatTOML:
		out, err := toml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode toml")
		}
		return out, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format %q (want yaml or toml)", format)
	}
}

// ToMap converts cfg into the nested map form templates are rendered
// against. Keys match the configuration file.
func ToMap(cfg *Config) map[string]interface{} {
	phases := make(map[string]interface{}, len(cfg.Methodology.Phases))
	for name, p := range cfg.Methodology.Phases {
		phase := map[string]interface{}{"enabled": p.Enabled}
		if p.ParallelDevs != 0 {
			phase["parallel_devs"] = p.ParallelDevs
		}
		phases[name] = phase
	}

	agents := make(map[string]interface{}, len(cfg.Agents))
	for name, a := range cfg.Agents {
		agent := map[string]interface{}{
			"enabled":       cfg.AgentEnabled(name),
			"extra_context": a.ExtraContext,
			"extra_rules":   append([]string(nil), a.ExtraRules...),
			"model":         a.Model,
		}
		agents[name] = agent
	}

	return map[string]interface{}{
		"project": map[string]interface{}{
			"name":        cfg.Project.Name,
			"type":        cfg.Project.Type,
			"description": cfg.Project.Description,
		},
		"stack": map[string]interface{}{
			"language":  cfg.Stack.Language,
			"framework": cfg.Stack.Framework,
			"database":  cfg.Stack.Database,
			"testing":   cfg.Stack.Testing,
		},
		"methodology": map[string]interface{}{
			"autonomy": cfg.Methodology.Autonomy,
			"phases":   phases,
			"quality": map[string]interface{}{
				"require_tests":          cfg.Methodology.Quality.RequireTests,
				"require_review":         cfg.Methodology.Quality.RequireReview,
				"require_human_approval": append([]string(nil), cfg.Methodology.Quality.RequireHumanApproval...),
			},
			"ideation": map[string]interface{}{
				"enabled":              cfg.Methodology.Ideation.Enabled,
				"default_perspectives": append([]string(nil), cfg.Methodology.Ideation.DefaultPerspectives...),
			},
		},
		"agents": agents,
		"output": map[string]interface{}{
			"artifacts_dir": cfg.Output.ArtifactsDir,
			"code_dir":      cfg.Output.CodeDir,
		},
		"plugins": map[string]interface{}{
			"agents_dir": cfg.Plugins.AgentsDir,
		},
	}
}
