package generators

import (
	"strings"

	"github.com/arthur-debert/bmad-swarm/pkg/config"
	"github.com/arthur-debert/bmad-swarm/pkg/template"
)

// DataContext builds the template data for cfg. On top of the
// configuration tree it derives:
//
//	stack.summary                         "Go, Gin, Postgres" or "Not specified"
//	methodology.enabledPhases             comma-joined enabled phases
//	methodology.enabledPhaseList          the same as a list
//	methodology.phaseCount
//	methodology.autonomy_{auto,guided,collaborative}
//	methodology.quality.require_human_approval_list
//	agents.list, agents.count, agents.names   enabled agents
//	hasFramework, hasDatabase, hasTesting
func DataContext(cfg *config.Config, agentNames []string) template.Context {
	ctx := template.Context(config.ToMap(cfg))

	var stackParts []string
	for _, s := range []string{cfg.Stack.Language, cfg.Stack.Framework, cfg.Stack.Database} {
		if s != "" {
			stackParts = append(stackParts, s)
		}
	}
	summary := strings.Join(stackParts, ", ")
	if summary == "" {
		summary = "Not specified"
	}
	ctx["stack"].(map[string]interface{})["summary"] = summary

	phases := cfg.EnabledPhases()
	methodology := ctx["methodology"].(map[string]interface{})
	methodology["enabledPhases"] = strings.Join(phases, ", ")
	methodology["enabledPhaseList"] = phases
	methodology["phaseCount"] = len(phases)
	methodology["autonomy_auto"] = cfg.Methodology.Autonomy == "auto"
	methodology["autonomy_guided"] = cfg.Methodology.Autonomy == "guided"
	methodology["autonomy_collaborative"] = cfg.Methodology.Autonomy == "collaborative"
	methodology["quality"].(map[string]interface{})["require_human_approval_list"] =
		strings.Join(cfg.Methodology.Quality.RequireHumanApproval, ", ")

	var enabled []string
	for _, name := range agentNames {
		if cfg.AgentEnabled(name) {
			enabled = append(enabled, name)
		}
	}
	ctx["agents"] = map[string]interface{}{
		"list":  strings.Join(enabled, ", "),
		"count": len(enabled),
		"names": enabled,
	}

	ctx["hasFramework"] = cfg.Stack.Framework != ""
	ctx["hasDatabase"] = cfg.Stack.Database != ""
	ctx["hasTesting"] = cfg.Stack.Testing != ""
	return ctx
}
