package template

import (
	"github.com/arthur-debert/bmad-swarm/pkg/logging"
	"github.com/rs/zerolog"
)

// Renderer renders named templates and logs what it did. Output is exactly
// what Render returns.
type Renderer struct {
	logger zerolog.Logger
}

// NewRenderer creates a Renderer logging under the "template" component.
func NewRenderer() *Renderer {
	return &Renderer{logger: logging.GetLogger("template")}
}

// Render renders tmpl against ctx. name only identifies the template in logs.
func (r *Renderer) Render(name, tmpl string, ctx Context) string {
	out := Render(tmpl, ctx)

	r.logger.Trace().
		Str("template", name).
		Int("input_len", len(tmpl)).
		Int("output_len", len(out)).
		Msg("rendered template")

	if missing := Unresolved(out); len(missing) > 0 {
		r.logger.Debug().
			Str("template", name).
			Strs("unresolved", missing).
			Msg("template left placeholders unresolved")
	}
	return out
}
