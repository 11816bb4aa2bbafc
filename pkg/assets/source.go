package assets

// Source supplies the package content a project is generated from.
type Source interface {
	AgentNames() []string
	Agent(name string) (string, error)
	RuleFiles() []string
	Rule(file string) (string, error)
	HookFiles() []string
	Hook(file string) (string, error)
	Template(name string) (string, error)
}

// Embedded is the Source backed by the content compiled into the binary.
type Embedded struct{}

var _ Source = Embedded{}

func (Embedded) AgentNames() []string                 { return AgentNames() }
func (Embedded) Agent(name string) (string, error)    { return Agent(name) }
func (Embedded) RuleFiles() []string                  { return RuleFiles() }
func (Embedded) Rule(file string) (string, error)     { return Rule(file) }
func (Embedded) HookFiles() []string                  { return HookFiles() }
func (Embedded) Hook(file string) (string, error)     { return Hook(file) }
func (Embedded) Template(name string) (string, error) { return Template(name) }
