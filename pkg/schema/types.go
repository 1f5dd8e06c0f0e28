package schema

import (
	"github.com/aretw0/tendril/pkg/domain"
)

// Document is the serializable form of a machine definition, shared by the
// file library, inline HTTP definitions and MCP resources. It mirrors
// domain.Machine field for field, but keeps the move direction as a raw
// string so that loaders apply the direction-collapsing rule ("L" means
// left, anything else means right) in exactly one place.
type Document struct {
	Name          string   `json:"name" yaml:"name"`
	States        []string `json:"states" yaml:"states"`
	InputAlphabet []string `json:"input_alphabet" yaml:"input_alphabet"`
	TapeAlphabet  []string `json:"tape_alphabet" yaml:"tape_alphabet"`
	Blank         string   `json:"blank,omitempty" yaml:"blank,omitempty"`
	Start         string   `json:"start" yaml:"start"`
	Accept        string   `json:"accept" yaml:"accept"`
	Reject        string   `json:"reject" yaml:"reject"`
	Rules         []Rule   `json:"transitions" yaml:"transitions"`
}

// Rule is one transition row as written in a definition document.
type Rule struct {
	From  string `json:"from" yaml:"from"`
	Read  string `json:"read" yaml:"read"`
	To    string `json:"to" yaml:"to"`
	Write string `json:"write" yaml:"write"`
	Move  string `json:"move" yaml:"move"`
}

// ToMachine converts the document into a validated domain.Machine. The
// structural pass runs first (missing fields are a loader problem and wrap
// domain.ErrMalformedDefinition); the semantic pass runs inside
// domain.NewMachine and reports faulty transitions.
func (d *Document) ToMachine() (*domain.Machine, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	m := domain.Machine{
		Name:          d.Name,
		States:        append([]string(nil), d.States...),
		InputAlphabet: append([]string(nil), d.InputAlphabet...),
		TapeAlphabet:  append([]string(nil), d.TapeAlphabet...),
		Blank:         d.Blank,
		Start:         d.Start,
		Accept:        d.Accept,
		Reject:        d.Reject,
		Transitions:   make([]domain.Transition, 0, len(d.Rules)),
	}
	for _, r := range d.Rules {
		m.Transitions = append(m.Transitions, domain.Transition{
			From:  r.From,
			Read:  r.Read,
			To:    r.To,
			Write: r.Write,
			Move:  domain.ParseMove(r.Move),
		})
	}
	return domain.NewMachine(m)
}

// FromMachine converts a domain machine back into its document form, for
// serving definitions over HTTP and MCP.
func FromMachine(m *domain.Machine) *Document {
	d := &Document{
		Name:          m.Name,
		States:        append([]string(nil), m.States...),
		InputAlphabet: append([]string(nil), m.InputAlphabet...),
		TapeAlphabet:  append([]string(nil), m.TapeAlphabet...),
		Blank:         m.Blank,
		Start:         m.Start,
		Accept:        m.Accept,
		Reject:        m.Reject,
		Rules:         make([]Rule, 0, len(m.Transitions)),
	}
	for _, t := range m.Transitions {
		d.Rules = append(d.Rules, Rule{
			From:  t.From,
			Read:  t.Read,
			To:    t.To,
			Write: t.Write,
			Move:  string(t.Move),
		})
	}
	return d
}
