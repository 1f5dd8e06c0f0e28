package dsl

import "github.com/aretw0/tendril/pkg/domain"

// StateBuilder provides a fluent API for declaring transitions out of one
// state. Declaring several rules for the same read symbol is how
// nondeterministic branching is expressed.
type StateBuilder struct {
	id      string
	builder *Builder
}

// ID returns the state identifier.
func (s *StateBuilder) ID() string {
	return s.id
}

// On starts a transition rule fired when the head reads the given symbol.
// Until configured otherwise the rule writes the symbol back unchanged and
// moves the head right.
func (s *StateBuilder) On(read string) *RuleBuilder {
	return &RuleBuilder{
		origin: s,
		read:   read,
		write:  read,
		move:   domain.MoveRight,
	}
}

// RuleBuilder configures a single transition rule.
type RuleBuilder struct {
	origin *StateBuilder
	read   string
	write  string
	move   domain.Move
}

// Write sets the symbol written over the cell under the head.
func (r *RuleBuilder) Write(symbol string) *RuleBuilder {
	r.write = symbol
	return r
}

// Left makes the rule move the head left.
func (r *RuleBuilder) Left() *RuleBuilder {
	r.move = domain.MoveLeft
	return r
}

// Right makes the rule move the head right. This is the default.
func (r *RuleBuilder) Right() *RuleBuilder {
	r.move = domain.MoveRight
	return r
}

// To finalizes the rule with the given target state, registering the target
// if needed, and returns the origin state so further rules can be chained.
func (r *RuleBuilder) To(target string) *StateBuilder {
	r.origin.builder.register(target)
	r.origin.builder.transitions = append(r.origin.builder.transitions, domain.Transition{
		From:  r.origin.id,
		Read:  r.read,
		To:    target,
		Write: r.write,
		Move:  r.move,
	})
	return r.origin
}
