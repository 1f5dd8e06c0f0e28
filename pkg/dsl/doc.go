/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically
constructing machine definitions.

It allows developers to define nondeterministic Turing machines using a
type-safe, fluent builder pattern instead of relying on external CSV or YAML
files. This is particularly useful for dynamic machine generation, unit
testing, and leveraging IDE autocompletion/type-checking.

Example usage:

	package main

	import (
		"github.com/aretw0/tendril/pkg/dsl"
	)

	func main() {
		b := dsl.New("a_plus").
			Input("a").
			Start("q0").
			Accept("qaccept").
			Reject("qreject")

		b.State("q0").
			On("a").To("q1")

		b.State("q1").
			On("a").To("q1").
			On("_").To("qaccept")

		machine, err := b.Build()
		// ... simulate machine directly, or b.BuildLoader() for a
		// ports.DefinitionLoader to pass to tendril.New(...)
		_, _ = machine, err
	}

Declaring two rules for the same state and read symbol is how branching is
expressed: the engine explores every matching rule at each step.
*/
package dsl
