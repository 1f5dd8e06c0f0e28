// Package schema defines the serializable machine document and its
// structural validation.
//
// A Document is the on-the-wire shape of a machine definition: the same
// fields as domain.Machine, with the move direction kept as a raw string.
// Every path a definition can enter the system by (CSV and YAML files,
// inline HTTP definitions, MCP resources) converges on this package, so the
// structural rules (every required row present, every transition rule
// complete) live here exactly once.
//
// Basic usage:
//
//	doc, err := schema.DecodeYAML(data)
//	if err != nil {
//	    // syntax problem, wraps domain.ErrMalformedDefinition
//	}
//
//	m, err := doc.ToMachine()
//	if errors.Is(err, domain.ErrMalformedDefinition) {
//	    // structurally incomplete document
//	}
//	if errors.Is(err, domain.ErrFaultyTransition) {
//	    // complete document referencing undeclared states or symbols
//	}
//
// The split matters for error handling: structural problems mean the file
// could not possibly describe a machine, while semantic problems mean the
// file is well-formed but internally inconsistent. Both are detected before
// the simulation engine ever runs.
package schema
