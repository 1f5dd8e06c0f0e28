// Package file loads machine definitions from disk. It understands two
// formats: a compact tabular CSV layout and a YAML document, both decoded
// into the schema package's document form before being checked against the
// domain rules. A Loader over a library directory implements
// ports.DefinitionLoader for the rest of the system.
package file
