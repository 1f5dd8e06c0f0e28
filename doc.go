/*
Package tendril is a nondeterministic Turing machine (NTM) simulator designed for studying, teaching, and scripting machine behavior.

It explores every computation branch breadth-first under a configurable depth bound, separating the machine definition (Logic) from the exploration engine (Runtime) and the persistence of finished runs (Storage).

# Concept

Tendril treats one machine step as one level: at each level every live branch reads the symbol under its head and spawns a successor per matching rule, so nondeterminism becomes fan-out instead of guesswork. The engine manages the frontier, the acceptance decision, and the trace, while your application ("Host") decides where definitions come from and where runs go. This Hexagonal Architecture allows Tendril to be embedded in any interface: CLI, HTTP Server, or AI Agent infrastructure.

# Key Features

  - Deterministic Exploration: Given the same machine and input, the trace is always bit-identical.
  - Hexagonal Architecture: Core logic is decoupled from adapters (Loaders, Stores, Presentation).
  - Bounded Search: A depth bound turns undecidable loops into a first-class "timed out" outcome.
  - Strict Contracts: Validates machine integrity (states, alphabets, rules) before the first step.

# Usage

Initialize the engine pointing at a library directory of CSV or YAML machine definitions, or inject a custom loader.

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/tendril"
		"github.com/aretw0/tendril/pkg/ports"
	)

	func main() {
		// Initialize Engine with default settings (reads from ./machines)
		eng, err := tendril.New("./machines")
		if err != nil {
			log.Fatal(err)
		}

		// Run a machine from the library against an input string
		ctx := context.Background()
		run, err := eng.Simulate(ctx, ports.SimulateRequest{
			Machine: "a_plus",
			Input:   "aaa",
		})
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println("Status:", run.Result.Status)
		fmt.Println("Levels:", run.Result.Levels)

		// Walk the explored configurations in dequeue order
		for _, c := range run.Result.Trace {
			fmt.Println(c.String())
		}
	}

Machines can also be built programmatically with pkg/dsl, loaded from memory with pkg/adapters/memory, and persisted runs can live in Redis or SQLite via the stores under internal/adapters.
*/
package tendril
