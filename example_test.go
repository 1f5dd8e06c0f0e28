package tendril_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/tendril"
	"github.com/aretw0/tendril/pkg/adapters/memory"
	"github.com/aretw0/tendril/pkg/domain"
	"github.com/aretw0/tendril/pkg/ports"
)

// ExampleNew_memory demonstrates how to use the Engine with an in-memory machine definition.
// This is useful for testing, embedded scenarios, or when you don't want to rely on the file system.
func ExampleNew_memory() {
	// 1. Define your machine using helper NewFromMachines for clean, type-safe construction.
	loader, err := memory.NewFromMachines(&domain.Machine{
		Name:          "a_plus",
		States:        []string{"q0", "q1", "qaccept", "qreject"},
		InputAlphabet: []string{"a"},
		TapeAlphabet:  []string{"a", "_"},
		Start:         "q0",
		Accept:        "qaccept",
		Reject:        "qreject",
		Transitions: []domain.Transition{
			{From: "q0", Read: "a", To: "q1", Write: "a", Move: domain.MoveRight},
			{From: "q1", Read: "a", To: "q1", Write: "a", Move: domain.MoveRight},
			{From: "q1", Read: "_", To: "qaccept", Write: "_", Move: domain.MoveRight},
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	// 2. Initialize Tendril with the custom loader
	// Note: We leave path empty ("") because we are providing a loader.
	engine, err := tendril.New("", tendril.WithLoader(loader))
	if err != nil {
		log.Fatal(err)
	}

	// 3. Run the machine against an input string
	ctx := context.Background()
	run, err := engine.Simulate(ctx, ports.SimulateRequest{Machine: "a_plus", Input: "aa"})
	if err != nil {
		log.Fatal(err)
	}

	// 4. Inspect the outcome and the explored configurations
	fmt.Printf("Status: %s\n", run.Result.Status.Display())
	for _, c := range run.Result.Trace {
		fmt.Println(c.String())
	}
	// Output:
	// Status: Accepted
	// (, q0, aa)
	// (a, q1, a_)
	// (aa, q1, __)
	// (aa_, qaccept, __)
}
