package main

import (
	"fmt"
	"os"

	"github.com/aretw0/tendril"
	"github.com/aretw0/tendril/internal/presentation/graph"
	"github.com/aretw0/tendril/pkg/ports"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <machine>",
	Short: "Export a machine transition diagram",
	Long: `Looks up a machine in the library and outputs a Mermaid state diagram of
its transition structure. With --input the machine is simulated first and
the diagram highlights the states on the recorded trace.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		library, _ := cmd.Flags().GetString("library")

		engine, err := tendril.New(library)
		if err != nil {
			fmt.Printf("Error initializing tendril: %v\n", err)
			os.Exit(1)
		}

		m, err := engine.Machine(cmd.Context(), args[0])
		if err != nil {
			fmt.Printf("Error loading machine: %v\n", err)
			os.Exit(1)
		}

		var overlay *graph.Overlay
		if cmd.Flags().Changed("input") {
			input, _ := cmd.Flags().GetString("input")
			run, err := engine.Simulate(cmd.Context(), ports.SimulateRequest{Machine: args[0], Input: input})
			if err != nil {
				fmt.Printf("Error simulating machine: %v\n", err)
				os.Exit(1)
			}
			overlay = graph.OverlayFromResult(&run.Result)
		}

		fmt.Print(graph.GenerateMermaid(m, overlay))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringP("input", "i", "", "Simulate this input and overlay the trace")
}
