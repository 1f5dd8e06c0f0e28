package main

import (
	"fmt"
	"os"

	"github.com/aretw0/tendril/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <machine> [input]",
	Short: "Simulate a machine on an input word",
	Long: `Runs one bounded breadth-first simulation of a library machine and prints
the resulting report. The input word defaults to the empty word.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		library, _ := cmd.Flags().GetString("library")
		debug, _ := cmd.Flags().GetBool("debug")

		input, _ := cmd.Flags().GetString("input")
		if !cmd.Flags().Changed("input") && len(args) > 1 {
			input = args[1]
		}

		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		mode, _ := cmd.Flags().GetString("mode")
		metric, _ := cmd.Flags().GetString("metric")
		output, _ := cmd.Flags().GetString("output")
		jsonMode, _ := cmd.Flags().GetBool("json")
		plain, _ := cmd.Flags().GetBool("plain")

		opts := cli.RunOptions{
			Library:  library,
			Machine:  args[0],
			Input:    input,
			MaxDepth: maxDepth,
			Mode:     mode,
			Metric:   metric,
			Output:   output,
			JSON:     jsonMode,
			Plain:    plain,
			Debug:    debug,
		}

		if err := cli.Execute(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("input", "i", "", "Input word written on the tape")
	runCmd.Flags().Int("max-depth", 0, "Override the level bound for this run")
	runCmd.Flags().String("mode", "", "Termination mode: 'eager' or 'exhaustive'")
	runCmd.Flags().String("metric", "", "Branching metric: 'state_diversity' or 'per_level_branching'")
	runCmd.Flags().StringP("output", "o", "", "Write the plain-text report to this file")
	runCmd.Flags().Bool("json", false, "Print the run as JSON")
	runCmd.Flags().Bool("plain", false, "Force plain text output (no terminal styling)")
}
