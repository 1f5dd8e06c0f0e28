package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tendril",
	Short: "Tendril is a breadth-first simulator for nondeterministic Turing machines",
	Long: `Tendril explores every computation path of a nondeterministic Turing machine
level by level, and reports acceptance, the exploration trace and branching
statistics.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("library", "machines", "Directory containing machine definition files")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable verbose engine logging")
}
