package main

import (
	"fmt"
	"os"

	"github.com/aretw0/tendril"
	"github.com/aretw0/tendril/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [machine...]",
	Short: "Check machine definitions for consistency",
	Long: `Loads machine definitions and reports unreachable states, missing rules
and other suspicious structure. Without arguments the whole library is checked.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	library, _ := cmd.Flags().GetString("library")

	eng, err := tendril.New(library)
	if err != nil {
		return fmt.Errorf("failed to init engine: %w", err)
	}

	ctx := cmd.Context()

	names := args
	if len(names) == 0 {
		names, err = eng.Machines(ctx)
		if err != nil {
			return err
		}
	}

	warned := 0
	for _, name := range names {
		m, err := eng.Machine(ctx, name)
		if err != nil {
			return err
		}
		for _, w := range validator.Check(m) {
			warned++
			fmt.Printf("%s: %s\n", name, w)
		}
	}

	if warned > 0 {
		fmt.Printf("%d warning(s) in %d machine(s).\n", warned, len(names))
		return nil
	}

	fmt.Println("Library is valid! ✅")
	return nil
}
