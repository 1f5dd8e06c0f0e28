package main

import (
	"fmt"
	"os"

	"github.com/aretw0/tendril"
	"github.com/spf13/cobra"
)

var machinesCmd = &cobra.Command{
	Use:   "machines",
	Short: "List the machines in the library",
	Run: func(cmd *cobra.Command, args []string) {
		library, _ := cmd.Flags().GetString("library")

		engine, err := tendril.New(library)
		if err != nil {
			fmt.Printf("Error initializing tendril: %v\n", err)
			os.Exit(1)
		}

		names, err := engine.Machines(cmd.Context())
		if err != nil {
			fmt.Printf("Error listing machines: %v\n", err)
			os.Exit(1)
		}

		for _, name := range names {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(machinesCmd)
}
