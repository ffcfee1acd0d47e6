// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"github.com/spf13/cobra"

	"github.com/ezrec/sap2/display"
)

var displayOutput = "staticdecdisplayrom"

var displayCmd = &cobra.Command{
	Use:   "display [flags]",
	Short: "Build the 7-segment decimal display ROM",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeRom(displayOutput, display.Image())
	},
}

func init() {
	displayCmd.Flags().StringVarP(&displayOutput, "output", "o", displayOutput, "output file, or - for stdout")

	rootCmd.AddCommand(displayCmd)
}
