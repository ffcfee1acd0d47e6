// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ezrec/sap2/microcode"
	"github.com/ezrec/sap2/rom"
)

type microcodeOptions struct {
	prefix    string
	addressed bool
	list      bool
	noOutput  bool
}

var microcodeOpts = microcodeOptions{prefix: "microcode24bit"}

var microcodeCmd = &cobra.Command{
	Use:   "microcode [flags] [definition.star]",
	Short: "Build the control unit microcode ROMs",
	Long: `Microcode compiles a Starlark control unit definition, or the built in
SAP2 definition, into a full width ROM image and one 8-bit ROM image per
byte of the control word, most significant first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var def *microcode.Definition
		if len(args) == 0 {
			def, err = microcode.Default()
		} else {
			def, err = microcode.Load(args[0], nil)
		}
		if err != nil {
			return
		}

		return runMicrocode(&microcodeOpts, def, cmd.OutOrStdout())
	},
}

func init() {
	flags := microcodeCmd.Flags()
	flags.StringVarP(&microcodeOpts.prefix, "output", "o", microcodeOpts.prefix, "output file name prefix")
	flags.BoolVarP(&microcodeOpts.addressed, "addressed", "a", false, "write addressed hex instead of raw hex")
	flags.BoolVarP(&microcodeOpts.list, "list", "l", false, "print the opcode steps")
	flags.BoolVarP(&microcodeOpts.noOutput, "no-output", "n", false, "do not write ROM images")

	rootCmd.AddCommand(microcodeCmd)
}

func runMicrocode(opts *microcodeOptions, def *microcode.Definition, stdout io.Writer) (err error) {
	mc, err := def.Build()
	if err != nil {
		return
	}

	if opts.list {
		err = mc.WriteListing(stdout)
		if err != nil {
			return
		}
	}

	if opts.noOutput {
		return
	}

	err = writeRom(opts.prefix+".rom", mc.Image(opts.addressed))
	if err != nil {
		return
	}

	for n, img := range mc.Slices(opts.addressed) {
		err = writeRom(fmt.Sprintf("%s-8bitrom-rom%d.rom", opts.prefix, n+1), img)
		if err != nil {
			return
		}
	}

	return
}

// writeRom writes img to path.
func writeRom(path string, img *rom.Image) (err error) {
	w, err := create(path)
	if err != nil {
		return
	}

	_, err = img.WriteTo(w)
	if err != nil {
		w.Close()
		return
	}

	return w.Close()
}
