// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/sap2/asm"
	"github.com/ezrec/sap2/rom"
	"github.com/ezrec/sap2/translate"
)

var f = translate.From

var (
	ErrBinaryTerminal = errors.New(f("refusing to write a binary image to a terminal"))
	ErrDefine         = errors.New(f("define must be name=value"))
)

type asmOptions struct {
	format     rom.Format
	romMode    bool
	base       uint16
	symbols    bool
	quiet      bool
	debug      bool
	noOutput   bool
	output     string
	ignoreCase bool
	defines    []string
	where      []string
}

var asmOpts = asmOptions{format: rom.FORMAT_ADDRESSED, base: rom.RAM_ADDRESS}

var asmCmd = &cobra.Command{
	Use:   "asm [flags] source.asm",
	Short: "Assemble SAP2 source",
	Long: `Asm assembles one SAP2 source file, or standard input for "-", into
a flat binary, a raw hex, or an address annotated hex image.

The addressed hex image subtracts the base address (0x8000, the start of
RAM) from every address; use --rom for images loaded at their physical
address.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAsm(&asmOpts, args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	flags := asmCmd.Flags()
	flags.VarP(&asmOpts.format, "format", "f", "output format: binary, raw, or addressed")
	flags.BoolVar(&asmOpts.romMode, "rom", false, "addressed output uses physical addresses")
	flags.Uint16Var(&asmOpts.base, "base", asmOpts.base, "base address subtracted from addressed output")
	flags.BoolVarP(&asmOpts.symbols, "symbols", "s", false, "print the symbol table")
	flags.BoolVarP(&asmOpts.quiet, "quiet", "q", false, "do not print the summary")
	flags.BoolVarP(&asmOpts.debug, "debug", "d", false, "dump the assembled operations")
	flags.BoolVarP(&asmOpts.noOutput, "no-output", "n", false, "do not write an image")
	flags.StringVarP(&asmOpts.output, "output", "o", "", "output file, or - for stdout (default: source name with format extension)")
	flags.BoolVarP(&asmOpts.ignoreCase, "ignore-case", "i", false, "keywords and registers match in any case")
	flags.StringArrayVarP(&asmOpts.defines, "define", "D", nil, "predefine a symbol, as name=value")
	flags.StringArrayVarP(&asmOpts.where, "where", "w", nil, "print the source line assembled at an address")

	rootCmd.AddCommand(asmCmd)
}

// parseDefine splits name=value.
func parseDefine(define string) (name string, value uint16, err error) {
	name, text, ok := strings.Cut(define, "=")
	if !ok || len(name) == 0 {
		err = fmt.Errorf("%w: %v", ErrDefine, define)
		return
	}

	v64, err := strconv.ParseUint(text, 0, 16)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrDefine, err)
		return
	}

	value = uint16(v64)
	return
}

// outputName returns the image name for source.
func outputName(opts *asmOptions, source string) string {
	if len(opts.output) != 0 {
		return opts.output
	}
	if source == "-" {
		return "-"
	}

	return strings.TrimSuffix(source, filepath.Ext(source)) + opts.format.Ext()
}

func runAsm(opts *asmOptions, source string, stdout, stderr io.Writer) (err error) {
	assembler := &asm.Assembler{
		Filename:   source,
		IgnoreCase: opts.ignoreCase,
	}

	for _, define := range opts.defines {
		name, value, err := parseDefine(define)
		if err != nil {
			return err
		}
		assembler.Predefine(name, value)
	}

	var input io.Reader = os.Stdin
	if source != "-" {
		inf, err := os.Open(source)
		if err != nil {
			return err
		}
		defer inf.Close()
		input = inf
	}

	prog, err := assembler.Parse(input)
	if err != nil {
		return
	}

	if opts.debug {
		printer := pp.New()
		printer.SetOutput(stderr)
		printer.SetColoringEnabled(isTerminal(stderr))
		printer.SetExportedOnly(true)
		for n := range prog.Operations {
			printer.Println(prog.Operations[n].Address, prog.Operations[n].String(), prog.Codes[n])
		}
		printer.Println(prog.Symbols)
	}

	if opts.symbols {
		_, err = prog.Symbols.WriteTo(stdout)
		if err != nil {
			return
		}
	}

	for _, where := range opts.where {
		var addr uint64
		addr, err = strconv.ParseUint(where, 0, 16)
		if err != nil {
			return
		}
		dbg := prog.Debug(uint16(addr))
		if dbg.Operation == nil {
			fmt.Fprintf(stdout, "%04x: -\n", addr)
			continue
		}
		fmt.Fprintf(stdout, "%04x: %v:%d+%d %v\n", addr, dbg.File, dbg.LineNo, dbg.Index, dbg.Line)
	}

	if !opts.noOutput {
		err = writeImage(opts, prog, outputName(opts, source), stdout)
		if err != nil {
			return
		}
	}

	if !opts.quiet {
		fmt.Fprintln(stderr, f("Size: %d bytes", prog.Size()))
	}

	return
}

// writeImage emits prog to name, or to stdout for "-". A failed write
// removes the partial output file.
func writeImage(opts *asmOptions, prog *asm.Program, name string, stdout io.Writer) (err error) {
	var w io.WriteCloser
	if name == "-" {
		if opts.format == rom.FORMAT_BINARY && isTerminal(stdout) {
			err = ErrBinaryTerminal
			return
		}
		w = nopCloser{stdout}
	} else {
		w, err = create(name)
		if err != nil {
			return
		}
	}

	defer func() {
		cerr := w.Close()
		if err == nil {
			err = cerr
		}
		if err != nil && name != "-" {
			os.Remove(name)
		}
	}()

	offset := opts.base
	if opts.romMode {
		offset = 0
	}

	sink, err := rom.NewSink(opts.format, w, offset)
	if err != nil {
		return
	}

	err = prog.Emit(sink)
	return
}
