// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command sap2 is the SAP2 toolchain: the assembler, the microcode ROM
// compiler, and the display ROM generator.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ezrec/sap2/translate"
)

var lang string

var rootCmd = &cobra.Command{
	Use:           "sap2",
	Short:         "SAP2 assembler and ROM generators",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if len(lang) == 0 {
			return nil
		}
		return translate.SetLanguage(lang)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "", "message language (BCP 47 tag)")
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
}

// isTerminal reports if w is a terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// create opens path for writing, or returns stdout for "-".
func create(path string) (w io.WriteCloser, err error) {
	if path == "-" {
		w = nopCloser{os.Stdout}
		return
	}

	w, err = os.Create(path)
	return
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

func main() {
	flag.Set("logtostderr", "true")
	flag.CommandLine.Parse(nil)
	defer glog.Flush()

	err := rootCmd.Execute()
	if err != nil {
		glog.Exitf("%v", err)
	}
}
