// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"

	"github.com/golang/glog"
)

// Assembler is a two pass assembler for the SAP2 CPU.
type Assembler struct {
	Filename   string // Source name used in diagnostics.
	IgnoreCase bool   // If set, keywords and registers match in any case.

	predefine SymbolTable
}

// Predefine defines a symbol before any source is read.
func (asm *Assembler) Predefine(name string, addr uint16) {
	if asm.predefine == nil {
		asm.predefine = SymbolTable{name: addr}
	} else {
		asm.predefine[name] = addr
	}
}

// Parse reads source lines until end of input or .end, resolves every
// label, then encodes every operation.
//
// A line that fails to parse is recorded and reading continues; if any
// line failed, the returned error is an *ErrFailed and no Program is
// returned. Resolution and encoding errors are returned at once.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	parser := &Parser{IgnoreCase: asm.IgnoreCase}
	scanner := bufio.NewScanner(input)

	var ops []Operation
	var failed []error
	var lineno int

reading:
	for scanner.Scan() {
		line := scanner.Text()
		lineno++

		if glog.V(1) {
			glog.Infof("%v:%d: %v", asm.Filename, lineno, line)
		}

		parsed, perr := parser.Parse(line)
		if perr != nil {
			failed = append(failed, &ErrSyntax{File: asm.Filename, LineNo: lineno, Line: line, Err: perr})
			continue
		}

		for _, op := range parsed {
			op.File = asm.Filename
			op.LineNo = lineno
			op.Line = line
			ops = append(ops, op)
			if op.Kind == KIND_END {
				break reading
			}
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if len(failed) != 0 {
		err = &ErrFailed{Errors: failed}
		return
	}

	symbols, err := Resolve(ops, asm.predefine)
	if err != nil {
		return
	}

	codes := make([][]byte, len(ops))
	for n := range ops {
		op := &ops[n]
		codes[n], err = Encode(op, symbols)
		if err != nil {
			err = &ErrSyntax{File: op.File, LineNo: op.LineNo, Line: op.Line, Err: err}
			return
		}
	}

	prog = &Program{
		Operations: ops,
		Symbols:    symbols,
		Codes:      codes,
	}

	return
}
