package asm

import (
	"iter"

	"github.com/ezrec/sap2/rom"
)

// Program is an assembled program.
type Program struct {
	Operations []Operation // Resolved operations, in source order.
	Symbols    SymbolTable // Label addresses.
	Codes      [][]byte    // Encoded bytes of each operation.
}

// Debug is an operation located by address, with its index in the program.
type Debug struct {
	*Operation
	Index int
}

// Debug returns the operation whose bytes cover addr.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, op := range prog.Operations {
		size := len(prog.Codes[n])
		if int(addr) >= int(op.Address) && int(addr) < int(op.Address)+size {
			dbg = Debug{
				Operation: &prog.Operations[n],
				Index:     int(addr - op.Address),
			}
			break
		}
	}

	return
}

// Chunks returns the address and bytes of every operation that emits code.
func (prog *Program) Chunks() iter.Seq2[uint16, []byte] {
	return func(yield func(addr uint16, code []byte) bool) {
		for n, op := range prog.Operations {
			if len(prog.Codes[n]) == 0 {
				continue
			}
			if !yield(op.Address, prog.Codes[n]) {
				return
			}
		}
	}
}

// Binary returns the flat image of the program.
func (prog *Program) Binary() (bin []byte) {
	for _, code := range prog.Chunks() {
		bin = append(bin, code...)
	}

	return
}

// Size returns the number of bytes emitted.
func (prog *Program) Size() (size int) {
	for _, code := range prog.Codes {
		size += len(code)
	}

	return
}

// Emit sends every operation to sink, in source order, then closes it.
func (prog *Program) Emit(sink rom.Sink) (err error) {
	for n, op := range prog.Operations {
		err = sink.Emit(op.Address, prog.Codes[n])
		if err != nil {
			sink.Close()
			return
		}
	}

	return sink.Close()
}
