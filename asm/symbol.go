// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"

	"github.com/golang/glog"
)

// SymbolTable maps label names to addresses.
type SymbolTable map[string]uint16

// Define binds name to addr. A name may be defined only once.
func (st SymbolTable) Define(name string, addr uint16) (err error) {
	if _, ok := st[name]; ok {
		err = fmt.Errorf("%w: %v", ErrLabelDuplicate, name)
		return
	}

	st[name] = addr
	return
}

// Lookup returns the address of name.
func (st SymbolTable) Lookup(name string) (addr uint16, ok bool) {
	addr, ok = st[name]
	return
}

// Sorted returns the symbols ordered by address, then name.
func (st SymbolTable) Sorted() iter.Seq2[string, uint16] {
	names := slices.SortedFunc(maps.Keys(st), func(a, b string) int {
		return cmp.Or(cmp.Compare(st[a], st[b]), cmp.Compare(a, b))
	})

	return func(yield func(name string, addr uint16) bool) {
		for _, name := range names {
			if !yield(name, st[name]) {
				return
			}
		}
	}
}

// WriteTo writes one "'name': 0x0000" line per symbol.
func (st SymbolTable) WriteTo(w io.Writer) (n int64, err error) {
	for name, addr := range st.Sorted() {
		var count int
		count, err = fmt.Fprintf(w, "'%s': 0x%04x\n", name, addr)
		n += int64(count)
		if err != nil {
			return
		}
	}

	return
}

// Resolve assigns an address to every operation, and binds every label to
// the address of the byte that follows it. The program counter starts at
// zero and is moved only by .org.
func Resolve(ops []Operation, predefined SymbolTable) (symbols SymbolTable, err error) {
	symbols = maps.Clone(predefined)
	if symbols == nil {
		symbols = SymbolTable{}
	}

	pc := 0
	for n := range ops {
		op := &ops[n]

		if op.Kind == KIND_ORG {
			pc = int(op.Operand.Number)
		}

		if pc > 0xffff || pc+op.Size > 0x10000 {
			err = &ErrSyntax{File: op.File, LineNo: op.LineNo, Line: op.Line, Err: ErrAddressRange}
			symbols = nil
			return
		}

		op.Address = uint16(pc)
		op.Resolved = true

		if glog.V(2) {
			glog.Infof("%04x: %v", op.Address, op.String())
		}

		if op.Kind == KIND_LABEL {
			err = symbols.Define(op.Label, op.Address)
			if err != nil {
				err = &ErrSyntax{File: op.File, LineNo: op.LineNo, Line: op.Line, Err: err}
				symbols = nil
				return
			}
		}

		pc += op.Size
	}

	return
}
