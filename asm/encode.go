// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"github.com/ezrec/sap2/cpu"
)

// Encode returns the machine bytes of a resolved operation. Symbols are
// dereferenced here and nowhere else; the result depends only on the
// operation and the symbol table.
func Encode(op *Operation, symbols SymbolTable) (codes []byte, err error) {
	desc, err := op.Descriptor()
	if err != nil {
		return
	}

	switch desc.Shape {
	case cpu.SHAPE_NONE:
	case cpu.SHAPE_SINGLE, cpu.SHAPE_REGISTER, cpu.SHAPE_PAIR, cpu.SHAPE_WIDE, cpu.SHAPE_ADDRESS:
		var opcode byte
		opcode, err = desc.MakeOpcode(op.Register, op.Register2)
		if err != nil {
			return
		}
		codes = append(codes, opcode)

		switch desc.Syntax {
		case cpu.SYNTAX_REG_BYTE:
			var value byte
			value, err = op.Operand.Byte(symbols)
			codes = append(codes, value)
		case cpu.SYNTAX_REG_ADDR, cpu.SYNTAX_WIDE_ADDR, cpu.SYNTAX_ADDR:
			var word uint16
			word, err = op.Operand.Word(symbols)
			codes = append(codes, byte(word), byte(word>>8))
		}
	case cpu.SHAPE_DATA:
		switch desc.Syntax {
		case cpu.SYNTAX_BYTE:
			var value byte
			value, err = op.Operand.Byte(symbols)
			codes = append(codes, value)
		case cpu.SYNTAX_WORD:
			var word uint16
			word, err = op.Operand.Word(symbols)
			codes = append(codes, byte(word), byte(word>>8))
		case cpu.SYNTAX_TEXT:
			codes, err = op.Operand.Bytes()
		default:
			err = cpu.ErrShapeNoOpcode(desc.Shape)
		}
	case cpu.SHAPE_RESERVE:
		codes = make([]byte, op.Size)
	default:
		err = cpu.ErrShapeNoOpcode(desc.Shape)
	}

	if err != nil {
		codes = nil
		return
	}

	if len(codes) != op.Size {
		codes = nil
		err = ErrSizeMismatch
		return
	}

	return
}
