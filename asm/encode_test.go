package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/sap2/cpu"
)

func TestEncodeIdempotent(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		".org 0x8000",
		":start movwi r0,start",
		"movi r1,hi(start)",
		".dt 'abc'",
		"jmp start",
	)

	for n := range prog.Operations {
		op := &prog.Operations[n]
		first, err := Encode(op, prog.Symbols)
		assert.NoError(err)
		second, err := Encode(op, prog.Symbols)
		assert.NoError(err)
		assert.Equal(first, second, op.String())
		assert.Equal(prog.Codes[n], first, op.String())
		assert.Len(first, op.Size, op.String())
	}
}

func TestEncodeErrors(t *testing.T) {
	assert := assert.New(t)

	symbols := SymbolTable{"here": 0x1234}

	table := []struct {
		op  Operation
		err error
	}{
		{Operation{Kind: KIND_INSTRUCTION, Mnemonic: "mov", Register: cpu.REG_R0, Register2: cpu.REG_SP, Size: 1}, cpu.ErrRegisterInvalid},
		{Operation{Kind: KIND_INSTRUCTION, Mnemonic: "movwi", Register: cpu.REG_R1, Operand: Word(0), Size: 3}, cpu.ErrRegisterInvalid},
		{Operation{Kind: KIND_INSTRUCTION, Mnemonic: "jmp", Register: cpu.REG_NONE, Size: 3}, ErrOperandAbsent},
		{Operation{Kind: KIND_INSTRUCTION, Mnemonic: "jmp", Operand: Text("x"), Size: 3}, ErrOperandKind},
		{Operation{Kind: KIND_DT, Mnemonic: "dt", Operand: Word(1), Size: 2}, ErrOperandKind},
		{Operation{Kind: KIND_INSTRUCTION, Mnemonic: "jmp", Operand: Symbol("here", SELECT_WORD), Size: 2}, ErrSizeMismatch},
	}

	for _, entry := range table {
		codes, err := Encode(&entry.op, symbols)
		assert.Nil(codes, entry.op.Mnemonic)
		assert.ErrorIs(err, entry.err, entry.op.Mnemonic)
	}

	_, err := Encode(&Operation{Mnemonic: "frob"}, symbols)
	var unknown cpu.ErrMnemonicUnknown
	assert.ErrorAs(err, &unknown)

	_, err = Encode(&Operation{Mnemonic: "jmp", Operand: Symbol("there", SELECT_WORD), Size: 3}, symbols)
	assert.ErrorAs(err, new(ErrLabelMissing))
}

func TestEncodeZeroSize(t *testing.T) {
	assert := assert.New(t)

	for _, line := range []string{".org 0x10", ".end", ":label", "; comment"} {
		prog := assemble(t, line)
		if assert.Len(prog.Codes, 1, line) {
			assert.Empty(prog.Codes[0], line)
		}
	}
}

func TestOperationString(t *testing.T) {
	assert := assert.New(t)

	table := []string{
		"nop",
		"inc sp",
		"push r2",
		"out r3",
		"mov r1,r2",
		"movi r0,0x7f",
		"movi r0,hi(table)",
		"movwi sp,0xffff",
		"djnz r0,loop",
		"jmp 0x8000",
		".org 0x8000",
		".end",
		".db lo(table)",
		".dt 'text'",
		":loop",
		"; note",
	}

	p := &Parser{}
	for _, line := range table {
		ops, err := p.Parse(line)
		if assert.NoError(err, line) && assert.Len(ops, 1, line) {
			assert.Equal(line, ops[0].String())
		}
	}
}
