package asm

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/sap2/cpu"
)

func assemble(t *testing.T, lines ...string) *Program {
	t.Helper()

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	require.NotNil(t, prog)

	return prog
}

func TestAssemblerEmpty(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t)
	assert.Empty(prog.Operations)
	assert.Empty(prog.Symbols)
	assert.Equal(0, prog.Size())
}

func TestAssemblerMnemonics(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		line  string
		codes []byte
	}{
		{"nop", []byte{0x00}},
		{"clc", []byte{0x01}},
		{"setc", []byte{0x02}},
		{"out r1", []byte{0x11}},
		{"ld r2,0x1234", []byte{0x16, 0x34, 0x12}},
		{"st r3,0x8000", []byte{0x1b, 0x00, 0x80}},
		{"movwi r2,0x1234", []byte{0x1c, 0x34, 0x12}},
		{"inc sp", []byte{0x1d}},
		{"dec sp", []byte{0x1e}},
		{"push r0", []byte{0x1f}},
		{"push r2", []byte{0x20}},
		{"pushall", []byte{0x21}},
		{"pop r0", []byte{0x22}},
		{"pop r2", []byte{0x23}},
		{"popall", []byte{0x24}},
		{"exx", []byte{0x25}},
		{"movi r1,0x7f", []byte{0x41, 0x7f}},
		{"xori r2,0xff", []byte{0x46, 0xff}},
		{"addi r3,1", []byte{0x53, 0x01}},
		{"subi r0,-1", []byte{0x54, 0xff}},
		{"andi r1,0b1010", []byte{0x59, 0x0a}},
		{"ori r2,0o17", []byte{0x5e, 0x0f}},
		{"djnz r1,0x8000", []byte{0x61, 0x00, 0x80}},
		{"jpz 1", []byte{0x64, 0x01, 0x00}},
		{"jpnz 2", []byte{0x65, 0x02, 0x00}},
		{"jpc 3", []byte{0x66, 0x03, 0x00}},
		{"jpnc 4", []byte{0x67, 0x04, 0x00}},
		{"jps 5", []byte{0x68, 0x05, 0x00}},
		{"jpns 6", []byte{0x69, 0x06, 0x00}},
		{"jpo 7", []byte{0x6a, 0x07, 0x00}},
		{"jpno 8", []byte{0x6b, 0x08, 0x00}},
		{"jmp 0x8100", []byte{0x6c, 0x00, 0x81}},
		{"call 0x8123", []byte{0x6e, 0x23, 0x81}},
		{"ret", []byte{0x6f}},
		{"shr r1", []byte{0x81}},
		{"shl r2", []byte{0x86}},
		{"inc r3", []byte{0x8b}},
		{"dec r0", []byte{0x8c}},
		{"mov r1,r2", []byte{0x96}},
		{"add r3,r0", []byte{0xac}},
		{"sub r0,r3", []byte{0xb3}},
		{"and r2,r2", []byte{0xca}},
		{"or r1,r3", []byte{0xd7}},
		{"xor r3,r3", []byte{0xef}},
		{"hlt", []byte{0xff}},
	}

	var mnemonics []string
	for _, entry := range table {
		prog := assemble(t, entry.line)
		if !assert.Len(prog.Operations, 1, entry.line) {
			continue
		}
		op := &prog.Operations[0]
		mnemonics = append(mnemonics, op.Mnemonic)

		assert.Equal(entry.codes, prog.Codes[0], entry.line)
		assert.Equal(op.Size, len(prog.Codes[0]), entry.line)

		desc, err := op.Descriptor()
		assert.NoError(err)
		mask := byte(0)
		switch desc.Shape {
		case cpu.SHAPE_REGISTER:
			mask = 0x03
		case cpu.SHAPE_PAIR:
			mask = 0x0f
		}
		assert.Equal(desc.Opcode, prog.Codes[0][0]&^mask, entry.line)
	}

	slices.Sort(mnemonics)
	assert.Equal(cpu.Mnemonics(), mnemonics)
}

func TestAssemblerMovwiStack(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t, "movwi sp,0xffff     ; set stack pointer")
	assert.Equal([]byte{0x1c, 0xff, 0xff}, prog.Binary())
}

func TestAssemblerLoop(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		".org 0x8000",
		":loop",
		"djnz r0,loop",
	)

	addr, ok := prog.Symbols.Lookup("loop")
	assert.True(ok)
	assert.Equal(uint16(0x8000), addr)
	assert.Equal([]byte{0x60, 0x00, 0x80}, prog.Binary())
}

func TestAssemblerForwardReference(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		".org 0x8000",
		"        jmp there      ; forward",
		"        nop",
		":there  nop",
		"        jmp there      ; backward",
		"        .dw there",
	)

	assert.Equal(uint16(0x8004), prog.Symbols["there"])
	assert.Equal([]byte{
		0x6c, 0x04, 0x80,
		0x00,
		0x00,
		0x6c, 0x04, 0x80,
		0x04, 0x80,
	}, prog.Binary())
}

func TestAssemblerAddressFunctions(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		".org 0x8000",
		"movi r0,hi(table)",
		"movi r1,lo(table)",
		"hlt",
		".org 0x9234",
		":table .db hi(table)",
		".db lo(table)",
	)

	assert.Equal([]byte{
		0x40, 0x92,
		0x41, 0x34,
		0xff,
		0x92,
		0x34,
	}, prog.Binary())
}

func TestAssemblerData(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		".db 0x41",
		".dw 0x1234",
		".ds 3",
		".dt 'Hi'",
		":after",
	)

	assert.Equal([]byte{
		0x41,
		0x34, 0x12,
		0x00, 0x00, 0x00,
		'H', 'i', 0x00,
	}, prog.Binary())
	assert.Equal(9, prog.Size())
	assert.Equal(uint16(9), prog.Symbols["after"])
}

func TestAssemblerEnd(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		"nop",
		".end",
		"this line is never parsed",
		"hlt",
	)

	assert.Equal([]byte{0x00}, prog.Binary())
	assert.Len(prog.Operations, 2)
	assert.Equal(KIND_END, prog.Operations[1].Kind)
}

func TestAssemblerDuplicateLabel(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Filename: "dup.asm"}
	prog, err := asm.Parse(strings.NewReader(strings.Join([]string{
		":start nop",
		"jmp start",
		":start hlt",
	}, "\n")))
	assert.Nil(prog)
	assert.ErrorIs(err, ErrLabelDuplicate)

	var serr *ErrSyntax
	if assert.ErrorAs(err, &serr) {
		assert.Equal("dup.asm", serr.File)
		assert.Equal(3, serr.LineNo)
		assert.Equal(":start hlt", serr.Line)
	}
}

func TestAssemblerMissingLabel(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader("nop\njmp nowhere\n"))
	assert.Nil(prog)

	var missing ErrLabelMissing
	if assert.ErrorAs(err, &missing) {
		assert.Equal(ErrLabelMissing("nowhere"), missing)
	}

	var serr *ErrSyntax
	if assert.ErrorAs(err, &serr) {
		assert.Equal(2, serr.LineNo)
	}
}

func TestAssemblerErrorsAccumulate(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join([]string{
		"nop",
		"movi r5,1",
		"hlt",
		"jump away",
		":ok",
	}, "\n")))
	assert.Nil(prog)

	var failed *ErrFailed
	if !assert.ErrorAs(err, &failed) {
		return
	}
	require.Len(t, failed.Errors, 2)

	var lines []int
	for _, e := range failed.Errors {
		var serr *ErrSyntax
		if assert.ErrorAs(e, &serr) {
			lines = append(lines, serr.LineNo)
		}
	}
	assert.Equal([]int{2, 4}, lines)

	var perr *ErrParse
	assert.ErrorAs(err, &perr)
	assert.Contains(err.Error(), "movi r5,1")
}

func TestAssemblerAddressRange(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	_, err := asm.Parse(strings.NewReader(".org 0xfffe\nnop\nnop\n"))
	assert.NoError(err)

	_, err = asm.Parse(strings.NewReader(".org 0xfffe\nnop\n.dw 0\n"))
	assert.ErrorIs(err, ErrAddressRange)

	_, err = asm.Parse(strings.NewReader(".org 0xffff\nnop\n:past\n"))
	assert.ErrorIs(err, ErrAddressRange)

	for src, column := range map[string]int{
		".ds 0x10000":  5,
		".org 0x10000": 6,
		".org 70000":   6,
		".ds -1":       5,
	} {
		prog, err := asm.Parse(strings.NewReader(src + "\n"))
		assert.Nil(prog, src)
		var perr *ErrParse
		if assert.ErrorAs(err, &perr, src) {
			assert.Equal(column, perr.Column, src)
			assert.Contains(perr.Expected, "address 0..0xffff", src)
		}
	}
}

func TestAssemblerPredefine(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("console", 0x7f00)

	prog, err := asm.Parse(strings.NewReader("st r0,console\n"))
	assert.NoError(err)
	if assert.NotNil(prog) {
		assert.Equal([]byte{0x18, 0x00, 0x7f}, prog.Binary())
	}

	_, err = asm.Parse(strings.NewReader(":console\n"))
	assert.ErrorIs(err, ErrLabelDuplicate)
}

func TestAssemblerIgnoreCase(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	_, err := asm.Parse(strings.NewReader("HLT\n"))
	assert.Error(err)

	asm.IgnoreCase = true
	prog, err := asm.Parse(strings.NewReader("HLT\n"))
	assert.NoError(err)
	if assert.NotNil(prog) {
		assert.Equal([]byte{0xff}, prog.Binary())
	}
}

func TestAssemblerReadError(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(errReader{})
	assert.Nil(prog)
	assert.ErrorIs(err, errRead)
}

var errRead = errors.New("read failed")

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errRead
}
