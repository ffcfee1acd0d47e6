// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"slices"
	"strings"
)

// Register is a register operand index.
type Register int

const (
	REG_R0   = Register(0)  // r0
	REG_R1   = Register(1)  // r1
	REG_R2   = Register(2)  // r2
	REG_R3   = Register(3)  // r3
	REG_SP   = Register(4)  // sp
	REG_NONE = Register(-1) // none
)

// String returns the assembly name of the register.
func (reg Register) String() string {
	switch reg {
	case REG_R0, REG_R1, REG_R2, REG_R3:
		return "r" + string(rune('0'+int(reg)))
	case REG_SP:
		return "sp"
	}
	return "none"
}

// Bits returns the register index as packed into an opcode byte.
func (reg Register) Bits() byte {
	return byte(reg) & 0x3
}

// Shape is the encoding shape of a mnemonic.
type Shape int

//go:generate go tool stringer -linecomment -type=Shape
const (
	SHAPE_NONE     = Shape(0) // none
	SHAPE_SINGLE   = Shape(1) // single
	SHAPE_REGISTER = Shape(2) // register
	SHAPE_PAIR     = Shape(3) // pair
	SHAPE_WIDE     = Shape(4) // wide
	SHAPE_ADDRESS  = Shape(5) // address
	SHAPE_DATA     = Shape(6) // data
	SHAPE_RESERVE  = Shape(7) // reserve
)

// Syntax is the operand syntax following a mnemonic keyword.
type Syntax int

//go:generate go tool stringer -linecomment -type=Syntax
const (
	SYNTAX_NONE      = Syntax(0)  // none
	SYNTAX_REG       = Syntax(1)  // reg
	SYNTAX_REG_BYTE  = Syntax(2)  // reg,byte
	SYNTAX_REG_ADDR  = Syntax(3)  // reg,addr
	SYNTAX_REG_REG   = Syntax(4)  // reg,reg
	SYNTAX_WIDE_ADDR = Syntax(5)  // wide,addr
	SYNTAX_ADDR      = Syntax(6)  // addr
	SYNTAX_FIXED     = Syntax(7)  // fixed
	SYNTAX_BYTE      = Syntax(8)  // byte
	SYNTAX_WORD      = Syntax(9)  // word
	SYNTAX_LITERAL   = Syntax(10) // literal
	SYNTAX_TEXT      = Syntax(11) // text
)

// Descriptor describes how a mnemonic is written and encoded.
type Descriptor struct {
	Mnemonic string            // Unique table key.
	Keyword  string            // Source keyword, if different from Mnemonic.
	Fixed    string            // Fixed operand token, for SYNTAX_FIXED.
	Shape    Shape             // Encoding shape.
	Syntax   Syntax            // Operand syntax.
	Opcode   byte              // Base opcode byte.
	Wide     map[Register]byte // Opcode by target, for SHAPE_WIDE.
	Size     int               // Encoded size, or -1 when set by the operand.
}

// Word returns the source keyword of the descriptor.
func (desc *Descriptor) Word() string {
	if len(desc.Keyword) != 0 {
		return desc.Keyword
	}
	return desc.Mnemonic
}

// MakeRegister packs a single register into the low bits of an opcode.
func MakeRegister(opcode byte, reg Register) byte {
	return opcode | reg.Bits()
}

// MakePair packs two registers into an opcode, the first at bits 2-3.
func MakePair(opcode byte, reg, reg2 Register) byte {
	return opcode | (reg.Bits() << 2) | reg2.Bits()
}

// MakeOpcode returns the first encoded byte for the given register operands.
func (desc *Descriptor) MakeOpcode(reg, reg2 Register) (opcode byte, err error) {
	switch desc.Shape {
	case SHAPE_SINGLE, SHAPE_ADDRESS:
		opcode = desc.Opcode
	case SHAPE_REGISTER:
		if reg < REG_R0 || reg > REG_R3 {
			err = ErrRegisterInvalid
			return
		}
		opcode = MakeRegister(desc.Opcode, reg)
	case SHAPE_PAIR:
		if reg < REG_R0 || reg > REG_R3 || reg2 < REG_R0 || reg2 > REG_R3 {
			err = ErrRegisterInvalid
			return
		}
		opcode = MakePair(desc.Opcode, reg, reg2)
	case SHAPE_WIDE:
		var ok bool
		opcode, ok = desc.Wide[reg]
		if !ok {
			err = ErrRegisterInvalid
		}
	default:
		err = ErrShapeNoOpcode(desc.Shape)
	}

	return
}

// wideTargets are the movwi destinations: stack pointer, r0:r1 and r2:r3.
var wideTargets = map[Register]byte{
	REG_SP: 0x1c,
	REG_R0: 0x1c,
	REG_R2: 0x1c,
}

// instructionSet is the SAP2 instruction table.
var instructionSet = []Descriptor{
	{Mnemonic: "nop", Shape: SHAPE_SINGLE, Syntax: SYNTAX_NONE, Opcode: 0x00, Size: 1},
	{Mnemonic: "clc", Shape: SHAPE_SINGLE, Syntax: SYNTAX_NONE, Opcode: 0x01, Size: 1},
	{Mnemonic: "setc", Shape: SHAPE_SINGLE, Syntax: SYNTAX_NONE, Opcode: 0x02, Size: 1},
	{Mnemonic: "out", Shape: SHAPE_REGISTER, Syntax: SYNTAX_REG, Opcode: 0x10, Size: 1},
	{Mnemonic: "ld", Shape: SHAPE_REGISTER, Syntax: SYNTAX_REG_ADDR, Opcode: 0x14, Size: 3},
	{Mnemonic: "st", Shape: SHAPE_REGISTER, Syntax: SYNTAX_REG_ADDR, Opcode: 0x18, Size: 3},
	{Mnemonic: "movwi", Shape: SHAPE_WIDE, Syntax: SYNTAX_WIDE_ADDR, Opcode: 0x1c, Wide: wideTargets, Size: 3},
	{Mnemonic: "incsp", Keyword: "inc", Fixed: "sp", Shape: SHAPE_SINGLE, Syntax: SYNTAX_FIXED, Opcode: 0x1d, Size: 1},
	{Mnemonic: "decsp", Keyword: "dec", Fixed: "sp", Shape: SHAPE_SINGLE, Syntax: SYNTAX_FIXED, Opcode: 0x1e, Size: 1},
	{Mnemonic: "pushr0", Keyword: "push", Fixed: "r0", Shape: SHAPE_SINGLE, Syntax: SYNTAX_FIXED, Opcode: 0x1f, Size: 1},
	{Mnemonic: "pushr2", Keyword: "push", Fixed: "r2", Shape: SHAPE_SINGLE, Syntax: SYNTAX_FIXED, Opcode: 0x20, Size: 1},
	{Mnemonic: "pushall", Shape: SHAPE_SINGLE, Syntax: SYNTAX_NONE, Opcode: 0x21, Size: 1},
	{Mnemonic: "popr0", Keyword: "pop", Fixed: "r0", Shape: SHAPE_SINGLE, Syntax: SYNTAX_FIXED, Opcode: 0x22, Size: 1},
	{Mnemonic: "popr2", Keyword: "pop", Fixed: "r2", Shape: SHAPE_SINGLE, Syntax: SYNTAX_FIXED, Opcode: 0x23, Size: 1},
	{Mnemonic: "popall", Shape: SHAPE_SINGLE, Syntax: SYNTAX_NONE, Opcode: 0x24, Size: 1},
	{Mnemonic: "exx", Shape: SHAPE_SINGLE, Syntax: SYNTAX_NONE, Opcode: 0x25, Size: 1},
	{Mnemonic: "movi", Shape: SHAPE_REGISTER, Syntax: SYNTAX_REG_BYTE, Opcode: 0x40, Size: 2},
	{Mnemonic: "xori", Shape: SHAPE_REGISTER, Syntax: SYNTAX_REG_BYTE, Opcode: 0x44, Size: 2},
	{Mnemonic: "addi", Shape: SHAPE_REGISTER, Syntax: SYNTAX_REG_BYTE, Opcode: 0x50, Size: 2},
	{Mnemonic: "subi", Shape: SHAPE_REGISTER, Syntax: SYNTAX_REG_BYTE, Opcode: 0x54, Size: 2},
	{Mnemonic: "andi", Shape: SHAPE_REGISTER, Syntax: SYNTAX_REG_BYTE, Opcode: 0x58, Size: 2},
	{Mnemonic: "ori", Shape: SHAPE_REGISTER, Syntax: SYNTAX_REG_BYTE, Opcode: 0x5c, Size: 2},
	{Mnemonic: "djnz", Shape: SHAPE_REGISTER, Syntax: SYNTAX_REG_ADDR, Opcode: 0x60, Size: 3},
	{Mnemonic: "jpz", Shape: SHAPE_ADDRESS, Syntax: SYNTAX_ADDR, Opcode: 0x64, Size: 3},
	{Mnemonic: "jpnz", Shape: SHAPE_ADDRESS, Syntax: SYNTAX_ADDR, Opcode: 0x65, Size: 3},
	{Mnemonic: "jpc", Shape: SHAPE_ADDRESS, Syntax: SYNTAX_ADDR, Opcode: 0x66, Size: 3},
	{Mnemonic: "jpnc", Shape: SHAPE_ADDRESS, Syntax: SYNTAX_ADDR, Opcode: 0x67, Size: 3},
	{Mnemonic: "jps", Shape: SHAPE_ADDRESS, Syntax: SYNTAX_ADDR, Opcode: 0x68, Size: 3},
	{Mnemonic: "jpns", Shape: SHAPE_ADDRESS, Syntax: SYNTAX_ADDR, Opcode: 0x69, Size: 3},
	{Mnemonic: "jpo", Shape: SHAPE_ADDRESS, Syntax: SYNTAX_ADDR, Opcode: 0x6a, Size: 3},
	{Mnemonic: "jpno", Shape: SHAPE_ADDRESS, Syntax: SYNTAX_ADDR, Opcode: 0x6b, Size: 3},
	{Mnemonic: "jmp", Shape: SHAPE_ADDRESS, Syntax: SYNTAX_ADDR, Opcode: 0x6c, Size: 3},
	{Mnemonic: "call", Shape: SHAPE_ADDRESS, Syntax: SYNTAX_ADDR, Opcode: 0x6e, Size: 3},
	{Mnemonic: "ret", Shape: SHAPE_SINGLE, Syntax: SYNTAX_NONE, Opcode: 0x6f, Size: 1},
	{Mnemonic: "shr", Shape: SHAPE_REGISTER, Syntax: SYNTAX_REG, Opcode: 0x80, Size: 1},
	{Mnemonic: "shl", Shape: SHAPE_REGISTER, Syntax: SYNTAX_REG, Opcode: 0x84, Size: 1},
	{Mnemonic: "inc", Shape: SHAPE_REGISTER, Syntax: SYNTAX_REG, Opcode: 0x88, Size: 1},
	{Mnemonic: "dec", Shape: SHAPE_REGISTER, Syntax: SYNTAX_REG, Opcode: 0x8c, Size: 1},
	{Mnemonic: "mov", Shape: SHAPE_PAIR, Syntax: SYNTAX_REG_REG, Opcode: 0x90, Size: 1},
	{Mnemonic: "add", Shape: SHAPE_PAIR, Syntax: SYNTAX_REG_REG, Opcode: 0xa0, Size: 1},
	{Mnemonic: "sub", Shape: SHAPE_PAIR, Syntax: SYNTAX_REG_REG, Opcode: 0xb0, Size: 1},
	{Mnemonic: "and", Shape: SHAPE_PAIR, Syntax: SYNTAX_REG_REG, Opcode: 0xc0, Size: 1},
	{Mnemonic: "or", Shape: SHAPE_PAIR, Syntax: SYNTAX_REG_REG, Opcode: 0xd0, Size: 1},
	{Mnemonic: "xor", Shape: SHAPE_PAIR, Syntax: SYNTAX_REG_REG, Opcode: 0xe0, Size: 1},
	{Mnemonic: "hlt", Shape: SHAPE_SINGLE, Syntax: SYNTAX_NONE, Opcode: 0xff, Size: 1},
}

// directiveSet is the table of dot-directives, plus the zero-size
// pseudo operations for labels and comments.
var directiveSet = []Descriptor{
	{Mnemonic: "org", Shape: SHAPE_NONE, Syntax: SYNTAX_LITERAL, Size: 0},
	{Mnemonic: "end", Shape: SHAPE_NONE, Syntax: SYNTAX_NONE, Size: 0},
	{Mnemonic: "db", Shape: SHAPE_DATA, Syntax: SYNTAX_BYTE, Size: 1},
	{Mnemonic: "dw", Shape: SHAPE_DATA, Syntax: SYNTAX_WORD, Size: 2},
	{Mnemonic: "ds", Shape: SHAPE_RESERVE, Syntax: SYNTAX_LITERAL, Size: -1},
	{Mnemonic: "dt", Shape: SHAPE_DATA, Syntax: SYNTAX_TEXT, Size: -1},
	{Mnemonic: LABEL, Shape: SHAPE_NONE, Syntax: SYNTAX_NONE, Size: 0},
	{Mnemonic: COMMENT, Shape: SHAPE_NONE, Syntax: SYNTAX_NONE, Size: 0},
}

const (
	LABEL   = "label"   // Mnemonic of a label definition.
	COMMENT = "comment" // Mnemonic of a comment.
)

var descriptorMap = func() map[string]*Descriptor {
	m := make(map[string]*Descriptor, len(instructionSet)+len(directiveSet))
	for _, set := range [][]Descriptor{instructionSet, directiveSet} {
		for n := range set {
			desc := &set[n]
			if _, dup := m[desc.Mnemonic]; dup {
				panic("cpu: duplicate mnemonic " + desc.Mnemonic)
			}
			m[desc.Mnemonic] = desc
		}
	}
	return m
}()

// Lookup returns the descriptor of a mnemonic.
func Lookup(mnemonic string) (desc *Descriptor, err error) {
	desc, ok := descriptorMap[mnemonic]
	if !ok {
		err = ErrMnemonicUnknown(mnemonic)
	}
	return
}

// byLongestWord orders descriptors longest keyword first, keeping table
// order between keywords of equal length.
func byLongestWord(set []Descriptor) (list []*Descriptor) {
	for n := range set {
		list = append(list, &set[n])
	}
	slices.SortStableFunc(list, func(a, b *Descriptor) int {
		return len(b.Word()) - len(a.Word())
	})
	return
}

var (
	instructionOrder = byLongestWord(instructionSet)
	directiveOrder   = byLongestWord(directiveSet[:6])
)

// Instructions returns the instruction descriptors, longest keyword first.
func Instructions() []*Descriptor {
	return slices.Clone(instructionOrder)
}

// Directives returns the dot-directive descriptors, longest keyword first.
func Directives() []*Descriptor {
	return slices.Clone(directiveOrder)
}

// Mnemonics returns all instruction mnemonics, sorted.
func Mnemonics() (list []string) {
	for _, desc := range instructionSet {
		list = append(list, desc.Mnemonic)
	}
	slices.SortFunc(list, strings.Compare)
	return
}
