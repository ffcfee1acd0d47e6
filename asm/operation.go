// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"strings"

	"github.com/ezrec/sap2/cpu"
)

// Kind is the kind of a parsed operation.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_COMMENT     = Kind(0) // comment
	KIND_LABEL       = Kind(1) // label
	KIND_INSTRUCTION = Kind(2) // instruction
	KIND_ORG         = Kind(3) // org
	KIND_END         = Kind(4) // end
	KIND_DB          = Kind(5) // db
	KIND_DW          = Kind(6) // dw
	KIND_DS          = Kind(7) // ds
	KIND_DT          = Kind(8) // dt
)

// directiveKind maps directive mnemonics to their operation kind.
var directiveKind = map[string]Kind{
	"org": KIND_ORG,
	"end": KIND_END,
	"db":  KIND_DB,
	"dw":  KIND_DW,
	"ds":  KIND_DS,
	"dt":  KIND_DT,
}

// ValueKind is the variant held by a Value.
type ValueKind int

//go:generate go tool stringer -linecomment -type=ValueKind
const (
	VALUE_NONE   = ValueKind(0) // none
	VALUE_BYTE   = ValueKind(1) // byte
	VALUE_WORD   = ValueKind(2) // word
	VALUE_SYMBOL = ValueKind(3) // symbol
	VALUE_TEXT   = ValueKind(4) // text
)

// Select picks part of a 16-bit value.
type Select int

//go:generate go tool stringer -linecomment -type=Select
const (
	SELECT_WORD = Select(0) // word
	SELECT_LOW  = Select(1) // lo
	SELECT_HIGH = Select(2) // hi
)

func (sel Select) apply(word uint16) uint16 {
	switch sel {
	case SELECT_LOW:
		return word & 0xff
	case SELECT_HIGH:
		return word >> 8
	}
	return word
}

// Value is an operand: an immediate byte or word, a symbol reference
// resolved at encode time, or a text literal.
type Value struct {
	Kind   ValueKind
	Number uint16 // VALUE_BYTE and VALUE_WORD
	Symbol string // VALUE_SYMBOL
	Text   string // VALUE_TEXT
	Select Select // Part of the symbol address used.
}

// Byte returns an immediate byte value.
func Byte(value byte) Value {
	return Value{Kind: VALUE_BYTE, Number: uint16(value)}
}

// Word returns an immediate word value.
func Word(value uint16) Value {
	return Value{Kind: VALUE_WORD, Number: value}
}

// Symbol returns a reference to a symbol.
func Symbol(name string, sel Select) Value {
	return Value{Kind: VALUE_SYMBOL, Symbol: name, Select: sel}
}

// Text returns a text literal.
func Text(text string) Value {
	return Value{Kind: VALUE_TEXT, Text: text}
}

// Word resolves the value to 16 bits.
func (v Value) Word(symbols SymbolTable) (word uint16, err error) {
	switch v.Kind {
	case VALUE_BYTE, VALUE_WORD:
		word = v.Number
	case VALUE_SYMBOL:
		addr, ok := symbols.Lookup(v.Symbol)
		if !ok {
			err = ErrLabelMissing(v.Symbol)
			return
		}
		word = v.Select.apply(addr)
	case VALUE_NONE:
		err = ErrOperandAbsent
	default:
		err = ErrOperandKind
	}

	return
}

// Byte resolves the value to its low 8 bits.
func (v Value) Byte(symbols SymbolTable) (value byte, err error) {
	word, err := v.Word(symbols)
	if err != nil {
		return
	}

	value = byte(word & 0xff)
	return
}

// Bytes resolves a text value to its characters and a zero terminator.
func (v Value) Bytes() (codes []byte, err error) {
	if v.Kind != VALUE_TEXT {
		err = ErrOperandKind
		return
	}

	codes = append([]byte(v.Text), 0)
	return
}

func (v Value) String() string {
	switch v.Kind {
	case VALUE_BYTE:
		return fmt.Sprintf("%#02x", v.Number)
	case VALUE_WORD:
		return fmt.Sprintf("%#04x", v.Number)
	case VALUE_SYMBOL:
		if v.Select != SELECT_WORD {
			return v.Select.String() + "(" + v.Symbol + ")"
		}
		return v.Symbol
	case VALUE_TEXT:
		return "'" + v.Text + "'"
	}
	return ""
}

// Operation is one parsed unit of source.
type Operation struct {
	Kind      Kind         // Kind of operation.
	Mnemonic  string       // Descriptor key in the instruction set.
	Register  cpu.Register // First register operand, or REG_NONE.
	Register2 cpu.Register // Second register operand, or REG_NONE.
	Operand   Value        // Immediate, address, data or text operand.
	Size      int          // Bytes occupied in the image.
	Address   uint16       // Program counter, once resolved.
	Resolved  bool         // Set once Address is assigned.
	Label     string       // Defined name, for KIND_LABEL.
	Comment   string       // Comment text, for KIND_COMMENT.

	File   string // Source file, for diagnostics.
	LineNo int    // Source line number, for diagnostics.
	Line   string // Source line text, for diagnostics.
}

// Descriptor returns the instruction set entry of the operation.
func (op *Operation) Descriptor() (desc *cpu.Descriptor, err error) {
	return cpu.Lookup(op.Mnemonic)
}

// String returns the operation in canonical source form.
func (op *Operation) String() string {
	switch op.Kind {
	case KIND_COMMENT:
		return ";" + op.Comment
	case KIND_LABEL:
		return ":" + op.Label
	case KIND_INSTRUCTION:
	default:
		text := "." + op.Kind.String()
		if op.Operand.Kind != VALUE_NONE {
			text += " " + op.Operand.String()
		}
		return text
	}

	desc, err := op.Descriptor()
	if err != nil {
		return op.Mnemonic
	}

	var args []string
	switch desc.Syntax {
	case cpu.SYNTAX_FIXED:
		args = append(args, desc.Fixed)
	case cpu.SYNTAX_REG:
		args = append(args, op.Register.String())
	case cpu.SYNTAX_REG_BYTE, cpu.SYNTAX_REG_ADDR, cpu.SYNTAX_WIDE_ADDR:
		args = append(args, op.Register.String(), op.Operand.String())
	case cpu.SYNTAX_REG_REG:
		args = append(args, op.Register.String(), op.Register2.String())
	case cpu.SYNTAX_ADDR:
		args = append(args, op.Operand.String())
	}

	if len(args) == 0 {
		return desc.Word()
	}

	return desc.Word() + " " + strings.Join(args, ",")
}
