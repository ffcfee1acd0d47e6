// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/sap2/cpu"
)

// textPattern is every printable character except the quote.
const textPattern = " -&(-~"

var registerWords = []string{"r0", "r1", "r2", "r3"}

// Parser turns a single line of source into operations.
//
// A Parser keeps its compiled character classes between lines; it is not
// safe for concurrent use.
type Parser struct {
	IgnoreCase bool // If set, keywords and registers match in any case.

	scan         scanner
	instructions []*cpu.Descriptor
	directives   []*cpu.Descriptor
}

// Parse parses one line. A line is any number of label definitions,
// then at most one directive or instruction, then an optional comment.
func (p *Parser) Parse(line string) (ops []Operation, err error) {
	if p.instructions == nil {
		p.instructions = cpu.Instructions()
		p.directives = cpu.Directives()
	}

	s := &p.scan
	s.ignoreCase = p.IgnoreCase
	s.reset(line)

	for {
		s.skipSpace()
		if s.eol() {
			return
		}

		if op, ok := p.comment(); ok {
			ops = append(ops, op)
			return
		}

		if op, ok := p.label(); ok {
			ops = append(ops, op)
			continue
		}

		if op, ok := p.directive(); ok {
			ops = append(ops, op)
			break
		}

		if op, ok := p.instruction(); ok {
			ops = append(ops, op)
			break
		}

		ops = nil
		err = s.error()
		return
	}

	s.skipSpace()
	if s.eol() {
		return
	}

	if op, ok := p.comment(); ok {
		ops = append(ops, op)
		return
	}

	s.fail(f("end of line"))
	ops = nil
	err = s.error()
	return
}

// comment matches ';' or '#' and the rest of the line.
func (p *Parser) comment() (op Operation, ok bool) {
	s := &p.scan

	if _, ok = s.chars(";#"); !ok {
		s.fail(f("comment"))
		return
	}

	op = Operation{
		Kind:      KIND_COMMENT,
		Mnemonic:  cpu.COMMENT,
		Register:  cpu.REG_NONE,
		Register2: cpu.REG_NONE,
		Comment:   s.text[s.pos:],
	}
	s.pos = len(s.text)

	return
}

// label matches ':' immediately followed by an identifier.
func (p *Parser) label() (op Operation, ok bool) {
	s := &p.scan
	start := s.pos

	if _, ok = s.chars(":"); !ok {
		s.fail(f("label"))
		return
	}

	if s.eol() || !s.class(identStart).has(s.text[s.pos]) {
		s.fail(f("identifier"))
		s.pos = start
		ok = false
		return
	}

	name, ok := s.identifier()
	if !ok {
		s.pos = start
		return
	}

	op = Operation{
		Kind:      KIND_LABEL,
		Mnemonic:  cpu.LABEL,
		Register:  cpu.REG_NONE,
		Register2: cpu.REG_NONE,
		Label:     name,
	}

	return
}

// directive matches '.' followed by a directive keyword and its operand.
func (p *Parser) directive() (op Operation, ok bool) {
	s := &p.scan
	start := s.pos

	if _, ok = s.chars("."); !ok {
		s.fail(f("directive"))
		return
	}
	after := s.pos

	for _, desc := range p.directives {
		s.pos = after
		if _, ok = s.word(desc.Word()); !ok {
			continue
		}

		op = Operation{
			Kind:      directiveKind[desc.Mnemonic],
			Mnemonic:  desc.Mnemonic,
			Register:  cpu.REG_NONE,
			Register2: cpu.REG_NONE,
			Size:      desc.Size,
		}

		switch desc.Syntax {
		case cpu.SYNTAX_NONE:
		case cpu.SYNTAX_LITERAL:
			op.Operand, ok = p.literal()
		case cpu.SYNTAX_BYTE:
			op.Operand, ok = p.byte8()
		case cpu.SYNTAX_WORD:
			op.Operand, ok = p.addr16()
		case cpu.SYNTAX_TEXT:
			op.Operand, ok = p.text()
		default:
			ok = false
		}

		if !ok {
			break
		}

		switch op.Kind {
		case KIND_DS:
			op.Size = int(op.Operand.Number)
		case KIND_DT:
			op.Size = len(op.Operand.Text) + 1
		}

		return
	}

	var words []string
	for _, desc := range p.directives {
		words = append(words, desc.Word())
	}
	s.pos = after
	s.fail(strings.Join(words, "|"))

	s.pos = start
	ok = false
	return
}

// instruction matches a mnemonic keyword and its operands. Descriptors that
// share a keyword are tried in table order until the operands match.
func (p *Parser) instruction() (op Operation, ok bool) {
	s := &p.scan
	start := s.pos

	for _, desc := range p.instructions {
		s.pos = start
		if _, ok = s.word(desc.Word()); !ok {
			continue
		}

		op, ok = p.operands(desc)
		if ok {
			return
		}
	}

	s.pos = start
	s.fail(f("instruction"))
	ok = false
	return
}

// operands matches the operands of desc, after its keyword.
func (p *Parser) operands(desc *cpu.Descriptor) (op Operation, ok bool) {
	s := &p.scan

	op = Operation{
		Kind:      KIND_INSTRUCTION,
		Mnemonic:  desc.Mnemonic,
		Register:  cpu.REG_NONE,
		Register2: cpu.REG_NONE,
		Size:      desc.Size,
	}

	switch desc.Syntax {
	case cpu.SYNTAX_NONE:
		ok = true
	case cpu.SYNTAX_FIXED:
		_, ok = s.keyword(desc.Fixed)
	case cpu.SYNTAX_REG:
		op.Register, ok = p.register()
	case cpu.SYNTAX_REG_BYTE:
		if op.Register, ok = p.register(); ok && s.token(",") {
			op.Operand, ok = p.byte8()
		} else {
			ok = false
		}
	case cpu.SYNTAX_REG_ADDR:
		if op.Register, ok = p.register(); ok && s.token(",") {
			op.Operand, ok = p.addr16()
		} else {
			ok = false
		}
	case cpu.SYNTAX_REG_REG:
		if op.Register, ok = p.register(); ok && s.token(",") {
			op.Register2, ok = p.register()
		} else {
			ok = false
		}
	case cpu.SYNTAX_WIDE_ADDR:
		if op.Register, ok = p.wide(desc); ok && s.token(",") {
			op.Operand, ok = p.addr16()
		} else {
			ok = false
		}
	case cpu.SYNTAX_ADDR:
		op.Operand, ok = p.addr16()
	}

	return
}

// register matches r0 through r3.
func (p *Parser) register() (reg cpu.Register, ok bool) {
	word, ok := p.scan.keyword(registerWords...)
	if !ok {
		reg = cpu.REG_NONE
		return
	}

	reg = cpu.Register(word[1] - '0')
	return
}

// wide matches one of the wide targets of desc: sp, or a register.
func (p *Parser) wide(desc *cpu.Descriptor) (reg cpu.Register, ok bool) {
	s := &p.scan
	start := s.pos

	var words []string
	for _, target := range slices.Sorted(maps.Keys(desc.Wide)) {
		words = append(words, target.String())
	}

	word, ok := s.keyword(words...)
	if !ok {
		reg = cpu.REG_NONE
		return
	}

	for target := range desc.Wide {
		if strings.EqualFold(target.String(), word) {
			reg = target
			return
		}
	}

	s.pos = start
	reg = cpu.REG_NONE
	ok = false
	return
}

// literal matches an address or size in 0..0xffff.
func (p *Parser) literal() (value Value, ok bool) {
	s := &p.scan
	start := s.pos

	number, ok := s.number()
	if !ok {
		return
	}

	if number < 0 || number > 0xffff {
		s.pos = start
		s.skipSpace()
		s.fail(f("address 0..0xffff"))
		s.pos = start
		ok = false
		return
	}

	value = Word(uint16(number))
	return
}

// byte8 matches a number truncated to 8 bits, or an address function
// hi(x) or lo(x).
func (p *Parser) byte8() (value Value, ok bool) {
	s := &p.scan
	start := s.pos

	if fn, found := s.word("hi", "lo", "high", "low"); found {
		sel := SELECT_LOW
		if strings.HasPrefix(strings.ToLower(fn), "h") {
			sel = SELECT_HIGH
		}

		var arg Value
		if s.token("(") {
			if arg, ok = p.addr16(); ok && s.token(")") {
				switch arg.Kind {
				case VALUE_WORD:
					value = Byte(byte(sel.apply(arg.Number)))
				case VALUE_SYMBOL:
					value = Symbol(arg.Symbol, sel)
				}
				return
			}
		}
		s.pos = start
	}

	number, ok := s.number()
	if !ok {
		s.skipSpace()
		s.fail("hi(...)|lo(...)")
		s.pos = start
		return
	}

	value = Byte(byte(number))
	return
}

// addr16 matches a number truncated to 16 bits, or a symbol name.
func (p *Parser) addr16() (value Value, ok bool) {
	s := &p.scan

	if number, found := s.number(); found {
		value = Word(uint16(number))
		ok = true
		return
	}

	name, ok := s.identifier()
	if !ok {
		return
	}

	value = Symbol(name, SELECT_WORD)
	return
}

// text matches a quoted string of printable characters.
func (p *Parser) text() (value Value, ok bool) {
	s := &p.scan
	start := s.pos

	s.skipSpace()
	if _, ok = s.chars("'"); !ok {
		s.fail(f("quoted text"))
		s.pos = start
		return
	}

	text := s.run(textPattern)
	if len(text) == 0 {
		s.fail(f("text"))
		s.pos = start
		ok = false
		return
	}

	if _, ok = s.chars("'"); !ok {
		s.fail("'")
		s.pos = start
		return
	}

	value = Text(text)
	return
}
