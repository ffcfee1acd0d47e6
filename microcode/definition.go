// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package microcode

import (
	"cmp"
	"slices"
)

// Active is the asserted level of a control line.
type Active int

//go:generate go tool stringer -linecomment -type=Active
const (
	ACTIVE_LOW  = Active(0) // low
	ACTIVE_HIGH = Active(1) // high
)

const (
	DEFAULT_WIDTH = 24 // Control word width, in bits.
	DEFAULT_STEPS = 8  // Steps per opcode row.
)

// Line is a control line: one bit of the control word.
type Line struct {
	Key    string // Name used in steps.
	Bit    int    // Bit position in the control word.
	Active Active // Asserted level.
	Desc   string // Description, for listings.
}

// Inactive returns the bits of the line when it is not asserted.
func (line *Line) Inactive() uint32 {
	if line.Active == ACTIVE_LOW {
		return 1 << line.Bit
	}
	return 0
}

// Step is the set of control lines asserted during one clock.
type Step []string

// Opcode is the execute steps of one instruction.
type Opcode struct {
	Name  string
	Code  byte
	Steps []Step
}

// Definition describes a control unit.
type Definition struct {
	Width   int      // Control word width, in bits.
	Steps   int      // Steps per opcode row, fetch included.
	Lines   []Line   // Control lines.
	Fetch   []Step   // Steps shared by every opcode, before its own.
	Opcodes []Opcode // Opcodes, in any order.
}

// line returns the control line named key.
func (def *Definition) line(key string) (line *Line, err error) {
	for n := range def.Lines {
		if def.Lines[n].Key == key {
			line = &def.Lines[n]
			return
		}
	}

	err = ErrKeyUnknown(key)
	return
}

// Check verifies that control line keys and bits are unique and within the
// control word, that opcodes are unique, and that every step names defined
// lines and fits within a row.
func (def *Definition) Check() (err error) {
	keys := map[string]bool{}
	var bits uint64
	for _, line := range def.Lines {
		if keys[line.Key] {
			err = ErrKeyDuplicate(line.Key)
			return
		}
		keys[line.Key] = true

		if line.Bit < 0 || line.Bit >= def.Width || line.Bit >= 32 {
			err = ErrBitRange(line.Bit)
			return
		}

		bit := uint64(1) << line.Bit
		if bits&bit != 0 {
			err = ErrBitDuplicate(line.Bit)
			return
		}
		bits |= bit
	}

	codes := map[byte]bool{}
	for _, op := range def.Opcodes {
		if codes[op.Code] {
			err = ErrOpcodeDuplicate(op.Name)
			return
		}
		codes[op.Code] = true

		if len(def.Fetch)+len(op.Steps) > def.Steps {
			err = ErrStepsOverflow(op.Name)
			return
		}

		for _, step := range slices.Concat(def.Fetch, op.Steps) {
			for _, key := range step {
				if !keys[key] {
					err = ErrKeyUnknown(key)
					return
				}
			}
		}
	}

	return
}

// NopWord returns the control word with every line inactive.
func (def *Definition) NopWord() (word uint32) {
	for _, line := range def.Lines {
		word |= line.Inactive()
	}

	return
}

// ControlWord returns the control word asserting the lines of step.
func (def *Definition) ControlWord(step Step) (word uint32, err error) {
	var mask uint32
	for _, key := range step {
		var line *Line
		line, err = def.line(key)
		if err != nil {
			return
		}
		mask |= 1 << line.Bit
	}

	word = mask ^ def.NopWord()
	return
}

// Decode returns the keys of the lines asserted by word, highest bit first.
func (def *Definition) Decode(word uint32) (step Step) {
	lines := slices.Clone(def.Lines)
	slices.SortFunc(lines, func(a, b Line) int {
		return cmp.Compare(b.Bit, a.Bit)
	})

	nop := def.NopWord()
	for _, line := range lines {
		if (word^nop)&(1<<line.Bit) != 0 {
			step = append(step, line.Key)
		}
	}

	return
}
