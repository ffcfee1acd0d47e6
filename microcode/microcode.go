// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package microcode

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/ezrec/sap2/internal"
	"github.com/ezrec/sap2/rom"
)

// Row is the control words of one opcode: fetch steps, execute steps, and
// NOP padding.
type Row struct {
	Opcode *Opcode
	Words  []uint32
	Offset int // Word offset of the execute steps in a packed listing.
}

// Microcode is a compiled control unit.
type Microcode struct {
	Definition *Definition
	Nop        uint32 // Control word with every line inactive.
	Fetch      []uint32
	Rows       []Row // Ordered by opcode byte.
}

// words returns the control words of steps.
func (def *Definition) words(steps []Step) (words []uint32, err error) {
	for _, step := range steps {
		var word uint32
		word, err = def.ControlWord(step)
		if err != nil {
			return
		}
		words = append(words, word)
	}

	return
}

// Build checks the definition and compiles every opcode row.
func (def *Definition) Build() (mc *Microcode, err error) {
	err = def.Check()
	if err != nil {
		return
	}

	fetch, err := def.words(def.Fetch)
	if err != nil {
		return
	}

	mc = &Microcode{
		Definition: def,
		Nop:        def.NopWord(),
		Fetch:      fetch,
	}

	ops := slices.Clone(def.Opcodes)
	slices.SortStableFunc(ops, func(a, b Opcode) int {
		return cmp.Compare(a.Code, b.Code)
	})

	offset := len(fetch)
	for n := range ops {
		op := &ops[n]

		var exec []uint32
		exec, err = def.words(op.Steps)
		if err != nil {
			mc = nil
			return
		}

		padding := def.Steps - len(fetch) - len(exec)
		words := slices.Collect(internal.IterSeqConcat(
			slices.Values(fetch),
			slices.Values(exec),
			internal.IterRepeat(mc.Nop, padding),
		))

		mc.Rows = append(mc.Rows, Row{Opcode: op, Words: words, Offset: offset})
		offset += len(exec)
	}

	return
}

// Words returns the control words at each ROM address. Rows are placed at
// their opcode byte times the steps per row, and a gap is filled with
// fetch steps followed by NOPs.
func (mc *Microcode) Words() iter.Seq2[int, uint32] {
	steps := mc.Definition.Steps
	blank := slices.Collect(internal.IterSeqConcat(
		slices.Values(mc.Fetch),
		internal.IterRepeat(mc.Nop, steps-len(mc.Fetch)),
	))

	return func(yield func(addr int, word uint32) bool) {
		code := 0
		for _, row := range mc.Rows {
			for ; code <= int(row.Opcode.Code); code++ {
				words := blank
				if code == int(row.Opcode.Code) {
					words = row.Words
				}
				for n, word := range words {
					if !yield(code*steps+n, word) {
						return
					}
				}
			}
		}
	}
}

// Image returns the full width ROM image.
func (mc *Microcode) Image(addressed bool) *rom.Image {
	img := &rom.Image{
		Width:     mc.Definition.Width,
		Row:       mc.Definition.Steps,
		Addressed: addressed,
	}

	for _, word := range mc.Words() {
		img.Data = append(img.Data, word)
	}

	return img
}

// Slices returns 8-bit ROM images of the control word, most significant
// byte first.
func (mc *Microcode) Slices(addressed bool) (imgs []*rom.Image) {
	img := mc.Image(addressed)
	for shift := ((mc.Definition.Width+7)/8 - 1) * 8; shift >= 0; shift -= 8 {
		imgs = append(imgs, img.Slice(shift))
	}

	return
}

// WriteListing writes the steps of every opcode, with the lines each
// control word asserts.
func (mc *Microcode) WriteListing(w io.Writer) (err error) {
	def := mc.Definition
	digits := (def.Width + 3) / 4

	step := func(t int, word uint32) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "  T%d %0*x %v\n", t, digits, word, def.Decode(word))
	}

	for _, row := range mc.Rows {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%-6s 0x%02x offset %d\n", row.Opcode.Name, row.Opcode.Code, row.Offset)
		exec := row.Words[len(mc.Fetch) : len(mc.Fetch)+len(row.Opcode.Steps)]
		for n, word := range exec {
			step(len(mc.Fetch)+n+1, word)
		}
	}

	return
}
