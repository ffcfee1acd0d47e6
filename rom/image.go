// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rom

import (
	"bufio"
	"fmt"
	"io"
	"iter"
)

// Image is a word-organized ROM image in Logisim memory file format.
type Image struct {
	Width     int      // Word width, in bits; a multiple of 4, at most 32.
	Data      []uint32 // Words, from address zero.
	Row       int      // Words per line; zero for a single line.
	Addressed bool     // If set, prefix each row with its address.
}

// Words returns every word, masked to the image width.
func (img *Image) Words() iter.Seq2[int, uint32] {
	mask := uint32(0xffffffff)
	if img.Width < 32 {
		mask = (uint32(1) << img.Width) - 1
	}

	return func(yield func(addr int, word uint32) bool) {
		for addr, word := range img.Data {
			if !yield(addr, word&mask) {
				return
			}
		}
	}
}

// Slice returns the 8-bit image of the bits at shift of every word.
func (img *Image) Slice(shift int) *Image {
	slice := &Image{
		Width:     8,
		Data:      make([]uint32, len(img.Data)),
		Row:       img.Row,
		Addressed: img.Addressed,
	}

	for addr, word := range img.Words() {
		slice.Data[addr] = (word >> shift) & 0xff
	}

	return slice
}

// WriteTo writes the image with a raw or addressed header.
func (img *Image) WriteTo(w io.Writer) (n int64, err error) {
	if img.Width <= 0 || img.Width > 32 || img.Width%4 != 0 {
		err = ErrWidth
		return
	}
	digits := img.Width / 4

	out := bufio.NewWriter(w)
	count := func(c int, werr error) {
		n += int64(c)
		if err == nil {
			err = werr
		}
	}

	if img.Addressed {
		count(fmt.Fprintf(out, "%s\n", HEADER_ADDRESSED))
	} else {
		count(fmt.Fprintf(out, "%s\n", HEADER_RAW))
	}

	for addr, word := range img.Words() {
		if addr == 0 || (img.Row > 0 && addr%img.Row == 0) {
			if addr > 0 {
				count(out.WriteString("\n"))
			}
			if img.Addressed {
				count(fmt.Fprintf(out, "%02x: ", addr))
			}
		}
		count(fmt.Fprintf(out, "%0*x ", digits, word))
	}
	count(out.WriteString("\n"))

	if err != nil {
		return
	}

	err = out.Flush()
	return
}
