// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package display generates the decoder ROM of the SAP2 output register: a
// four digit, 7-segment decimal display of an 8-bit value.
package display

import (
	"github.com/ezrec/sap2/rom"
)

// Digits are the segment patterns of the decimal digits.
var Digits = [10]byte{0x7e, 0x12, 0xbc, 0xb6, 0xd2, 0xe6, 0xee, 0x32, 0xfe, 0xf6}

const (
	SEGMENT_BLANK = byte(0x00)
	SEGMENT_MINUS = byte(0x80)
)

// Word returns the segments of value, sign digit in the high byte and units
// in the low byte. Leading zeros are blank. When signed, value is read as
// two's complement.
func Word(value byte, signed bool) (word uint32) {
	v := int(value)
	sign := SEGMENT_BLANK
	if signed && value&0x80 != 0 {
		v = 256 - v
		sign = SEGMENT_MINUS
	}

	hundreds := SEGMENT_BLANK
	if v >= 100 {
		hundreds = Digits[v/100]
	}

	tens := SEGMENT_BLANK
	if v >= 10 {
		tens = Digits[(v/10)%10]
	}

	word = uint32(sign)<<24 | uint32(hundreds)<<16 | uint32(tens)<<8 | uint32(Digits[v%10])
	return
}

// Image returns the display ROM: the unsigned table for every value, then
// the signed table.
func Image() *rom.Image {
	img := &rom.Image{Width: 32}

	for _, signed := range []bool{false, true} {
		for value := range 256 {
			img.Data = append(img.Data, Word(byte(value), signed))
		}
	}

	return img
}
