// Package asm is a two pass assembler for the SAP2 CPU.
//
// Each source line is parsed into operations: label definitions, at most
// one directive or instruction, and a trailing comment.
//
//	:loop   djnz r0,loop    ; count down
//	        .dt 'hello'
//
// Resolve then assigns a program counter to every operation and binds
// the labels, and Encode turns each operation into machine bytes.
//
// Numbers are decimal with an optional sign, or prefixed 0x, 0b, or 0o.
// Eight bit operands accept hi(x) and lo(x) of a 16-bit value or label.
package asm
