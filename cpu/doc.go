// Package cpu describes the instruction set of the SAP2 8-bit microprocessor.
//
// The processor has four 8-bit registers (r0-r3), a 16-bit stack pointer (sp),
// and a 64K address space. Instructions are one, two or three bytes long. The
// first byte is a base opcode, with register operands packed into its low bits;
// any immediate byte or little-endian address follows it.
//
// The descriptor table is the single source of truth for the assembler's
// mnemonics, their operand syntax, and their encoding.
package cpu
