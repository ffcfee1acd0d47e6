// Package microcode compiles control unit definitions into the microcode
// ROMs of the SAP2 CPU.
//
// A definition names each control line with its control word bit and
// asserted level, the fetch steps shared by every opcode, and the execute
// steps of each opcode. Every opcode occupies one row of ROM words: the
// fetch steps, its execute steps, then NOP words to fill the row.
//
// Definitions are Starlark scripts; Default returns the SAP2 control unit.
package microcode
