// Package maxwell implements the instruction encoder for the Maxwell GPU
// shader instruction set.
//
// Every instruction is a 64-bit word. The upper 32 bits carry the opcode
// tag, the lower 32 bits (and any tag bits left clear) carry operands laid
// out by the per-kind Format tables. Operand records such as Ret or AtomsCas
// are encoded with Encode and recovered from a word with Decode.
//
// Several bit meanings are undocumented. Condition codes 16-31 and the
// unnamed members of the atomic selectors are kept as raw values: they are
// valid, encode as given, and decode unchanged.
package maxwell
