package maxwell

import (
	"iter"
)

// Opcode is an instruction kind.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP         = Opcode(0)  // NOP
	OP_SAM         = Opcode(1)  // SAM
	OP_RAM         = Opcode(2)  // RAM
	OP_RET         = Opcode(3)  // RET
	OP_EXIT        = Opcode(4)  // EXIT
	OP_GETLMEMBASE = Opcode(5)  // GETLMEMBASE
	OP_SETLMEMBASE = Opcode(6)  // SETLMEMBASE
	OP_IDE         = Opcode(7)  // IDE
	OP_KIL         = Opcode(8)  // KIL
	OP_AL2P        = Opcode(9)  // AL2P
	OP_ALD         = Opcode(10) // ALD
	OP_AST         = Opcode(11) // AST
	OP_ATOM        = Opcode(12) // ATOM
	OP_ATOMS       = Opcode(13) // ATOMS
	OP_ATOM_CAS    = Opcode(14) // ATOM.CAS
	OP_ATOMS_CAS   = Opcode(15) // ATOMS.CAS
	OP_B2R         = Opcode(16) // B2R

	opcodeCount = 17
)

// Opcode tags, bits 63..32 of the instruction word.
var opcodeTag = [opcodeCount]uint32{
	OP_NOP:         0x50b00000,
	OP_SAM:         0xe3700000,
	OP_RAM:         0xe3800000,
	OP_RET:         0xe3200000,
	OP_EXIT:        0xe3000000,
	OP_GETLMEMBASE: 0xe2d00000,
	OP_SETLMEMBASE: 0xe2f00000,
	OP_IDE:         0xe3900000,
	OP_KIL:         0xe3300000,
	OP_AL2P:        0xefa00000,
	OP_ALD:         0xefd80000,
	OP_AST:         0xeff00000,
	OP_ATOM:        0xed000000,
	OP_ATOMS:       0xec000000,
	OP_ATOM_CAS:    0xeef00000,
	OP_ATOMS_CAS:   0xee000000,
	OP_B2R:         0xf0b80000,
}

var tagOpcode = map[uint32]Opcode{}

func init() {
	for op := range Opcodes() {
		tagOpcode[op.Tag()] = op
	}
}

// Valid returns true if the opcode is a member of the instruction set.
func (op Opcode) Valid() bool {
	return op >= 0 && op < opcodeCount
}

// Tag returns the 32-bit hardware tag of the opcode, or 0 if the opcode is
// not valid.
func (op Opcode) Tag() uint32 {
	if !op.Valid() {
		return 0
	}
	return opcodeTag[op]
}

// DecodeOpcode returns the opcode with the exact tag. Unknown tags return
// an invalid opcode.
func DecodeOpcode(tag uint32) (op Opcode, err error) {
	op, ok := tagOpcode[tag]
	if !ok {
		op = Opcode(-1)
		err = ErrUnknownOpcode(tag)
	}
	return
}

// Opcodes returns an iterator over all opcodes, in enumeration order.
func Opcodes() iter.Seq[Opcode] {
	return func(yield func(Opcode) bool) {
		for op := range Opcode(opcodeCount) {
			if !yield(op) {
				return
			}
		}
	}
}
