package maxwell

import (
	"math/bits"
	"slices"

	"github.com/maxhell/maxhell/bitfield"
)

// Field names.
const (
	FIELD_OPCODE   = "opcode"
	FIELD_PRED     = "pred"
	FIELD_PRED_INV = "pred.inv"
	FIELD_PRED_OUT = "pred.out"
	FIELD_CC       = "cc"
	FIELD_TRIGGER  = "trigger"
	FIELD_IMM16    = "imm16"
	FIELD_KEEP_REF = "keeprefcount"
	FIELD_DISABLE  = "disable"
	FIELD_DST      = "dst"
	FIELD_SRC      = "src"
	FIELD_ADDR     = "addr"
	FIELD_INDEX    = "index"
	FIELD_VERTEX   = "vertex"
	FIELD_OFFSET   = "offset"
	FIELD_OUTPUT   = "output"
	FIELD_PATCH    = "patch"
	FIELD_MODE     = "mode"
	FIELD_TYPE     = "type"
	FIELD_OP       = "op"
	FIELD_E        = "e"
	FIELD_BARRIER  = "barrier"
)

const tagMask = uint64(0xffffffff_00000000)

var fieldOpcode = bitfield.Field{Name: FIELD_OPCODE, Hi: 63, Lo: 32}

// Format is the bit layout of one instruction kind.
type Format struct {
	Opcode Opcode
	Fields []bitfield.Field
}

func field(name string, hi, lo uint) bitfield.Field {
	return bitfield.Field{Name: name, Hi: hi, Lo: lo}
}

func signed(name string, hi, lo uint) bitfield.Field {
	return bitfield.Field{Name: name, Hi: hi, Lo: lo, Signed: true}
}

// Operand slots shared by most kinds.
var (
	fieldPred    = field(FIELD_PRED, 18, 16)
	fieldPredInv = field(FIELD_PRED_INV, 19, 19)
	fieldCcLow   = field(FIELD_CC, 4, 0)
	fieldImm16   = field(FIELD_IMM16, 35, 20)
	fieldMode    = field(FIELD_MODE, 48, 47)
	fieldPredOut = field(FIELD_PRED_OUT, 46, 44)
)

func slot0(name string) bitfield.Field  { return field(name, 7, 0) }
func slot8(name string) bitfield.Field  { return field(name, 15, 8) }
func slot20(name string) bitfield.Field { return field(name, 27, 20) }
func slot39(name string) bitfield.Field { return field(name, 46, 39) }

var formats = [opcodeCount]*Format{
	OP_NOP: {OP_NOP, []bitfield.Field{
		field(FIELD_CC, 12, 8),
		field(FIELD_TRIGGER, 13, 13),
		fieldPred, fieldPredInv,
		fieldImm16,
	}},
	OP_SAM: {OP_SAM, nil},
	OP_RAM: {OP_RAM, nil},
	OP_RET: {OP_RET, []bitfield.Field{
		fieldCcLow,
		fieldPred, fieldPredInv,
	}},
	OP_EXIT: {OP_EXIT, []bitfield.Field{
		fieldCcLow,
		field(FIELD_KEEP_REF, 5, 5),
		fieldPred, fieldPredInv,
	}},
	OP_GETLMEMBASE: {OP_GETLMEMBASE, []bitfield.Field{
		slot0(FIELD_DST),
	}},
	OP_SETLMEMBASE: {OP_SETLMEMBASE, []bitfield.Field{
		slot8(FIELD_SRC),
	}},
	OP_IDE: {OP_IDE, []bitfield.Field{
		field(FIELD_DISABLE, 5, 5),
		fieldImm16,
	}},
	OP_KIL: {OP_KIL, []bitfield.Field{
		fieldCcLow,
		fieldPred, fieldPredInv,
	}},
	OP_AL2P: {OP_AL2P, []bitfield.Field{
		slot0(FIELD_DST),
		slot8(FIELD_SRC),
		fieldPred, fieldPredInv,
		signed(FIELD_OFFSET, 30, 20),
		field(FIELD_OUTPUT, 32, 32),
		fieldPredOut,
		fieldMode,
	}},
	OP_ALD: {OP_ALD, []bitfield.Field{
		slot0(FIELD_DST),
		slot8(FIELD_INDEX),
		fieldPred, fieldPredInv,
		field(FIELD_OFFSET, 29, 20),
		field(FIELD_PATCH, 31, 31),
		field(FIELD_OUTPUT, 32, 32),
		slot39(FIELD_VERTEX),
		fieldMode,
	}},
	OP_AST: {OP_AST, []bitfield.Field{
		slot0(FIELD_SRC),
		slot8(FIELD_INDEX),
		fieldPred, fieldPredInv,
		field(FIELD_OFFSET, 29, 20),
		field(FIELD_PATCH, 31, 31),
		slot39(FIELD_VERTEX),
		fieldMode,
	}},
	OP_ATOM: {OP_ATOM, []bitfield.Field{
		slot0(FIELD_DST),
		slot8(FIELD_ADDR),
		fieldPred, fieldPredInv,
		slot20(FIELD_SRC),
		signed(FIELD_OFFSET, 47, 28),
		field(FIELD_E, 48, 48),
		field(FIELD_TYPE, 51, 49),
		field(FIELD_OP, 55, 52),
	}},
	// offset holds the byte offset >> 2.
	OP_ATOMS: {OP_ATOMS, []bitfield.Field{
		slot0(FIELD_DST),
		slot8(FIELD_ADDR),
		fieldPred, fieldPredInv,
		slot20(FIELD_SRC),
		field(FIELD_TYPE, 29, 28),
		signed(FIELD_OFFSET, 51, 30),
		field(FIELD_OP, 55, 52),
	}},
	OP_ATOM_CAS: {OP_ATOM_CAS, []bitfield.Field{
		slot0(FIELD_DST),
		slot8(FIELD_ADDR),
		fieldPred, fieldPredInv,
		slot20(FIELD_SRC),
		signed(FIELD_OFFSET, 47, 28),
		field(FIELD_E, 48, 48),
		field(FIELD_TYPE, 49, 49),
	}},
	// src holds the register - 1, offset holds the byte offset >> 2.
	OP_ATOMS_CAS: {OP_ATOMS_CAS, []bitfield.Field{
		slot0(FIELD_DST),
		slot8(FIELD_ADDR),
		fieldPred, fieldPredInv,
		slot20(FIELD_SRC),
		field(FIELD_TYPE, 28, 28),
		signed(FIELD_OFFSET, 51, 30),
		field(FIELD_OP, 53, 52),
	}},
	OP_B2R: {OP_B2R, []bitfield.Field{
		slot0(FIELD_DST),
		fieldPred, fieldPredInv,
		field(FIELD_BARRIER, 23, 20),
		field(FIELD_OP, 29, 28),
		fieldPredOut,
	}},
}

// identifyOrder lists the opcodes with the most fixed tag bits first.
var identifyOrder []Opcode

func init() {
	for op := range Opcodes() {
		identifyOrder = append(identifyOrder, op)
	}
	slices.SortStableFunc(identifyOrder, func(a, b Opcode) int {
		return bits.OnesCount64(formats[b].Mask()) - bits.OnesCount64(formats[a].Mask())
	})
}

// FormatOf returns the layout of an opcode, or nil for an invalid opcode.
func FormatOf(op Opcode) *Format {
	if !op.Valid() {
		return nil
	}
	return formats[op]
}

// Field returns the named field of the format.
func (fm *Format) Field(name string) (fd bitfield.Field, err error) {
	for _, fd = range fm.Fields {
		if fd.Name == name {
			return
		}
	}

	err = ErrField(name)
	fd = bitfield.Field{}
	return
}

// Mask returns the bits of the opcode tag that are not operand fields.
func (fm *Format) Mask() (mask uint64) {
	mask = tagMask
	for _, fd := range fm.Fields {
		mask &^= fd.Mask()
	}
	return
}

// Match returns true if the fixed tag bits of word are those of the format.
func (fm *Format) Match(word uint64) bool {
	mask := fm.Mask()
	return word&mask == (uint64(fm.Opcode.Tag())<<32)&mask
}
