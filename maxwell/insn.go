// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package maxwell

import (
	"github.com/maxhell/maxhell/bitfield"
)

const (
	PT = 7   // Predicate register that is always true.
	RZ = 255 // Register that reads as zero.
)

// Predicate gates execution of an instruction.
type Predicate struct {
	Reg    uint8 // Predicate register, 0-7.
	Invert bool  // Execute when the predicate is false.
}

// Always is the predicate of unconditionally executed instructions.
var Always = Predicate{Reg: PT}

// Instruction is an operand record of one instruction kind.
type Instruction interface {
	Opcode() Opcode
	Encode() (uint64, error)
}

// Encode packs an instruction into its 64-bit word.
func Encode(insn Instruction) (uint64, error) {
	return insn.Encode()
}

// packer composes a word field by field. The first error wins, and later
// writes are skipped.
type packer struct {
	format *Format
	word   uint64
	err    error
}

func newPacker(op Opcode) (p *packer) {
	p = &packer{format: FormatOf(op)}
	p.word, p.err = fieldOpcode.Put(0, uint64(op.Tag()))
	return
}

func (p *packer) field(name string) (fd bitfield.Field, ok bool) {
	if p.err != nil {
		return
	}
	fd, p.err = p.format.Field(name)
	ok = p.err == nil
	return
}

func (p *packer) put(name string, value uint64) {
	if fd, ok := p.field(name); ok {
		p.word, p.err = fd.Put(p.word, value)
	}
}

func (p *packer) putSigned(name string, value int64) {
	if fd, ok := p.field(name); ok {
		p.word, p.err = fd.PutSigned(p.word, value)
	}
}

func (p *packer) putBool(name string, value bool) {
	if fd, ok := p.field(name); ok {
		p.word, p.err = fd.PutBool(p.word, value)
	}
}

func (p *packer) predicate(pred Predicate) {
	p.put(FIELD_PRED, uint64(pred.Reg))
	p.putBool(FIELD_PRED_INV, pred.Invert)
}

func (p *packer) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *packer) done() (uint64, error) {
	if p.err != nil {
		return 0, ErrEncode{Opcode: p.format.Opcode, Err: p.err}
	}
	return p.word, nil
}

func putDomain[T domain](p *packer, name string, value T) {
	if p.err == nil {
		p.err = checkDomain(name, value)
	}
	p.put(name, uint64(value))
}

// Nop does nothing.
type Nop struct {
	Predicate
	Trigger bool
	Imm     uint16
	CC      ControlCode
}

func (Nop) Opcode() Opcode { return OP_NOP }

func (insn Nop) Encode() (uint64, error) {
	p := newPacker(OP_NOP)
	p.put(FIELD_IMM16, uint64(insn.Imm))
	p.predicate(insn.Predicate)
	p.putBool(FIELD_TRIGGER, insn.Trigger)
	putDomain(p, FIELD_CC, insn.CC)
	return p.done()
}

// Sam sets the active mask.
type Sam struct{}

func (Sam) Opcode() Opcode { return OP_SAM }

func (insn Sam) Encode() (uint64, error) {
	return newPacker(OP_SAM).done()
}

// Ram restores the active mask.
type Ram struct{}

func (Ram) Opcode() Opcode { return OP_RAM }

func (insn Ram) Encode() (uint64, error) {
	return newPacker(OP_RAM).done()
}

// Ret returns from a subroutine.
type Ret struct {
	Predicate
	CC ControlCode
}

func (Ret) Opcode() Opcode { return OP_RET }

func (insn Ret) Encode() (uint64, error) {
	p := newPacker(OP_RET)
	p.predicate(insn.Predicate)
	putDomain(p, FIELD_CC, insn.CC)
	return p.done()
}

// Exit terminates the thread.
type Exit struct {
	Predicate
	CC           ControlCode
	KeepRefCount bool
}

func (Exit) Opcode() Opcode { return OP_EXIT }

func (insn Exit) Encode() (uint64, error) {
	p := newPacker(OP_EXIT)
	p.predicate(insn.Predicate)
	putDomain(p, FIELD_CC, insn.CC)
	p.putBool(FIELD_KEEP_REF, insn.KeepRefCount)
	return p.done()
}

// GetLmemBase reads the local memory base address into Dst.
type GetLmemBase struct {
	Dst uint8
}

func (GetLmemBase) Opcode() Opcode { return OP_GETLMEMBASE }

func (insn GetLmemBase) Encode() (uint64, error) {
	p := newPacker(OP_GETLMEMBASE)
	p.put(FIELD_DST, uint64(insn.Dst))
	return p.done()
}

// SetLmemBase sets the local memory base address from Src.
type SetLmemBase struct {
	Src uint8
}

func (SetLmemBase) Opcode() Opcode { return OP_SETLMEMBASE }

func (insn SetLmemBase) Encode() (uint64, error) {
	p := newPacker(OP_SETLMEMBASE)
	p.put(FIELD_SRC, uint64(insn.Src))
	return p.done()
}

// Ide enables or disables interrupts.
type Ide struct {
	Imm     uint16
	Disable bool
}

func (Ide) Opcode() Opcode { return OP_IDE }

func (insn Ide) Encode() (uint64, error) {
	p := newPacker(OP_IDE)
	p.put(FIELD_IMM16, uint64(insn.Imm))
	p.putBool(FIELD_DISABLE, insn.Disable)
	return p.done()
}

// Kil kills the thread.
type Kil struct {
	Predicate
	CC ControlCode
}

func (Kil) Opcode() Opcode { return OP_KIL }

func (insn Kil) Encode() (uint64, error) {
	p := newPacker(OP_KIL)
	p.predicate(insn.Predicate)
	putDomain(p, FIELD_CC, insn.CC)
	return p.done()
}

// Al2p converts an attribute offset to a patch offset.
type Al2p struct {
	Predicate
	PredOut uint8 // Predicate register receiving the result flag.
	Dst     uint8
	Src     uint8
	Output  bool
	Mode    AttributeLoadMode
	Offset  int16 // 11-bit signed.
}

func (Al2p) Opcode() Opcode { return OP_AL2P }

func (insn Al2p) Encode() (uint64, error) {
	p := newPacker(OP_AL2P)
	p.predicate(insn.Predicate)
	p.put(FIELD_PRED_OUT, uint64(insn.PredOut))
	p.put(FIELD_DST, uint64(insn.Dst))
	p.put(FIELD_SRC, uint64(insn.Src))
	p.putBool(FIELD_OUTPUT, insn.Output)
	putDomain(p, FIELD_MODE, insn.Mode)
	p.putSigned(FIELD_OFFSET, int64(insn.Offset))
	return p.done()
}

// Ald loads vertex attributes.
type Ald struct {
	Predicate
	Dst    uint8
	Index  uint8
	Offset uint16 // 10-bit attribute offset.
	Patch  bool
	Output bool
	Mode   AttributeLoadMode
	Vertex uint8 // Register holding the vertex index.
}

func (Ald) Opcode() Opcode { return OP_ALD }

func (insn Ald) Encode() (uint64, error) {
	p := newPacker(OP_ALD)
	p.predicate(insn.Predicate)
	p.put(FIELD_DST, uint64(insn.Dst))
	p.put(FIELD_INDEX, uint64(insn.Index))
	p.put(FIELD_OFFSET, uint64(insn.Offset))
	p.putBool(FIELD_PATCH, insn.Patch)
	p.putBool(FIELD_OUTPUT, insn.Output)
	putDomain(p, FIELD_MODE, insn.Mode)
	p.put(FIELD_VERTEX, uint64(insn.Vertex))
	return p.done()
}

// Ast stores vertex attributes.
type Ast struct {
	Predicate
	Src    uint8
	Index  uint8
	Offset uint16 // 10-bit attribute offset.
	Patch  bool
	Mode   AttributeLoadMode
	Vertex uint8 // Register holding the vertex index.
}

func (Ast) Opcode() Opcode { return OP_AST }

func (insn Ast) Encode() (uint64, error) {
	p := newPacker(OP_AST)
	p.predicate(insn.Predicate)
	p.put(FIELD_SRC, uint64(insn.Src))
	p.put(FIELD_INDEX, uint64(insn.Index))
	p.put(FIELD_OFFSET, uint64(insn.Offset))
	p.putBool(FIELD_PATCH, insn.Patch)
	putDomain(p, FIELD_MODE, insn.Mode)
	p.put(FIELD_VERTEX, uint64(insn.Vertex))
	return p.done()
}

// Atom is an atomic operation on global memory at [Addr+Offset].
type Atom struct {
	Predicate
	Dst      uint8
	Addr     uint8
	Src      uint8
	Offset   int32 // 20-bit signed byte offset.
	Type     AtomPrimitiveType
	Op       AtomOperation
	Extended bool // 64-bit address.
}

func (Atom) Opcode() Opcode { return OP_ATOM }

func (insn Atom) Encode() (uint64, error) {
	p := newPacker(OP_ATOM)
	p.predicate(insn.Predicate)
	p.put(FIELD_DST, uint64(insn.Dst))
	p.put(FIELD_ADDR, uint64(insn.Addr))
	p.put(FIELD_SRC, uint64(insn.Src))
	p.putSigned(FIELD_OFFSET, int64(insn.Offset))
	putDomain(p, FIELD_TYPE, insn.Type)
	putDomain(p, FIELD_OP, insn.Op)
	p.putBool(FIELD_E, insn.Extended)
	return p.done()
}

// Atoms is an atomic operation on shared memory at [Addr+Offset].
//
// The hardware addresses shared memory atomics in words: the byte offset is
// stored shifted right by two, and the low two bits are dropped. The
// rounding of negative offsets has not been checked against hardware.
type Atoms struct {
	Predicate
	Dst    uint8
	Addr   uint8
	Src    uint8
	Offset int32 // Signed byte offset, stored as a 22-bit word offset.
	Type   AtomsPrimitiveType
	Op     AtomsOperation
}

func (Atoms) Opcode() Opcode { return OP_ATOMS }

func (insn Atoms) Encode() (uint64, error) {
	p := newPacker(OP_ATOMS)
	p.predicate(insn.Predicate)
	p.put(FIELD_DST, uint64(insn.Dst))
	p.put(FIELD_ADDR, uint64(insn.Addr))
	p.put(FIELD_SRC, uint64(insn.Src))
	p.putSigned(FIELD_OFFSET, int64(insn.Offset>>2))
	putDomain(p, FIELD_TYPE, insn.Type)
	putDomain(p, FIELD_OP, insn.Op)
	return p.done()
}

// AtomCas is a compare and swap on global memory. The swap value is in the
// register following Src.
type AtomCas struct {
	Predicate
	Dst      uint8
	Addr     uint8
	Src      uint8
	Offset   int32 // 20-bit signed byte offset.
	Type     AtomicCasPrimitiveType
	Extended bool // 64-bit address.
}

func (AtomCas) Opcode() Opcode { return OP_ATOM_CAS }

func (insn AtomCas) Encode() (uint64, error) {
	p := newPacker(OP_ATOM_CAS)
	p.predicate(insn.Predicate)
	p.put(FIELD_DST, uint64(insn.Dst))
	p.put(FIELD_ADDR, uint64(insn.Addr))
	p.put(FIELD_SRC, uint64(insn.Src))
	p.putSigned(FIELD_OFFSET, int64(insn.Offset))
	putDomain(p, FIELD_TYPE, insn.Type)
	p.putBool(FIELD_E, insn.Extended)
	return p.done()
}

// AtomsCas is a compare and swap on shared memory.
//
// The src field holds the register before Src, so Src must not be zero.
// Offset is stored shifted right by two, as for Atoms.
type AtomsCas struct {
	Predicate
	Dst    uint8
	Addr   uint8
	Src    uint8 // 1-255.
	Offset int32
	Type   AtomicCasPrimitiveType
	Op     AtomsCasOperation
}

func (AtomsCas) Opcode() Opcode { return OP_ATOMS_CAS }

func (insn AtomsCas) Encode() (uint64, error) {
	p := newPacker(OP_ATOMS_CAS)
	p.predicate(insn.Predicate)
	p.put(FIELD_DST, uint64(insn.Dst))
	p.put(FIELD_ADDR, uint64(insn.Addr))
	if insn.Src == 0 {
		p.fail(ErrOperands{Operand: FIELD_SRC, Reason: f("register must not be zero")})
	}
	p.put(FIELD_SRC, uint64(insn.Src)-1)
	p.putSigned(FIELD_OFFSET, int64(insn.Offset>>2))
	putDomain(p, FIELD_TYPE, insn.Type)
	putDomain(p, FIELD_OP, insn.Op)
	return p.done()
}

// B2r moves barrier state into Dst.
//
// Only B2R_OP_BAR is accepted by the reference disassembler; the other
// operations encode, but cannot be cross-checked.
type B2r struct {
	Predicate
	Dst     uint8
	PredOut uint8
	Op      B2ROperation
	Barrier uint8 // Barrier index, 0-15.
}

func (B2r) Opcode() Opcode { return OP_B2R }

func (insn B2r) Encode() (uint64, error) {
	p := newPacker(OP_B2R)
	p.predicate(insn.Predicate)
	p.put(FIELD_DST, uint64(insn.Dst))
	p.put(FIELD_PRED_OUT, uint64(insn.PredOut))
	putDomain(p, FIELD_OP, insn.Op)
	p.put(FIELD_BARRIER, uint64(insn.Barrier))
	return p.done()
}
