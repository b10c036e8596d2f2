package maxwell

import (
	"fmt"
	"strings"

	"github.com/maxhell/maxhell/bitfield"
)

// Identify returns the opcode of an encoded instruction word. Unknown words
// return an invalid opcode.
func Identify(word uint64) (op Opcode, err error) {
	for _, op = range identifyOrder {
		if formats[op].Match(word) {
			return
		}
	}

	err = ErrUnknownOpcode(uint32(word >> 32))
	op = Opcode(-1)
	return
}

// unpacker reads the fields of a word. The first error wins.
type unpacker struct {
	format *Format
	word   uint64
	err    error
}

func (u *unpacker) field(name string) (fd bitfield.Field, ok bool) {
	if u.err != nil {
		return
	}
	fd, u.err = u.format.Field(name)
	ok = u.err == nil
	return
}

func (u *unpacker) get(name string) (value uint64) {
	if fd, ok := u.field(name); ok {
		value = fd.Get(u.word)
	}
	return
}

func (u *unpacker) getSigned(name string) (value int64) {
	if fd, ok := u.field(name); ok {
		value = fd.GetSigned(u.word)
	}
	return
}

func (u *unpacker) getBool(name string) bool {
	return u.get(name) != 0
}

func (u *unpacker) reg(name string) uint8 {
	return uint8(u.get(name))
}

func (u *unpacker) predicate() Predicate {
	return Predicate{
		Reg:    u.reg(FIELD_PRED),
		Invert: u.getBool(FIELD_PRED_INV),
	}
}

func (u *unpacker) cc() ControlCode {
	return ControlCode(u.get(FIELD_CC))
}

var decoders = [opcodeCount]func(u *unpacker) Instruction{
	OP_NOP: func(u *unpacker) Instruction {
		return Nop{
			Predicate: u.predicate(),
			Trigger:   u.getBool(FIELD_TRIGGER),
			Imm:       uint16(u.get(FIELD_IMM16)),
			CC:        u.cc(),
		}
	},
	OP_SAM: func(u *unpacker) Instruction { return Sam{} },
	OP_RAM: func(u *unpacker) Instruction { return Ram{} },
	OP_RET: func(u *unpacker) Instruction {
		return Ret{Predicate: u.predicate(), CC: u.cc()}
	},
	OP_EXIT: func(u *unpacker) Instruction {
		return Exit{
			Predicate:    u.predicate(),
			CC:           u.cc(),
			KeepRefCount: u.getBool(FIELD_KEEP_REF),
		}
	},
	OP_GETLMEMBASE: func(u *unpacker) Instruction {
		return GetLmemBase{Dst: u.reg(FIELD_DST)}
	},
	OP_SETLMEMBASE: func(u *unpacker) Instruction {
		return SetLmemBase{Src: u.reg(FIELD_SRC)}
	},
	OP_IDE: func(u *unpacker) Instruction {
		return Ide{
			Imm:     uint16(u.get(FIELD_IMM16)),
			Disable: u.getBool(FIELD_DISABLE),
		}
	},
	OP_KIL: func(u *unpacker) Instruction {
		return Kil{Predicate: u.predicate(), CC: u.cc()}
	},
	OP_AL2P: func(u *unpacker) Instruction {
		return Al2p{
			Predicate: u.predicate(),
			PredOut:   u.reg(FIELD_PRED_OUT),
			Dst:       u.reg(FIELD_DST),
			Src:       u.reg(FIELD_SRC),
			Output:    u.getBool(FIELD_OUTPUT),
			Mode:      AttributeLoadMode(u.get(FIELD_MODE)),
			Offset:    int16(u.getSigned(FIELD_OFFSET)),
		}
	},
	OP_ALD: func(u *unpacker) Instruction {
		return Ald{
			Predicate: u.predicate(),
			Dst:       u.reg(FIELD_DST),
			Index:     u.reg(FIELD_INDEX),
			Offset:    uint16(u.get(FIELD_OFFSET)),
			Patch:     u.getBool(FIELD_PATCH),
			Output:    u.getBool(FIELD_OUTPUT),
			Mode:      AttributeLoadMode(u.get(FIELD_MODE)),
			Vertex:    u.reg(FIELD_VERTEX),
		}
	},
	OP_AST: func(u *unpacker) Instruction {
		return Ast{
			Predicate: u.predicate(),
			Src:       u.reg(FIELD_SRC),
			Index:     u.reg(FIELD_INDEX),
			Offset:    uint16(u.get(FIELD_OFFSET)),
			Patch:     u.getBool(FIELD_PATCH),
			Mode:      AttributeLoadMode(u.get(FIELD_MODE)),
			Vertex:    u.reg(FIELD_VERTEX),
		}
	},
	OP_ATOM: func(u *unpacker) Instruction {
		return Atom{
			Predicate: u.predicate(),
			Dst:       u.reg(FIELD_DST),
			Addr:      u.reg(FIELD_ADDR),
			Src:       u.reg(FIELD_SRC),
			Offset:    int32(u.getSigned(FIELD_OFFSET)),
			Type:      AtomPrimitiveType(u.get(FIELD_TYPE)),
			Op:        AtomOperation(u.get(FIELD_OP)),
			Extended:  u.getBool(FIELD_E),
		}
	},
	OP_ATOMS: func(u *unpacker) Instruction {
		return Atoms{
			Predicate: u.predicate(),
			Dst:       u.reg(FIELD_DST),
			Addr:      u.reg(FIELD_ADDR),
			Src:       u.reg(FIELD_SRC),
			Offset:    int32(u.getSigned(FIELD_OFFSET) << 2),
			Type:      AtomsPrimitiveType(u.get(FIELD_TYPE)),
			Op:        AtomsOperation(u.get(FIELD_OP)),
		}
	},
	OP_ATOM_CAS: func(u *unpacker) Instruction {
		return AtomCas{
			Predicate: u.predicate(),
			Dst:       u.reg(FIELD_DST),
			Addr:      u.reg(FIELD_ADDR),
			Src:       u.reg(FIELD_SRC),
			Offset:    int32(u.getSigned(FIELD_OFFSET)),
			Type:      AtomicCasPrimitiveType(u.get(FIELD_TYPE)),
			Extended:  u.getBool(FIELD_E),
		}
	},
	OP_ATOMS_CAS: func(u *unpacker) Instruction {
		src := u.get(FIELD_SRC) + 1
		if u.err == nil && src > RZ {
			u.err = ErrOperands{Operand: FIELD_SRC, Reason: f("register %v is not addressable", src)}
		}
		return AtomsCas{
			Predicate: u.predicate(),
			Dst:       u.reg(FIELD_DST),
			Addr:      u.reg(FIELD_ADDR),
			Src:       uint8(src),
			Offset:    int32(u.getSigned(FIELD_OFFSET) << 2),
			Type:      AtomicCasPrimitiveType(u.get(FIELD_TYPE)),
			Op:        AtomsCasOperation(u.get(FIELD_OP)),
		}
	},
	OP_B2R: func(u *unpacker) Instruction {
		return B2r{
			Predicate: u.predicate(),
			Dst:       u.reg(FIELD_DST),
			PredOut:   u.reg(FIELD_PRED_OUT),
			Op:        B2ROperation(u.get(FIELD_OP)),
			Barrier:   u.reg(FIELD_BARRIER),
		}
	},
}

// Decode unpacks an encoded word into its instruction record. The
// transforms applied by the encoders are inverted: shifted offsets come back
// as byte offsets, and biased registers come back unbiased.
func Decode(word uint64) (insn Instruction, err error) {
	op, err := Identify(word)
	if err != nil {
		return
	}

	u := &unpacker{format: formats[op], word: word}
	insn = decoders[op](u)
	if u.err != nil {
		insn = nil
		err = ErrEncode{Opcode: op, Err: u.err}
	}

	return
}

// Listing returns a one line description of a word: the mnemonic followed by
// the raw value of every field.
func Listing(word uint64) string {
	op, err := Identify(word)
	if err != nil {
		return fmt.Sprintf("0x%016x ???", word)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "0x%016x %v", word, op.String())
	for _, fd := range formats[op].Fields {
		fmt.Fprintf(&sb, " %v=%v", fd.Name, fd.Value(word))
	}

	return sb.String()
}
