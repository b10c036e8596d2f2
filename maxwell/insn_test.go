package maxwell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		insn Instruction
		word uint64
	}{
		{Ram{}, 0xe380000000000000},
		{Sam{}, 0xe370000000000000},
		{Ret{Always, CC_T}, 0xe32000000007000f},
		{Exit{Always, CC_T, false}, 0xe30000000007000f},
		{Exit{Always, CC_T, true}, 0xe30000000007002f},
		{Nop{Always, false, 0, CC_T}, 0x50b0000000070f00},
		{Nop{Predicate{0, true}, true, 0xffff, CC_F}, 0x50b0000ffff82000},
		{GetLmemBase{42}, 0xe2d000000000002a},
		{SetLmemBase{42}, 0xe2f0000000002a00},
		{Ide{42, false}, 0xe390000002a00000},
		{Ide{0, true}, 0xe390000000000020},
		{Kil{Always, CC_T}, 0xe33000000007000f},
		{Al2p{Always, 7, 1, 42, false, ATTR_M128, 0}, 0xefa1f00000072a01},
		{Ald{Always, 1, 0, 0xff, true, false, ATTR_M128, 0}, 0xefd980008ff70001},
		{Ast{Always, 1, 0, 0xfe, true, ATTR_M128, 0}, 0xeff180008fe70001},
		{Atoms{Always, 4, 1, 2, 0x14, ATOMS_TYPE_S32, ATOMS_OP_EXCH}, 0xec80000150270104},
		{AtomsCas{Always, 4, 1, 2, 0x14, CAS_TYPE_U32, ATOMS_CAS_OP_CAS}, 0xee00000140170104},
		{Atom{Always, 4, 1, 2, 0x14, ATOM_TYPE_U64, ATOM_OP_SAFEADD, false}, 0xeda4000140270104},
		{AtomCas{Always, 4, 1, 2, 0x14, CAS_TYPE_U64, false}, 0xeef2000140270104},
		{B2r{Always, 0, 7, B2R_OP_BAR, 0}, 0xf0b8700000070000},
	}

	for _, entry := range table {
		word, err := Encode(entry.insn)
		assert.NoError(err, entry.insn.Opcode().String())
		assert.Equal(entry.word, word, "%v: 0x%016x", entry.insn.Opcode(), word)

		op, err := Identify(word)
		assert.NoError(err)
		assert.Equal(entry.insn.Opcode(), op)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	pred := Predicate{Reg: 3, Invert: true}

	table := []Instruction{
		Ram{},
		Sam{},
		Nop{pred, true, 0x1234, CC_NE},
		Nop{Always, false, 0, ControlCode(31)},
		Ret{pred, ControlCode(16)},
		Exit{Predicate{0, false}, CC_GEU, true},
		GetLmemBase{RZ},
		SetLmemBase{0},
		Ide{0xffff, true},
		Kil{pred, ControlCode(20)},
		Al2p{pred, 2, 3, 4, true, ATTR_M64, -1024},
		Al2p{Always, 0, RZ, RZ, false, ATTR_M32, 1023},
		Ald{pred, 5, 6, 0x3ff, false, true, ATTR_M96, 7},
		Ast{pred, 8, 9, 0x200, true, ATTR_M32, RZ},
		Atom{pred, 10, 11, 12, -(1 << 19), ATOM_TYPE_F16X2_FTZ_RN, ATOM_OP_MAX, true},
		Atom{Always, 0, 0, 0, (1 << 19) - 1, AtomPrimitiveType(7), AtomOperation(9), false},
		Atoms{pred, 13, 14, 15, -4, ATOMS_TYPE_S64, ATOMS_OP_XOR},
		Atoms{Always, 1, 2, 3, 0x7ffffc, ATOMS_TYPE_U64, AtomsOperation(15)},
		AtomCas{pred, 16, 17, 18, -20, CAS_TYPE_U32, true},
		AtomsCas{pred, 19, 20, 1, -(1 << 23), CAS_TYPE_U64, ATOMS_CAS_OP_CAST_SPIN},
		AtomsCas{Always, 0, 0, RZ, 0x100, CAS_TYPE_U32, AtomsCasOperation(3)},
		B2r{pred, 21, 6, B2R_OP_RESULT, 15},
		B2r{Always, RZ, 0, B2ROperation(3), 0},
	}

	for _, insn := range table {
		word, err := insn.Encode()
		if !assert.NoError(err, "%#v", insn) {
			continue
		}

		decoded, err := Decode(word)
		assert.NoError(err)
		assert.Equal(insn, decoded)
	}
}

func TestEncodeAtomsOffsetShift(t *testing.T) {
	assert := assert.New(t)

	// The low two bits of the byte offset are dropped.
	word, err := Atoms{Offset: 0x17}.Encode()
	assert.NoError(err)
	insn, err := Decode(word)
	assert.NoError(err)
	assert.Equal(int32(0x14), insn.(Atoms).Offset)

	// Arithmetic shift: -1 >> 2 == -1.
	word, err = AtomsCas{Src: 1, Offset: -1}.Encode()
	assert.NoError(err)
	insn, err = Decode(word)
	assert.NoError(err)
	assert.Equal(int32(-4), insn.(AtomsCas).Offset)

	_, err = Atoms{Offset: 1 << 23}.Encode()
	assert.True(errors.Is(err, ErrOutOfRange))
}

func TestEncodeAtomsCasZeroSource(t *testing.T) {
	assert := assert.New(t)

	word, err := AtomsCas{Always, 4, 1, 0, 0x14, CAS_TYPE_U32, ATOMS_CAS_OP_CAS}.Encode()
	assert.True(errors.Is(err, ErrOperandCombination))
	assert.Equal(uint64(0), word)

	var ee ErrEncode
	assert.True(errors.As(err, &ee))
	assert.Equal(OP_ATOMS_CAS, ee.Opcode)

	var eo ErrOperands
	assert.True(errors.As(err, &eo))
	assert.Equal(FIELD_SRC, eo.Operand)

	// The biased register is stored one lower.
	word, err = AtomsCas{Src: 1}.Encode()
	assert.NoError(err)
	assert.Equal(uint64(0), word&0x0ff00000)

	// 0xff in the src field would name register 256.
	_, err = Decode(word | 0x0ff00000)
	assert.True(errors.Is(err, ErrOperandCombination))
}

func TestEncodeOutOfRange(t *testing.T) {
	assert := assert.New(t)

	table := []Instruction{
		Ret{Predicate{8, false}, CC_T},
		Ret{Always, ControlCode(32)},
		Kil{Always, ControlCode(-1)},
		Nop{Always, false, 0, ControlCode(40)},
		Al2p{Always, 8, 0, 0, false, ATTR_M32, 0},
		Al2p{Always, 0, 0, 0, false, ATTR_M32, 1024},
		Al2p{Always, 0, 0, 0, false, AttributeLoadMode(4), 0},
		Ald{Always, 0, 0, 0x400, false, false, ATTR_M32, 0},
		Ast{Always, 0, 0, 0, false, AttributeLoadMode(-1), 0},
		Atom{Always, 0, 0, 0, 1 << 19, ATOM_TYPE_U32, ATOM_OP_ADD, false},
		Atom{Always, 0, 0, 0, 0, AtomPrimitiveType(8), ATOM_OP_ADD, false},
		Atom{Always, 0, 0, 0, 0, ATOM_TYPE_U32, AtomOperation(16), false},
		Atoms{Always, 0, 0, 0, 0, AtomsPrimitiveType(4), ATOMS_OP_ADD},
		AtomCas{Always, 0, 0, 0, 0, AtomicCasPrimitiveType(2), false},
		AtomsCas{Always, 0, 0, 1, 0, CAS_TYPE_U32, AtomsCasOperation(4)},
		B2r{Always, 0, 0, B2R_OP_BAR, 16},
		B2r{Always, 0, 8, B2R_OP_BAR, 0},
		B2r{Always, 0, 0, B2ROperation(4), 0},
	}

	for _, insn := range table {
		word, err := insn.Encode()
		assert.True(errors.Is(err, ErrOutOfRange), "%#v: %v", insn, err)
		assert.Equal(uint64(0), word)
	}

	_, err := Ret{Always, ControlCode(32)}.Encode()
	var ed ErrDomain
	assert.True(errors.As(err, &ed))
	assert.Equal(FIELD_CC, ed.Domain)
	assert.Equal(32, ed.Value)
}

func TestControlCodeRaw(t *testing.T) {
	assert := assert.New(t)

	for cc := CC_F; cc <= CC_T; cc++ {
		assert.True(cc.Valid())
		assert.True(cc.Named())
	}

	for cc := ControlCode(16); cc <= 31; cc++ {
		assert.True(cc.Valid())
		assert.False(cc.Named())

		word, err := Ret{Always, cc}.Encode()
		assert.NoError(err)
		insn, err := Decode(word)
		assert.NoError(err)
		assert.Equal(cc, insn.(Ret).CC)
	}

	assert.Equal("T", CC_T.String())
	assert.Equal("ControlCode(16)", ControlCode(16).String())
	assert.False(ControlCode(32).Valid())
	assert.False(ControlCode(-1).Valid())
}

func TestDomainNames(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("128", ATTR_M128.String())
	assert.Equal("SAFEADD", ATOM_OP_SAFEADD.String())
	assert.Equal("AtomOperation(9)", AtomOperation(9).String())
	assert.Equal("F16x2.FTZ.RN", ATOM_TYPE_F16X2_FTZ_RN.String())
	assert.Equal("CAST.SPIN", ATOMS_CAS_OP_CAST_SPIN.String())
	assert.Equal("BAR", B2R_OP_BAR.String())
	assert.Equal("U64", CAS_TYPE_U64.String())
	assert.Equal("S64", ATOMS_TYPE_S64.String())
	assert.Equal("EXCH", ATOMS_OP_EXCH.String())
}

func TestListing(t *testing.T) {
	assert := assert.New(t)

	word, err := Nop{Always, false, 0, CC_T}.Encode()
	assert.NoError(err)
	assert.Equal("0x50b0000000070f00 NOP cc=15 trigger=0 pred=7 pred.inv=0 imm16=0", Listing(word))

	word, err = Al2p{Always, 0, 0, 0, false, ATTR_M32, -2}.Encode()
	assert.NoError(err)
	assert.Contains(Listing(word), " offset=-2 ")

	assert.Equal("0x0000000000000000 ???", Listing(0))
}

func FuzzDecode(f *testing.F) {
	f.Add(uint64(0x50b0000000070f00))
	f.Add(uint64(0xee00000140170104))
	f.Add(uint64(0xeda4000140270104))
	f.Add(uint64(0xffffffffffffffff))
	f.Add(uint64(0))

	f.Fuzz(func(t *testing.T, word uint64) {
		assert := assert.New(t)

		insn, err := Decode(word)
		if err != nil {
			assert.Nil(insn)
			return
		}

		// Every decoded record must encode again, and be stable.
		encoded, err := insn.Encode()
		assert.NoError(err)

		again, err := Decode(encoded)
		assert.NoError(err)
		assert.Equal(insn, again)
	})
}
