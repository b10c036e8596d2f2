package script

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maxhell/maxhell/maxwell"
)

func TestDemo(t *testing.T) {
	assert := assert.New(t)

	prog, err := Demo()
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(17, len(prog.Lines))

	words := prog.Words()
	assert.Equal(17, len(words))
	assert.Equal(uint64(0xe380000000000000), words[0])
	assert.Equal(uint64(0xe370000000000000), words[1])
	assert.Equal(uint64(0xe32000000007000f), words[2])
	assert.Equal(uint64(0xe30000000007000f), words[3])
	assert.Equal(uint64(0x50b0000000070f00), words[4])
	assert.Equal(uint64(0xec80000150270104), words[12])
	assert.Equal(uint64(0xee00000140170104), words[13])
	assert.Equal(uint64(0xeda4000140270104), words[14])
	assert.Equal(uint64(0xf0b8700000070000), words[16])

	assert.Equal(3, prog.Lines[0].LineNo)
	assert.Equal(maxwell.Ram{}, prog.Lines[0].Insn)
	assert.Equal(maxwell.B2r{Predicate: maxwell.Always, PredOut: 7, Op: maxwell.B2R_OP_BAR}, prog.Lines[16].Insn)

	for _, line := range prog.Lines {
		insn, err := maxwell.Decode(line.Word)
		assert.NoError(err)
		assert.Equal(line.Insn, insn)
	}
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	src := strings.Join([]string{
		"w = RAM()",
		"emit(w)",
		"for r in range(4):",
		"    GETLMEMBASE(dst=r)",
		"RET(cc=CC_T)",
		"NOP(cc=CC_LT, inv=True, pred=3)",
		"ATOM(dst=1, addr=2, src=3, op=ATOM_OP_SAFEADD, type=ATOM_TYPE_F32_FTZ_RN)",
		"EXIT(cc=16)",
	}, "\n")

	prog, err := Load("test.star", src)
	if !assert.NoError(err) {
		return
	}

	assert.Equal(10, len(prog.Lines))
	assert.Equal(prog.Lines[0].Word, prog.Lines[1].Word)
	assert.Nil(prog.Lines[1].Insn)
	assert.Equal(2, prog.Lines[1].LineNo)

	for n := range 4 {
		assert.Equal(maxwell.GetLmemBase{Dst: uint8(n)}, prog.Lines[2+n].Insn)
		assert.Equal(4, prog.Lines[2+n].LineNo)
	}

	assert.Equal(maxwell.Ret{Predicate: maxwell.Always, CC: maxwell.CC_T}, prog.Lines[6].Insn)
	assert.Equal(maxwell.Nop{Predicate: maxwell.Predicate{Reg: 3, Invert: true}, CC: maxwell.CC_LT}, prog.Lines[7].Insn)
	assert.Equal(maxwell.Atom{
		Predicate: maxwell.Always,
		Dst:       1,
		Addr:      2,
		Src:       3,
		Type:      maxwell.ATOM_TYPE_F32_FTZ_RN,
		Op:        maxwell.ATOM_OP_SAFEADD,
	}, prog.Lines[8].Insn)
	assert.Equal(maxwell.Exit{Predicate: maxwell.Always, CC: maxwell.ControlCode(16)}, prog.Lines[9].Insn)
}

func TestLoadPredefine(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{Verbose: true}
	ld.Predefine("BASE", 42)
	ld.Predefine("BASE", 43)

	prog, err := ld.Load("predefine.star", "SETLMEMBASE(src=BASE)\n")
	assert.NoError(err)
	if assert.Equal(1, len(prog.Lines)) {
		assert.Equal(maxwell.SetLmemBase{Src: 43}, prog.Lines[0].Insn)
	}
}

func TestLoadErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Load("cas.star", "RAM()\nATOMS_CAS(dst=4, addr=1, src=0)\n")
	assert.True(errors.Is(err, maxwell.ErrOperandCombination), "%v", err)
	var es ErrScript
	if assert.True(errors.As(err, &es)) {
		assert.Equal(2, es.Line)
		assert.Equal("cas.star", es.File)
	}

	_, err = Load("range.star", "GETLMEMBASE(dst=300)\n")
	assert.True(errors.Is(err, ErrArgumentRange), "%v", err)
	var ea ErrArgument
	if assert.True(errors.As(err, &ea)) {
		assert.Equal("dst", ea.Name)
		assert.Equal(300, ea.Value)
	}

	for _, kind := range []string{"ATOM", "ATOMS", "ATOM_CAS", "ATOMS_CAS"} {
		src := kind + "(dst=1, addr=2, src=3, offset=0x100000014)\n"
		prog, err := Load("offset.star", src)
		assert.True(errors.Is(err, ErrArgumentRange), "%v: %v", kind, err)
		assert.Nil(prog, kind)
		if assert.True(errors.As(err, &ea), kind) {
			assert.Equal("offset", ea.Name)
			assert.Equal(0x100000014, ea.Value)
		}
	}

	_, err = Load("offset.star", "ATOM(dst=1, addr=2, src=3, offset=0x80000014)\n")
	assert.True(errors.Is(err, ErrArgumentRange), "%v", err)
	assert.Contains(err.Error(), "offset=2147483668")

	_, err = Load("pred.star", "RET(pred=8)\n")
	assert.True(errors.Is(err, maxwell.ErrOutOfRange), "%v", err)

	_, err = Load("cc.star", "KIL(cc=32)\n")
	assert.True(errors.Is(err, maxwell.ErrOutOfRange), "%v", err)

	_, err = Load("emit.star", "emit('nop')\n")
	assert.True(errors.Is(err, ErrWordInvalid), "%v", err)

	_, err = Load("emit.star", "emit(-1)\n")
	assert.True(errors.Is(err, ErrWordInvalid), "%v", err)

	_, err = Load("kw.star", "RET(bogus=1)\n")
	assert.Error(err)

	prog, err := Load("syntax.star", "RET(\n")
	assert.Error(err)
	assert.Nil(prog)
	assert.True(errors.As(err, &es))
}

func TestConstants(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}
	dict := ld.predeclared()

	for _, name := range []string{
		"PT", "RZ", "CC_F", "CC_T", "CC_GEU", "ATTR_M32", "ATTR_M128",
		"ATOM_TYPE_F16X2_FTZ_RN", "ATOM_OP_SAFEADD", "ATOMS_TYPE_S64",
		"ATOMS_OP_EXCH", "CAS_TYPE_U64", "ATOMS_CAS_OP_CAST_SPIN", "B2R_OP_WARP",
		"emit", "NOP", "ATOMS_CAS", "B2R",
	} {
		assert.Contains(dict, name)
	}
	assert.NotContains(dict, "ATOM_OP_ATOMOPERATION(9)")
	assert.Equal("10", dict["ATOM_OP_SAFEADD"].String())
}
