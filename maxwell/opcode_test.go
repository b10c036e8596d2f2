package maxwell

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeBijective(t *testing.T) {
	assert := assert.New(t)

	seen := map[uint32]Opcode{}
	for op := range Opcodes() {
		tag := op.Tag()
		assert.NotZero(tag, op.String())

		prev, dup := seen[tag]
		assert.False(dup, "%v and %v share tag 0x%08x", op, prev, tag)
		seen[tag] = op

		decoded, err := DecodeOpcode(tag)
		assert.NoError(err)
		assert.Equal(op, decoded)
	}
	assert.Equal(opcodeCount, len(seen))
}

func TestOpcodeUnknown(t *testing.T) {
	assert := assert.New(t)

	tags := []uint32{0, 0xffffffff, 0x50b00001, 0xe3000001, 0xefa80000}
	for op := range Opcodes() {
		tags = append(tags, op.Tag()+1, op.Tag()-1, op.Tag()|0x8)
	}
	for range 1000 {
		tags = append(tags, rand.Uint32())
	}

	for _, tag := range tags {
		if _, known := tagOpcode[tag]; known {
			continue
		}
		op, err := DecodeOpcode(tag)
		assert.True(errors.Is(err, ErrOpcodeUnknown), "0x%08x", tag)
		assert.False(op.Valid(), "0x%08x", tag)

		var eu ErrUnknownOpcode
		assert.True(errors.As(err, &eu))
		assert.Equal(tag, uint32(eu))
	}
}

func TestOpcodeInvalid(t *testing.T) {
	assert := assert.New(t)

	assert.False(Opcode(-1).Valid())
	assert.False(Opcode(opcodeCount).Valid())
	assert.Equal(uint32(0), Opcode(opcodeCount).Tag())
	assert.Nil(FormatOf(Opcode(opcodeCount)))

	assert.Equal("ATOMS.CAS", OP_ATOMS_CAS.String())
	assert.Equal("Opcode(17)", Opcode(17).String())
}

func TestFormats(t *testing.T) {
	assert := assert.New(t)

	for op := range Opcodes() {
		fm := FormatOf(op)
		if !assert.NotNil(fm, op.String()) {
			continue
		}
		assert.Equal(op, fm.Opcode)

		tag := uint64(op.Tag()) << 32
		names := map[string]bool{}
		for n, fd := range fm.Fields {
			assert.False(names[fd.Name], "%v: duplicate field %v", op, fd.Name)
			names[fd.Name] = true

			assert.NotZero(fd.Mask(), "%v: field %v", op, fd.Name)
			assert.Zero(tag&fd.Mask(), "%v: field %v overlaps the tag", op, fd.Name)

			for _, other := range fm.Fields[n+1:] {
				assert.False(fd.Overlaps(other), "%v: %v overlaps %v", op, fd.Name, other.Name)
			}
		}

		assert.True(fm.Match(tag), op.String())
	}
}

func TestFormatField(t *testing.T) {
	assert := assert.New(t)

	fd, err := FormatOf(OP_ALD).Field(FIELD_VERTEX)
	assert.NoError(err)
	assert.Equal(uint(46), fd.Hi)
	assert.Equal(uint(39), fd.Lo)

	_, err = FormatOf(OP_RAM).Field(FIELD_PRED)
	assert.True(errors.Is(err, ErrFieldMissing))
}

func TestIdentifyUnique(t *testing.T) {
	assert := assert.New(t)

	// No word of one kind may match the fixed bits of another.
	for a := range Opcodes() {
		for b := range Opcodes() {
			if a == b {
				continue
			}
			common := formats[a].Mask() & formats[b].Mask()
			ta := (uint64(a.Tag()) << 32) & common
			tb := (uint64(b.Tag()) << 32) & common
			assert.NotEqual(ta, tb, "%v and %v are ambiguous", a, b)
		}
	}

	op, err := Identify(0)
	assert.True(errors.Is(err, ErrOpcodeUnknown))
	assert.False(op.Valid())
	assert.NotEqual(OP_NOP, op)
}
