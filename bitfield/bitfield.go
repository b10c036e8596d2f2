// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package bitfield reads and writes inclusive bit ranges of a 64-bit word.
//
// Bits are numbered from 0 (least significant) to 63. A range hi..lo covers
// hi-lo+1 bits. Writes never truncate: a value that does not fit is an error.
package bitfield

// Field is a named bit range of an instruction word.
type Field struct {
	Name   string
	Hi     uint
	Lo     uint
	Signed bool // Two's complement value, sign extended when read.
}

// Width returns the number of bits in the field.
func (fd Field) Width() uint {
	return fd.Hi - fd.Lo + 1
}

// Mask returns the word bits covered by the field.
func (fd Field) Mask() uint64 {
	if !valid(fd.Hi, fd.Lo) {
		return 0
	}
	return mask(fd.Hi, fd.Lo)
}

// Overlaps returns true if both fields share at least one bit.
func (fd Field) Overlaps(other Field) bool {
	return fd.Mask()&other.Mask() != 0
}

// Put stores a value in the field. Signed fields take value as a two's
// complement integer.
func (fd Field) Put(word uint64, value uint64) (uint64, error) {
	if fd.Signed {
		return packSigned(fd.Name, word, fd.Hi, fd.Lo, int64(value))
	}
	return pack(fd.Name, word, fd.Hi, fd.Lo, value)
}

// PutSigned stores a two's complement value in the field.
func (fd Field) PutSigned(word uint64, value int64) (uint64, error) {
	return packSigned(fd.Name, word, fd.Hi, fd.Lo, value)
}

// PutBool stores a flag in the field.
func (fd Field) PutBool(word uint64, value bool) (uint64, error) {
	var bit uint64
	if value {
		bit = 1
	}
	return fd.Put(word, bit)
}

// Get returns the raw field bits.
func (fd Field) Get(word uint64) uint64 {
	return Unpack(word, fd.Hi, fd.Lo)
}

// GetSigned returns the field bits sign extended.
func (fd Field) GetSigned(word uint64) int64 {
	return UnpackSigned(word, fd.Hi, fd.Lo)
}

// GetBool returns true if any field bit is set.
func (fd Field) GetBool(word uint64) bool {
	return fd.Get(word) != 0
}

// Value returns the field contents, sign extended for signed fields.
func (fd Field) Value(word uint64) int64 {
	if fd.Signed {
		return fd.GetSigned(word)
	}
	return int64(fd.Get(word))
}

func valid(hi, lo uint) bool {
	return hi < 64 && lo <= hi
}

func mask(hi, lo uint) uint64 {
	width := hi - lo + 1
	if width == 64 {
		return ^uint64(0)
	}
	return ((uint64(1) << width) - 1) << lo
}

// Pack replaces bits hi..lo of word with value, leaving all other bits
// unchanged.
func Pack(word uint64, hi, lo uint, value uint64) (uint64, error) {
	return pack("", word, hi, lo, value)
}

// PackSigned replaces bits hi..lo of word with the two's complement of value.
func PackSigned(word uint64, hi, lo uint, value int64) (uint64, error) {
	return packSigned("", word, hi, lo, value)
}

// Unpack extracts bits hi..lo of word. Invalid ranges read as zero.
func Unpack(word uint64, hi, lo uint) uint64 {
	if !valid(hi, lo) {
		return 0
	}
	return (word & mask(hi, lo)) >> lo
}

// UnpackSigned extracts bits hi..lo of word and sign extends them.
func UnpackSigned(word uint64, hi, lo uint) int64 {
	if !valid(hi, lo) {
		return 0
	}
	shift := 64 - (hi - lo + 1)
	return int64(Unpack(word, hi, lo)<<shift) >> shift
}

func pack(name string, word uint64, hi, lo uint, value uint64) (uint64, error) {
	if !valid(hi, lo) {
		return word, ErrBits{Hi: hi, Lo: lo}
	}

	width := hi - lo + 1
	if width < 64 && value>>width != 0 {
		return word, ErrRange{Field: name, Value: value, Width: width}
	}

	m := mask(hi, lo)
	return (word &^ m) | ((value << lo) & m), nil
}

func packSigned(name string, word uint64, hi, lo uint, value int64) (uint64, error) {
	if !valid(hi, lo) {
		return word, ErrBits{Hi: hi, Lo: lo}
	}

	width := hi - lo + 1
	if width < 64 {
		limit := int64(1) << (width - 1)
		if value < -limit || value >= limit {
			return word, ErrRange{Field: name, Value: uint64(value), Width: width, Signed: true}
		}
	}

	m := mask(hi, lo)
	return (word &^ m) | ((uint64(value) << lo) & m), nil
}
