package bitfield

import (
	"errors"
	"strconv"

	"github.com/maxhell/maxhell/translate"
)

var f = translate.From

var (
	ErrOutOfRange = errors.New(f("out of range"))
	ErrBitRange   = errors.New(f("bit range invalid"))
)

// ErrRange is returned when a value does not fit the width of its field.
type ErrRange struct {
	Field  string // Field name, empty for anonymous bit ranges.
	Value  uint64 // Raw value; two's complement when Signed.
	Width  uint   // Field width in bits.
	Signed bool
}

func (err ErrRange) Error() string {
	name := err.Field
	if len(name) == 0 {
		name = "-"
	}
	if err.Signed {
		return f("field %v value %v does not fit in %v signed bits", name, strconv.FormatInt(int64(err.Value), 10), err.Width)
	}
	return f("field %v value %#x does not fit in %v bits", name, err.Value, err.Width)
}

func (err ErrRange) Is(target error) bool {
	return target == ErrOutOfRange
}

// ErrBits is returned for a bit range that is not inside a 64-bit word.
type ErrBits struct {
	Hi, Lo uint
}

func (err ErrBits) Error() string {
	return f("bits %v..%v are not a range of a 64-bit word", err.Hi, err.Lo)
}

func (err ErrBits) Is(target error) bool {
	return target == ErrBitRange
}
