package maxwell

import (
	"errors"

	"github.com/maxhell/maxhell/bitfield"
	"github.com/maxhell/maxhell/translate"
)

var f = translate.From

var (
	// Registry errors
	ErrOpcodeUnknown = errors.New(f("opcode unknown"))

	// Encoder errors
	ErrOutOfRange         = bitfield.ErrOutOfRange
	ErrOperandCombination = errors.New(f("invalid operand combination"))
	ErrFieldMissing       = errors.New(f("field missing"))
)

// ErrUnknownOpcode is returned when a tag or word matches no opcode.
type ErrUnknownOpcode uint32

func (eu ErrUnknownOpcode) Error() string {
	return f("unknown opcode tag 0x%08x", uint32(eu))
}

func (eu ErrUnknownOpcode) Is(err error) bool {
	return err == ErrOpcodeUnknown
}

// ErrDomain is returned for an operand outside of its enumerated domain.
type ErrDomain struct {
	Domain string
	Value  int
}

func (err ErrDomain) Error() string {
	return f("%v value %v out of range", err.Domain, err.Value)
}

func (err ErrDomain) Is(target error) bool {
	return target == ErrOutOfRange
}

// ErrOperands is returned when operands are individually valid but their
// combination is not encodable.
type ErrOperands struct {
	Operand string
	Reason  string
}

func (err ErrOperands) Error() string {
	return f("operand %v: %v", err.Operand, err.Reason)
}

func (err ErrOperands) Is(target error) bool {
	return target == ErrOperandCombination
}

// ErrEncode locates an error in the instruction kind being encoded.
type ErrEncode struct {
	Opcode Opcode
	Err    error
}

func (err ErrEncode) Error() string {
	return f("%v: %v", err.Opcode.String(), err.Err)
}

func (err ErrEncode) Unwrap() error {
	return err.Err
}

// ErrField is returned when a format has no field of the given name.
type ErrField string

func (err ErrField) Error() string {
	return f("field %v missing", string(err))
}

func (err ErrField) Is(target error) bool {
	return target == ErrFieldMissing
}
