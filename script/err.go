package script

import (
	"errors"
	"strconv"

	"github.com/maxhell/maxhell/maxwell"
	"github.com/maxhell/maxhell/translate"
)

var f = translate.From

var (
	ErrArgumentRange = maxwell.ErrOutOfRange
	ErrWordInvalid   = errors.New(f("word is not a 64-bit integer"))
)

// ErrArgument is returned for a builtin argument that does not fit its
// operand type.
type ErrArgument struct {
	Name  string
	Value int
}

func (err ErrArgument) Error() string {
	return f("argument %v=%v out of range", err.Name, strconv.Itoa(err.Value))
}

func (err ErrArgument) Is(target error) bool {
	return target == ErrArgumentRange
}

// ErrScript locates an error in a shader script.
type ErrScript struct {
	File string
	Line int // Zero when the failing line is not known.
	Err  error
}

func (err ErrScript) Error() string {
	if err.Line == 0 {
		return f("%v: %v", err.File, err.Err)
	}
	return f("%v:%d: %v", err.File, err.Line, err.Err)
}

func (err ErrScript) Unwrap() error {
	return err.Err
}
