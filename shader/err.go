package shader

import (
	"errors"

	"github.com/maxhell/maxhell/translate"
)

var f = translate.From

var (
	// Output errors
	ErrIo = errors.New(f("i/o failure"))
)

// ErrWrite is returned when the image could not be written to its sink.
type ErrWrite struct {
	Offset int // Bytes written before the failure.
	Err    error
}

func (err ErrWrite) Error() string {
	return f("write failed at offset %#x: %v", err.Offset, err.Err)
}

func (err ErrWrite) Unwrap() error {
	return err.Err
}

func (err ErrWrite) Is(target error) bool {
	return target == ErrIo
}
