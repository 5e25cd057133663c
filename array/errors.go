package array

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every error returned from Get
var ErrOutOfRange = errors.New("index out of range")

// RangeError reports a read outside [0, Length).
type RangeError struct {
	Index  int
	Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Length)
}

// Is lets errors.Is(err, ErrOutOfRange) match any RangeError
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
