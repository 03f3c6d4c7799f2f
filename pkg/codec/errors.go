package codec

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ib-77/vtx/pkg/rop"
)

var ErrEmpty = errors.New("codec: empty value")

// Error is the failure reason of every codec in this package.
// Err is the underlying cause, e.g. strconv.ErrSyntax or strconv.ErrRange.
type Error struct {
	Codec string
	Input string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("codec %s: cannot convert %q: %v", e.Codec, e.Input, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func fail[T any](codec, input string, err error) rop.Result[T] {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}
	return rop.Fail[T](&Error{Codec: codec, Input: input, Err: err})
}
