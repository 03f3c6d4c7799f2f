package rop

import "errors"

// ErrNilFailure replaces a nil error handed to Fail, so a failed Result
// always carries a reason.
var ErrNilFailure = errors.New("rop: failure without error")

// Result is the outcome of a single transformation: either a success value
// or the error that stopped it. The zero Result is a failure with ErrNilFailure.
type Result[T any] struct {
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
	}
}

func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		err = ErrNilFailure
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
	}
}

// FromTuple converts a Go (value, error) pair into a Result.
func FromTuple[T any](r T, err error) Result[T] {
	if !IsNil(err) {
		return Fail[T](err)
	}
	return Success(r)
}

// FailFrom moves the failure of one Result into a Result of another type.
// The error is carried over unchanged; a successful from yields ErrNilFailure.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Fail[Out](from.err)
}

func (r Result[T]) Result() T {
	return r.result
}

// Err returns the failure reason. A failed Result never reports a nil
// error, including the zero Result.
func (r Result[T]) Err() error {
	if !r.isSuccess && r.err == nil {
		return ErrNilFailure
	}
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// Unwrap returns the value and the error the way ordinary Go calls do.
func (r Result[T]) Unwrap() (T, error) {
	return r.result, r.Err()
}

// ResultOr returns the success value, or fallback when r failed.
func (r Result[T]) ResultOr(fallback T) T {
	if r.isSuccess {
		return r.result
	}
	return fallback
}
