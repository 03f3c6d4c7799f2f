package solo

import (
	"errors"

	"github.com/ib-77/vtx/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Validate[T any](input T,
	validate func(in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(Succeed(input), validate)
}

// AndValidate fails a successful input with errMsg when validate rejects it.
// A failed input is returned unchanged.
func AndValidate[T any](input rop.Result[T],
	validate func(in T) (valid bool, errMsg string)) rop.Result[T] {

	if input.IsSuccess() {
		if isValid, errMsg := validate(input.Result()); isValid {
			return input
		} else {
			return rop.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

// FailOnError keeps a successful input unless maybeErr reports an error for it.
func FailOnError[T any](input rop.Result[T],
	maybeErr func(in T) error) rop.Result[T] {
	if input.IsSuccess() {
		err := maybeErr(input.Result())
		if !rop.IsNil(err) {
			return rop.Fail[T](err)
		} else {
			return input
		}
	}
	return input
}

// Switch moves a successful Result[In] into Result[Out] through onSuccess.
// A failed input is passed on with its error untouched and onSuccess is not called.
func Switch[In any, Out any](input rop.Result[In],
	onSuccess func(r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In any, Out any](input rop.Result[In],
	onSuccess func(r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(input.Result()))
	}
	return rop.FailFrom[In, Out](input)
}

func MapErr[T any](input rop.Result[T], onError func(err error) error) rop.Result[T] {
	if input.IsSuccess() || onError == nil {
		return input
	}
	return rop.Fail[T](onError(input.Err()))
}

func Try[In any, Out any](input rop.Result[In],
	onTryExecute func(r In) (Out, error)) rop.Result[Out] {

	if input.IsSuccess() {
		out, err := onTryExecute(input.Result())
		if !rop.IsNil(err) {
			return rop.Fail[Out](err)
		}

		return rop.Success(out)
	}

	return rop.FailFrom[In, Out](input)
}

func Tee[T any](input rop.Result[T],
	onSuccess func(r T)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(input.Result())
	}

	return input
}

func TeeIf[T any](input rop.Result[T],
	condition func(r T) bool,
	onSuccessAndCondition func(r T)) rop.Result[T] {

	if input.IsSuccess() {
		if condition(input.Result()) {
			onSuccessAndCondition(input.Result())
		}
	}

	return input
}

func DoubleTee[T any](input rop.Result[T],
	onSuccess func(r T),
	onError func(err error)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(input.Result())
	} else {
		onError(input.Err())
	}

	return input
}

func Finally[In, Out any](input rop.Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onError(input.Err())
}

// Join feeds input through steps in order and stops at the first failure.
// With no steps the input is returned as is.
func Join[T any](input rop.Result[T],
	steps ...func(in T) rop.Result[T]) rop.Result[T] {

	current := input
	for _, step := range steps {
		if current.IsFailure() {
			return current
		}
		current = step(current.Result())
	}
	return current
}
