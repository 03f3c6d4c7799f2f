package vt

import (
	"github.com/ib-77/vtx/pkg/rop"
	"github.com/ib-77/vtx/pkg/rop/solo"
)

// ValueTransformer is anything that maps In to a Result of Out.
// Transformer and Reversible both satisfy it.
type ValueTransformer[In, Out any] interface {
	Transform(value In) rop.Result[Out]
}

// Transformer is a one-way mapping from In to Out that may fail.
// It owns a single closure and is immutable once built.
type Transformer[In, Out any] struct {
	transform func(In) rop.Result[Out]
}

// New wraps transform as a Transformer. It panics if transform is nil.
func New[In, Out any](transform func(value In) rop.Result[Out]) Transformer[In, Out] {
	if transform == nil {
		panic("vt.New: transform must not be nil")
	}
	return Transformer[In, Out]{transform: transform}
}

// Try wraps an ordinary (Out, error) function; a non-nil error becomes the failure.
func Try[In, Out any](try func(value In) (Out, error)) Transformer[In, Out] {
	if try == nil {
		panic("vt.Try: function must not be nil")
	}
	return New(func(value In) rop.Result[Out] {
		return solo.Try(solo.Succeed(value), try)
	})
}

// Map wraps a total function. The resulting Transformer never fails.
func Map[In, Out any](mapping func(value In) Out) Transformer[In, Out] {
	if mapping == nil {
		panic("vt.Map: function must not be nil")
	}
	return New(func(value In) rop.Result[Out] {
		return rop.Success(mapping(value))
	})
}

// Ensure passes a value through unchanged unless check returns an error,
// which becomes the failure.
func Ensure[T any](check func(value T) error) Transformer[T, T] {
	if check == nil {
		panic("vt.Ensure: check must not be nil")
	}
	return New(func(value T) rop.Result[T] {
		return solo.FailOnError(solo.Succeed(value), check)
	})
}

// Validate passes a value through unchanged when validate accepts it and
// fails with errMsg otherwise.
func Validate[T any](validate func(value T) (valid bool, errMsg string)) Transformer[T, T] {
	if validate == nil {
		panic("vt.Validate: function must not be nil")
	}
	return New(func(value T) rop.Result[T] {
		return solo.Validate(value, validate)
	})
}

func Identity[T any]() Transformer[T, T] {
	return New(solo.Succeed[T])
}

// From adapts any ValueTransformer into a Transformer.
func From[In, Out any](v ValueTransformer[In, Out]) Transformer[In, Out] {
	if v == nil {
		panic("vt.From: value transformer must not be nil")
	}
	return New(v.Transform)
}

func (t Transformer[In, Out]) Transform(value In) rop.Result[Out] {
	return t.transform(value)
}

func (t Transformer[In, Out]) mustBeSet(op string) {
	if t.transform == nil {
		panic(op + ": zero Transformer")
	}
}
