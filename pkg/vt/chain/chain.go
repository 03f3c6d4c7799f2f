package chain

import (
	"github.com/ib-77/vtx/pkg/rop"
	"github.com/ib-77/vtx/pkg/rop/solo"
	"github.com/ib-77/vtx/pkg/vt"
)

// Chain carries a rop.Result through a sequence of transformers
type Chain[T any] struct {
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](result rop.Result[T]) Chain[T] {
	return Chain[T]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) Chain[T] {
	return Chain[T]{result: rop.Success(value)}
}

// Result returns the underlying rop.Result
func (c Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then runs the value through t
func Then[T, U any](c Chain[T], t vt.Transformer[T, U]) Chain[U] {
	return Chain[U]{result: solo.Switch(c.result, t.Transform)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c Chain[T], tryOnSuccess func(T) (U, error)) Chain[U] {
	return Chain[U]{result: solo.Try(c.result, tryOnSuccess)}
}

// Map chains a pure transformation function
func Map[T, U any](c Chain[T], onSuccess func(T) U) Chain[U] {
	return Chain[U]{result: solo.Map(c.result, onSuccess)}
}

// Forward runs the value through the forward direction of r
func Forward[T, U any](c Chain[T], r vt.Reversible[T, U]) Chain[U] {
	return Chain[U]{result: solo.Switch(c.result, r.Forward)}
}

// Reverse runs the value through the reverse direction of r
func Reverse[T, U any](c Chain[U], r vt.Reversible[T, U]) Chain[T] {
	return Chain[T]{result: solo.Switch(c.result, r.Reverse)}
}

// Ensure performs a side effect on success without changing the result
func (c Chain[T]) Ensure(onSuccess func(T)) Chain[T] {
	if onSuccess == nil {
		return c
	}
	return Chain[T]{result: solo.Tee(c.result, onSuccess)}
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U any](c Chain[T], onSuccess func(T) U, onFailure func(error) U) U {
	return solo.Finally(c.result, onSuccess, onFailure)
}
