package vt

import (
	"github.com/ib-77/vtx/pkg/rop"
	"github.com/ib-77/vtx/pkg/rop/solo"
)

// Compose chains left then right (left >>> right). right runs only on a
// successful left result; the first failure is returned unchanged.
func Compose[A, B, C any](left Transformer[A, B], right Transformer[B, C]) Transformer[A, C] {
	left.mustBeSet("vt.Compose")
	right.mustBeSet("vt.Compose")
	return New(func(value A) rop.Result[C] {
		return solo.Switch(left.Transform(value), right.Transform)
	})
}

// ComposeReverse is right-to-left composition (left <<< right): right runs
// first and feeds left.
func ComposeReverse[A, B, C any](left Transformer[B, C], right Transformer[A, B]) Transformer[A, C] {
	return Compose(right, left)
}

// ComposeReversible chains two reversible transformers. Forward runs left
// then right; Reverse runs right's reverse then left's reverse.
func ComposeReversible[A, B, C any](left Reversible[A, B], right Reversible[B, C]) Reversible[A, C] {
	return Combine(
		Compose(left.forward, right.forward),
		Compose(Flip(right).forward, Flip(left).forward),
	)
}

// ComposeReversibleReverse is ComposeReversible with the arguments swapped.
func ComposeReversibleReverse[A, B, C any](left Reversible[B, C], right Reversible[A, B]) Reversible[A, C] {
	return ComposeReversible(right, left)
}

// Chain composes same-typed steps left to right. An empty chain is Identity.
func Chain[T any](steps ...Transformer[T, T]) Transformer[T, T] {
	fns := make([]func(T) rop.Result[T], 0, len(steps))
	for _, s := range steps {
		s.mustBeSet("vt.Chain")
		fns = append(fns, s.Transform)
	}
	return New(func(value T) rop.Result[T] {
		return solo.Join(solo.Succeed(value), fns...)
	})
}
