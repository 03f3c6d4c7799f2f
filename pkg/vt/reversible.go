package vt

import (
	"github.com/ib-77/vtx/pkg/rop"
)

// Reversible pairs a forward mapping In -> Out with a reverse mapping
// Out -> In.
//
// Only the types are paired. Whether Reverse actually undoes Forward is up
// to the caller who supplied the closures; nothing here checks round trips.
type Reversible[In, Out any] struct {
	forward Transformer[In, Out]
	reverse Transformer[Out, In]
}

// NewReversible builds a Reversible from two closures. It panics if either is nil.
func NewReversible[In, Out any](forward func(value In) rop.Result[Out],
	reverse func(value Out) rop.Result[In]) Reversible[In, Out] {
	if forward == nil || reverse == nil {
		panic("vt.NewReversible: forward and reverse must not be nil")
	}
	return Combine(New(forward), New(reverse))
}

// Combine packages t as the forward direction and u as the reverse one.
func Combine[In, Out any](t Transformer[In, Out], u Transformer[Out, In]) Reversible[In, Out] {
	t.mustBeSet("vt.Combine")
	u.mustBeSet("vt.Combine")
	return Reversible[In, Out]{forward: t, reverse: u}
}

// Flip swaps the forward and reverse roles. Flip(Flip(r)) runs the same
// closures as r.
func Flip[In, Out any](r Reversible[In, Out]) Reversible[Out, In] {
	r.forward.mustBeSet("vt.Flip")
	r.reverse.mustBeSet("vt.Flip")
	return Reversible[Out, In]{forward: r.reverse, reverse: r.forward}
}

func IdentityReversible[T any]() Reversible[T, T] {
	return Combine(Identity[T](), Identity[T]())
}

func (r Reversible[In, Out]) Forward(value In) rop.Result[Out] {
	return r.forward.Transform(value)
}

func (r Reversible[In, Out]) Reverse(value Out) rop.Result[In] {
	return r.reverse.Transform(value)
}

// Transform is Forward, so a Reversible can be used wherever a
// ValueTransformer is expected.
func (r Reversible[In, Out]) Transform(value In) rop.Result[Out] {
	return r.Forward(value)
}

func (r Reversible[In, Out]) ForwardTransformer() Transformer[In, Out] {
	return r.forward
}

func (r Reversible[In, Out]) ReverseTransformer() Transformer[Out, In] {
	return r.reverse
}
