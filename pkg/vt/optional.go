package vt

import (
	"github.com/ib-77/vtx/pkg/option"
	"github.com/ib-77/vtx/pkg/rop"
	"github.com/ib-77/vtx/pkg/rop/solo"
)

// Absent values never reach the wrapped transformer: they short-circuit to
// the default (or to None). A present value that t rejects fails with t's error.

// LiftToOptionalOutput wraps every successful output of t in Some.
func LiftToOptionalOutput[In, Out any](t Transformer[In, Out]) Transformer[In, option.Option[Out]] {
	t.mustBeSet("vt.LiftToOptionalOutput")
	return New(func(value In) rop.Result[option.Option[Out]] {
		return solo.Map(t.Transform(value), option.Some[Out])
	})
}

// LiftFromOptionalInput accepts an optional input. None yields defaultOutputValue
// without calling t; Some(v) is passed to t.
func LiftFromOptionalInput[In, Out any](t Transformer[In, Out], defaultOutputValue Out) Transformer[option.Option[In], Out] {
	t.mustBeSet("vt.LiftFromOptionalInput")
	return New(func(value option.Option[In]) rop.Result[Out] {
		v, ok := value.Get()
		if !ok {
			return rop.Success(defaultOutputValue)
		}
		return t.Transform(v)
	})
}

// LiftBothOptional maps None to None and Some(v) to Some(t(v)).
func LiftBothOptional[In, Out any](t Transformer[In, Out]) Transformer[option.Option[In], option.Option[Out]] {
	return LiftFromOptionalInput(LiftToOptionalOutput(t), option.None[Out]())
}

// LiftReversibleToOptionalOutput makes the output side of r optional.
// Forward wraps results in Some; Reverse turns None into defaultReverseValue
// and passes Some(v) to r's reverse.
func LiftReversibleToOptionalOutput[In, Out any](r Reversible[In, Out], defaultReverseValue In) Reversible[In, option.Option[Out]] {
	return Combine(
		LiftToOptionalOutput(r.forward),
		LiftFromOptionalInput(Flip(r).forward, defaultReverseValue),
	)
}

// LiftReversibleFromOptionalInput makes the input side of r optional.
// Forward turns None into defaultOutputValue; Reverse wraps results in Some,
// so None on the input side is only produced by the paired optional-output lift.
func LiftReversibleFromOptionalInput[In, Out any](r Reversible[In, Out], defaultOutputValue Out) Reversible[option.Option[In], Out] {
	return Combine(
		LiftFromOptionalInput(r.forward, defaultOutputValue),
		LiftToOptionalOutput(Flip(r).forward),
	)
}

// LiftReversibleBothOptional makes both sides of r optional; None maps to
// None in either direction.
func LiftReversibleBothOptional[In, Out any](r Reversible[In, Out]) Reversible[option.Option[In], option.Option[Out]] {
	return Combine(
		LiftBothOptional(r.forward),
		LiftBothOptional(Flip(r).forward),
	)
}
