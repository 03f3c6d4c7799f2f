package vt

import (
	"iter"
	"slices"

	"github.com/ib-77/vtx/pkg/rop"
)

// LiftToCollection applies t to every element in order. The first failing
// element stops the scan and its error is returned; partial output is dropped.
// An empty or nil input yields an empty, non-nil slice.
func LiftToCollection[In, Out any](t Transformer[In, Out]) Transformer[[]In, []Out] {
	t.mustBeSet("vt.LiftToCollection")
	return New(func(values []In) rop.Result[[]Out] {
		return collect(t, len(values), slices.Values(values))
	})
}

// LiftSeq is LiftToCollection for any iter.Seq input. The sequence is
// consumed once and not resumed after the first failure.
func LiftSeq[In, Out any](t Transformer[In, Out]) Transformer[iter.Seq[In], []Out] {
	t.mustBeSet("vt.LiftSeq")
	return New(func(values iter.Seq[In]) rop.Result[[]Out] {
		return collect(t, 0, values)
	})
}

// LiftReversibleToCollection lifts both directions of r element-wise with
// the same all-or-nothing policy.
func LiftReversibleToCollection[In, Out any](r Reversible[In, Out]) Reversible[[]In, []Out] {
	return Combine(
		LiftToCollection(r.forward),
		LiftToCollection(Flip(r).forward),
	)
}

func collect[In, Out any](t Transformer[In, Out], sizeHint int, values iter.Seq[In]) rop.Result[[]Out] {
	out := make([]Out, 0, sizeHint)
	if values == nil {
		return rop.Success(out)
	}

	for v := range values {
		res := t.Transform(v)
		if res.IsFailure() {
			return rop.FailFrom[Out, []Out](res)
		}
		out = append(out, res.Result())
	}
	return rop.Success(out)
}
