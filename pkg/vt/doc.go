// Package vt is a small algebra of value transformers.
//
// A Transformer[In, Out] maps In to a rop.Result[Out]. A Reversible[In, Out]
// additionally maps Out back to In. Pipelines are built bottom-up from leaf
// transformers supplied by the caller and combined with:
//
//   - Combine: pair two one-way transformers into a Reversible
//   - Flip: swap the directions of a Reversible
//   - Compose / ComposeReverse: left >>> right and left <<< right
//   - ComposeReversible: forward runs left to right, reverse runs right to left
//   - Chain: compose same-typed steps
//   - Ensure / Validate: same-typed validation steps
//   - LiftToOptionalOutput / LiftFromOptionalInput / LiftBothOptional and their
//     Reversible counterparts: operate over option.Option values
//   - LiftToCollection / LiftSeq / LiftReversibleToCollection: operate over sequences
//
// Every combinator short-circuits on the first failure and returns its error
// unchanged. Nothing runs until the resulting transformer is invoked, and
// transformers hold no mutable state, so they may be shared freely.
//
// Example:
//
//	parse := vt.Try(strconv.Atoi)
//	format := vt.Map(strconv.Itoa)
//	r := vt.Combine(parse, format)
//
//	r.Forward("1")          // Success(1)
//	r.Reverse(2)            // Success("2")
//	vt.Flip(r).Forward(3)   // Success("3")
package vt
