// Package solo contains single-value, synchronous primitives that operate
// on Result[T]. They are the building blocks the transformer combinators
// are written with.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate/FailOnError: reject a successful value, producing a failure
// - Switch: move from Result[In] to Result[Out] (flat map)
// - Map/MapErr: transform the successful value or the error
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
// - Join: run same-typed steps in order, stopping at the first failure
package solo
