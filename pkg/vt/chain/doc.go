// Package chain provides a fluent wrapper that pushes one value through
// vt transformers step by step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: apply a vt.Transformer
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Forward/Reverse: apply one direction of a vt.Reversible
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
//
// Once a step fails the remaining steps are skipped and the first error is kept.
package chain
