// Package rop defines Result[T], the success-or-failure value every
// transformer returns.
//
// A Result is either Success(v) or Fail(err). Failures carry a plain Go
// error, so callers pick their own failure types and recover them with
// errors.Is / errors.As. Results are immutable values and compare by content.
package rop
