// Package result defines Result[T, E], a value holding exactly one of a
// success T or a failure E, and tracking whether that value was already
// moved out.
//
// Highlights:
// - Success/Failure: build a half-typed result, completed by FromSuccess/FromFailure
// - Ok/Err: build a fully typed result
// - UnwrapSuccess/UnwrapFailure/Expect: move the value out, once
// - UnwrapSuccessOr/UnwrapSuccessOrElse/UnwrapSuccessOrDefault: extract with a fallback
// - AsRef: inspect without consuming
// - Propagate: re-type a failure for an early return
//
// Misusing a result (wrong side, second consumption, converting a
// half-typed result in the wrong state) is reported through the active
// Reporter. The default build panics with a *MisuseError; building with
// the result_abort tag logs the diagnostic and exits the process instead.
package result
