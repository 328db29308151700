// Package chain provides a fluent wrapper around Result[T, E]
// for building synchronous railway chains using solo primitives.
//
// Each step consumes the result held by the previous chain, so a chain
// value should be used once, like the result it wraps.
//
// Key operations:
// - Start/FromValue/FromFailure: begin a chain from a Result or value
// - Then: switch to a new Result[U, E] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map/MapFailure: transform one side of the result
// - Ensure: run side effects on success without changing the result
// - Recover: replace a failure with the result of a function
// - Or/And: combine two chains of the same types
// - Finally: collapse the chain into a final value via handlers
package chain
