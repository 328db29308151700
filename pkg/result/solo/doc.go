// Package solo contains the combinators over a single Result[T, E].
// Go methods cannot introduce type parameters, so every combinator that
// changes T or E is a free function taking the result by pointer.
//
// Every combinator consumes its input: the value is moved into the
// returned result or into the callback, and the input is left consumed.
//
// Highlights:
// - Map/MapFailure: transform one side, pass the other through
// - Switch/SwitchFailure: continue with a result-returning function
// - Match: reduce to a concrete value via success/failure handlers
// - AndThen/AndThenWith: continue on success (eager and lazy)
// - OrElse/OrElseWith: fall back on failure (eager and lazy)
// - Try: call a function (U, error) and convert error to failure
// - Validate: turn an invalid success into a failure
// - Tee/DoubleTee: side-effect helpers that do not consume
// - Flatten/Collect/First: combine several results
package solo
