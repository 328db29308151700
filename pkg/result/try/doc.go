// Package try provides early-return propagation for Result values.
//
// Inside Do, Bind unwraps a success into the current scope; on a failure
// the enclosing Do returns at once with the same failure value, re-typed
// to Do's success type. No code after the failing Bind runs.
//
//	func divideThenSqrt(a, b int) result.Result[int, error] {
//		return try.Do(func(s *try.Scope[error]) result.Result[int, error] {
//			q := try.Bind(s, divide(a, b))
//			return result.Ok[int, error](isqrt(q))
//		})
//	}
//
// The same flow without a scope is an explicit check and result.Propagate:
//
//	r := divide(a, b)
//	if r.IsFailure() {
//		return result.Propagate[int](&r)
//	}
//	q := r.UnwrapSuccess()
package try
