package try

import (
	"github.com/ib-77/result/pkg/result"
)

// Scope belongs to a single Do call and is only valid while its body runs.
type Scope[E any] struct {
	done bool
}

func (s *Scope[E]) check(op string) {
	if s.done {
		result.ReportMisuse(op, "called "+op+" on a scope whose Do has returned")
	}
}

type propagation[E any] struct {
	scope   *Scope[E]
	failure result.Result[result.NoSuccess, E]
}

// Do runs body and turns a failure raised by Bind on body's scope into
// the returned result. Any other panic, misuses included, is re-raised.
func Do[T, E any](body func(s *Scope[E]) result.Result[T, E]) (out result.Result[T, E]) {
	s := &Scope[E]{}
	defer func() {
		s.done = true
		if rec := recover(); rec != nil {
			p, ok := rec.(*propagation[E])
			if !ok || p.scope != s {
				panic(rec)
			}
			out = result.FromFailure[T](p.failure)
		}
	}()
	return body(s)
}

// Bind returns the success value of r, or leaves the enclosing Do with
// r's failure.
func Bind[U, E any](s *Scope[E], r result.Result[U, E]) U {
	s.check("Bind")
	return BindPtr(s, &r)
}

// BindPtr is Bind for a result the caller keeps; r is consumed either way.
func BindPtr[U, E any](s *Scope[E], r *result.Result[U, E]) U {
	s.check("BindPtr")
	if r.IsSuccess() {
		return r.UnwrapSuccess()
	}
	panic(&propagation[E]{scope: s, failure: result.Propagate[result.NoSuccess](r)})
}

// BindMap is Bind for a result whose failure type differs from the scope;
// convert maps it before leaving Do.
func BindMap[U, F, E any](s *Scope[E], r result.Result[U, F], convert func(f F) E) U {
	s.check("BindMap")
	if r.IsSuccess() {
		return r.UnwrapSuccess()
	}
	mapped := result.Failure(convert(r.UnwrapFailure()))
	panic(&propagation[E]{scope: s, failure: mapped})
}
