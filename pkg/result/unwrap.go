package result

// UnwrapSuccess moves the success value out. Calling it on a failed or
// consumed result is a misuse.
func (r *Result[T, E]) UnwrapSuccess() T {
	if r.state != StateSuccess {
		r.misuse("UnwrapSuccess")
	}
	return r.takeSuccess()
}

// UnwrapFailure moves the failure value out. Calling it on a successful or
// consumed result is a misuse.
func (r *Result[T, E]) UnwrapFailure() E {
	if r.state != StateFailure {
		r.misuse("UnwrapFailure")
	}
	return r.takeFailure()
}

// UnwrapSuccessOr returns the success value or def. The result is consumed
// on both branches; a failure value is dropped.
func (r *Result[T, E]) UnwrapSuccessOr(def T) T {
	switch r.state {
	case StateSuccess:
		return r.takeSuccess()
	case StateFailure:
		r.takeFailure()
		return def
	default:
		r.misuse("UnwrapSuccessOr")
		return def
	}
}

// UnwrapSuccessOrElse returns the success value or computes one from the
// consumed failure value.
func (r *Result[T, E]) UnwrapSuccessOrElse(op func(e E) T) T {
	switch r.state {
	case StateSuccess:
		return r.takeSuccess()
	case StateFailure:
		return op(r.takeFailure())
	default:
		r.misuse("UnwrapSuccessOrElse")
		var zero T
		return zero
	}
}

// UnwrapSuccessOrDefault returns the success value or the zero T.
func (r *Result[T, E]) UnwrapSuccessOrDefault() T {
	var zero T
	return r.UnwrapSuccessOr(zero)
}

// Expect is UnwrapSuccess with msg as the diagnostic.
func (r *Result[T, E]) Expect(msg string) T {
	if r.state != StateSuccess {
		fail("Expect", r.state, r.id, msg)
	}
	return r.takeSuccess()
}

// ExpectFailure is UnwrapFailure with msg as the diagnostic.
func (r *Result[T, E]) ExpectFailure(msg string) E {
	if r.state != StateFailure {
		fail("ExpectFailure", r.state, r.id, msg)
	}
	return r.takeFailure()
}

// AsRef returns a view holding pointers into r without consuming it.
// Consuming the view moves the pointer, r keeps its value.
func AsRef[T, E any](r *Result[T, E]) Result[*T, *E] {
	switch r.state {
	case StateSuccess:
		return Result[*T, *E]{success: &r.success, state: StateSuccess, createdAt: r.createdAt, id: r.id}
	case StateFailure:
		return Result[*T, *E]{failure: &r.failure, state: StateFailure, createdAt: r.createdAt, id: r.id}
	default:
		r.misuse("AsRef")
		return Result[*T, *E]{}
	}
}
