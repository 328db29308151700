package result

import "github.com/google/uuid"

// isMarker reports whether type parameter V is the marker type M.
func isMarker[V, M any]() bool {
	var v V
	_, ok := any(v).(M)
	return ok
}

// guardParams rejects results whose success side is typed NoFailure or
// whose failure side is typed NoSuccess.
func guardParams[T, E any](op string) {
	if isMarker[T, NoFailure]() {
		fail(op, StateEmpty, uuid.Nil, "success type cannot be result.NoFailure")
	}
	if isMarker[E, NoSuccess]() {
		fail(op, StateEmpty, uuid.Nil, "failure type cannot be result.NoSuccess")
	}
}
