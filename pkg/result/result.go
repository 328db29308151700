package result

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
)

// NoSuccess marks the success side of a result built by Failure.
type NoSuccess struct{}

// NoFailure marks the failure side of a result built by Success.
type NoFailure struct{}

type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	success   T
	failure   E
	state     State
}

// Success builds a result whose failure type is not known yet.
// Convert it with FromSuccess once E is known.
func Success[T any](v T) Result[T, NoFailure] {
	return Ok[T, NoFailure](v)
}

// Failure builds a result whose success type is not known yet.
// Convert it with FromFailure once T is known.
func Failure[E any](e E) Result[NoSuccess, E] {
	return Err[NoSuccess, E](e)
}

func Ok[T, E any](v T) Result[T, E] {
	guardParams[T, E]("Ok")
	if isMarker[T, NoSuccess]() {
		fail("Ok", StateEmpty, uuid.Nil, "Ok cannot carry a NoSuccess value")
	}
	return Result[T, E]{
		success:   v,
		state:     StateSuccess,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T, E any](e E) Result[T, E] {
	guardParams[T, E]("Err")
	if isMarker[E, NoFailure]() {
		fail("Err", StateEmpty, uuid.Nil, "Err cannot carry a NoFailure value")
	}
	return Result[T, E]{
		failure:   e,
		state:     StateFailure,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromSuccess gives a result built by Success its failure type.
// The source must hold a live success value.
func FromSuccess[E, T any](from Result[T, NoFailure]) Result[T, E] {
	guardParams[T, E]("FromSuccess")
	if from.state != StateSuccess {
		from.misuse("FromSuccess")
	}
	return Result[T, E]{
		success:   from.success,
		state:     StateSuccess,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// FromFailure gives a result built by Failure its success type.
// The source must hold a live failure value.
func FromFailure[T, E any](from Result[NoSuccess, E]) Result[T, E] {
	guardParams[T, E]("FromFailure")
	if from.state != StateFailure {
		from.misuse("FromFailure")
	}
	return Result[T, E]{
		failure:   from.failure,
		state:     StateFailure,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Propagate consumes a failed result and returns its failure value re-typed
// to the success type T, keeping id and creation time:
//
//	r := parse(s)
//	if r.IsFailure() {
//		return result.Propagate[Config](&r)
//	}
//	v := r.UnwrapSuccess()
func Propagate[T, U, E any](from *Result[U, E]) Result[T, E] {
	guardParams[T, E]("Propagate")
	if from.state != StateFailure {
		from.misuse("Propagate")
	}
	return Result[T, E]{
		failure:   from.takeFailure(),
		state:     StateFailure,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// PropagateSuccess consumes a successful result and returns its success
// value re-typed to the failure type F, keeping id and creation time.
func PropagateSuccess[F, T, E any](from *Result[T, E]) Result[T, F] {
	guardParams[T, F]("PropagateSuccess")
	if from.state != StateSuccess {
		from.misuse("PropagateSuccess")
	}
	return Result[T, F]{
		success:   from.takeSuccess(),
		state:     StateSuccess,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// IsSuccess reports whether the result holds, or held before it was
// consumed, a success value.
func (r Result[T, E]) IsSuccess() bool {
	return r.state == StateSuccess || r.state == StateConsumedSuccess
}

// IsFailure reports whether the result holds, or held before it was
// consumed, a failure value.
func (r Result[T, E]) IsFailure() bool {
	return r.state == StateFailure || r.state == StateConsumedFailure
}

func (r Result[T, E]) IsConsumed() bool {
	return r.state.IsConsumed()
}

func (r Result[T, E]) IsEmpty() bool {
	return r.state == StateEmpty
}

func (r Result[T, E]) State() State {
	return r.state
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

func (r Result[T, E]) String() string {
	switch r.state {
	case StateSuccess:
		return fmt.Sprintf("success(%v)", r.success)
	case StateFailure:
		return fmt.Sprintf("failure(%v)", r.failure)
	default:
		return r.state.String()
	}
}

// Clone copies a live result under a new id. Cloning a consumed result
// is a misuse.
func (r Result[T, E]) Clone() Result[T, E] {
	if !r.state.Live() {
		r.misuse("Clone")
	}
	return Result[T, E]{
		success:   r.success,
		failure:   r.failure,
		state:     r.state,
		createdAt: r.createdAt,
		id:        uuid.New(),
	}
}

// equalOptions let cmp.Equal handle any payload: errors match through
// errors.Is, unexported struct fields are compared like exported ones.
var equalOptions = []cmp.Option{
	cmpopts.EquateErrors(),
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// Equal reports whether both results hold the same side with equal values.
// Values are compared with cmp.Equal; opts are added after the defaults.
// Comparing a consumed or empty result is a misuse.
func (r Result[T, E]) Equal(other Result[T, E], opts ...cmp.Option) bool {
	if !r.state.Live() {
		r.misuse("Equal")
	}
	if !other.state.Live() {
		other.misuse("Equal")
	}
	if r.state != other.state {
		return false
	}
	all := make([]cmp.Option, 0, len(equalOptions)+len(opts))
	all = append(append(all, equalOptions...), opts...)
	if r.state == StateSuccess {
		return cmp.Equal(r.success, other.success, all...)
	}
	return cmp.Equal(r.failure, other.failure, all...)
}

func (r *Result[T, E]) takeSuccess() T {
	v := r.success
	var zero T
	r.success = zero
	r.state = StateConsumedSuccess
	return v
}

func (r *Result[T, E]) takeFailure() E {
	e := r.failure
	var zero E
	r.failure = zero
	r.state = StateConsumedFailure
	return e
}
