package solo

import (
	"github.com/ib-77/result/pkg/result"
)

func Succeed[T, E any](v T) result.Result[T, E] {
	return result.Ok[T, E](v)
}

func Fail[T, E any](e E) result.Result[T, E] {
	return result.Err[T, E](e)
}

// Map applies onSuccess to a success value; a failure passes through
// unchanged.
func Map[T, U, E any](input *result.Result[T, E], onSuccess func(r T) U) result.Result[U, E] {
	if input.IsSuccess() {
		return result.Ok[U, E](onSuccess(input.UnwrapSuccess()))
	}
	return result.Propagate[U](input)
}

// MapFailure applies onFailure to a failure value; a success passes through
// unchanged.
func MapFailure[T, E, F any](input *result.Result[T, E], onFailure func(e E) F) result.Result[T, F] {
	if input.IsFailure() {
		return result.Err[T, F](onFailure(input.UnwrapFailure()))
	}
	return result.PropagateSuccess[F](input)
}

func Switch[T, U, E any](input *result.Result[T, E], onSuccess func(r T) result.Result[U, E]) result.Result[U, E] {
	if input.IsSuccess() {
		return onSuccess(input.UnwrapSuccess())
	}
	return result.Propagate[U](input)
}

func SwitchFailure[T, E, F any](input *result.Result[T, E], onFailure func(e E) result.Result[T, F]) result.Result[T, F] {
	if input.IsFailure() {
		return onFailure(input.UnwrapFailure())
	}
	return result.PropagateSuccess[F](input)
}

// Match calls exactly one of the handlers with the consumed value.
func Match[T, E, R any](input *result.Result[T, E],
	onSuccess func(r T) R,
	onFailure func(e E) R) R {

	if input.IsSuccess() {
		return onSuccess(input.UnwrapSuccess())
	}
	return onFailure(input.UnwrapFailure())
}

// AndThen returns next when input is a success, dropping input's value.
// next is already evaluated by the caller; use AndThenWith to defer it.
func AndThen[T, U, E any](input *result.Result[T, E], next result.Result[U, E]) result.Result[U, E] {
	if input.IsSuccess() {
		input.UnwrapSuccess()
		return next
	}
	return result.Propagate[U](input)
}

// AndThenWith calls next only when input is a success.
func AndThenWith[T, U, E any](input *result.Result[T, E], next func() result.Result[U, E]) result.Result[U, E] {
	if input.IsSuccess() {
		input.UnwrapSuccess()
		return next()
	}
	return result.Propagate[U](input)
}

// OrElse returns alternative when input is a failure, dropping input's
// failure value.
func OrElse[T, E, F any](input *result.Result[T, E], alternative result.Result[T, F]) result.Result[T, F] {
	if input.IsFailure() {
		input.UnwrapFailure()
		return alternative
	}
	return result.PropagateSuccess[F](input)
}

// OrElseWith calls alternative only when input is a failure.
func OrElseWith[T, E, F any](input *result.Result[T, E], alternative func() result.Result[T, F]) result.Result[T, F] {
	if input.IsFailure() {
		input.UnwrapFailure()
		return alternative()
	}
	return result.PropagateSuccess[F](input)
}

func Try[T, U any](input *result.Result[T, error],
	onTryExecute func(r T) (U, error)) result.Result[U, error] {

	if input.IsSuccess() {
		out, err := onTryExecute(input.UnwrapSuccess())
		if err != nil {
			return result.Err[U](err)
		}
		return result.Ok[U, error](out)
	}
	return result.Propagate[U](input)
}

// Validate keeps a success when validate accepts it and replaces it with
// the returned failure value otherwise.
func Validate[T, E any](input *result.Result[T, E],
	validate func(in T) (valid bool, failure E)) result.Result[T, E] {

	if input.IsSuccess() {
		v := input.UnwrapSuccess()
		if valid, failure := validate(v); !valid {
			return result.Err[T](failure)
		}
		return result.Ok[T, E](v)
	}
	return result.Propagate[T](input)
}

// Tee runs onSuccess on a copy of the success value. input is not consumed.
func Tee[T, E any](input *result.Result[T, E], onSuccess func(r T)) *result.Result[T, E] {
	if view := result.AsRef(input); view.IsSuccess() {
		onSuccess(*view.UnwrapSuccess())
	}
	return input
}

func DoubleTee[T, E any](input *result.Result[T, E],
	onSuccess func(r T),
	onFailure func(e E)) *result.Result[T, E] {

	view := result.AsRef(input)
	if view.IsSuccess() {
		onSuccess(*view.UnwrapSuccess())
	} else {
		onFailure(*view.UnwrapFailure())
	}
	return input
}

func Flatten[T, E any](input *result.Result[result.Result[T, E], E]) result.Result[T, E] {
	if input.IsSuccess() {
		return input.UnwrapSuccess()
	}
	return result.Propagate[T](input)
}

// Collect gathers every success value in order. The first failure is
// returned instead; inputs after it are left untouched.
func Collect[T, E any](inputs ...*result.Result[T, E]) result.Result[[]T, E] {
	values := make([]T, 0, len(inputs))
	for _, in := range inputs {
		if in.IsFailure() {
			return result.Propagate[[]T](in)
		}
		values = append(values, in.UnwrapSuccess())
	}
	return result.Ok[[]T, E](values)
}

// First returns the first success. When every input failed the last
// failure is returned.
func First[T, E any](input *result.Result[T, E], rest ...*result.Result[T, E]) result.Result[T, E] {
	candidates := make([]*result.Result[T, E], 0, len(rest)+1)
	candidates = append(candidates, input)
	candidates = append(candidates, rest...)

	last := candidates[len(candidates)-1]
	for _, c := range candidates[:len(candidates)-1] {
		if c.IsSuccess() {
			return result.Ok[T, E](c.UnwrapSuccess())
		}
		c.UnwrapFailure()
	}
	if last.IsSuccess() {
		return result.Ok[T, E](last.UnwrapSuccess())
	}
	return result.Propagate[T](last)
}

// AllSuccess reports whether every outcome is a success. Nothing is
// consumed, so results of different types can be checked together.
func AllSuccess(outcomes ...result.Outcome) bool {
	for _, o := range outcomes {
		if !o.IsSuccess() {
			return false
		}
	}
	return true
}

func AnyFailure(outcomes ...result.Outcome) bool {
	for _, o := range outcomes {
		if o.IsFailure() {
			return true
		}
	}
	return false
}
