package chain

import (
	"github.com/ib-77/result/pkg/result"
	"github.com/ib-77/result/pkg/result/solo"
)

// Chain wraps a result.Result to enable fluent chaining
type Chain[T, E any] struct {
	result result.Result[T, E]
}

// Start creates a new chain from a result.Result
func Start[T, E any](r result.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{result: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](value T) *Chain[T, E] {
	return &Chain[T, E]{result: result.Ok[T, E](value)}
}

func FromFailure[T, E any](failure E) *Chain[T, E] {
	return &Chain[T, E]{result: result.Err[T](failure)}
}

// Result returns the underlying result.Result
func (c *Chain[T, E]) Result() result.Result[T, E] {
	return c.result
}

func (c *Chain[T, E]) State() result.State {
	return c.result.State()
}

// Then chains a function that returns result.Result[U, E]
func Then[T, U, E any](c *Chain[T, E], onSuccess func(T) result.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{result: solo.Switch(&c.result, onSuccess)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T, error], tryOnSuccess func(T) (U, error)) *Chain[U, error] {
	return &Chain[U, error]{result: solo.Try(&c.result, tryOnSuccess)}
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onSuccess func(T) U) *Chain[U, E] {
	return &Chain[U, E]{result: solo.Map(&c.result, onSuccess)}
}

func MapFailure[T, E, F any](c *Chain[T, E], onFailure func(E) F) *Chain[T, F] {
	return &Chain[T, F]{result: solo.MapFailure(&c.result, onFailure)}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, E]) Ensure(onSuccess func(T)) *Chain[T, E] {
	solo.Tee(&c.result, onSuccess)
	return c
}

// Recover replaces a failure with the result of onFailure
func (c *Chain[T, E]) Recover(onFailure func(E) result.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{result: solo.SwitchFailure(&c.result, onFailure)}
}

// Finally collapses the chain into a final value using solo.Match
func Finally[T, E, R any](c *Chain[T, E], onSuccess func(T) R, onFailure func(E) R) R {
	return solo.Match(&c.result, onSuccess, onFailure)
}

// Or keeps the first successful chain; if both failed, alternative's
// failure wins. c is consumed; alternative only when c failed.
func (c *Chain[T, E]) Or(alternative *Chain[T, E]) *Chain[T, E] {
	return &Chain[T, E]{result: solo.First(&c.result, &alternative.result)}
}

// And returns required when c succeeded, otherwise c's failure.
func (c *Chain[T, E]) And(required *Chain[T, E]) *Chain[T, E] {
	return &Chain[T, E]{result: solo.AndThen(&c.result, required.result)}
}
