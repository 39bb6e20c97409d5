// Package option provides an optional value and its layer map.
package option

import "github.com/ib-77/deepmap/pkg/functor"

// Option holds either one value (Some) or nothing (None).
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// UnwrapOr returns the contained value or def when empty.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// Map applies f to the contained value if present. None stays None.
func Map[A, B any](f func(A) B, o Option[A]) Option[B] {
	if o.some {
		return Some(f(o.value))
	}
	return None[B]()
}

// Layer returns Map as a functor.Map.
func Layer[A, B any]() functor.Map[Option[A], Option[B], A, B] {
	return Map[A, B]
}
