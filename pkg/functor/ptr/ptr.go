// Package ptr treats a pointer as a zero-or-one container.
package ptr

import "github.com/ib-77/deepmap/pkg/functor"

// Map applies f to the pointed-to value and returns a pointer to a new
// value. A nil pointer maps to nil. The input is never modified.
func Map[A, B any](f func(A) B, p *A) *B {
	if p == nil {
		return nil
	}

	out := f(*p)
	return &out
}

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// Layer returns Map as a functor.Map.
func Layer[A, B any]() functor.Map[*A, *B, A, B] {
	return Map[A, B]
}
