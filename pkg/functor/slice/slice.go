// Package slice provides the layer map for Go slices.
package slice

import "github.com/ib-77/deepmap/pkg/functor"

// Map applies f to every element of xs. The result has the same length and
// order; a nil slice maps to a nil slice.
func Map[A, B any](f func(A) B, xs []A) []B {
	if xs == nil {
		return nil
	}

	out := make([]B, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// Layer returns Map as a functor.Map.
func Layer[A, B any]() functor.Map[[]A, []B, A, B] {
	return Map[A, B]
}
