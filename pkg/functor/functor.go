package functor

// Map is the structure-preserving map of a single container layer: FA holds
// values of type A and the result FB holds f applied to each of them, in the
// same positions.
//
// Implementations must obey two laws:
//   - identity: m(Identity[A], fa) == fa
//   - composition: m(Compose(f, g), fa) == m(g, m(f, fa))
type Map[FA, FB, A, B any] func(f func(A) B, fa FA) FB

// Unit is the informationless value Void leaves behind.
type Unit = struct{}

// Lift partially applies m to f, turning a value function into a container
// function.
func Lift[FA, FB, A, B any](m Map[FA, FB, A, B], f func(A) B) func(FA) FB {
	return func(fa FA) FB {
		return m(f, fa)
	}
}

// Identity returns v unchanged.
func Identity[T any](v T) T {
	return v
}

// Const returns a function that ignores its argument and returns v.
func Const[A, B any](v B) func(A) B {
	return func(_ A) B {
		return v
	}
}

// Compose is left to right composition: Compose(f, g)(x) == g(f(x)).
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}
