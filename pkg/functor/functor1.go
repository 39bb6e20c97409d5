package functor

// Fmap applies f to every value held by fa.
func Fmap[FA, FB, A, B any](m Map[FA, FB, A, B], f func(A) B, fa FA) FB {
	return m(f, fa)
}

// Fconst replaces every value held by fa with b.
func Fconst[FA, FB, A, B any](m Map[FA, FB, A, B], b B, fa FA) FB {
	return m(Const[A](b), fa)
}

// FconstFlip is Fconst with the container first.
func FconstFlip[FA, FB, A, B any](m Map[FA, FB, A, B], fa FA, b B) FB {
	return Fconst(m, b, fa)
}

// Ffor is Fmap with the container first.
func Ffor[FA, FB, A, B any](m Map[FA, FB, A, B], fa FA, f func(A) B) FB {
	return m(f, fa)
}

// Void replaces every value held by fa with Unit.
func Void[FA, FU, A any](m Map[FA, FU, A, Unit], fa FA) FU {
	return Fconst(m, Unit{}, fa)
}
