package functor

// Fmap2 applies f to every value two layers deep. Operator form: <$$>
// (infixl 4).
func Fmap2[FA, FB, GA, GB, A, B any](
	m1 Map[FA, FB, GA, GB],
	m2 Map[GA, GB, A, B],
	f func(A) B, v FA) FB {

	return m1(Lift(m2, f), v)
}

// Fconst2 replaces every value two layers deep with b. Operator form: <$$
// (infixl 4).
func Fconst2[FA, FB, GA, GB, A, B any](
	m1 Map[FA, FB, GA, GB],
	m2 Map[GA, GB, A, B],
	b B, v FA) FB {

	return m1(func(ga GA) GB { return Fconst(m2, b, ga) }, v)
}

// FconstFlip2 is Fconst2 with the container first. Operator form: $$>
// (infixl 4).
func FconstFlip2[FA, FB, GA, GB, A, B any](
	m1 Map[FA, FB, GA, GB],
	m2 Map[GA, GB, A, B],
	v FA, b B) FB {

	return Fconst2(m1, m2, b, v)
}

// Ffor2 is Fmap2 with the container first. Operator form: <&&> (infixl 1).
func Ffor2[FA, FB, GA, GB, A, B any](
	m1 Map[FA, FB, GA, GB],
	m2 Map[GA, GB, A, B],
	v FA, f func(A) B) FB {

	return Fmap2(m1, m2, f, v)
}

// Void2 replaces every value two layers deep with Unit.
func Void2[FA, FU, GA, GU, A any](
	m1 Map[FA, FU, GA, GU],
	m2 Map[GA, GU, A, Unit],
	v FA) FU {

	return m1(func(ga GA) GU { return Void(m2, ga) }, v)
}
