package functor

// Fmap4 applies f to every value four layers deep. Operator form: <$$$$>
// (infixl 4).
func Fmap4[FA, FB, GA, GB, HA, HB, KA, KB, A, B any](
	m1 Map[FA, FB, GA, GB],
	m2 Map[GA, GB, HA, HB],
	m3 Map[HA, HB, KA, KB],
	m4 Map[KA, KB, A, B],
	f func(A) B, v FA) FB {

	return m1(func(ga GA) GB { return Fmap3(m2, m3, m4, f, ga) }, v)
}

// Fconst4 replaces every value four layers deep with b. Operator form: <$$$$
// (infixl 4).
func Fconst4[FA, FB, GA, GB, HA, HB, KA, KB, A, B any](
	m1 Map[FA, FB, GA, GB],
	m2 Map[GA, GB, HA, HB],
	m3 Map[HA, HB, KA, KB],
	m4 Map[KA, KB, A, B],
	b B, v FA) FB {

	return m1(func(ga GA) GB { return Fconst3(m2, m3, m4, b, ga) }, v)
}

// FconstFlip4 is Fconst4 with the container first. Operator form: $$$$>
// (infixl 4).
func FconstFlip4[FA, FB, GA, GB, HA, HB, KA, KB, A, B any](
	m1 Map[FA, FB, GA, GB],
	m2 Map[GA, GB, HA, HB],
	m3 Map[HA, HB, KA, KB],
	m4 Map[KA, KB, A, B],
	v FA, b B) FB {

	return Fconst4(m1, m2, m3, m4, b, v)
}

// Ffor4 is Fmap4 with the container first. Operator form: <&&&&> (infixl 1).
func Ffor4[FA, FB, GA, GB, HA, HB, KA, KB, A, B any](
	m1 Map[FA, FB, GA, GB],
	m2 Map[GA, GB, HA, HB],
	m3 Map[HA, HB, KA, KB],
	m4 Map[KA, KB, A, B],
	v FA, f func(A) B) FB {

	return Fmap4(m1, m2, m3, m4, f, v)
}

// Void4 replaces every value four layers deep with Unit.
func Void4[FA, FU, GA, GU, HA, HU, KA, KU, A any](
	m1 Map[FA, FU, GA, GU],
	m2 Map[GA, GU, HA, HU],
	m3 Map[HA, HU, KA, KU],
	m4 Map[KA, KU, A, Unit],
	v FA) FU {

	return m1(func(ga GA) GU { return Void3(m2, m3, m4, ga) }, v)
}
