package functor

// Fmap5 applies f to every value five layers deep. Operator form: <$$$$$>
// (infixl 4).
func Fmap5[FA, FB, GA, GB, HA, HB, KA, KB, MA, MB, A, B any](
	m1 Map[FA, FB, GA, GB],
	m2 Map[GA, GB, HA, HB],
	m3 Map[HA, HB, KA, KB],
	m4 Map[KA, KB, MA, MB],
	m5 Map[MA, MB, A, B],
	f func(A) B, v FA) FB {

	return m1(func(ga GA) GB { return Fmap4(m2, m3, m4, m5, f, ga) }, v)
}

// Fconst5 replaces every value five layers deep with b. Operator form:
// <$$$$$ (infixl 4).
func Fconst5[FA, FB, GA, GB, HA, HB, KA, KB, MA, MB, A, B any](
	m1 Map[FA, FB, GA, GB],
	m2 Map[GA, GB, HA, HB],
	m3 Map[HA, HB, KA, KB],
	m4 Map[KA, KB, MA, MB],
	m5 Map[MA, MB, A, B],
	b B, v FA) FB {

	return m1(func(ga GA) GB { return Fconst4(m2, m3, m4, m5, b, ga) }, v)
}

// FconstFlip5 is Fconst5 with the container first. Operator form: $$$$$>
// (infixl 4).
func FconstFlip5[FA, FB, GA, GB, HA, HB, KA, KB, MA, MB, A, B any](
	m1 Map[FA, FB, GA, GB],
	m2 Map[GA, GB, HA, HB],
	m3 Map[HA, HB, KA, KB],
	m4 Map[KA, KB, MA, MB],
	m5 Map[MA, MB, A, B],
	v FA, b B) FB {

	return Fconst5(m1, m2, m3, m4, m5, b, v)
}

// Ffor5 is Fmap5 with the container first. Operator form: <&&&&&>
// (infixl 1).
func Ffor5[FA, FB, GA, GB, HA, HB, KA, KB, MA, MB, A, B any](
	m1 Map[FA, FB, GA, GB],
	m2 Map[GA, GB, HA, HB],
	m3 Map[HA, HB, KA, KB],
	m4 Map[KA, KB, MA, MB],
	m5 Map[MA, MB, A, B],
	v FA, f func(A) B) FB {

	return Fmap5(m1, m2, m3, m4, m5, f, v)
}

// Void5 replaces every value five layers deep with Unit.
func Void5[FA, FU, GA, GU, HA, HU, KA, KU, MA, MU, A any](
	m1 Map[FA, FU, GA, GU],
	m2 Map[GA, GU, HA, HU],
	m3 Map[HA, HU, KA, KU],
	m4 Map[KA, KU, MA, MU],
	m5 Map[MA, MU, A, Unit],
	v FA) FU {

	return m1(func(ga GA) GU { return Void4(m2, m3, m4, m5, ga) }, v)
}
