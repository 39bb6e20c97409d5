package functor

// Fmap3 applies f to every value three layers deep. Operator form: <$$$>
// (infixl 4).
func Fmap3[FA, FB, GA, GB, HA, HB, A, B any](
	m1 Map[FA, FB, GA, GB],
	m2 Map[GA, GB, HA, HB],
	m3 Map[HA, HB, A, B],
	f func(A) B, v FA) FB {

	return m1(func(ga GA) GB { return Fmap2(m2, m3, f, ga) }, v)
}

// Fconst3 replaces every value three layers deep with b. Operator form: <$$$
// (infixl 4).
func Fconst3[FA, FB, GA, GB, HA, HB, A, B any](
	m1 Map[FA, FB, GA, GB],
	m2 Map[GA, GB, HA, HB],
	m3 Map[HA, HB, A, B],
	b B, v FA) FB {

	return m1(func(ga GA) GB { return Fconst2(m2, m3, b, ga) }, v)
}

// FconstFlip3 is Fconst3 with the container first. Operator form: $$$>
// (infixl 4).
func FconstFlip3[FA, FB, GA, GB, HA, HB, A, B any](
	m1 Map[FA, FB, GA, GB],
	m2 Map[GA, GB, HA, HB],
	m3 Map[HA, HB, A, B],
	v FA, b B) FB {

	return Fconst3(m1, m2, m3, b, v)
}

// Ffor3 is Fmap3 with the container first. Operator form: <&&&> (infixl 1).
func Ffor3[FA, FB, GA, GB, HA, HB, A, B any](
	m1 Map[FA, FB, GA, GB],
	m2 Map[GA, GB, HA, HB],
	m3 Map[HA, HB, A, B],
	v FA, f func(A) B) FB {

	return Fmap3(m1, m2, m3, f, v)
}

// Void3 replaces every value three layers deep with Unit.
func Void3[FA, FU, GA, GU, HA, HU, A any](
	m1 Map[FA, FU, GA, GU],
	m2 Map[GA, GU, HA, HU],
	m3 Map[HA, HU, A, Unit],
	v FA) FU {

	return m1(func(ga GA) GU { return Void2(m2, m3, ga) }, v)
}
