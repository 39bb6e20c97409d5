package functor

// Nest2 fuses two layer maps into one Map over the composite container, so
// a two-layer stack can be passed wherever a single layer is expected.
func Nest2[FA, FB, GA, GB, A, B any](
	m1 Map[FA, FB, GA, GB],
	m2 Map[GA, GB, A, B]) Map[FA, FB, A, B] {

	return func(f func(A) B, v FA) FB {
		return Fmap2(m1, m2, f, v)
	}
}

func Nest3[FA, FB, GA, GB, HA, HB, A, B any](
	m1 Map[FA, FB, GA, GB],
	m2 Map[GA, GB, HA, HB],
	m3 Map[HA, HB, A, B]) Map[FA, FB, A, B] {

	return Nest2(m1, Nest2(m2, m3))
}

func Nest4[FA, FB, GA, GB, HA, HB, KA, KB, A, B any](
	m1 Map[FA, FB, GA, GB],
	m2 Map[GA, GB, HA, HB],
	m3 Map[HA, HB, KA, KB],
	m4 Map[KA, KB, A, B]) Map[FA, FB, A, B] {

	return Nest2(m1, Nest3(m2, m3, m4))
}

func Nest5[FA, FB, GA, GB, HA, HB, KA, KB, MA, MB, A, B any](
	m1 Map[FA, FB, GA, GB],
	m2 Map[GA, GB, HA, HB],
	m3 Map[HA, HB, KA, KB],
	m4 Map[KA, KB, MA, MB],
	m5 Map[MA, MB, A, B]) Map[FA, FB, A, B] {

	return Nest2(m1, Nest4(m2, m3, m4, m5))
}
