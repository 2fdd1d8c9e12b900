// Package chebyshev evaluates Chebyshev polynomial series and their first
// derivatives at a normalized argument in [-1, 1], the representation SPK
// binary ephemeris records use to encode position (and, for Type 2
// segments, implicitly velocity) over a Chebyshev interval.
package chebyshev

// Eval evaluates Σ c[k]·T_k(s) via the Clenshaw backward recurrence.
//
// An empty coefficient slice evaluates to 0; a single coefficient
// evaluates to c[0] regardless of s.
func Eval(c []float64, s float64) float64 {
	n := len(c)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return c[0]
	}

	s2 := 2.0 * s
	bk1, bk2 := c[n-1], 0.0
	for k := n - 2; k >= 1; k-- {
		bk1, bk2 = c[k]+s2*bk1-bk2, bk1
	}
	return c[0] + s*bk1 - bk2
}

// Deriv evaluates Σ c[k]·T_k'(s), the derivative with respect to s, via a
// forward recurrence that tracks T_k(s) and T_k'(s) simultaneously. This is
// the form used directly by SPK readers to recover velocity from a Type 2
// position-only segment (the caller then applies the chain-rule scale
// factor to convert from per-normalized-time to per-second).
//
// A coefficient slice of length 0 or 1 has zero derivative.
func Deriv(c []float64, s float64) float64 {
	n := len(c)
	if n < 2 {
		return 0
	}

	// T_0 = 1, T_0' = 0
	// T_1 = s, T_1' = 1
	tPrev, tCur := 1.0, s
	dtPrev, dtCur := 0.0, 1.0

	deriv := c[1] * dtCur
	for k := 2; k < n; k++ {
		t := 2*s*tCur - tPrev
		dt := 2*tCur + 2*s*dtCur - dtPrev
		deriv += c[k] * dt
		tPrev, tCur = tCur, t
		dtPrev, dtCur = dtCur, dt
	}
	return deriv
}
