package vedic

import "math"

const arcsecToRad = degToRad / 3600.0

// tenthMicroarcsecToRad converts a 0.1 microarcsecond amplitude to radians.
const tenthMicroarcsecToRad = arcsecToRad / 1e7

// fundamentalArgs computes the Delaunay arguments (l, l', F, D, Ω) for the
// IAU 2000A nutation model, in radians. T is Julian centuries of TDB since
// J2000.0. From IERS Conventions 2003 Eq. 5.43 (Simon et al. 1994).
func fundamentalArgs(T float64) (l, lp, F, D, om float64) {
	l = (485868.249036 + T*(1717915923.2178+T*(31.8792+T*(0.051635-T*0.00024470)))) * arcsecToRad
	lp = (1287104.79305 + T*(129596581.0481+T*(-0.5532+T*(0.000136+T*0.00001149)))) * arcsecToRad
	F = (335779.526232 + T*(1739527262.8478+T*(-12.7512+T*(-0.001037+T*0.00000417)))) * arcsecToRad
	D = (1072260.70369 + T*(1602961601.2090+T*(-6.3706+T*(0.006593-T*0.00003169)))) * arcsecToRad
	om = (450160.398036 + T*(-6962890.5431+T*(7.4722+T*(0.007702-T*0.00005939)))) * arcsecToRad
	return
}

// nutationTerm holds one row of the IAU 2000A luni-solar nutation series.
// Amplitudes are in units of 0.1 microarcseconds.
type nutationTerm struct {
	nl, nlp, nf, nd, nom int
	s, sdot, cp          float64
}

// nutationTerms is the 30 largest luni-solar terms by |s| amplitude, used
// for the truncated nutation-in-longitude correction some ayanamsha systems
// apply. Source: IERS Conventions 2003 Table 5.3a.
var nutationTerms = []nutationTerm{
	{0, 0, 0, 0, 1, -172064161, -174666, 33386},
	{0, 0, 2, -2, 2, -13170906, -1675, -13696},
	{0, 0, 2, 0, 2, -2276413, -234, 2796},
	{0, 0, 0, 0, 2, 2074554, 207, -698},
	{0, 1, 0, 0, 0, 1475877, -3633, 11817},
	{1, 0, 0, 0, 0, 711159, 73, -872},
	{0, 1, 2, -2, 2, -516821, 1226, -524},
	{0, 0, 2, 0, 1, -387298, -367, 380},
	{1, 0, 2, 0, 2, -301461, -36, 816},
	{0, -1, 2, -2, 2, 215829, -494, 111},
	{-1, 0, 0, 2, 0, 156994, 10, -168},
	{0, 0, 2, -2, 1, 128227, 137, 181},
	{-1, 0, 2, 0, 2, 123457, 11, 19},
	{0, 0, 0, 2, 0, 63384, 11, -150},
	{1, 0, 0, 0, 1, 63110, 63, 27},
	{-1, 0, 2, 2, 2, -59641, -11, 149},
	{-1, 0, 0, 0, 1, -57976, -63, -189},
	{1, 0, 2, 0, 1, -51613, -42, 129},
	{-2, 0, 0, 2, 0, -47722, 0, -18},
	{-2, 0, 2, 0, 1, 45893, 50, 31},
	{0, 0, 2, 2, 2, -38571, -1, 158},
	{0, -2, 2, -2, 2, 32481, 0, 0},
	{2, 0, 2, 0, 2, -31046, -1, 131},
	{2, 0, 0, 0, 0, 29243, 0, -74},
	{1, 0, 2, -2, 2, 28593, 0, -1},
	{0, 0, 2, 0, 0, 25887, 0, -66},
	{0, 0, -2, 2, 0, 21783, 0, 13},
	{-1, 0, 2, 0, 1, 20441, 21, 10},
	{0, 2, 0, 0, 0, 16707, -85, -10},
	{0, 2, 2, -2, 2, -15794, 72, -16},
}

// NutationInLongitudeDeg returns the truncated (30-term) nutation in
// ecliptic longitude, in degrees, at t Julian centuries of TDB since J2000.0.
func NutationInLongitudeDeg(t float64) float64 {
	l, lp, F, D, om := fundamentalArgs(t)

	var dpsi float64
	for i := range nutationTerms {
		term := &nutationTerms[i]
		arg := float64(term.nl)*l + float64(term.nlp)*lp + float64(term.nf)*F +
			float64(term.nd)*D + float64(term.nom)*om
		sinArg, cosArg := math.Sincos(arg)
		dpsi += (term.s + term.sdot*t) * sinArg
		dpsi += term.cp * cosArg
	}

	return dpsi * tenthMicroarcsecToRad * radToDeg
}
