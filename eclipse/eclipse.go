// Package eclipse provides lunar and solar eclipse (grahan) detection and
// characterization.
//
// It finds times when the Moon enters Earth's shadow (Chandra Grahan), and
// times when the Moon's disc occults the Sun as seen from Earth's center
// (Surya Grahan), classifying each by the standard geometric types. Uses the
// Danjon enlargement correction (2% atmospheric enlargement of Earth's
// shadow) for lunar eclipses. Both searches are geometric: positions are
// taken directly from the engine with no light-time correction, consistent
// with the rest of this module.
package eclipse

import (
	"math"

	"github.com/anupshinde/vediceph/engine"
	"github.com/anupshinde/vediceph/frames"
	"github.com/anupshinde/vediceph/search"
	"github.com/anupshinde/vediceph/spk"
)

const (
	// Lunar eclipse kinds, returned in LunarEclipse.Kind.
	Penumbral = 1 // Moon enters penumbra only
	Partial   = 2 // Moon partially enters umbra
	Total     = 3 // Moon fully within umbra

	// Solar eclipse kinds, returned in SolarEclipse.Kind.
	SolarPartial = 1 // Moon's disc partially covers the Sun's
	SolarAnnular = 2 // Moon's disc smaller than the Sun's, centrally aligned
	SolarTotal   = 3 // Moon's disc fully covers the Sun's

	// Physical constants.
	sunRadiusKm   = 695700.0
	earthRadiusKm = 6371.0
	moonRadiusKm  = 1737.4

	// Danjon enlargement factor: atmospheric refraction enlarges
	// Earth's shadow by ~2%.
	danjonFactor = 1.02
)

// LunarEclipse describes a lunar eclipse (Chandra Grahan) event.
type LunarEclipse struct {
	// T is the TDB Julian date of maximum eclipse (closest approach of
	// Moon center to shadow axis).
	T float64

	// Kind is the eclipse type: Penumbral (1), Partial (2), or Total (3).
	Kind int

	// UmbralMag is the umbral magnitude: fraction of Moon's diameter
	// immersed in the umbral shadow. Negative means Moon does not reach umbra.
	UmbralMag float64

	// PenumbralMag is the penumbral magnitude: fraction of Moon's diameter
	// immersed in the penumbral shadow.
	PenumbralMag float64

	// ClosestApproachKm is the minimum distance from Moon center to the
	// shadow axis, in km.
	ClosestApproachKm float64

	// UmbralRadiusKm is the umbral shadow radius at the Moon's distance, in km.
	// Includes Danjon enlargement.
	UmbralRadiusKm float64

	// PenumbralRadiusKm is the penumbral shadow radius at the Moon's distance, in km.
	// Includes Danjon enlargement.
	PenumbralRadiusKm float64
}

// SolarEclipse describes a solar eclipse (Surya Grahan) event, as seen
// geocentrically (no observer location or parallax is applied).
type SolarEclipse struct {
	// T is the TDB Julian date of minimum Sun-Moon angular separation.
	T float64

	// Kind is the eclipse type: SolarPartial (1), SolarAnnular (2), or
	// SolarTotal (3).
	Kind int

	// Magnitude is the fraction of the Sun's diameter covered by the Moon's
	// disc at closest alignment.
	Magnitude float64

	// ClosestApproachKm is the minimum Sun-Moon angular separation,
	// expressed as a linear distance at the Sun's geocentric range, in km.
	ClosestApproachKm float64
}

// FindLunarEclipses finds all lunar eclipses in the given TDB Julian date
// range.
//
// The algorithm:
//  1. Bracket full-moon-adjacent epochs via the generic lunar-phase discrete
//     search.
//  2. Refine each bracket to the exact time of minimum Moon-shadow separation
//     via FindMinima.
//  3. Compute shadow geometry at the refined minimum and classify.
//
// Returns eclipses sorted by time. Only events where the Moon at least
// partially enters the penumbra are returned.
func FindLunarEclipses(eng *engine.Engine, startJD, endJD float64) ([]LunarEclipse, error) {
	phases, err := search.FindMoonPhases(eng, startJD, endJD)
	if err != nil {
		return nil, err
	}

	sepFunc := func(tdbJD float64) float64 {
		sep, err := moonShadowSeparation(eng, tdbJD)
		if err != nil {
			return math.Inf(1)
		}
		return sep
	}

	var eclipses []LunarEclipse
	for _, ph := range phases {
		if ph.NewValue != search.FullMoon {
			continue
		}
		window := 1.5 // days, around each full moon
		minima, err := search.FindMinima(ph.TDBJD-window, ph.TDBJD+window, 0.02, sepFunc, 0)
		if err != nil || len(minima) == 0 {
			continue
		}

		best := minima[0]
		for _, m := range minima[1:] {
			if math.Abs(m.TDBJD-ph.TDBJD) < math.Abs(best.TDBJD-ph.TDBJD) {
				best = m
			}
		}

		ecl, err := classifyLunarEclipse(eng, best.TDBJD)
		if err != nil {
			continue
		}
		if ecl.Kind > 0 {
			eclipses = append(eclipses, ecl)
		}
	}

	return eclipses, nil
}

// FindSolarEclipses finds all solar eclipses in the given TDB Julian date
// range, using the new-moon-adjacent analogue of FindLunarEclipses: Sun-Moon
// angular separation as seen from Earth's center, with no parallax or
// observer-location correction.
func FindSolarEclipses(eng *engine.Engine, startJD, endJD float64) ([]SolarEclipse, error) {
	phases, err := search.FindMoonPhases(eng, startJD, endJD)
	if err != nil {
		return nil, err
	}

	sepFunc := func(tdbJD float64) float64 {
		sep, err := sunMoonSeparationDeg(eng, tdbJD)
		if err != nil {
			return math.Inf(1)
		}
		return sep
	}

	var eclipses []SolarEclipse
	for _, ph := range phases {
		if ph.NewValue != search.NewMoon {
			continue
		}
		window := 1.0
		minima, err := search.FindMinima(ph.TDBJD-window, ph.TDBJD+window, 0.02, sepFunc, 0)
		if err != nil || len(minima) == 0 {
			continue
		}

		best := minima[0]
		for _, m := range minima[1:] {
			if math.Abs(m.TDBJD-ph.TDBJD) < math.Abs(best.TDBJD-ph.TDBJD) {
				best = m
			}
		}

		ecl, err := classifySolarEclipse(eng, best.TDBJD)
		if err != nil {
			continue
		}
		if ecl.Kind > 0 {
			eclipses = append(eclipses, ecl)
		}
	}

	return eclipses, nil
}

// geocentricVector returns the position of body relative to Earth, in the
// engine's native ICRF frame, at tdbJD.
func geocentricVector(eng *engine.Engine, body int, tdbJD float64) ([3]float64, error) {
	state, err := eng.Query(body, spk.Earth, tdbJD, engine.ICRF)
	if err != nil {
		return [3]float64{}, err
	}
	return state.PositionKm, nil
}

// shadowAxis returns the unit vector from Earth away from the Sun, i.e. the
// direction along which Earth's shadow extends, along with the Sun's
// geocentric distance in km.
func shadowAxis(sunPos [3]float64) ([3]float64, float64) {
	sunDist := math.Sqrt(sunPos[0]*sunPos[0] + sunPos[1]*sunPos[1] + sunPos[2]*sunPos[2])
	return [3]float64{-sunPos[0] / sunDist, -sunPos[1] / sunDist, -sunPos[2] / sunDist}, sunDist
}

// moonShadowSeparation returns the perpendicular distance (km) from the
// Moon's center to Earth's shadow axis at the given time.
func moonShadowSeparation(eng *engine.Engine, tdbJD float64) (float64, error) {
	sunPos, err := geocentricVector(eng, spk.Sun, tdbJD)
	if err != nil {
		return 0, err
	}
	moonPos, err := geocentricVector(eng, spk.Moon, tdbJD)
	if err != nil {
		return 0, err
	}

	axis, _ := shadowAxis(sunPos)
	dAlong := moonPos[0]*axis[0] + moonPos[1]*axis[1] + moonPos[2]*axis[2]
	perpX := moonPos[0] - dAlong*axis[0]
	perpY := moonPos[1] - dAlong*axis[1]
	perpZ := moonPos[2] - dAlong*axis[2]

	return math.Sqrt(perpX*perpX + perpY*perpY + perpZ*perpZ), nil
}

// sunMoonSeparationDeg returns the geocentric angular separation in degrees
// between the Sun and Moon at the given time.
func sunMoonSeparationDeg(eng *engine.Engine, tdbJD float64) (float64, error) {
	sunPos, err := geocentricVector(eng, spk.Sun, tdbJD)
	if err != nil {
		return 0, err
	}
	moonPos, err := geocentricVector(eng, spk.Moon, tdbJD)
	if err != nil {
		return 0, err
	}
	return frames.SeparationAngle(sunPos, moonPos).Degrees(), nil
}

// classifyLunarEclipse computes the full shadow geometry at a given time and
// returns a LunarEclipse if the Moon is at least partially in the penumbra.
func classifyLunarEclipse(eng *engine.Engine, tdbJD float64) (LunarEclipse, error) {
	sunPos, err := geocentricVector(eng, spk.Sun, tdbJD)
	if err != nil {
		return LunarEclipse{}, err
	}
	moonPos, err := geocentricVector(eng, spk.Moon, tdbJD)
	if err != nil {
		return LunarEclipse{}, err
	}

	axis, sunDist := shadowAxis(sunPos)

	// Moon distance along shadow axis (positive for eclipse geometry).
	dAlong := moonPos[0]*axis[0] + moonPos[1]*axis[1] + moonPos[2]*axis[2]

	perpX := moonPos[0] - dAlong*axis[0]
	perpY := moonPos[1] - dAlong*axis[1]
	perpZ := moonPos[2] - dAlong*axis[2]
	sep := math.Sqrt(perpX*perpX + perpY*perpY + perpZ*perpZ)

	// Shadow cone radii at Moon's distance along the shadow axis,
	// with Danjon 2% enlargement.
	rUmbra := (earthRadiusKm - dAlong*(sunRadiusKm-earthRadiusKm)/sunDist) * danjonFactor
	rPenumbra := (earthRadiusKm + dAlong*(sunRadiusKm+earthRadiusKm)/sunDist) * danjonFactor

	umbralMag := (rUmbra + moonRadiusKm - sep) / (2.0 * moonRadiusKm)
	penumbralMag := (rPenumbra + moonRadiusKm - sep) / (2.0 * moonRadiusKm)

	ecl := LunarEclipse{
		T:                 tdbJD,
		UmbralMag:         umbralMag,
		PenumbralMag:      penumbralMag,
		ClosestApproachKm: sep,
		UmbralRadiusKm:    rUmbra,
		PenumbralRadiusKm: rPenumbra,
	}

	switch {
	case umbralMag >= 1.0:
		ecl.Kind = Total
	case umbralMag > 0:
		ecl.Kind = Partial
	case penumbralMag > 0:
		ecl.Kind = Penumbral
	default:
		ecl.Kind = 0
	}

	return ecl, nil
}

// classifySolarEclipse computes the Sun-Moon alignment geometry at a given
// time and returns a SolarEclipse if the Moon's disc overlaps the Sun's disc
// at all, as seen geocentrically.
func classifySolarEclipse(eng *engine.Engine, tdbJD float64) (SolarEclipse, error) {
	sunPos, err := geocentricVector(eng, spk.Sun, tdbJD)
	if err != nil {
		return SolarEclipse{}, err
	}
	moonPos, err := geocentricVector(eng, spk.Moon, tdbJD)
	if err != nil {
		return SolarEclipse{}, err
	}

	sunDist := math.Sqrt(sunPos[0]*sunPos[0] + sunPos[1]*sunPos[1] + sunPos[2]*sunPos[2])
	moonDist := math.Sqrt(moonPos[0]*moonPos[0] + moonPos[1]*moonPos[1] + moonPos[2]*moonPos[2])

	sepDeg := frames.SeparationAngle(sunPos, moonPos).Degrees()
	sepKm := sepDeg * math.Pi / 180.0 * sunDist

	// Apparent angular radii, in degrees, as seen from Earth's center.
	sunAngRadius := math.Asin(math.Min(1.0, sunRadiusKm/sunDist)) * 180.0 / math.Pi
	moonAngRadius := math.Asin(math.Min(1.0, moonRadiusKm/moonDist)) * 180.0 / math.Pi

	mag := (sunAngRadius + moonAngRadius - sepDeg) / (2.0 * sunAngRadius)

	ecl := SolarEclipse{
		T:                 tdbJD,
		Magnitude:         mag,
		ClosestApproachKm: sepKm,
	}

	switch {
	case mag <= 0:
		ecl.Kind = 0
	case sepDeg <= math.Abs(sunAngRadius-moonAngRadius):
		if moonAngRadius >= sunAngRadius {
			ecl.Kind = SolarTotal
		} else {
			ecl.Kind = SolarAnnular
		}
	default:
		ecl.Kind = SolarPartial
	}

	return ecl, nil
}
