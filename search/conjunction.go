package search

import (
	"math"

	"github.com/anupshinde/vediceph/engine"
	"github.com/anupshinde/vediceph/frames"
	"github.com/anupshinde/vediceph/spk"
)

// ConjunctionEventKind labels which geometric alignment a conjunction-search
// transition landed on.
const (
	ConjunctionKind = 0 // body near the Sun (geocentric longitude difference near 0)
	OppositionKind  = 1 // body opposite the Sun (geocentric longitude difference near 180)
)

// geocentricEclipticLon returns body's geocentric ecliptic-J2000 longitude
// in degrees at tdbJD.
func geocentricEclipticLon(eng *engine.Engine, body int, tdbJD float64) (float64, error) {
	state, err := eng.Query(body, spk.Earth, tdbJD, engine.EclipticJ2000)
	if err != nil {
		return 0, err
	}
	return frames.CartesianToSpherical(state.PositionKm).LonDeg, nil
}

// conjunctionResidual returns a quadrant index of the Sun-minus-body
// geocentric ecliptic longitude difference: transitions to ConjunctionKind
// happen near alignment, transitions to OppositionKind near opposition.
func conjunctionResidual(eng *engine.Engine, body int) func(float64) int {
	return func(tdbJD float64) int {
		sunLon, errSun := geocentricEclipticLon(eng, spk.Sun, tdbJD)
		bodyLon, errBody := geocentricEclipticLon(eng, body, tdbJD)
		if errSun != nil || errBody != nil {
			return -1
		}
		diff := math.Mod(sunLon-bodyLon+360, 360)
		return int(math.Floor(diff/180.0)) % 2
	}
}

// FindConjunctions finds Sun-body conjunctions and oppositions in
// [startJD, endJD], both TDB Julian dates. Events carry NewValue
// ConjunctionKind or OppositionKind.
func FindConjunctions(eng *engine.Engine, body int, startJD, endJD float64) ([]DiscreteEvent, error) {
	return FindDiscrete(startJD, endJD, 0.25, conjunctionResidual(eng, body), 0)
}

// NextConjunction returns the first Sun-body conjunction-or-opposition
// transition strictly after fromJD, within DefaultSearchWindowDays.
func NextConjunction(eng *engine.Engine, body int, fromJD float64) (DiscreteEvent, error) {
	return NextDiscreteEvent(fromJD, 0.25, 0, conjunctionResidual(eng, body))
}

// PrevConjunction returns the last Sun-body conjunction-or-opposition
// transition strictly before fromJD, within DefaultSearchWindowDays.
func PrevConjunction(eng *engine.Engine, body int, fromJD float64) (DiscreteEvent, error) {
	return PrevDiscreteEvent(fromJD, 0.25, 0, conjunctionResidual(eng, body))
}
