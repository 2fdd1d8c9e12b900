package search

import (
	"math"

	"github.com/anupshinde/vediceph/engine"
	"github.com/anupshinde/vediceph/frames"
	"github.com/anupshinde/vediceph/spk"
	"github.com/anupshinde/vediceph/units"
)

// Lunar phase quadrant values returned in DiscreteEvent.NewValue by the
// phase-search functions.
const (
	NewMoon      = 0 // Moon-Sun elongation crosses 0 deg
	FirstQuarter = 1 // elongation crosses 90 deg
	FullMoon     = 2 // elongation crosses 180 deg
	LastQuarter  = 3 // elongation crosses 270 deg
)

// lunarPhaseResidual returns the Moon-Sun elongation quadrant at tdbJD.
func lunarPhaseResidual(eng *engine.Engine) func(float64) int {
	return func(tdbJD float64) int {
		moonLon, errMoon := geocentricEclipticLon(eng, spk.Moon, tdbJD)
		sunLon, errSun := geocentricEclipticLon(eng, spk.Sun, tdbJD)
		if errMoon != nil || errSun != nil {
			return -1
		}
		elong := frames.Elongation(degAngle(moonLon), degAngle(sunLon))
		return int(math.Floor(elong.Degrees() / 90.0))
	}
}

// degAngle builds a units.Angle from a value already expressed in degrees.
func degAngle(deg float64) units.Angle {
	return units.NewAngle(deg * math.Pi / 180.0)
}

// FindMoonPhases finds new moons, first quarters, full moons, and last
// quarters in [startJD, endJD] (TDB Julian dates).
func FindMoonPhases(eng *engine.Engine, startJD, endJD float64) ([]DiscreteEvent, error) {
	return FindDiscrete(startJD, endJD, 5.0, lunarPhaseResidual(eng), 0)
}

// NextMoonPhase returns the first lunar-phase transition strictly after
// fromJD, within DefaultSearchWindowDays.
func NextMoonPhase(eng *engine.Engine, fromJD float64) (DiscreteEvent, error) {
	return NextDiscreteEvent(fromJD, 5.0, 0, lunarPhaseResidual(eng))
}

// PrevMoonPhase returns the last lunar-phase transition strictly before
// fromJD, within DefaultSearchWindowDays.
func PrevMoonPhase(eng *engine.Engine, fromJD float64) (DiscreteEvent, error) {
	return PrevDiscreteEvent(fromJD, 5.0, 0, lunarPhaseResidual(eng))
}

// Season quadrant values returned in DiscreteEvent.NewValue by Seasons.
const (
	SpringEquinox  = 0
	SummerSolstice = 1
	AutumnEquinox  = 2
	WinterSolstice = 3
)

// seasonResidual returns the Sun's tropical ecliptic-longitude quadrant.
func seasonResidual(eng *engine.Engine) func(float64) int {
	return func(tdbJD float64) int {
		lon, err := geocentricEclipticLon(eng, spk.Sun, tdbJD)
		if err != nil {
			return -1
		}
		return int(math.Floor(lon / 90.0))
	}
}

// FindSeasons finds equinoxes and solstices (Sun tropical longitude
// quadrant crossings) in [startJD, endJD].
func FindSeasons(eng *engine.Engine, startJD, endJD float64) ([]DiscreteEvent, error) {
	return FindDiscrete(startJD, endJD, 0.25, seasonResidual(eng), 0)
}

// NextSeason returns the first equinox/solstice strictly after fromJD,
// within DefaultSearchWindowDays.
func NextSeason(eng *engine.Engine, fromJD float64) (DiscreteEvent, error) {
	return NextDiscreteEvent(fromJD, 0.25, 0, seasonResidual(eng))
}

// PrevSeason returns the last equinox/solstice strictly before fromJD,
// within DefaultSearchWindowDays.
func PrevSeason(eng *engine.Engine, fromJD float64) (DiscreteEvent, error) {
	return PrevDiscreteEvent(fromJD, 0.25, 0, seasonResidual(eng))
}
