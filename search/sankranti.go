package search

import (
	"github.com/anupshinde/vediceph/engine"
	"github.com/anupshinde/vediceph/spk"
	"github.com/anupshinde/vediceph/vedic"
)

// sankrantiResidual returns the 0-based rashi index the Sun's sidereal
// longitude falls in at tdbJD, under the given ayanamsha.
func sankrantiResidual(eng *engine.Engine, system vedic.AyanamshaSystem) func(float64) int {
	return func(tdbJD float64) int {
		lon, err := geocentricEclipticLon(eng, spk.Sun, tdbJD)
		if err != nil {
			return -1
		}
		t := vedic.JDTDBToCenturies(tdbJD)
		ayanamsha := vedic.AyanamshaDeg(system, t, false)
		sidereal := vedic.SiderealLongitude(lon, ayanamsha)
		return int(vedic.RashiOf(sidereal))
	}
}

// FindSankrantis finds the instants the Sun's sidereal longitude crosses a
// rashi boundary (one of the twelve solar ingresses per year) in
// [startJD, endJD].
func FindSankrantis(eng *engine.Engine, system vedic.AyanamshaSystem, startJD, endJD float64) ([]DiscreteEvent, error) {
	return FindDiscrete(startJD, endJD, 0.25, sankrantiResidual(eng, system), 0)
}

// NextSankranti returns the first sankranti strictly after fromJD, within
// DefaultSearchWindowDays.
func NextSankranti(eng *engine.Engine, system vedic.AyanamshaSystem, fromJD float64) (DiscreteEvent, error) {
	return NextDiscreteEvent(fromJD, 0.25, 0, sankrantiResidual(eng, system))
}

// PrevSankranti returns the last sankranti strictly before fromJD, within
// DefaultSearchWindowDays.
func PrevSankranti(eng *engine.Engine, system vedic.AyanamshaSystem, fromJD float64) (DiscreteEvent, error) {
	return PrevDiscreteEvent(fromJD, 0.25, 0, sankrantiResidual(eng, system))
}
