package search

import (
	"github.com/anupshinde/vediceph/engine"
	"github.com/anupshinde/vediceph/frames"
	"github.com/anupshinde/vediceph/spk"
)

// Station direction values returned in DiscreteEvent.NewValue by the
// station-search functions: the value after the transition.
const (
	Retrograde = 0 // geocentric ecliptic longitude rate went negative
	Direct     = 1 // geocentric ecliptic longitude rate went non-negative
)

// stationResidual returns the sign of body's geocentric ecliptic longitude
// rate of change at tdbJD: Direct (rate >= 0) or Retrograde (rate < 0).
func stationResidual(eng *engine.Engine, body int) func(float64) int {
	return func(tdbJD float64) int {
		state, err := eng.Query(body, spk.Earth, tdbJD, engine.EclipticJ2000)
		if err != nil {
			return -1
		}
		sph := frames.CartesianStateToSphericalState(state.PositionKm, state.VelocityKmS)
		if sph.LonRateDegPerSec < 0 {
			return Retrograde
		}
		return Direct
	}
}

// FindStations finds times body's geocentric ecliptic longitude rate
// changes sign (station points, the onset/end of apparent retrograde
// motion) in [startJD, endJD].
func FindStations(eng *engine.Engine, body int, startJD, endJD float64) ([]DiscreteEvent, error) {
	return FindDiscrete(startJD, endJD, 0.25, stationResidual(eng, body), 0)
}

// NextStation returns the first station point strictly after fromJD,
// within DefaultSearchWindowDays.
func NextStation(eng *engine.Engine, body int, fromJD float64) (DiscreteEvent, error) {
	return NextDiscreteEvent(fromJD, 0.25, 0, stationResidual(eng, body))
}

// PrevStation returns the last station point strictly before fromJD,
// within DefaultSearchWindowDays.
func PrevStation(eng *engine.Engine, body int, fromJD float64) (DiscreteEvent, error) {
	return PrevDiscreteEvent(fromJD, 0.25, 0, stationResidual(eng, body))
}
