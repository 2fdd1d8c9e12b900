package vedic

import (
	"github.com/anupshinde/vediceph/engine"
	"github.com/anupshinde/vediceph/errs"
	"github.com/anupshinde/vediceph/frames"
	"github.com/anupshinde/vediceph/spk"
)

// Graha identifies one of the nine classical Vedic planetary positions:
// the seven physical bodies plus the two lunar nodes.
type Graha int

const (
	GSun Graha = iota
	GMoon
	GMars
	GMercury
	GJupiter
	GVenus
	GSaturn
	GRahu
	GKetu
)

var grahaNames = [9]string{"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Rahu", "Ketu"}

func (g Graha) String() string {
	if g < 0 || int(g) >= len(grahaNames) {
		return "unknown"
	}
	return grahaNames[g]
}

// AllGrahas returns the nine classical grahas in conventional order.
func AllGrahas() []Graha {
	return []Graha{GSun, GMoon, GMars, GMercury, GJupiter, GVenus, GSaturn, GRahu, GKetu}
}

// physicalBodyFor maps the seven physical grahas to their NAIF SPK body ID.
var physicalBodyFor = map[Graha]int{
	GSun:     spk.Sun,
	GMoon:    spk.Moon,
	GMars:    spk.Mars,
	GMercury: spk.Mercury,
	GJupiter: spk.Jupiter,
	GVenus:   spk.Venus,
	GSaturn:  spk.Saturn,
}

// GrahaLongitude is one graha's sidereal ecliptic longitude at an epoch,
// alongside the rashi/nakshatra/pada indexing derived from it.
type GrahaLongitude struct {
	Graha          Graha
	TropicalLonDeg float64
	SiderealLonDeg float64
	LatDeg         float64
	Rashi          Rashi
	Nakshatra      Nakshatra
	Pada           int
}

// GrahaLongitudes is the full nine-graha snapshot at one epoch, plus the
// ayanamsha used to derive it.
type GrahaLongitudes struct {
	EpochJDTDB   float64
	System       AyanamshaSystem
	AyanamshaDeg float64
	Positions    [9]GrahaLongitude
}

// GrahaPositions computes sidereal longitudes for all nine grahas at jdTDB,
// geocentric, in the ecliptic-of-date sense approximated here by the fixed
// J2000 ecliptic frame (light-time and aberration are out of scope). system
// selects the ayanamsha; useNutation includes the nutation-in-longitude
// term in that ayanamsha.
func GrahaPositions(eng *engine.Engine, jdTDB float64, system AyanamshaSystem, useNutation bool) (GrahaLongitudes, error) {
	t := JDTDBToCenturies(jdTDB)
	ayanamsha := AyanamshaDeg(system, t, useNutation)

	result := GrahaLongitudes{EpochJDTDB: jdTDB, System: system, AyanamshaDeg: ayanamsha}

	for _, g := range []Graha{GSun, GMoon, GMars, GMercury, GJupiter, GVenus, GSaturn} {
		body, ok := physicalBodyFor[g]
		if !ok {
			return GrahaLongitudes{}, errs.New(errs.UnsupportedBody, g.String())
		}
		state, err := eng.Query(body, spk.Earth, jdTDB, engine.EclipticJ2000)
		if err != nil {
			return GrahaLongitudes{}, err
		}
		sph := frames.CartesianToSpherical(state.PositionKm)
		result.Positions[g] = longitudeEntry(g, sph.LonDeg, sph.LatDeg, ayanamsha)
	}

	rahuTropical := LunarNodeDeg(Rahu, t, Mean)
	ketuTropical := LunarNodeDeg(Ketu, t, Mean)
	result.Positions[GRahu] = longitudeEntry(GRahu, rahuTropical, 0, ayanamsha)
	result.Positions[GKetu] = longitudeEntry(GKetu, ketuTropical, 0, ayanamsha)

	return result, nil
}

func longitudeEntry(g Graha, tropicalLonDeg, latDeg, ayanamshaDeg float64) GrahaLongitude {
	sidereal := SiderealLongitude(tropicalLonDeg, ayanamshaDeg)
	return GrahaLongitude{
		Graha:          g,
		TropicalLonDeg: tropicalLonDeg,
		SiderealLonDeg: sidereal,
		LatDeg:         latDeg,
		Rashi:          RashiOf(sidereal),
		Nakshatra:      NakshatraOf(sidereal),
		Pada:           PadaOf(sidereal),
	}
}
