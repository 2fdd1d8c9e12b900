package vedic

import "math"

// Rashi is a 0-based sidereal zodiac sign index (0=Mesha .. 11=Meena).
type Rashi int

// rashiNames are the twelve sidereal sign names in zodiacal order.
var rashiNames = [12]string{
	"Mesha", "Vrishabha", "Mithuna", "Karka", "Simha", "Kanya",
	"Tula", "Vrischika", "Dhanu", "Makara", "Kumbha", "Meena",
}

func (r Rashi) String() string {
	if r < 0 || int(r) >= len(rashiNames) {
		return "unknown"
	}
	return rashiNames[r]
}

// Nakshatra is a 0-based 27-fold lunar-mansion index (0=Ashwini .. 26=Revati).
type Nakshatra int

var nakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

func (n Nakshatra) String() string {
	if n < 0 || int(n) >= len(nakshatraNames) {
		return "unknown"
	}
	return nakshatraNames[n]
}

const (
	degreesPerRashi     = 30.0
	degreesPerNakshatra = 360.0 / 27.0
	degreesPerPada      = 360.0 / 108.0
)

// SiderealLongitude converts a tropical ecliptic longitude to sidereal,
// subtracting the given ayanamsha and wrapping to [0, 360).
func SiderealLongitude(tropicalLonDeg, ayanamshaDeg float64) float64 {
	return Normalize360(tropicalLonDeg - ayanamshaDeg)
}

// RashiOf returns the 0-based rashi index for a sidereal longitude.
func RashiOf(siderealLonDeg float64) Rashi {
	idx := int(math.Floor(siderealLonDeg / degreesPerRashi))
	if idx < 0 {
		idx = 0
	}
	if idx > 11 {
		idx = 11
	}
	return Rashi(idx)
}

// NakshatraOf returns the 0-based nakshatra index for a sidereal longitude.
func NakshatraOf(siderealLonDeg float64) Nakshatra {
	idx := int(math.Floor(siderealLonDeg / degreesPerNakshatra))
	if idx < 0 {
		idx = 0
	}
	if idx > 26 {
		idx = 26
	}
	return Nakshatra(idx)
}

// PadaOf returns the 1-based quarter (1-4) of the nakshatra a sidereal
// longitude falls within.
func PadaOf(siderealLonDeg float64) int {
	withinNakshatra := math.Mod(siderealLonDeg, degreesPerNakshatra)
	if withinNakshatra < 0 {
		withinNakshatra += degreesPerNakshatra
	}
	pada := int(math.Floor(withinNakshatra/degreesPerPada)) + 1
	if pada > 4 {
		pada = 4
	}
	return pada
}
