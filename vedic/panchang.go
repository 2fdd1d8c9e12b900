package vedic

import "math"

// Paksha is the lunar fortnight: waxing (Shukla) or waning (Krishna).
type Paksha int

const (
	Shukla Paksha = iota
	Krishna
)

func (p Paksha) String() string {
	if p == Krishna {
		return "Krishna"
	}
	return "Shukla"
}

// Tithi is a lunar day: 1-15 within each of the two pakshas.
type Tithi struct {
	Paksha Paksha
	Number int // 1-15
	Index  int // 0-29, continuous across both pakshas
}

// TithiOf returns the lunar day from the Moon-minus-Sun tropical elongation.
// Ayanamsha cancels out of a longitude difference, so either tropical or
// sidereal longitudes may be supplied as long as both operands use the same
// reference.
func TithiOf(moonLonDeg, sunLonDeg float64) Tithi {
	elong := Normalize360(moonLonDeg - sunLonDeg)
	idx := int(math.Floor(elong / 12.0))
	if idx > 29 {
		idx = 29
	}
	paksha := Shukla
	number := idx + 1
	if idx >= 15 {
		paksha = Krishna
		number = idx - 15 + 1
	}
	return Tithi{Paksha: paksha, Number: number, Index: idx}
}

// Yoga is the 27-fold division of the sum of Sun and Moon sidereal
// longitudes, independent of either body's individual zodiac position.
type Yoga int

var yogaNames = [27]string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana", "Atiganda",
	"Sukarma", "Dhriti", "Shoola", "Ganda", "Vriddhi", "Dhruva",
	"Vyaghata", "Harshana", "Vajra", "Siddhi", "Vyatipata", "Variyana",
	"Parigha", "Shiva", "Siddha", "Sadhya", "Shubha", "Shukla",
	"Brahma", "Indra", "Vaidhriti",
}

func (y Yoga) String() string {
	if y < 0 || int(y) >= len(yogaNames) {
		return "unknown"
	}
	return yogaNames[y]
}

// YogaOf returns the yoga index from the sum of Sun and Moon sidereal
// longitudes.
func YogaOf(moonSiderealLonDeg, sunSiderealLonDeg float64) Yoga {
	sum := Normalize360(moonSiderealLonDeg + sunSiderealLonDeg)
	idx := int(math.Floor(sum / degreesPerNakshatra))
	if idx > 26 {
		idx = 26
	}
	return Yoga(idx)
}

// Karana is the half-tithi: 60 per lunar month, cyclically named from 11
// distinct karana names (seven movable ones repeating, four fixed ones at
// the start and end of the cycle).
type Karana int

var movableKaranaNames = [7]string{"Bava", "Balava", "Kaulava", "Taitila", "Garija", "Vanija", "Vishti"}
var fixedKaranaNames = [4]string{"Kimstughna", "Shakuni", "Chatushpada", "Naga"}

// KaranaName returns the classical name for a karana index (0-59).
func KaranaName(index int) string {
	switch {
	case index == 0:
		return fixedKaranaNames[0]
	case index >= 57 && index <= 59:
		return fixedKaranaNames[index-56]
	default:
		return movableKaranaNames[(index-1)%7]
	}
}

// KaranaOf returns the half-tithi index (0-59) from the Moon-minus-Sun
// elongation.
func KaranaOf(moonLonDeg, sunLonDeg float64) Karana {
	elong := Normalize360(moonLonDeg - sunLonDeg)
	idx := int(math.Floor(elong / 6.0))
	if idx > 59 {
		idx = 59
	}
	return Karana(idx)
}

// Vaar is the civil weekday, 0=Sunday .. 6=Saturday.
type Vaar int

var vaarNames = [7]string{"Ravivar", "Somvar", "Mangalvar", "Budhvar", "Guruvar", "Shukravar", "Shanivar"}

func (v Vaar) String() string {
	if v < 0 || int(v) >= len(vaarNames) {
		return "unknown"
	}
	return vaarNames[v]
}

// VaarOf returns the weekday for a Julian date (any time scale close to
// UT is adequate; the civil day boundary dominates over sub-second TT-UT
// offsets).
func VaarOf(jd float64) Vaar {
	idx := int(math.Floor(jd+1.5)) % 7
	if idx < 0 {
		idx += 7
	}
	return Vaar(idx)
}

// Masa is the lunar month, named by the sidereal rashi the Sun occupies.
// This is the amanta-style approximation described as sufficient here: a
// fully rigorous masa (and adhika-masa leap-month detection) additionally
// requires locating the bounding new moons, which belongs to the search
// layer rather than this pure-function panchang layer.
type Masa Rashi

func (m Masa) String() string { return Rashi(m).String() }

// MasaOf returns the lunar month from the Sun's sidereal longitude.
func MasaOf(sunSiderealLonDeg float64) Masa {
	return Masa(RashiOf(sunSiderealLonDeg))
}

// Panchang bundles the five core elements (tithi, nakshatra, yoga, karana,
// vaar) plus the masa, computed from one GrahaLongitudes snapshot plus a
// Julian date for the weekday.
type Panchang struct {
	Tithi     Tithi
	Nakshatra Nakshatra
	Yoga      Yoga
	Karana    Karana
	Vaar      Vaar
	Masa      Masa
}

// ComputePanchang derives the five panchang elements and the masa from a
// graha snapshot and the civil Julian date.
func ComputePanchang(positions GrahaLongitudes, jd float64) Panchang {
	sun := positions.Positions[GSun]
	moon := positions.Positions[GMoon]
	return Panchang{
		Tithi:     TithiOf(moon.TropicalLonDeg, sun.TropicalLonDeg),
		Nakshatra: moon.Nakshatra,
		Yoga:      YogaOf(moon.SiderealLonDeg, sun.SiderealLonDeg),
		Karana:    KaranaOf(moon.TropicalLonDeg, sun.TropicalLonDeg),
		Vaar:      VaarOf(jd),
		Masa:      MasaOf(sun.SiderealLonDeg),
	}
}

// Ghatika/Hora: Indian time subdivisions of the civil day, 60 ghatikas or
// 24 horas between sunrise and the following sunrise. These require a
// sunrise/sunset instant (a discrete search over the Sun's position, not a
// pure function of longitude), so the caller supplies sunriseJD/sunsetJD
// from the search layer rather than this package computing them itself.

// GhatikaOf returns the ghatika (0-59) elapsed since sunriseJD, each
// ghatika spanning 1/60th of the sunrise-to-sunrise civil day.
func GhatikaOf(jd, sunriseJD, nextSunriseJD float64) int {
	dayLen := nextSunriseJD - sunriseJD
	if dayLen <= 0 {
		return 0
	}
	elapsed := jd - sunriseJD
	idx := int(math.Floor(elapsed / (dayLen / 60.0)))
	if idx < 0 {
		idx = 0
	}
	if idx > 59 {
		idx = 59
	}
	return idx
}

// HoraOf returns the hora (0-23) elapsed since sunriseJD, each hora
// spanning 1/24th of the sunrise-to-sunrise civil day.
func HoraOf(jd, sunriseJD, nextSunriseJD float64) int {
	dayLen := nextSunriseJD - sunriseJD
	if dayLen <= 0 {
		return 0
	}
	elapsed := jd - sunriseJD
	idx := int(math.Floor(elapsed / (dayLen / 24.0)))
	if idx < 0 {
		idx = 0
	}
	if idx > 23 {
		idx = 23
	}
	return idx
}
