package frames

import (
	"math"

	"github.com/anupshinde/vediceph/units"
)

// SeparationAngle returns the angular separation between two Cartesian
// vectors, as a units.Angle. Uses Kahan's numerically stable formula.
// See: https://people.eecs.berkeley.edu/~wkahan/Mindless.pdf Section 12.
func SeparationAngle(a, b [3]float64) units.Angle {
	lenA := math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
	lenB := math.Sqrt(b[0]*b[0] + b[1]*b[1] + b[2]*b[2])
	if lenA == 0 || lenB == 0 {
		return units.NewAngle(0)
	}

	var diffSq, sumSq float64
	for i := 0; i < 3; i++ {
		u := a[i] * lenB
		v := b[i] * lenA
		d := u - v
		s := u + v
		diffSq += d * d
		sumSq += s * s
	}

	return units.NewAngle(2.0 * math.Atan2(math.Sqrt(diffSq), math.Sqrt(sumSq)))
}

// Elongation returns the elongation of a target from a reference body,
// given their ecliptic longitudes. Returns an angle normalized to
// [0, 360) degrees. For lunar phase, pass the Moon's ecliptic longitude as
// target and the Sun's as reference: 0°=new moon, 90°=first quarter,
// 180°=full, 270°=last quarter.
func Elongation(target, reference units.Angle) units.Angle {
	e := math.Mod(target.Degrees()-reference.Degrees(), 360.0)
	if e < 0 {
		e += 360.0
	}
	return units.NewAngle(e * degToRad)
}

// FractionIlluminated returns the fraction of a spherical body's disc that
// is illuminated, given the phase angle. Returns a value in [0, 1].
func FractionIlluminated(phaseAngle units.Angle) float64 {
	return 0.5 * (1.0 + math.Cos(phaseAngle.Radians()))
}
