// Package frames provides the fixed ICRF ↔ ecliptic-J2000 rotation and
// Cartesian ↔ spherical conversions used throughout the engine. Unlike a
// full precession/nutation frame chain, this rotation uses a constant
// J2000 mean obliquity with no time argument — the only reference-frame
// transform this engine supports beyond the inertial ICRF itself.
package frames

import "math"

const (
	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi

	// ObliquityJ2000Deg is the IAU mean obliquity of the ecliptic at J2000.0
	// (84381.448 arcseconds, Lieske 1979).
	ObliquityJ2000Deg = 84381.448 / 3600.0
	ObliquityJ2000Rad = ObliquityJ2000Deg * degToRad
)

var (
	sinObl = math.Sin(ObliquityJ2000Rad)
	cosObl = math.Cos(ObliquityJ2000Rad)
)
