package frames

import "math"

// SphericalCoords is a longitude/latitude/range triple, angles in degrees,
// range in the same length unit as the Cartesian vector it was derived from.
type SphericalCoords struct {
	LonDeg, LatDeg, Range float64
}

// SphericalState additionally carries the rates of change of longitude,
// latitude, and range (units per TDB second), derived from a state vector's
// velocity alongside its position.
type SphericalState struct {
	SphericalCoords
	LonRateDegPerSec, LatRateDegPerSec, RangeRatePerSec float64
}

// CartesianToSpherical converts a Cartesian position to longitude (wrapped
// to [0, 360)), latitude, and range.
func CartesianToSpherical(v [3]float64) SphericalCoords {
	r := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if r == 0 {
		return SphericalCoords{}
	}
	lat := math.Asin(v[2]/r) * radToDeg
	lon := math.Atan2(v[1], v[0]) * radToDeg
	lon = math.Mod(lon+360.0, 360.0)
	return SphericalCoords{LonDeg: lon, LatDeg: lat, Range: r}
}

// SphericalToCartesian is the inverse of CartesianToSpherical.
func SphericalToCartesian(s SphericalCoords) [3]float64 {
	lon := s.LonDeg * degToRad
	lat := s.LatDeg * degToRad
	cosLat := math.Cos(lat)
	return [3]float64{
		s.Range * cosLat * math.Cos(lon),
		s.Range * cosLat * math.Sin(lon),
		s.Range * math.Sin(lat),
	}
}

// CartesianStateToSphericalState converts a Cartesian position+velocity
// pair to spherical coordinates and their time derivatives, via the
// standard Jacobian of the spherical transform.
func CartesianStateToSphericalState(pos, vel [3]float64) SphericalState {
	coords := CartesianToSpherical(pos)
	r := coords.Range
	if r == 0 {
		return SphericalState{SphericalCoords: coords}
	}

	x, y, z := pos[0], pos[1], pos[2]
	vx, vy, vz := vel[0], vel[1], vel[2]

	rhoSq := x*x + y*y // projection onto the xy-plane, squared
	rho := math.Sqrt(rhoSq)

	rangeRate := (x*vx + y*vy + z*vz) / r

	var lonRate, latRate float64
	if rhoSq > 0 {
		lonRate = (x*vy - y*vx) / rhoSq * radToDeg
		latRate = (vz*rhoSq - z*(x*vx+y*vy)) / (r * r * rho) * radToDeg
	}

	return SphericalState{
		SphericalCoords:  coords,
		LonRateDegPerSec: lonRate,
		LatRateDegPerSec: latRate,
		RangeRatePerSec:  rangeRate,
	}
}
