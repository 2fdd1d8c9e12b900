package frames

// EclipticToICRF rotates a Cartesian vector from the J2000 mean-ecliptic
// frame to ICRF by the fixed obliquity (rotation about the ecliptic x-axis,
// which coincides with the ICRF x-axis at J2000).
func EclipticToICRF(v [3]float64) [3]float64 {
	return [3]float64{
		v[0],
		cosObl*v[1] - sinObl*v[2],
		sinObl*v[1] + cosObl*v[2],
	}
}

// ICRFToEcliptic rotates a Cartesian vector from ICRF to the J2000
// mean-ecliptic frame by the fixed obliquity. This is the inverse (and,
// since the rotation is orthogonal, the transpose) of EclipticToICRF.
func ICRFToEcliptic(v [3]float64) [3]float64 {
	return [3]float64{
		v[0],
		cosObl*v[1] + sinObl*v[2],
		-sinObl*v[1] + cosObl*v[2],
	}
}
