package frames

import (
	"math"
	"testing"

	"github.com/anupshinde/vediceph/units"
)

func TestEclipticICRFRoundTrip(t *testing.T) {
	v := [3]float64{1.23, -4.56, 7.89}
	got := ICRFToEcliptic(EclipticToICRF(v))
	for i := range v {
		if math.Abs(got[i]-v[i]) > 1e-12 {
			t.Errorf("round trip component %d = %v, want %v", i, got[i], v[i])
		}
	}
}

func TestCartesianSphericalRoundTrip(t *testing.T) {
	v := [3]float64{0.5, -0.8, 0.3}
	s := CartesianToSpherical(v)
	back := SphericalToCartesian(s)
	for i := range v {
		if math.Abs(back[i]-v[i]) > 1e-10 {
			t.Errorf("round trip component %d = %v, want %v", i, back[i], v[i])
		}
	}
}

func TestLongitudeWrapsToPositive(t *testing.T) {
	s := CartesianToSpherical([3]float64{-1, -1, 0})
	if s.LonDeg < 0 || s.LonDeg >= 360 {
		t.Errorf("LonDeg = %v, want in [0, 360)", s.LonDeg)
	}
}

func TestSeparationAngleIdentical(t *testing.T) {
	v := [3]float64{1, 2, 3}
	if got := SeparationAngle(v, v).Degrees(); got > 1e-9 {
		t.Errorf("SeparationAngle(v, v) = %v, want ~0", got)
	}
}

func TestSeparationAngleOpposite(t *testing.T) {
	v := [3]float64{1, 0, 0}
	w := [3]float64{-2, 0, 0}
	if got := SeparationAngle(v, w).Degrees(); math.Abs(got-180) > 1e-9 {
		t.Errorf("SeparationAngle(v, -v) = %v, want 180", got)
	}
}

func TestElongationWraps(t *testing.T) {
	target := units.NewAngle(10 * degToRad)
	reference := units.NewAngle(350 * degToRad)
	if got := Elongation(target, reference).Degrees(); math.Abs(got-20) > 1e-9 {
		t.Errorf("Elongation(10, 350) = %v, want 20", got)
	}
}

func TestFractionIlluminatedBounds(t *testing.T) {
	if got := FractionIlluminated(units.NewAngle(0)); math.Abs(got-1) > 1e-9 {
		t.Errorf("FractionIlluminated(0) = %v, want 1", got)
	}
	if got := FractionIlluminated(units.NewAngle(math.Pi)); math.Abs(got) > 1e-9 {
		t.Errorf("FractionIlluminated(180) = %v, want 0", got)
	}
}
