package vedic

import (
	"math"
	"testing"
)

func TestRahuKetuAlwaysAntipodal(t *testing.T) {
	for _, t0 := range []float64{-1, 0, 0.25, 1, 10} {
		for _, mode := range AllNodeModes() {
			rahu := LunarNodeDeg(Rahu, t0, mode)
			ketu := LunarNodeDeg(Ketu, t0, mode)
			diff := math.Mod(ketu-rahu+720, 360)
			if math.Abs(diff-180) > 1e-9 {
				t.Errorf("mode=%v t=%v: rahu=%v ketu=%v not antipodal (diff=%v)", mode, t0, rahu, ketu, diff)
			}
		}
	}
}

func TestMeanNodeRegressesOverTime(t *testing.T) {
	// The mean node regresses (moves westward/retrograde) through the
	// zodiac, so its longitude should decrease over a short interval
	// once unwrapped.
	a := MeanRahuDeg(0)
	b := MeanRahuDeg(0.01)
	if b >= a {
		t.Errorf("expected mean node to regress: a=%v b=%v", a, b)
	}
}

func TestTrueNodePerturbationBounded(t *testing.T) {
	for _, t0 := range []float64{-2, -1, 0, 1, 2} {
		mean := MeanRahuDeg(t0)
		true_ := TrueRahuDeg(t0)
		diff := math.Mod(true_-mean+540, 360) - 180
		if math.Abs(diff) > 3.0 {
			t.Errorf("t=%v: true node deviates from mean by %v deg, exceeds 3 deg bound", t0, diff)
		}
	}
}

func TestTrueNodePerturbationNonzeroAtJ2000(t *testing.T) {
	if MeanRahuDeg(0) == TrueRahuDeg(0) {
		t.Errorf("expected nonzero perturbation at J2000")
	}
}
