package vedic

import "math"

// LunarNode identifies which of the Moon's two orbital nodes is wanted.
type LunarNode int

const (
	Rahu LunarNode = iota // ascending node
	Ketu                  // descending node, always antipodal to Rahu
)

func (n LunarNode) String() string {
	if n == Ketu {
		return "Ketu"
	}
	return "Rahu"
}

// AllLunarNodes returns both node identifiers.
func AllLunarNodes() []LunarNode { return []LunarNode{Rahu, Ketu} }

// NodeMode selects the mean (smooth, long-period) or true (with periodic
// perturbation) node longitude.
type NodeMode int

const (
	Mean NodeMode = iota
	True
)

// AllNodeModes returns both node computation modes.
func AllNodeModes() []NodeMode { return []NodeMode{Mean, True} }

// MeanRahuDeg returns the Moon's mean ascending node longitude in degrees at
// t Julian centuries of TDB since J2000.0.
func MeanRahuDeg(t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	t4 := t3 * t
	omega := 125.04455501 - 1934.13626197*t + 0.00207617*t2 + 2.2e-6*t3 - 4.4e-8*t4
	return Normalize360(omega)
}

// MeanKetuDeg is always exactly antipodal to MeanRahuDeg.
func MeanKetuDeg(t float64) float64 {
	return Normalize360(MeanRahuDeg(t) + 180.0)
}

// trueNodePerturbationDeg is a short truncated periodic correction applied
// to the mean node to obtain the true (oscillating) node longitude, built
// from the Moon's principal fundamental arguments (elongation D, lunar mean
// anomaly l, argument of latitude F) already used by the nutation series.
func trueNodePerturbationDeg(t float64) float64 {
	l, _, F, D, _ := fundamentalArgs(t)

	perturbation := -1.4979*math.Sin(2*(D-F)) -
		0.1500*math.Sin(l) -
		0.1226*math.Sin(2*D) +
		0.1176*math.Sin(2*F) -
		0.0801*math.Sin(2*(l-F))
	return perturbation
}

// TrueRahuDeg returns the Moon's true ascending node longitude in degrees,
// the mean node plus a short periodic perturbation series.
func TrueRahuDeg(t float64) float64 {
	return Normalize360(MeanRahuDeg(t) + trueNodePerturbationDeg(t))
}

// TrueKetuDeg is always exactly antipodal to TrueRahuDeg.
func TrueKetuDeg(t float64) float64 {
	return Normalize360(TrueRahuDeg(t) + 180.0)
}

// LunarNodeDeg dispatches to the four node/mode combinations above.
func LunarNodeDeg(node LunarNode, t float64, mode NodeMode) float64 {
	switch {
	case node == Rahu && mode == Mean:
		return MeanRahuDeg(t)
	case node == Ketu && mode == Mean:
		return MeanKetuDeg(t)
	case node == Rahu && mode == True:
		return TrueRahuDeg(t)
	default:
		return TrueKetuDeg(t)
	}
}
