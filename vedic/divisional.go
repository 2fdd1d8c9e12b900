package vedic

import "math"

// DivisionalScheme identifies one of the fifteen Shodashavarga divisional
// (amsha/varga) charts implemented here.
type DivisionalScheme int

const (
	D1 DivisionalScheme = iota
	D2
	D3
	D7
	D9
	D10
	D12
	D16
	D20
	D24
	D27
	D30
	D40
	D45
	D60
)

// divisions returns the number of equal parts scheme divides each rashi into.
func (d DivisionalScheme) divisions() int {
	switch d {
	case D1:
		return 1
	case D2:
		return 2
	case D3:
		return 3
	case D7:
		return 7
	case D9:
		return 9
	case D10:
		return 10
	case D12:
		return 12
	case D16:
		return 16
	case D20:
		return 20
	case D24:
		return 24
	case D27:
		return 27
	case D30:
		return 30
	case D40:
		return 40
	case D45:
		return 45
	case D60:
		return 60
	default:
		return 1
	}
}

func (d DivisionalScheme) String() string {
	names := map[DivisionalScheme]string{
		D1: "D-1", D2: "D-2", D3: "D-3", D7: "D-7", D9: "D-9", D10: "D-10",
		D12: "D-12", D16: "D-16", D20: "D-20", D24: "D-24", D27: "D-27",
		D30: "D-30", D40: "D-40", D45: "D-45", D60: "D-60",
	}
	if name, ok := names[d]; ok {
		return name
	}
	return "unknown"
}

// AllDivisionalSchemes returns the full Shodashavarga group.
func AllDivisionalSchemes() []DivisionalScheme {
	return []DivisionalScheme{D1, D2, D3, D7, D9, D10, D12, D16, D20, D24, D27, D30, D40, D45, D60}
}

// DivisionalResult is the outcome of mapping one sidereal position through a
// divisional scheme.
type DivisionalResult struct {
	Scheme           DivisionalScheme
	InputRashi       Rashi
	DegreeWithinSign float64
	OutputRashi      Rashi
}

// partIndex returns which of scheme's n equal subdivisions degreeWithinSign
// (0-30) falls in, clamped to [0, n-1].
func partIndex(degreeWithinSign float64, n int) int {
	width := degreesPerRashi / float64(n)
	idx := int(math.Floor(degreeWithinSign / width))
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	return idx
}

// startRashi returns the rashi a scheme's part-counting begins from for a
// given input rashi, per the classical Parashari starting-point rules.
func (d DivisionalScheme) startRashi(input Rashi) Rashi {
	odd := input%2 == 0 // Mesha(0), Mithuna(2), ... are odd-numbered signs (1-indexed odd)
	element := int(input) % 3 // 0=movable(Chara), 1=fixed(Sthira), 2=dual(Dvisvabhava)

	switch d {
	case D1:
		return input
	case D2:
		if odd {
			return Rashi(4) // Simha (Sun)
		}
		return Rashi(3) // Karka (Moon)
	case D3:
		return input // trine offsets applied by caller via part index multiples of 4
	case D7:
		if odd {
			return input
		}
		return Rashi((int(input) + 6) % 12)
	case D9:
		switch element {
		case 0:
			return input
		case 1:
			return Rashi((int(input) + 8) % 12)
		default:
			return Rashi((int(input) + 4) % 12)
		}
	case D10:
		if odd {
			return input
		}
		return Rashi((int(input) + 8) % 12)
	case D12:
		return input
	case D16:
		switch element {
		case 0:
			return Rashi(0) // Mesha
		case 1:
			return Rashi(3) // Karka
		default:
			return Rashi(6) // Tula
		}
	case D20:
		switch element {
		case 0:
			return Rashi(0)
		case 1:
			return Rashi(8) // Dhanu
		default:
			return Rashi(4) // Simha
		}
	case D24:
		if odd {
			return Rashi(4) // Simha
		}
		return Rashi(3) // Karka
	case D27:
		switch int(input) % 4 {
		case 0:
			return Rashi(0) // fire: Mesha
		case 1:
			return Rashi(3) // earth: Karka
		case 2:
			return Rashi(6) // air: Tula
		default:
			return Rashi(9) // water: Makara
		}
	case D30:
		// Simplified: starts each part from the input rashi itself rather than
		// the classical odd/even-specific starting-sign table, which wasn't
		// available to transcribe from the retrieval pack.
		return input
	case D40:
		if odd {
			return Rashi(0)
		}
		return Rashi(6)
	case D45:
		switch element {
		case 0:
			return Rashi(0)
		case 1:
			return Rashi(4)
		default:
			return Rashi(8)
		}
	case D60:
		// Same simplification as D30: equal subdivision of the sign with no
		// starting-point offset, in the absence of the classical table.
		return input
	default:
		return input
	}
}

// MapDivisional maps a sidereal position through a divisional scheme,
// returning the output rashi it falls in.
func MapDivisional(scheme DivisionalScheme, siderealLonDeg float64) DivisionalResult {
	input := RashiOf(siderealLonDeg)
	degreeWithin := math.Mod(siderealLonDeg, degreesPerRashi)
	if degreeWithin < 0 {
		degreeWithin += degreesPerRashi
	}
	n := scheme.divisions()
	part := partIndex(degreeWithin, n)

	var output Rashi
	if scheme == D3 {
		// Drekkana: parts land on the input sign and its two trine signs.
		output = Rashi((int(input) + part*4) % 12)
	} else {
		start := scheme.startRashi(input)
		output = Rashi((int(start) + part) % 12)
	}

	return DivisionalResult{
		Scheme:           scheme,
		InputRashi:       input,
		DegreeWithinSign: degreeWithin,
		OutputRashi:      output,
	}
}
