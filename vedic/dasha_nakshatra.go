package vedic

// vimshottariLordOrder is the fixed nine-lord cycle, repeated three times
// across the 27 nakshatras starting at Ashwini.
var vimshottariLordOrder = []string{"Ketu", "Venus", "Sun", "Moon", "Mars", "Rahu", "Jupiter", "Saturn", "Mercury"}
var vimshottariLordYears = []float64{7, 20, 6, 10, 7, 18, 16, 19, 17} // sums to 120

// VimshottariConfig returns the standard 120-year, nine-lord nakshatra
// dasha configuration.
func VimshottariConfig() NakshatraDashaConfig {
	return NakshatraDashaConfig{
		System:    Vimshottari,
		LordYears: append([]float64(nil), vimshottariLordYears...),
		LordNames: append([]string(nil), vimshottariLordOrder...),
		LordForNakshatra: func(nakshatraIndex int) int {
			return ((nakshatraIndex % 27) + 27) % 9
		},
		TotalYears: 120,
	}
}

// ashtottariLordOrder is the eight-lord cycle used by the Ashtottari system.
// Unlike Vimshottari, the classical lord-per-nakshatra assignment depends on
// a visibility-based nakshatra grouping rather than a plain 27-mod-8 cycle;
// this implementation uses the simpler modular assignment as a documented
// approximation, since the full conditional table was not available to
// ground against.
var ashtottariLordOrder = []string{"Sun", "Moon", "Mars", "Mercury", "Saturn", "Jupiter", "Rahu", "Venus"}
var ashtottariLordYears = []float64{6, 15, 8, 17, 10, 19, 12, 21} // sums to 108

// AshtottariConfig returns the 108-year, eight-lord nakshatra dasha
// configuration.
func AshtottariConfig() NakshatraDashaConfig {
	return NakshatraDashaConfig{
		System:    Ashtottari,
		LordYears: append([]float64(nil), ashtottariLordYears...),
		LordNames: append([]string(nil), ashtottariLordOrder...),
		LordForNakshatra: func(nakshatraIndex int) int {
			return ((nakshatraIndex % 27) + 27) % 8
		},
		TotalYears: 108,
	}
}
