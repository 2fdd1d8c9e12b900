package vedic

// shoolaTotalYears is the fixed span of a full Shoola dasha cycle: four
// movable signs at 7 years, four fixed at 8, four dual at 9 (4*7+4*8+4*9=96).
const shoolaTotalYears = 96.0

func shoolaPeriodYears(rashi int) float64 {
	switch SignTypeOf(rashi) {
	case Chara:
		return 7
	case Sthira:
		return 8
	default:
		return 9
	}
}

// ShoolaLevel0 builds the Mahadasha sequence for the Shoola rashi dasha. The
// cycle starts from whichever of the 2nd or 8th house from the ascendant is
// judged stronger (house2Stronger, supplied by the caller from a chart
// strength assessment outside this package's scope) and proceeds forward
// through the zodiac when that house falls in an odd sign, backward when
// it falls in an even sign.
func ShoolaLevel0(lagnaRashi int, house2Stronger bool, birthJD float64) []DashaPeriod {
	house2 := JumpRashi(lagnaRashi, 1)
	house8 := JumpRashi(lagnaRashi, 7)
	start := house8
	if house2Stronger {
		start = house2
	}
	forward := IsOddSign(start)

	periods := make([]DashaPeriod, 0, 12)
	cursor := birthJD
	for i := 0; i < 12; i++ {
		offset := i
		if !forward {
			offset = -i
		}
		rashi := JumpRashi(start, offset)
		span := shoolaPeriodYears(rashi) * DaysPerYear
		periods = append(periods, DashaPeriod{
			Entity:    DashaEntity{IsRashi: true, Index: rashi, Name: Rashi(rashi).String()},
			Level:     0,
			Ordinal:   i,
			StartJD:   cursor,
			EndJD:     cursor + span,
			ParentIdx: -1,
		})
		cursor += span
	}
	return periods
}

// BuildShoolaHierarchy builds a full Shoola dasha tree from the ascendant
// and the caller's house2-vs-house8 strength call.
func BuildShoolaHierarchy(lagnaRashi int, house2Stronger bool, birthJD float64, maxLevel int) (DashaHierarchy, error) {
	level0 := ShoolaLevel0(lagnaRashi, house2Stronger, birthJD)
	return BuildRashiHierarchy(Shoola, level0, shoolaPeriodYears, shoolaTotalYears, ProportionalFromParent, maxLevel)
}

// sthiraTotalYears mirrors Shoola's 96-year span under a different
// sign-type-to-length permutation (movable 9, fixed 7, dual 8). The source
// for this variant's exact classical rule was not available to ground
// against; the period table and house-pair rule below are a documented,
// structurally analogous construction rather than a verified transcription.
const sthiraTotalYears = 96.0

func sthiraPeriodYears(rashi int) float64 {
	switch SignTypeOf(rashi) {
	case Chara:
		return 9
	case Sthira:
		return 7
	default:
		return 8
	}
}

// SthiraLevel0 builds the Mahadasha sequence for the Sthira rashi dasha,
// anchored on the stronger of the 4th/10th houses from the ascendant.
func SthiraLevel0(lagnaRashi int, house10Stronger bool, birthJD float64) []DashaPeriod {
	house4 := JumpRashi(lagnaRashi, 3)
	house10 := JumpRashi(lagnaRashi, 9)
	start := house4
	if house10Stronger {
		start = house10
	}
	forward := IsOddSign(start)

	periods := make([]DashaPeriod, 0, 12)
	cursor := birthJD
	for i := 0; i < 12; i++ {
		offset := i
		if !forward {
			offset = -i
		}
		rashi := JumpRashi(start, offset)
		span := sthiraPeriodYears(rashi) * DaysPerYear
		periods = append(periods, DashaPeriod{
			Entity:    DashaEntity{IsRashi: true, Index: rashi, Name: Rashi(rashi).String()},
			Level:     0,
			Ordinal:   i,
			StartJD:   cursor,
			EndJD:     cursor + span,
			ParentIdx: -1,
		})
		cursor += span
	}
	return periods
}

// BuildSthiraHierarchy builds a full Sthira dasha tree from the ascendant
// and the caller's house4-vs-house10 strength call.
func BuildSthiraHierarchy(lagnaRashi int, house10Stronger bool, birthJD float64, maxLevel int) (DashaHierarchy, error) {
	level0 := SthiraLevel0(lagnaRashi, house10Stronger, birthJD)
	return BuildRashiHierarchy(SthiraDasha, level0, sthiraPeriodYears, sthiraTotalYears, ProportionalFromParent, maxLevel)
}
