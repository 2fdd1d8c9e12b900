package vedic

import (
	"github.com/anupshinde/vediceph/errs"
)

// DaysPerYear is the civil-year length used to turn dasha durations
// (expressed in years by every classical table) into Julian-day spans.
const DaysPerYear = 365.25

// DashaSystem names a period-hierarchy scheme. Nakshatra-anchored systems
// (Vimshottari, Ashtottari) key off the Moon's birth position; rashi-anchored
// systems (Shoola, Sthira) key off sign strength.
type DashaSystem int

const (
	Vimshottari DashaSystem = iota
	Ashtottari
	Shoola
	SthiraDasha
)

func (s DashaSystem) String() string {
	switch s {
	case Vimshottari:
		return "Vimshottari"
	case Ashtottari:
		return "Ashtottari"
	case Shoola:
		return "Shoola"
	case SthiraDasha:
		return "Sthira"
	default:
		return "unknown"
	}
}

// SubPeriodMethod decides how a parent period's span is divided among its
// children at every level below the root.
type SubPeriodMethod int

const (
	// Equal splits the parent span into equal shares, one per child entity.
	Equal SubPeriodMethod = iota
	// Proportional divides the parent span using each child's weight over
	// the system's fixed total-cycle weight (nakshatra dashas: every level
	// divides the same 9- or 8-lord cycle, so the denominator never changes).
	Proportional
	// ProportionalFromParent divides the parent span using each child's
	// weight over the sum of weights of the immediate child set, so the
	// denominator is local to that parent rather than the whole cycle
	// (Shoola's classical sub-period rule).
	ProportionalFromParent
)

// DashaEntity is a tagged reference to either a graha (0=Sun..8=Ketu, using
// the nine-graha Vedic order) or a rashi, depending on the owning system.
type DashaEntity struct {
	IsRashi bool
	Index   int
	Name    string
}

// DashaPeriod is one interval at one level of a dasha hierarchy.
type DashaPeriod struct {
	Entity    DashaEntity
	Level     int
	Ordinal   int
	StartJD   float64
	EndJD     float64
	ParentIdx int // index into the parent level's slice, -1 at level 0
}

// DashaHierarchy is the full nested period tree, flattened level by level:
// Levels[0] is the Mahadasha sequence, Levels[1] its Antardashas, and so on.
type DashaHierarchy struct {
	System DashaSystem
	Levels [][]DashaPeriod
}

// NakshatraDashaConfig parameterizes a nakshatra-anchored dasha system.
type NakshatraDashaConfig struct {
	System          DashaSystem
	LordYears       []float64           // years per lord, in cycle order
	LordNames       []string            // len == len(LordYears)
	LordForNakshatra func(nakshatraIndex int) int
	TotalYears      float64
}

// BuildNakshatraHierarchy builds a nakshatra-anchored dasha tree (e.g.
// Vimshottari) from the Moon's sidereal longitude at birth. Level 0 starts
// mid-stride: the first period's remaining balance reflects how far the
// Moon had already travelled through its birth nakshatra. Every level below
// 0 subdivides its parent's span proportionally across the full lord cycle,
// starting from the parent's own lord.
func BuildNakshatraHierarchy(config NakshatraDashaConfig, moonSiderealLon, birthJD float64, maxLevel int) (DashaHierarchy, error) {
	k := len(config.LordYears)
	if k == 0 || k != len(config.LordNames) {
		return DashaHierarchy{}, errs.New(errs.InvalidInput, "nakshatra dasha config: lord tables must be non-empty and equal length")
	}
	if maxLevel < 0 {
		return DashaHierarchy{}, errs.New(errs.InvalidInput, "nakshatra dasha: maxLevel must be >= 0")
	}

	nakIdx := int(NakshatraOf(moonSiderealLon))
	withinArc := moonSiderealLon - float64(nakIdx)*degreesPerNakshatra
	if withinArc < 0 {
		withinArc += degreesPerNakshatra
	}
	balanceFraction := 1.0 - withinArc/degreesPerNakshatra

	startLord := config.LordForNakshatra(nakIdx) % k

	level0 := make([]DashaPeriod, 0, k)
	cursor := birthJD
	for i := 0; i < k; i++ {
		lord := (startLord + i) % k
		years := config.LordYears[lord]
		if i == 0 {
			years *= balanceFraction
		}
		span := years * DaysPerYear
		level0 = append(level0, DashaPeriod{
			Entity:    DashaEntity{IsRashi: false, Index: lord, Name: config.LordNames[lord]},
			Level:     0,
			Ordinal:   i,
			StartJD:   cursor,
			EndJD:     cursor + span,
			ParentIdx: -1,
		})
		cursor += span
	}

	hierarchy := DashaHierarchy{System: config.System, Levels: [][]DashaPeriod{level0}}

	parentLevel := level0
	for level := 1; level <= maxLevel; level++ {
		var children []DashaPeriod
		for parentIdx, parent := range parentLevel {
			parentSpan := parent.EndJD - parent.StartJD
			childCursor := parent.StartJD
			parentLord := parent.Entity.Index
			for i := 0; i < k; i++ {
				lord := (parentLord + i) % k
				share := config.LordYears[lord] / config.TotalYears
				span := parentSpan * share
				children = append(children, DashaPeriod{
					Entity:    DashaEntity{IsRashi: false, Index: lord, Name: config.LordNames[lord]},
					Level:     level,
					Ordinal:   i,
					StartJD:   childCursor,
					EndJD:     childCursor + span,
					ParentIdx: parentIdx,
				})
				childCursor += span
			}
			if n := len(children); n > 0 {
				children[n-1].EndJD = parent.EndJD
			}
		}
		hierarchy.Levels = append(hierarchy.Levels, children)
		parentLevel = children
	}

	return hierarchy, nil
}

// BuildRashiHierarchy builds a rashi-anchored dasha tree (e.g. Shoola) from
// an already-computed root (level 0) sequence. periodYears supplies each
// rashi's classical period length; method controls how deeper levels
// normalize their children's shares.
func BuildRashiHierarchy(system DashaSystem, level0 []DashaPeriod, periodYears func(rashi int) float64, totalYears float64, method SubPeriodMethod, maxLevel int) (DashaHierarchy, error) {
	if len(level0) == 0 {
		return DashaHierarchy{}, errs.New(errs.InvalidInput, "rashi dasha: level0 must be non-empty")
	}
	if maxLevel < 0 {
		return DashaHierarchy{}, errs.New(errs.InvalidInput, "rashi dasha: maxLevel must be >= 0")
	}

	hierarchy := DashaHierarchy{System: system, Levels: [][]DashaPeriod{level0}}

	parentLevel := level0
	for level := 1; level <= maxLevel; level++ {
		var children []DashaPeriod
		for parentIdx, parent := range parentLevel {
			parentSpan := parent.EndJD - parent.StartJD
			childCursor := parent.StartJD

			weights := make([]float64, 12)
			localTotal := 0.0
			for r := 0; r < 12; r++ {
				w := periodYears(r)
				weights[r] = w
				localTotal += w
			}

			denom := totalYears
			if method == ProportionalFromParent {
				denom = localTotal
			}

			startRashi := parent.Entity.Index
			for i := 0; i < 12; i++ {
				rashi := JumpRashi(startRashi, i)
				var share float64
				switch method {
				case Equal:
					share = 1.0 / 12.0
				default:
					share = weights[rashi] / denom
				}
				span := parentSpan * share
				children = append(children, DashaPeriod{
					Entity:    DashaEntity{IsRashi: true, Index: rashi, Name: Rashi(rashi).String()},
					Level:     level,
					Ordinal:   i,
					StartJD:   childCursor,
					EndJD:     childCursor + span,
					ParentIdx: parentIdx,
				})
				childCursor += span
			}
			if n := len(children); n > 0 {
				children[n-1].EndJD = parent.EndJD
			}
		}
		hierarchy.Levels = append(hierarchy.Levels, children)
		parentLevel = children
	}

	return hierarchy, nil
}

// PeriodAt returns the period active at jd within a given level, if any.
func (h DashaHierarchy) PeriodAt(level int, jd float64) (DashaPeriod, bool) {
	if level < 0 || level >= len(h.Levels) {
		return DashaPeriod{}, false
	}
	periods := h.Levels[level]
	for _, p := range periods {
		if jd >= p.StartJD && jd < p.EndJD {
			return p, true
		}
	}
	if n := len(periods); n > 0 && jd == periods[n-1].EndJD {
		return periods[n-1], true
	}
	return DashaPeriod{}, false
}
