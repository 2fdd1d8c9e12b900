package vedic

import (
	"math"
	"testing"
)

func TestBuildNakshatraHierarchyLevel0SumsToTotalYears(t *testing.T) {
	config := VimshottariConfig()
	h, err := BuildNakshatraHierarchy(config, 0, 0, 1)
	if err != nil {
		t.Fatalf("BuildNakshatraHierarchy: %v", err)
	}
	level0 := h.Levels[0]
	if len(level0) != 9 {
		t.Fatalf("expected 9 mahadasha periods, got %d", len(level0))
	}
	span := level0[len(level0)-1].EndJD - level0[0].StartJD
	wantFullCycle := config.TotalYears * DaysPerYear
	// moonSiderealLon=0 sits exactly on a nakshatra boundary, so the first
	// period should run its full, unreduced length and the whole cycle
	// should equal the full 120-year span.
	if math.Abs(span-wantFullCycle) > 1e-6 {
		t.Errorf("level0 span = %v days, want %v", span, wantFullCycle)
	}
}

func TestBuildNakshatraHierarchyBalanceFraction(t *testing.T) {
	config := VimshottariConfig()
	arc := degreesPerNakshatra
	// Halfway through the birth nakshatra: balance fraction should be 0.5.
	h, err := BuildNakshatraHierarchy(config, arc/2, 1000.0, 0)
	if err != nil {
		t.Fatalf("BuildNakshatraHierarchy: %v", err)
	}
	first := h.Levels[0][0]
	gotYears := (first.EndJD - first.StartJD) / DaysPerYear
	wantYears := config.LordYears[first.Entity.Index] * 0.5
	if math.Abs(gotYears-wantYears) > 1e-9 {
		t.Errorf("first period = %v years, want %v", gotYears, wantYears)
	}
}

func TestNakshatraHierarchyChildrenTileParent(t *testing.T) {
	config := VimshottariConfig()
	h, err := BuildNakshatraHierarchy(config, 0, 0, 1)
	if err != nil {
		t.Fatalf("BuildNakshatraHierarchy: %v", err)
	}
	parent := h.Levels[0][0]
	var childSpan float64
	for _, child := range h.Levels[1] {
		if child.ParentIdx != 0 {
			continue
		}
		childSpan += child.EndJD - child.StartJD
	}
	parentSpan := parent.EndJD - parent.StartJD
	if math.Abs(childSpan-parentSpan) > 1e-6 {
		t.Errorf("children span = %v, parent span = %v", childSpan, parentSpan)
	}
}

func TestBuildRashiHierarchyEqualMethod(t *testing.T) {
	level0 := ShoolaLevel0(0, true, 0)
	h, err := BuildRashiHierarchy(Shoola, level0, shoolaPeriodYears, shoolaTotalYears, Equal, 1)
	if err != nil {
		t.Fatalf("BuildRashiHierarchy: %v", err)
	}
	parent := h.Levels[0][0]
	parentSpan := parent.EndJD - parent.StartJD
	firstChildSpan := h.Levels[1][0].EndJD - h.Levels[1][0].StartJD
	if math.Abs(firstChildSpan-parentSpan/12.0) > 1e-9 {
		t.Errorf("equal-method child span = %v, want %v", firstChildSpan, parentSpan/12.0)
	}
}

func TestDashaHierarchyPeriodAt(t *testing.T) {
	config := VimshottariConfig()
	h, err := BuildNakshatraHierarchy(config, 0, 1000.0, 0)
	if err != nil {
		t.Fatalf("BuildNakshatraHierarchy: %v", err)
	}
	first := h.Levels[0][0]
	mid := (first.StartJD + first.EndJD) / 2
	got, ok := h.PeriodAt(0, mid)
	if !ok || got.Ordinal != 0 {
		t.Errorf("PeriodAt(0, mid of first period) = %+v, ok=%v", got, ok)
	}
}

func TestInvalidConfigRejected(t *testing.T) {
	if _, err := BuildNakshatraHierarchy(NakshatraDashaConfig{}, 0, 0, 0); err == nil {
		t.Errorf("expected error for empty config")
	}
	if _, err := BuildRashiHierarchy(Shoola, nil, shoolaPeriodYears, shoolaTotalYears, Equal, 0); err == nil {
		t.Errorf("expected error for empty level0")
	}
}
