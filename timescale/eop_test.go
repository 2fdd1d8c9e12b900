package timescale

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

// buildEOPLine lays out mjd/pmx/pmy/dut1 at the fixed columns ParseEOP reads,
// mirroring the finals2000A.all Bulletin A layout closely enough for tests.
func buildEOPLine(mjd, pmx, pmy, dut1 float64) string {
	line := []byte(strings.Repeat(" ", 80))
	put := func(start int, s string) {
		copy(line[start:], s)
	}
	put(colMJDStart, fmt.Sprintf("%8.2f", mjd))
	put(colPMXStart, fmt.Sprintf("%9.6f", pmx))
	put(colPMYStart, fmt.Sprintf("%9.6f", pmy))
	put(colDUT1Start, fmt.Sprintf("%10.7f", dut1))
	return string(line)
}

func sampleEOP(t *testing.T) *EOP {
	t.Helper()
	var lines []string
	base := 60310.0
	for i := 0; i < 5; i++ {
		mjd := base + float64(i)
		lines = append(lines, buildEOPLine(mjd, 0.1+0.001*float64(i), 0.2+0.001*float64(i), -0.05+0.01*float64(i)))
	}
	eop, err := ParseEOP(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("ParseEOP: %v", err)
	}
	return eop
}

func TestParseEOPRowCount(t *testing.T) {
	eop := sampleEOP(t)
	if eop.Len() != 5 {
		t.Fatalf("got %d rows, want 5", eop.Len())
	}
}

func TestDUT1AtMJDInterpolates(t *testing.T) {
	eop := sampleEOP(t)
	first, _ := eop.Range()
	mid := first + 0.5
	dut1, err := eop.DUT1AtMJD(mid)
	if err != nil {
		t.Fatalf("DUT1AtMJD: %v", err)
	}
	want := -0.05 + 0.005 // halfway between row 0 (-0.05) and row 1 (-0.04)
	if math.Abs(dut1-want) > 1e-6 {
		t.Errorf("DUT1AtMJD(mid) = %v, want %v", dut1, want)
	}
}

func TestDUT1AtMJDOutOfRange(t *testing.T) {
	eop := sampleEOP(t)
	first, last := eop.Range()
	if _, err := eop.DUT1AtMJD(first - 10); err == nil {
		t.Error("expected error below range")
	}
	if _, err := eop.DUT1AtMJD(last + 10); err == nil {
		t.Error("expected error above range")
	}
}
