package vedic

import (
	"encoding/binary"
	"math"
	"os"
	"testing"

	"github.com/anupshinde/vediceph/engine"
	"github.com/anupshinde/vediceph/spk"
)

func TestGrahaNamesAndOrder(t *testing.T) {
	all := AllGrahas()
	if len(all) != 9 {
		t.Fatalf("expected 9 grahas, got %d", len(all))
	}
	if all[0] != GSun || all[8] != GKetu {
		t.Errorf("unexpected graha order: first=%v last=%v", all[0], all[8])
	}
	if GSun.String() != "Sun" || GKetu.String() != "Ketu" {
		t.Errorf("unexpected graha names: %q %q", GSun.String(), GKetu.String())
	}
}

func TestLongitudeEntryDerivesIndices(t *testing.T) {
	e := longitudeEntry(GSun, 40.0, 1.5, 10.0)
	if e.TropicalLonDeg != 40.0 {
		t.Errorf("TropicalLonDeg = %v, want 40", e.TropicalLonDeg)
	}
	if e.SiderealLonDeg != 30.0 {
		t.Errorf("SiderealLonDeg = %v, want 30", e.SiderealLonDeg)
	}
	if e.Rashi != RashiOf(30.0) {
		t.Errorf("Rashi mismatch: got %v", e.Rashi)
	}
}

func TestGrahaPositionsFromSyntheticKernel(t *testing.T) {
	path := writeGrahaTestKernel(t)
	kernel, err := spk.Open(path)
	if err != nil {
		t.Fatalf("spk.Open: %v", err)
	}
	eng := engine.NewEngineFromKernel(kernel, nil, engine.EngineConfig{})

	positions, err := GrahaPositions(eng, J2000JD, Lahiri, false)
	if err != nil {
		t.Fatalf("GrahaPositions: %v", err)
	}

	if positions.System != Lahiri {
		t.Errorf("System = %v, want Lahiri", positions.System)
	}
	for _, g := range AllGrahas() {
		p := positions.Positions[g]
		if p.SiderealLonDeg < 0 || p.SiderealLonDeg >= 360 {
			t.Errorf("%v sidereal longitude out of range: %v", g, p.SiderealLonDeg)
		}
	}
	// Rahu and Ketu must remain exactly antipodal after ayanamsha subtraction.
	rahu := positions.Positions[GRahu].SiderealLonDeg
	ketu := positions.Positions[GKetu].SiderealLonDeg
	diff := math.Mod(ketu-rahu+720, 360)
	if math.Abs(diff-180) > 1e-6 {
		t.Errorf("Rahu/Ketu not antipodal after sidereal conversion: diff=%v", diff)
	}
}

type grahaTestSeg struct {
	target, center int
	x, y, z        float64
}

// writeGrahaTestKernel assembles a synthetic SPK covering the seven
// physical grahas plus the Earth-Moon chain, enough to exercise
// GrahaPositions end to end without a real DE44x binary.
func writeGrahaTestKernel(t *testing.T) string {
	t.Helper()
	segs := []grahaTestSeg{
		{spk.Sun, spk.SSB, 1.5e8, 0, 0},
		{spk.Mercury, spk.SSB, 5.0e7, 2.0e7, 0},
		{spk.Venus, spk.SSB, 1.0e8, -3.0e7, 0},
		{spk.Mars, spk.SSB, 2.2e8, 1.0e7, 0},
		{spk.Jupiter, spk.SSB, 7.0e8, -5.0e7, 0},
		{spk.Saturn, spk.SSB, 1.4e9, 6.0e7, 0},
		{spk.EarthMoonBary, spk.SSB, 1.49e8, 1.0e6, 0},
		{spk.Earth, spk.EarthMoonBary, -4.0e3, 0, 0},
		{spk.Moon, spk.EarthMoonBary, 3.8e5, 1.0e4, 2.0e3},
	}

	const recordLen = 1024
	const nd, ni = 2, 6
	summaryBytes := (nd + (ni+1)/2) * 8

	fileRec := make([]byte, recordLen)
	copy(fileRec[0:8], "DAF/SPK ")
	binary.LittleEndian.PutUint32(fileRec[8:12], nd)
	binary.LittleEndian.PutUint32(fileRec[12:16], ni)
	binary.LittleEndian.PutUint32(fileRec[76:80], 2)
	copy(fileRec[88:96], "LTL-IEEE")

	summaryRec := make([]byte, recordLen)
	binary.LittleEndian.PutUint64(summaryRec[16:24], math.Float64bits(float64(len(segs))))

	var dataBuf []byte
	wordCursor := 2 * recordLen / 8
	pos := 24
	const startSec, endSec = -1.0e8, 1.0e8

	for _, s := range segs {
		mid := (startSec + endSec) / 2
		half := (endSec - startSec) / 2
		words := []float64{mid, half, s.x, s.y, s.z, startSec, half * 2, 5, 1}
		startWord := wordCursor
		endWord := startWord + len(words) - 1
		wordCursor = endWord + 1
		for _, w := range words {
			b := make([]byte, 8)
			binary.LittleEndian.PutUint64(b, math.Float64bits(w))
			dataBuf = append(dataBuf, b...)
		}

		summary := summaryRec[pos : pos+summaryBytes]
		binary.LittleEndian.PutUint64(summary[0:8], math.Float64bits(startSec))
		binary.LittleEndian.PutUint64(summary[8:16], math.Float64bits(endSec))
		intOff := nd * 8
		binary.LittleEndian.PutUint32(summary[intOff:], uint32(int32(s.target)))
		binary.LittleEndian.PutUint32(summary[intOff+4:], uint32(int32(s.center)))
		binary.LittleEndian.PutUint32(summary[intOff+8:], 1)
		binary.LittleEndian.PutUint32(summary[intOff+12:], 2)
		binary.LittleEndian.PutUint32(summary[intOff+16:], uint32(int32(startWord+1)))
		binary.LittleEndian.PutUint32(summary[intOff+20:], uint32(int32(endWord+1)))
		pos += summaryBytes
	}

	buf := append([]byte{}, fileRec...)
	buf = append(buf, summaryRec...)
	buf = append(buf, dataBuf...)

	f, err := os.CreateTemp("", "graha-test*.bsp")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write(buf); err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })
	return f.Name()
}
