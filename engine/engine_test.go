package engine

import (
	"encoding/binary"
	"math"
	"os"
	"testing"

	"github.com/anupshinde/vediceph/spk"
)

func TestQueryAntisymmetry(t *testing.T) {
	kernel := twoBodyKernel(t)
	e := NewEngineFromKernel(kernel, nil, EngineConfig{})

	ab, err := e.Query(spk.Sun, spk.Earth, 2451545.0, ICRF)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := e.Query(spk.Earth, spk.Sun, 2451545.0, ICRF)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if math.Abs(ab.PositionKm[i]+ba.PositionKm[i]) > 1e-9 {
			t.Errorf("position[%d] not antisymmetric: %v vs %v", i, ab.PositionKm[i], ba.PositionKm[i])
		}
		if math.Abs(ab.VelocityKmS[i]+ba.VelocityKmS[i]) > 1e-9 {
			t.Errorf("velocity[%d] not antisymmetric: %v vs %v", i, ab.VelocityKmS[i], ba.VelocityKmS[i])
		}
	}
}

func TestQueryEclipticRotatesOnlyOffAxis(t *testing.T) {
	kernel := twoBodyKernel(t)
	e := NewEngineFromKernel(kernel, nil, EngineConfig{})

	icrf, err := e.Query(spk.Sun, spk.Earth, 2451545.0, ICRF)
	if err != nil {
		t.Fatal(err)
	}
	ecl, err := e.Query(spk.Sun, spk.Earth, 2451545.0, EclipticJ2000)
	if err != nil {
		t.Fatal(err)
	}
	// X-axis rotation leaves the x-component fixed.
	if math.Abs(icrf.PositionKm[0]-ecl.PositionKm[0]) > 1e-9 {
		t.Errorf("x component changed under ecliptic rotation: %v vs %v", icrf.PositionKm[0], ecl.PositionKm[0])
	}
}

func TestQueryUnsupportedFrame(t *testing.T) {
	kernel := twoBodyKernel(t)
	e := NewEngineFromKernel(kernel, nil, EngineConfig{})
	if _, err := e.Query(spk.Sun, spk.Earth, 2451545.0, Frame(99)); err == nil {
		t.Fatal("expected error for unsupported frame")
	}
}

func TestQueryRejectsNaNEpoch(t *testing.T) {
	kernel := twoBodyKernel(t)
	e := NewEngineFromKernel(kernel, nil, EngineConfig{})
	if _, err := e.Query(spk.Sun, spk.Earth, math.NaN(), ICRF); err == nil {
		t.Fatal("expected error for NaN epoch")
	}
}

func TestNewEngineRequiresSPKPath(t *testing.T) {
	if _, err := NewEngine(EngineConfig{}); err == nil {
		t.Fatal("expected error for missing SPKPath")
	}
}

// twoBodyKernel opens a tiny synthetic SPK kernel with Sun and Earth
// segments relative to SSB, suitable for exercising Query without shipping
// a real DE44x binary.
func twoBodyKernel(t *testing.T) *spk.SPK {
	t.Helper()
	path := writeTestKernel(t, []testSeg{
		{target: spk.Sun, center: spk.SSB, x: 1.5e8, y: 0, z: 1.0e6},
		{target: spk.Earth, center: spk.SSB, x: 1.0e8, y: 2.0e6, z: 0},
	})
	kernel, err := spk.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	return kernel
}

type testSeg struct {
	target, center int
	x, y, z        float64
}

// writeTestKernel assembles a minimal DAF/SPK file with one Type-2,
// single-constant-coefficient, single-record segment per entry in segs,
// each covering a wide TDB-seconds interval around J2000.
func writeTestKernel(t *testing.T, segs []testSeg) string {
	t.Helper()
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

	f, err := os.CreateTemp("", "engine-test*.bsp")
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
