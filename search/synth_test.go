package search

import (
	"encoding/binary"
	"math"
	"os"
	"testing"

	"github.com/anupshinde/vediceph/engine"
	"github.com/anupshinde/vediceph/spk"
)

type synthSeg struct {
	target, center int
	x, y, z        float64
}

// staticTestEngine builds an Engine over a synthetic SPK kernel where every
// body sits at a fixed Cartesian position (zero velocity), for exercising
// search-layer plumbing (error propagation, window bounds) without a real
// moving-body ephemeris.
func staticTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	path := writeSynthKernel(t, []synthSeg{
		{spk.Sun, spk.SSB, 1.5e8, 0, 0},
		{spk.Mars, spk.SSB, 2.2e8, 5.0e7, 0},
		{spk.EarthMoonBary, spk.SSB, 1.49e8, 1.0e6, 0},
		{spk.Earth, spk.EarthMoonBary, -4.0e3, 0, 0},
		{spk.Moon, spk.EarthMoonBary, 3.8e5, 1.0e4, 2.0e3},
	})
	kernel, err := spk.Open(path)
	if err != nil {
		t.Fatalf("spk.Open: %v", err)
	}
	return engine.NewEngineFromKernel(kernel, nil, engine.EngineConfig{})
}

func writeSynthKernel(t *testing.T, segs []synthSeg) string {
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

	f, err := os.CreateTemp("", "search-test*.bsp")
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
