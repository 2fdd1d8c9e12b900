// Package spk reads binary DAF/SPK ephemeris kernels (JPL DE44x-style
// Chebyshev position/velocity segments) and evaluates geometric body-to-body
// state vectors. Light-time correction, gravitational deflection, and
// stellar aberration are explicitly out of scope: every query here is the
// instantaneous geometric state at the requested epoch.
package spk

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/anupshinde/vediceph/chebyshev"
	"github.com/anupshinde/vediceph/errs"
	"github.com/anupshinde/vediceph/timescale"
)

const (
	recordLen = 1024

	// DefaultCacheCapacity is the default number of decoded records held by
	// the record cache.
	DefaultCacheCapacity = 256
)

// SPK holds a parsed SPK/DAF ephemeris file (supports Type 2 and Type 3
// segments, frame 1/J2000) and a bounded LRU cache of decoded records.
type SPK struct {
	segments []segment
	segMap   map[[2]int][]*segment // [target, center] → segments (sorted by startSec)
	chains   map[int][]chainLink   // body ID → chain of segment steps to SSB
	cache    *recordCache
}

// chainLink represents one hop in a body's chain to SSB.
type chainLink struct {
	target int
	center int
}

type segment struct {
	index    int
	target   int
	center   int
	dataType int     // SPK segment type (2 or 3)
	startSec float64 // segment start epoch (TDB seconds past J2000) from DAF summary
	endSec   float64 // segment end epoch (TDB seconds past J2000) from DAF summary
	init     float64 // initial epoch (TDB seconds past J2000) from segment metadata
	intLen   float64 // interval length (seconds)
	rsize    int     // record size (doubles per record)
	n        int     // number of records
	nCoeffs  int     // Chebyshev coefficients per component
	data     []float64
}

// SegmentInfo describes one loaded segment, for callers (notably the engine
// package) that need to report chain-resolution diagnostics.
type SegmentInfo struct {
	Target, Center, DataType       int
	StartSec, EndSec               float64
}

// Segments returns descriptors for every segment found in the kernel.
func (s *SPK) Segments() []SegmentInfo {
	out := make([]SegmentInfo, len(s.segments))
	for i, seg := range s.segments {
		out[i] = SegmentInfo{
			Target: seg.target, Center: seg.center, DataType: seg.dataType,
			StartSec: seg.startSec, EndSec: seg.endSec,
		}
	}
	return out
}

// Open reads and parses an SPK file with the default cache capacity. Type 2
// and Type 3 segments are supported.
func Open(filename string) (*SPK, error) {
	return OpenWithCacheCapacity(filename, DefaultCacheCapacity)
}

// OpenWithCacheCapacity is Open with an explicit record-cache capacity.
func OpenWithCacheCapacity(filename string, cacheCapacity int) (*SPK, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errs.Wrap(errs.KernelIo, filename, err)
	}
	defer f.Close()

	fileRec := make([]byte, recordLen)
	if _, err := f.Read(fileRec); err != nil {
		return nil, errs.Wrap(errs.KernelIo, "reading file record", err)
	}

	byteOrder, err := daefEndianness(fileRec)
	if err != nil {
		return nil, err
	}

	locidw := string(fileRec[0:8])
	if locidw != "DAF/SPK " {
		return nil, errs.New(errs.MalformedKernel, fmt.Sprintf("not an SPK file: got %q", locidw))
	}

	nd := int(byteOrder.Uint32(fileRec[8:12]))
	ni := int(byteOrder.Uint32(fileRec[12:16]))
	fward := int(byteOrder.Uint32(fileRec[76:80]))

	summaryDoubles := nd + (ni+1)/2
	summaryBytes := summaryDoubles * 8

	spk := &SPK{
		segMap: make(map[[2]int][]*segment),
		chains: make(map[int][]chainLink),
		cache:  newRecordCache(cacheCapacity),
	}

	recNum := fward
	for recNum != 0 {
		offset := int64(recNum-1) * recordLen
		if _, err := f.Seek(offset, 0); err != nil {
			return nil, errs.Wrap(errs.KernelIo, "seeking summary record", err)
		}
		rec := make([]byte, recordLen)
		if _, err := f.Read(rec); err != nil {
			return nil, errs.Wrap(errs.KernelIo, "reading summary record", err)
		}

		nextRec := math.Float64frombits(byteOrder.Uint64(rec[0:8]))
		nSummaries := int(math.Float64frombits(byteOrder.Uint64(rec[16:24])))

		pos := 24
		for i := 0; i < nSummaries; i++ {
			summary := rec[pos : pos+summaryBytes]

			startSec := math.Float64frombits(byteOrder.Uint64(summary[0:8]))
			endSec := math.Float64frombits(byteOrder.Uint64(summary[8:16]))

			intOff := nd * 8
			target := int(int32(byteOrder.Uint32(summary[intOff:])))
			center := int(int32(byteOrder.Uint32(summary[intOff+4:])))
			dataType := int(int32(byteOrder.Uint32(summary[intOff+12:])))
			startI := int(int32(byteOrder.Uint32(summary[intOff+16:])))
			endI := int(int32(byteOrder.Uint32(summary[intOff+20:])))

			if dataType != 2 && dataType != 3 {
				return nil, errs.New(errs.UnsupportedSegment,
					fmt.Sprintf("unsupported SPK type %d (target=%d, center=%d)", dataType, target, center))
			}

			nWords := endI - startI + 1
			dataOffset := int64(startI-1) * 8
			if _, err := f.Seek(dataOffset, 0); err != nil {
				return nil, errs.Wrap(errs.KernelIo, "seeking segment data", err)
			}
			rawData := make([]byte, nWords*8)
			if _, err := f.Read(rawData); err != nil {
				return nil, errs.Wrap(errs.KernelIo, "reading segment data", err)
			}

			data := make([]float64, nWords)
			for j := range data {
				data[j] = math.Float64frombits(byteOrder.Uint64(rawData[j*8 : j*8+8]))
			}
			if nWords < 4 {
				return nil, errs.New(errs.MalformedKernel, "segment shorter than its directory")
			}

			seg := segment{
				index:    len(spk.segments),
				target:   target,
				center:   center,
				dataType: dataType,
				startSec: startSec,
				endSec:   endSec,
				init:     data[nWords-4],
				intLen:   data[nWords-3],
				rsize:    int(data[nWords-2]),
				n:        int(data[nWords-1]),
				data:     data[:nWords-4],
			}
			if seg.intLen <= 0 || seg.n <= 0 {
				return nil, errs.New(errs.MalformedKernel,
					fmt.Sprintf("segment target=%d center=%d has non-positive interval or record count", target, center))
			}

			if dataType == 2 {
				seg.nCoeffs = (seg.rsize - 2) / 3
			} else {
				seg.nCoeffs = (seg.rsize - 2) / 6
			}

			spk.segments = append(spk.segments, seg)
			key := [2]int{target, center}
			spk.segMap[key] = append(spk.segMap[key], &spk.segments[len(spk.segments)-1])

			pos += summaryBytes
		}

		if nextRec == 0.0 {
			break
		}
		recNum = int(nextRec)
	}

	for _, segs := range spk.segMap {
		sort.Slice(segs, func(i, j int) bool {
			return segs[i].startSec < segs[j].startSec
		})
	}

	if err := spk.buildChains(); err != nil {
		return nil, err
	}

	return spk, nil
}

// daefEndianness inspects the DAF file record's LOCFMT field and returns
// the matching byte order. Real DE44x kernels are little-endian
// (LTL-IEEE); big-endian (BIG-IEEE) kernels are accepted symmetrically.
func daefEndianness(fileRec []byte) (binary.ByteOrder, error) {
	locfmt := string(fileRec[88:96])
	switch {
	case contains(locfmt, "LTL-IEEE"):
		return binary.LittleEndian, nil
	case contains(locfmt, "BIG-IEEE"):
		return binary.BigEndian, nil
	default:
		// Fall back to little-endian: many real-world kernels leave LOCFMT
		// blank/non-standard but are little-endian in practice.
		return binary.LittleEndian, nil
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

// tdbJDToSeconds converts a TDB Julian date (as used by callers of this
// package) to TDB seconds past J2000, matching the kernel's internal epoch.
func tdbJDToSeconds(tdbJD float64) float64 {
	return timescale.JDToTDBSeconds(tdbJD)
}

// decodeRecord extracts record idx of seg into a record struct, split into
// per-component coefficient slices.
func decodeRecord(seg *segment, idx int) record {
	recStart := idx * seg.rsize
	componentsPerRecord := 3
	if seg.dataType == 3 {
		componentsPerRecord = 6
	}
	coeffs := make([][]float64, componentsPerRecord)
	for comp := 0; comp < componentsPerRecord; comp++ {
		cStart := recStart + 2 + comp*seg.nCoeffs
		coeffs[comp] = seg.data[cStart : cStart+seg.nCoeffs]
	}
	return record{
		midpoint:     seg.data[recStart],
		halfInterval: seg.data[recStart+1],
		coeffs:       coeffs,
	}
}

// recordFor returns the (possibly cached) decoded record covering seconds
// within seg, along with its normalized time s in [-1, 1].
func (s *SPK) recordFor(seg *segment, seconds float64) (record, float64) {
	idx := int((seconds - seg.init) / seg.intLen)
	if idx < 0 {
		idx = 0
	}
	if idx >= seg.n {
		idx = seg.n - 1
	}

	rec := s.cache.getOrDecode(recordKey{segIdx: seg.index, recIdx: idx}, func() record {
		return decodeRecord(seg, idx)
	})

	sNorm := (seconds - rec.midpoint) / rec.halfInterval
	return rec, sNorm
}

// findSegment returns the segment from segs whose [startSec, endSec] range
// contains the given epoch. Falls back to the nearest boundary segment for
// out-of-range epochs.
func findSegment(segs []*segment, seconds float64) *segment {
	if len(segs) == 1 {
		return segs[0]
	}
	for _, seg := range segs {
		if seconds >= seg.startSec && seconds <= seg.endSec {
			return seg
		}
	}
	if seconds < segs[0].startSec {
		return segs[0]
	}
	return segs[len(segs)-1]
}

// segPosition evaluates a single segment at the given TDB seconds past
// J2000. Returns position in km, ICRF frame.
func (s *SPK) segPosition(target, center int, seconds float64) ([3]float64, error) {
	key := [2]int{target, center}
	segs := s.segMap[key]
	if len(segs) == 0 {
		return [3]float64{}, errs.New(errs.UnsupportedBody, fmt.Sprintf("no segment for target=%d center=%d", target, center))
	}

	seg := findSegment(segs, seconds)
	if seconds < seg.startSec || seconds > seg.endSec {
		return [3]float64{}, errs.New(errs.OutOfRange, fmt.Sprintf("epoch %v s outside segment coverage for target=%d center=%d", seconds, target, center))
	}
	rec, sNorm := s.recordFor(seg, seconds)

	var pos [3]float64
	for comp := 0; comp < 3; comp++ {
		pos[comp] = chebyshev.Eval(rec.coeffs[comp], sNorm)
	}
	return pos, nil
}

// segVelocity evaluates velocity from a single segment at the given TDB
// seconds past J2000. Returns velocity in km/s, ICRF frame.
func (s *SPK) segVelocity(target, center int, seconds float64) ([3]float64, error) {
	key := [2]int{target, center}
	segs := s.segMap[key]
	if len(segs) == 0 {
		return [3]float64{}, errs.New(errs.UnsupportedBody, fmt.Sprintf("no segment for target=%d center=%d", target, center))
	}

	seg := findSegment(segs, seconds)
	rec, sNorm := s.recordFor(seg, seconds)

	var vel [3]float64
	if seg.dataType == 3 {
		for comp := 0; comp < 3; comp++ {
			vel[comp] = chebyshev.Eval(rec.coeffs[3+comp], sNorm)
		}
	} else {
		// Type 2: differentiate position w.r.t. normalized time, then apply
		// the chain-rule scale (d s/d seconds = 1/halfInterval).
		scale := 1.0 / rec.halfInterval
		for comp := 0; comp < 3; comp++ {
			vel[comp] = chebyshev.Deriv(rec.coeffs[comp], sNorm) * scale
		}
	}
	return vel, nil
}

// bodyWrtSSB computes a body's position relative to the Solar System
// Barycenter by summing positions along the pre-computed chain of segments.
func (s *SPK) bodyWrtSSB(body int, seconds float64) ([3]float64, error) {
	if body == SSB {
		return [3]float64{}, nil
	}
	chain, ok := s.chains[body]
	if !ok {
		return [3]float64{}, errs.New(errs.UnsupportedBody, fmt.Sprintf("no chain to SSB for body %d", body))
	}
	var pos [3]float64
	for _, link := range chain {
		p, err := s.segPosition(link.target, link.center, seconds)
		if err != nil {
			return [3]float64{}, err
		}
		pos = add3(pos, p)
	}
	return pos, nil
}

// bodyVelWrtSSB computes a body's velocity relative to SSB in km/s by
// summing velocities along the pre-computed chain.
func (s *SPK) bodyVelWrtSSB(body int, seconds float64) ([3]float64, error) {
	if body == SSB {
		return [3]float64{}, nil
	}
	chain, ok := s.chains[body]
	if !ok {
		return [3]float64{}, errs.New(errs.UnsupportedBody, fmt.Sprintf("no chain to SSB for body %d", body))
	}
	var vel [3]float64
	for _, link := range chain {
		v, err := s.segVelocity(link.target, link.center, seconds)
		if err != nil {
			return [3]float64{}, err
		}
		vel = add3(vel, v)
	}
	return vel, nil
}

// StateWrtSSB returns body's position (km) and velocity (km/s) relative to
// the Solar System Barycenter at the given TDB Julian date, in ICRF.
func (s *SPK) StateWrtSSB(body int, tdbJD float64) (pos, vel [3]float64, err error) {
	seconds := tdbJDToSeconds(tdbJD)
	pos, err = s.bodyWrtSSB(body, seconds)
	if err != nil {
		return
	}
	vel, err = s.bodyVelWrtSSB(body, seconds)
	return
}

// GeometricState returns the geometric (no light-time correction) state of
// target relative to observer at tdbJD, in km / km/s, ICRF frame.
func (s *SPK) GeometricState(target, observer int, tdbJD float64) (pos, vel [3]float64, err error) {
	targetPos, targetVel, err := s.StateWrtSSB(target, tdbJD)
	if err != nil {
		return
	}
	obsPos, obsVel, err := s.StateWrtSSB(observer, tdbJD)
	if err != nil {
		return
	}
	return sub3(targetPos, obsPos), sub3(targetVel, obsVel), nil
}

// GeocentricPosition returns the geometric (no light-time) geocentric
// position of a body in km, ICRF frame.
func (s *SPK) GeocentricPosition(body int, tdbJD float64) [3]float64 {
	pos, _, err := s.GeometricState(body, Earth, tdbJD)
	if err != nil {
		panic(err)
	}
	return pos
}

// CacheLen reports the number of decoded records currently cached.
func (s *SPK) CacheLen() int { return s.cache.Len() }

// buildChains pre-computes the chain from each target body to SSB (0).
func (s *SPK) buildChains() error {
	for key := range s.segMap {
		target := key[0]
		if _, exists := s.chains[target]; exists {
			continue
		}
		if err := s.walkChain(target); err != nil {
			return err
		}
	}
	// A body-center with no segment of its own resolves through its
	// barycenter's chain (see barycenterFallback).
	for body, fallback := range barycenterFallback {
		if _, exists := s.chains[body]; exists {
			continue
		}
		if chain, ok := s.chains[fallback]; ok {
			s.chains[body] = chain
		}
	}
	return nil
}

// walkChain builds the chain from body to SSB and stores it in s.chains,
// along with chains for any intermediate bodies encountered along the way.
func (s *SPK) walkChain(body int) error {
	if body == SSB {
		return nil
	}

	var path []chainLink
	visited := make(map[int]bool)
	current := body

	for current != SSB {
		if visited[current] {
			return errs.New(errs.MalformedKernel, fmt.Sprintf("cycle detected in chain for body %d at body %d", body, current))
		}
		visited[current] = true

		center, found := s.findCenter(current)
		if !found {
			// Ambiguity policy: fall back to a known barycenter if this is a
			// planet body-center with no segment of its own (e.g. 499 when
			// only the Mars barycenter 4 is present in the kernel).
			if fallback, ok := barycenterFallback[current]; ok {
				if _, hasSeg := s.findCenter(fallback); hasSeg || fallback == SSB {
					current = fallback
					continue
				}
			}
			return errs.New(errs.UnsupportedBody, fmt.Sprintf("body %d has no segment (needed in chain for body %d)", current, body))
		}

		path = append(path, chainLink{target: current, center: center})
		current = center
	}

	for i := range path {
		b := path[i].target
		if _, exists := s.chains[b]; !exists {
			s.chains[b] = path[i:]
		}
	}

	return nil
}

// findCenter returns the center body for a given target.
func (s *SPK) findCenter(target int) (int, bool) {
	for key := range s.segMap {
		if key[0] == target {
			return key[1], true
		}
	}
	return 0, false
}

func add3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func sub3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}
