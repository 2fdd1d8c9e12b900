// Package engine ties the spk, timescale, and frames packages together
// behind a single query surface: given a target body, an observer body, an
// epoch, and a frame, it returns the geometric state vector between them.
package engine

import (
	"math"

	"github.com/anupshinde/vediceph/errs"
	"github.com/anupshinde/vediceph/frames"
	"github.com/anupshinde/vediceph/spk"
	"github.com/anupshinde/vediceph/timescale"
)

// Body is a NAIF-style body identifier, e.g. spk.Sun, spk.Moon, spk.Earth.
type Body = int

// Frame identifies the inertial reference frame a StateVector is expressed in.
type Frame int

const (
	// ICRF is the engine's native frame: the native SPK output frame.
	ICRF Frame = iota
	// EclipticJ2000 is ICRF rotated by the fixed J2000 mean obliquity.
	EclipticJ2000
)

func (f Frame) String() string {
	switch f {
	case ICRF:
		return "ICRF"
	case EclipticJ2000:
		return "ecliptic-J2000"
	default:
		return "unknown"
	}
}

// StateVector is a position/velocity pair expressed in a single frame at a
// single epoch.
type StateVector struct {
	PositionKm  [3]float64
	VelocityKmS [3]float64
	EpochTDBSec float64
	Frame       Frame
}

// EngineConfig configures a new Engine. Paths are to a binary SPK kernel and
// a text leap-second kernel; CacheCapacity bounds the decoded-record LRU
// cache (0 uses spk.DefaultCacheCapacity). StrictValidation additionally
// rejects queries within one ULP of a segment boundary.
type EngineConfig struct {
	SPKPath          string
	LSKPath          string
	CacheCapacity    int
	StrictValidation bool
}

// Engine resolves body-to-body state vectors against a loaded SPK kernel.
type Engine struct {
	kernel *spk.SPK
	lsk    *timescale.LSK
	config EngineConfig
}

// NewEngine loads the configured kernels and returns a ready Engine.
func NewEngine(config EngineConfig) (*Engine, error) {
	if config.SPKPath == "" {
		return nil, errs.New(errs.InvalidInput, "EngineConfig.SPKPath is required")
	}
	capacity := config.CacheCapacity
	if capacity <= 0 {
		capacity = spk.DefaultCacheCapacity
	}
	kernel, err := spk.OpenWithCacheCapacity(config.SPKPath, capacity)
	if err != nil {
		return nil, err
	}

	var lsk *timescale.LSK
	if config.LSKPath != "" {
		lsk, err = timescale.LoadLSK(config.LSKPath)
		if err != nil {
			return nil, err
		}
	}

	return &Engine{kernel: kernel, lsk: lsk, config: config}, nil
}

// NewEngineFromKernel wraps an already-open SPK kernel, for callers (tests,
// tooling) that construct the kernel themselves.
func NewEngineFromKernel(kernel *spk.SPK, lsk *timescale.LSK, config EngineConfig) *Engine {
	return &Engine{kernel: kernel, lsk: lsk, config: config}
}

// Query returns the geometric state of target relative to observer at
// epochTDB (TDB Julian date), expressed in frame.
func (e *Engine) Query(target, observer Body, epochTDB float64, frame Frame) (StateVector, error) {
	if math.IsNaN(epochTDB) || math.IsInf(epochTDB, 0) {
		return StateVector{}, errs.New(errs.InvalidInput, "epochTDB is NaN or infinite")
	}
	if e.config.StrictValidation {
		if err := e.rejectNearBoundary(target, observer, epochTDB); err != nil {
			return StateVector{}, err
		}
	}

	pos, vel, err := e.kernel.GeometricState(target, observer, epochTDB)
	if err != nil {
		return StateVector{}, err
	}

	switch frame {
	case ICRF:
		// no-op
	case EclipticJ2000:
		pos = frames.ICRFToEcliptic(pos)
		vel = frames.ICRFToEcliptic(vel)
	default:
		return StateVector{}, errs.New(errs.UnsupportedFrame, frame.String())
	}

	return StateVector{
		PositionKm:  pos,
		VelocityKmS: vel,
		EpochTDBSec: timescale.JDToTDBSeconds(epochTDB),
		Frame:       frame,
	}, nil
}

// withinOneULP reports whether x lies no more than one float64 ULP (the
// spacing of float64 values at boundary) away from boundary; it is the
// epoch-boundary guard used by StrictValidation mode.
func withinOneULP(x, boundary float64) bool {
	ulp := math.Nextafter(math.Abs(boundary), math.Inf(1)) - math.Abs(boundary)
	return math.Abs(x-boundary) <= ulp
}

func (e *Engine) rejectNearBoundary(target, observer int, epochTDB float64) error {
	seconds := timescale.JDToTDBSeconds(epochTDB)
	for _, body := range [2]int{target, observer} {
		for _, seg := range e.kernel.Segments() {
			if seg.Target != body {
				continue
			}
			if withinOneULP(seconds, seg.StartSec) || withinOneULP(seconds, seg.EndSec) {
				return errs.New(errs.OutOfRange, "epoch within one ULP of a segment boundary")
			}
		}
	}
	return nil
}

// Kernel exposes the underlying loaded SPK kernel, for callers (search,
// vedic) that need direct geometric access without frame conversion.
func (e *Engine) Kernel() *spk.SPK { return e.kernel }

// LSK exposes the loaded leap-second kernel, if one was configured.
func (e *Engine) LSK() *timescale.LSK { return e.lsk }

// CacheLen reports the number of decoded records currently cached.
func (e *Engine) CacheLen() int { return e.kernel.CacheLen() }
