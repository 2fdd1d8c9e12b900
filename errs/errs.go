// Package errs defines the error taxonomy shared by every layer of the
// ephemeris engine: kernel loading, time-scale conversion, body-chain
// resolution, and event search all report failures as an *Error tagged
// with one of the Kinds below, wrapping the underlying cause via
// github.com/pkg/errors so the original stack context survives.
package errs

import "github.com/pkg/errors"

// Kind identifies the category of an Error. Kinds are a closed set; new
// failure modes are added here, not by constructing unrelated error types.
type Kind int

const (
	// KernelIo is an I/O failure opening or reading a binary kernel file.
	KernelIo Kind = iota
	// MalformedKernel is a structural violation inside a parsed kernel.
	MalformedKernel
	// UnsupportedSegment is an SPK segment whose data type or frame is
	// outside the supported subset (Type 2/3, frame 1).
	UnsupportedSegment
	// OutOfRange is an epoch outside any applicable segment or EOP range.
	OutOfRange
	// UnsupportedBody is a body with no chain to the Solar System Barycenter.
	UnsupportedBody
	// UnsupportedFrame is a frame tag the engine does not implement.
	UnsupportedFrame
	// LskParse is a leap-second kernel parse failure.
	LskParse
	// EopParse is an Earth-orientation-parameters file parse failure.
	EopParse
	// Pre1972Utc is a UTC instant preceding the leap-second kernel's first entry.
	Pre1972Utc
	// SearchExhausted is a bracket-and-refine search that found no event
	// within its bounded window.
	SearchExhausted
	// InvalidInput is a caller-supplied value that is structurally invalid
	// (NaN/Inf, negative capacity, empty path, ...).
	InvalidInput
)

func (k Kind) String() string {
	switch k {
	case KernelIo:
		return "kernel_io"
	case MalformedKernel:
		return "malformed_kernel"
	case UnsupportedSegment:
		return "unsupported_segment"
	case OutOfRange:
		return "out_of_range"
	case UnsupportedBody:
		return "unsupported_body"
	case UnsupportedFrame:
		return "unsupported_frame"
	case LskParse:
		return "lsk_parse"
	case EopParse:
		return "eop_parse"
	case Pre1972Utc:
		return "pre_1972_utc"
	case SearchExhausted:
		return "search_exhausted"
	case InvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Error is the structured error value returned across the core's boundary.
// Context carries whatever triggering detail is available at the call site
// (body pair, epoch, segment index, offending line) as a plain string so
// callers can log or match on it without reflecting into the cause chain.
type Error struct {
	Kind    Kind
	Context string
	cause   error
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.Kind.String() + ": " + e.Context
	}
	return e.Kind.String() + ": " + e.Context + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error { return e.cause }

// Cause returns the underlying error, matching github.com/pkg/errors'
// Causer interface so errors.Cause(err) unwraps an *Error the same way it
// unwraps any pkg/errors-wrapped value.
func (e *Error) Cause() error { return e.cause }

// New creates an *Error of the given kind with no wrapped cause.
func New(kind Kind, context string) *Error {
	return &Error{Kind: kind, Context: context}
}

// Wrap creates an *Error of the given kind, wrapping cause with
// github.com/pkg/errors so its original stack trace is preserved.
func Wrap(kind Kind, context string, cause error) *Error {
	if cause == nil {
		return New(kind, context)
	}
	return &Error{Kind: kind, Context: context, cause: errors.WithMessage(cause, context)}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Kind == kind
}
