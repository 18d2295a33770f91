package u8

import "fmt"

// Kind discriminates the ways a byte sequence or code point can be
// malformed. Every error produced by this package carries exactly one Kind.
type Kind int

const (
	// TruncatedSequence indicates a multi-byte run whose declared length
	// exceeds the remaining input.
	TruncatedSequence Kind = iota + 1
	// InvalidLeadByte indicates a byte at a run boundary which is neither a
	// valid single-byte code point nor a valid lead-byte tag. Stray
	// continuation bytes fall into this kind.
	InvalidLeadByte
	// InvalidContinuationByte indicates a non-leading byte in a run which
	// does not match 10xxxxxx.
	InvalidContinuationByte
	// Overlong indicates a run assembling to a value smaller than the
	// minimum representable by the run's declared length.
	Overlong
	// CodePointOutOfRange indicates a code point above U+10FFFF.
	CodePointOutOfRange
	// LoneSurrogate indicates a code point in the range U+D800–U+DFFF.
	LoneSurrogate
)

// String returns a human-readable representation of the error kind.
func (k Kind) String() string {
	switch k {
	case TruncatedSequence:
		return "TRUNCATED-SEQUENCE"
	case InvalidLeadByte:
		return "INVALID-LEAD-BYTE"
	case InvalidContinuationByte:
		return "INVALID-CONTINUATION-BYTE"
	case Overlong:
		return "OVERLONG"
	case CodePointOutOfRange:
		return "CODE-POINT-OUT-OF-RANGE"
	case LoneSurrogate:
		return "LONE-SURROGATE"
	default:
		return "UNKNOWN"
	}
}

// Error implements the error interface, so that a bare Kind can serve as
// a sentinel for errors.Is against DecodeError and EncodeError values.
func (k Kind) Error() string {
	return k.String()
}

// DecodeError describes a malformed byte at a known position of the input.
// Decoding is all-or-nothing: the first DecodeError aborts the call and no
// partial output is returned (DecodeAll relaxes this). Errors are
// deterministic and reproducible from the same input; none is ever retried.
type DecodeError struct {
	Kind   Kind // what is wrong
	Offset int  // byte offset of the offending byte; for truncated runs, of the run's lead byte
	Byte   byte // the offending byte (the lead byte for truncated runs)
}

// Error implements the error interface.
func (e DecodeError) Error() string {
	return fmt.Sprintf("[%s] at offset %d: byte 0x%02x", e.Kind, e.Offset, e.Byte)
}

// Is lets errors.Is match a DecodeError against a bare Kind sentinel:
// errors.Is(err, Overlong) reports whether err is an overlong-encoding
// error, regardless of offset.
func (e DecodeError) Is(target error) bool {
	if k, ok := target.(Kind); ok {
		return e.Kind == k
	}
	return false
}

// EncodeError describes a code point which cannot be encoded, together with
// its position in the input sequence.
type EncodeError struct {
	Kind  Kind // CodePointOutOfRange or LoneSurrogate
	Index int  // position of the offending code point in the input sequence
	Point rune // the offending code point
}

// Error implements the error interface.
func (e EncodeError) Error() string {
	return fmt.Sprintf("[%s] at index %d: code point %#U", e.Kind, e.Index, e.Point)
}

// Is lets errors.Is match an EncodeError against a bare Kind sentinel.
func (e EncodeError) Is(target error) bool {
	if k, ok := target.(Kind); ok {
		return e.Kind == k
	}
	return false
}

// decodeErr is a shorthand used throughout the decoding path.
func decodeErr(kind Kind, offset int, b byte) DecodeError {
	return DecodeError{Kind: kind, Offset: offset, Byte: b}
}

// errorCollector accumulates decode errors during a DecodeAll pass.
// This is an internal helper; the strict entry points never allocate one.
type errorCollector struct {
	errors []DecodeError
}

// addError records a decoding error.
func (ec *errorCollector) addError(kind Kind, offset int, b byte) {
	ec.errors = append(ec.errors, decodeErr(kind, offset, b))
}

// hasErrors returns true if any errors have been recorded.
func (ec *errorCollector) hasErrors() bool {
	return len(ec.errors) > 0
}
