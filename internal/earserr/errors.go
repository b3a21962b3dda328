// Package earserr defines the discriminated error kinds shared by every
// ears codec package. It lives in internal so the root package and the
// codec sub-packages can both depend on the same Kind/Error pair without
// an import cycle; the root package re-exports these as ears.Kind and
// ears.Error.
//
// The shape follows the {code, message} error type bugVanisher-streamer's
// common/errs package uses for its own discriminated error codes, adapted
// here to a closed Kind enum (the set of structural failures this codec
// can produce is fixed by the wire format, unlike an open service error
// code space) and to wrap an underlying cause the way the teacher codec
// wraps with fmt.Errorf("...: %w", err).
package earserr

import "fmt"

// Kind discriminates the category of a structural codec failure.
type Kind int

const (
	// KindImageBounds is returned when a coordinate falls outside the
	// 64x64 window a feature or Alfalfa codec is required to operate on.
	KindImageBounds Kind = iota
	// KindTruncatedBitStream is returned when a bit read runs past the
	// length supplied at reader construction.
	KindTruncatedBitStream
	// KindBitWidthOutOfRange is returned by ReadLong/WriteLong when asked
	// for an unsupported bit width.
	KindBitWidthOutOfRange
	// KindInvalidAlfalfaVersion is returned when an Alfalfa encode is
	// attempted with a version other than 1.
	KindInvalidAlfalfaVersion
	// KindInvalidAlfalfaEntryName is returned when a custom Alfalfa key's
	// first byte is below the required ASCII floor ('@', 0x40).
	KindInvalidAlfalfaEntryName
	// KindNonASCIIAlfalfaEntryName is returned when an Alfalfa key
	// contains a byte above 0x7F.
	KindNonASCIIAlfalfaEntryName
	// KindAlfalfaDataTooLarge is returned when a framed Alfalfa payload
	// exceeds the 1428-byte cap the ten pixel rectangles can carry.
	KindAlfalfaDataTooLarge
	// KindBigIntConversionFailed guards a 7-bit digit extraction that
	// could not fit the expected integer width; defensive, should not be
	// reachable with the fixed rectangle set in this package.
	KindBigIntConversionFailed
)

// String returns a short, stable identifier for the kind, used in error
// messages and in tests that assert on error classification.
func (k Kind) String() string {
	switch k {
	case KindImageBounds:
		return "image_bounds"
	case KindTruncatedBitStream:
		return "truncated_bitstream"
	case KindBitWidthOutOfRange:
		return "bit_width_out_of_range"
	case KindInvalidAlfalfaVersion:
		return "invalid_alfalfa_version"
	case KindInvalidAlfalfaEntryName:
		return "invalid_alfalfa_entry_name"
	case KindNonASCIIAlfalfaEntryName:
		return "non_ascii_alfalfa_entry_name"
	case KindAlfalfaDataTooLarge:
		return "alfalfa_data_too_large"
	case KindBigIntConversionFailed:
		return "big_int_conversion_failed"
	default:
		return "unknown"
	}
}

// Error is the concrete error type every ears codec package returns for
// structural failures. It always carries a Kind so callers can branch with
// errors.As, and optionally wraps an underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ears: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("ears: %s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Err }

// New builds an Error of the given kind with no wrapped cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf builds an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind around an existing cause.
func Wrap(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Is reports whether target is an *Error with the same Kind, enabling
// errors.Is(err, earserr.New(KindImageBounds, "")) style checks that
// ignore the message and wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
