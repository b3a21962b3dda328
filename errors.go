package ears

import "github.com/ears-go/ears/internal/earserr"

// Kind discriminates the category of a structural codec failure. See
// internal/earserr for the canonical definition this package re-exports.
type Kind = earserr.Kind

const (
	KindImageBounds              = earserr.KindImageBounds
	KindTruncatedBitStream       = earserr.KindTruncatedBitStream
	KindBitWidthOutOfRange       = earserr.KindBitWidthOutOfRange
	KindInvalidAlfalfaVersion    = earserr.KindInvalidAlfalfaVersion
	KindInvalidAlfalfaEntryName  = earserr.KindInvalidAlfalfaEntryName
	KindNonASCIIAlfalfaEntryName = earserr.KindNonASCIIAlfalfaEntryName
	KindAlfalfaDataTooLarge      = earserr.KindAlfalfaDataTooLarge
	KindBigIntConversionFailed   = earserr.KindBigIntConversionFailed
)

// Error is the concrete error type every structural codec failure in this
// module returns. It always carries a Kind so callers can branch with
// errors.As, and optionally wraps an underlying cause via Unwrap.
type Error = earserr.Error
