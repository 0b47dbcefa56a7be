package hpack

import "errors"

// Error taxonomy for the codec. Decoder faults are surfaced as one of
// these sentinels (wrapped with context via fmt.Errorf("...: %w", err))
// so callers can match with errors.Is.
var (
	// ErrInvalidHeader is returned when a header in the input list to
	// Compress has an empty name. An empty value is accepted.
	ErrInvalidHeader = errors.New("hpack: header field has empty name")

	// ErrSettingsInvalid is returned by NotifySettings for a non-positive
	// max size.
	ErrSettingsInvalid = errors.New("hpack: settings max size must be positive")

	// ErrEncoding names an internal encoder invariant violation (an
	// indexed emission without a valid index). No code path in this
	// package's encoder returns it.
	ErrEncoding = errors.New("hpack: internal encoding invariant violated")

	// ErrMalformedInteger is returned when an HPACK integer is truncated
	// or would overflow past the permitted value range.
	ErrMalformedInteger = errors.New("hpack: malformed integer")

	// ErrMalformedString is returned when a string literal is truncated,
	// has a bad length, or fails Huffman decoding.
	ErrMalformedString = errors.New("hpack: malformed string literal")

	// ErrIndexOutOfRange is returned for an indexed reference outside the
	// combined static+dynamic table bounds, or index 0 on an Indexed
	// representation.
	ErrIndexOutOfRange = errors.New("hpack: index out of range")

	// ErrDecoding is the umbrella decode-time error: a
	// dynamic-table-size-update that appears after another
	// representation in the block, or one that exceeds the last
	// negotiated SETTINGS_HEADER_TABLE_SIZE value.
	ErrDecoding = errors.New("hpack: decoding error")
)
