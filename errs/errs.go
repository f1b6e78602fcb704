// Package errs defines the sentinel errors returned by ordtup's encoders and
// decoders. Callers are expected to compare with errors.Is against the
// exported sentinels rather than parse error strings.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind is returned when a decoder encounters a kind tag byte
	// that is not one of the tags assigned in the element package.
	ErrUnknownKind = errors.New("ordtup: unknown element kind tag")

	// ErrUnsupportedType is returned when the encoder is offered an Element
	// whose kind has no encoding, such as the zero Element.
	ErrUnsupportedType = errors.New("ordtup: unsupported element type")

	// ErrInvalidUTF8 is returned when a Text element's payload does not
	// decode as valid UTF-8.
	ErrInvalidUTF8 = errors.New("ordtup: invalid utf-8 in text element")

	// ErrOffsetOutOfRange is returned when a timestamp's UTC offset falls
	// outside the representable range of -16:00..+15:45 in quarter hours.
	ErrOffsetOutOfRange = errors.New("ordtup: utc offset out of range")

	// ErrInvalidUUID is returned when a Uuid element's payload is not
	// exactly 16 bytes long.
	ErrInvalidUUID = errors.New("ordtup: uuid payload must be 16 bytes")

	// ErrEmptyOffsetTable is returned when encoding an offset table from an
	// empty slice; the table must start with an absolute offset of 0.
	ErrEmptyOffsetTable = errors.New("ordtup: offset table must not be empty")

	// ErrNonMonotonicOffsets is returned when encoding an offset table whose
	// entries are not non-decreasing, or whose first entry is not 0.
	ErrNonMonotonicOffsets = errors.New("ordtup: offsets must start at 0 and be non-decreasing")

	// ErrUnsupportedCompression is returned by the archive package when
	// asked for a CompressionType it has no backend for.
	ErrUnsupportedCompression = errors.New("ordtup: unsupported compression type")

	// ErrInvalidEnvelope is returned when envelope.Unwrap is given data too
	// short to contain a header, or whose magic number, version, or body
	// length doesn't match.
	ErrInvalidEnvelope = errors.New("ordtup: invalid envelope header")

	// ErrDigestMismatch is returned by envelope.Unwrap when the stored
	// xxhash64 digest doesn't match the recomputed digest of the body.
	ErrDigestMismatch = errors.New("ordtup: envelope digest mismatch")
)

// TruncatedInputError reports that a decoder needed more bytes than were
// available in the input slice. It wraps ErrTruncatedInput so callers can
// use errors.Is while still recovering the counts with errors.As.
type TruncatedInputError struct {
	Expected  int // bytes the decoder needed
	Position  int // cursor position at the point of failure
	Remaining int // bytes actually left in the input
}

// ErrTruncatedInput is the sentinel matched by errors.Is(err, ErrTruncatedInput)
// for every *TruncatedInputError produced by the wire/varint/element/tuple/batch
// packages.
var ErrTruncatedInput = errors.New("ordtup: truncated input")

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("ordtup: truncated input: expected %d bytes at position %d, %d remain",
		e.Expected, e.Position, e.Remaining)
}

func (e *TruncatedInputError) Unwrap() error {
	return ErrTruncatedInput
}

// NewTruncatedInput builds a *TruncatedInputError for the given cursor state.
func NewTruncatedInput(expected, position, remaining int) error {
	return &TruncatedInputError{Expected: expected, Position: position, Remaining: remaining}
}
