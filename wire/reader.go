// Package wire implements the bounded, position-tracked byte cursors that
// every other ordtup package decodes from and encodes into.
package wire

import "github.com/ordtup/ordtup/errs"

// Reader is a bounds-checked cursor over a byte slice. It never retains or
// copies the slice; the caller must keep it alive for the duration of
// decoding.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps buf for sequential reading starting at position 0.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the current read position.
func (r *Reader) Pos() int {
	return r.pos
}

// Len returns the total length of the underlying slice.
func (r *Reader) Len() int {
	return len(r.buf)
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// Done reports whether the cursor has reached the end of the input.
func (r *Reader) Done() bool {
	return r.pos >= len(r.buf)
}

// ReadByte returns the next byte and advances the cursor by one, or fails
// with a *errs.TruncatedInputError if the cursor is already at the end.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, errs.NewTruncatedInput(1, r.pos, 0)
	}

	b := r.buf[r.pos]
	r.pos++

	return b, nil
}

// Ensure fails unless at least n bytes remain in the input. Call this before
// ReadByteUnchecked when reading a fixed-size payload of known length.
func (r *Reader) Ensure(n int) error {
	if r.Remaining() < n {
		return errs.NewTruncatedInput(n, r.pos, r.Remaining())
	}

	return nil
}

// ReadByteUnchecked returns the next byte and advances the cursor. It must
// only be called after a successful Ensure covering this read; it performs
// no bounds check itself.
func (r *Reader) ReadByteUnchecked() byte {
	b := r.buf[r.pos]
	r.pos++

	return b
}

// ReadBytes returns the next n bytes and advances the cursor, failing with a
// *errs.TruncatedInputError if fewer than n bytes remain.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.Ensure(n); err != nil {
		return nil, err
	}

	b := r.buf[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

// PeekByte returns the next byte without advancing the cursor, failing with
// a *errs.TruncatedInputError at end of input.
func (r *Reader) PeekByte() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, errs.NewTruncatedInput(1, r.pos, 0)
	}

	return r.buf[r.pos], nil
}
