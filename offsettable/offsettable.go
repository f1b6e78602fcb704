// Package offsettable implements the delta-compressed offset table codec
// used to index the tuples of an encoded batch (spec §4.8).
package offsettable

import (
	"github.com/ordtup/ordtup/errs"
	"github.com/ordtup/ordtup/varint"
	"github.com/ordtup/ordtup/wire"
)

// Encode writes offsets as varint(n) where n = len(offsets)-1, the number of
// deltas between successive offsets, followed by those n deltas. offsets[0]
// is implicit (always 0) and is not itself stored. offsets must be
// non-empty, start at 0, and be non-decreasing.
func Encode(offsets []uint64) ([]byte, error) {
	if len(offsets) == 0 {
		return nil, errs.ErrEmptyOffsetTable
	}

	if offsets[0] != 0 {
		return nil, errs.ErrNonMonotonicOffsets
	}

	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return nil, errs.ErrNonMonotonicOffsets
		}
	}

	w := wire.NewWriter()
	varint.Encode(w, uint64(len(offsets)-1))

	for i := 1; i < len(offsets); i++ {
		varint.Encode(w, offsets[i]-offsets[i-1])
	}

	return w.Finalize(), nil
}

// Decode reads an offset table from the start of input, returning the
// reconstructed absolute offsets (length n+1, first element 0) and the
// number of bytes consumed.
func Decode(input []byte) (offsets []uint64, consumed int, err error) {
	r := wire.NewReader(input)

	n, err := varint.Decode(r)
	if err != nil {
		return nil, 0, err
	}

	offsets = make([]uint64, n+1)

	var cur uint64
	for i := uint64(1); i <= n; i++ {
		delta, err := varint.Decode(r)
		if err != nil {
			return nil, 0, err
		}

		cur += delta
		offsets[i] = cur
	}

	return offsets, r.Pos(), nil
}
