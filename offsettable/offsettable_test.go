package offsettable

import (
	"testing"

	"github.com/ordtup/ordtup/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cases := [][]uint64{
		{0},
		{0, 5, 5, 12},
		{0, 1000000, 2000000, 2000000, 3000001},
	}

	for _, offsets := range cases {
		buf, err := Encode(offsets)
		require.NoError(t, err)

		got, consumed, err := Decode(buf)
		require.NoError(t, err)
		assert.Equal(t, offsets, got)
		assert.Equal(t, len(buf), consumed)
	}
}

func TestEncode_RejectsEmpty(t *testing.T) {
	_, err := Encode(nil)
	require.ErrorIs(t, err, errs.ErrEmptyOffsetTable)
}

func TestEncode_RejectsNonZeroStart(t *testing.T) {
	_, err := Encode([]uint64{1, 2})
	require.ErrorIs(t, err, errs.ErrNonMonotonicOffsets)
}

func TestEncode_RejectsDecreasing(t *testing.T) {
	_, err := Encode([]uint64{0, 5, 3})
	require.ErrorIs(t, err, errs.ErrNonMonotonicOffsets)
}

func TestDecode_TrailingBytesNotConsumed(t *testing.T) {
	buf, err := Encode([]uint64{0, 1})
	require.NoError(t, err)
	buf = append(buf, 0xFF, 0xFF)

	got, consumed, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 1}, got)
	assert.Less(t, consumed, len(buf))
}
