package varint

import (
	"bytes"
	"math"
	"testing"

	"github.com/ordtup/ordtup/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeInverted(v uint64) []byte {
	w := wire.NewWriter()
	EncodeInverted(w, v)
	return w.Finalize()
}

func TestInverted_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 240, 241, 2287, 2288, 67823, 67824, math.MaxUint64}
	for _, v := range values {
		r := wire.NewReader(encodeInverted(v))
		got, err := DecodeInverted(r)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.True(t, r.Done())
	}
}

func TestInverted_ReversesOrder(t *testing.T) {
	// Larger magnitude must produce a lexicographically smaller encoding,
	// so that among negative values sharing one kind tag, a larger |v|
	// (a more negative original value) sorts first.
	values := []uint64{0, 1, 100, 240, 241, 2287, 2288, 67823, 67824, math.MaxUint64}
	for i := range values {
		for j := range values {
			a, b := values[i], values[j]
			cmp := bytes.Compare(encodeInverted(a), encodeInverted(b))
			switch {
			case a < b:
				assert.Positive(t, cmp, "inverted(%d) should sort after inverted(%d)", a, b)
			case a > b:
				assert.Negative(t, cmp, "inverted(%d) should sort before inverted(%d)", a, b)
			default:
				assert.Zero(t, cmp)
			}
		}
	}
}

func TestInverted_TruncatedInput(t *testing.T) {
	r := wire.NewReader([]byte{^byte(0xf1)}) // inverted lead byte needing 1 more
	_, err := DecodeInverted(r)
	require.Error(t, err)
}
