package element

import (
	"bytes"
	"testing"

	"github.com/ordtup/ordtup/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeStream(data []byte) []byte {
	w := wire.NewWriter()
	WriteInterleaved(w, data)

	return w.Finalize()
}

func TestStream_EmptyEncodesToSingleZero(t *testing.T) {
	assert.Equal(t, []byte{0x00}, encodeStream(nil))
}

func TestStream_SingleByte(t *testing.T) {
	// 'a' = 0x61 = 0b0110_0001
	buf := encodeStream([]byte("a"))
	assert.Equal(t, []byte{0xB0, 0x40, 0x00}, buf)
}

func TestStream_RoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		{},
		{0x00},
		{0x01},
		{0xFF},
		[]byte("a"),
		[]byte("hello, world"),
		bytes.Repeat([]byte{0xAA, 0x55}, 20),
	}

	for _, data := range cases {
		buf := encodeStream(data)
		got, err := ReadInterleaved(wire.NewReader(buf))
		require.NoError(t, err)
		// nil and empty input share one encoding and both decode to an
		// empty, non-nil slice.
		want := append([]byte{}, data...)
		assert.Equal(t, want, got)
	}
}

func TestStream_ExactlyOneTerminatingZero(t *testing.T) {
	data := []byte("some longer payload to exercise shift wraparound cases")
	buf := encodeStream(data)

	assert.Equal(t, byte(0), buf[len(buf)-1])
	for _, b := range buf[:len(buf)-1] {
		assert.NotZero(t, b)
	}
}

func TestStream_OrderPreservation(t *testing.T) {
	pairs := [][2][]byte{
		{[]byte("a"), []byte("b")},
		{[]byte("a"), []byte("aa")},
		{[]byte(""), []byte("a")},
		{[]byte("abc"), []byte("abd")},
	}

	for _, p := range pairs {
		assert.Negative(t, bytes.Compare(encodeStream(p[0]), encodeStream(p[1])),
			"encode(%q) should sort before encode(%q)", p[0], p[1])
	}
}
