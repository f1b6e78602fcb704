package element

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ordtup/ordtup/errs"
	"github.com/ordtup/ordtup/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, e Element) Element {
	t.Helper()

	w := wire.NewWriter()
	require.NoError(t, Encode(w, e))
	buf := w.Finalize()

	r := wire.NewReader(buf)
	got, err := Decode(r)
	require.NoError(t, err)
	assert.True(t, r.Done())

	return got
}

func TestRoundTrip_AllKinds(t *testing.T) {
	u := uuid.New()
	values := []Element{
		Null(),
		Bool(true),
		Bool(false),
		Int(0),
		Int(1),
		Int(-1),
		Int(math.MaxInt64),
		Int(math.MinInt64),
		Blob([]byte{0x01, 0x02, 0x03}),
		Blob([]byte{}),
		Text("hello"),
		Text(""),
		Text("héllo, 世界"),
		UUID(u),
		Time(time.Date(2013, 1, 1, 10, 0, 0, 0, time.FixedZone("", 2*3600))),
	}

	for _, v := range values {
		got := roundTrip(t, v)
		assert.True(t, v.Equal(got), "round trip mismatch for kind %v", v.Kind())
	}
}

func TestEncode_NegativeIntegerUsesNegTag(t *testing.T) {
	w := wire.NewWriter()
	require.NoError(t, Encode(w, Int(-5)))
	buf := w.Finalize()
	assert.Equal(t, byte(KindNegInteger), buf[0])
}

func TestEncode_PositiveIntegerUsesPosTag(t *testing.T) {
	w := wire.NewWriter()
	require.NoError(t, Encode(w, Int(5)))
	buf := w.Finalize()
	assert.Equal(t, byte(KindInteger), buf[0])
}

func TestOrderPreservation_IntegerSpansNegAndPos(t *testing.T) {
	values := []int64{math.MinInt64, -1000000, -1, 0, 1, 1000000, math.MaxInt64}

	var encs [][]byte
	for _, v := range values {
		w := wire.NewWriter()
		require.NoError(t, Encode(w, Int(v)))
		encs = append(encs, w.Finalize())
	}

	for i := 1; i < len(encs); i++ {
		assert.Negative(t, bytes.Compare(encs[i-1], encs[i]),
			"encoding of %d should sort before %d", values[i-1], values[i])
	}
}

func TestDecode_UnknownTag(t *testing.T) {
	r := wire.NewReader([]byte{0xFE})
	_, err := Decode(r)
	require.Error(t, err)
}

func TestDecode_InvalidUTF8(t *testing.T) {
	w := wire.NewWriter()
	WriteInterleaved(w, []byte{0xFF, 0xFE})
	buf := append([]byte{byte(KindText)}, w.Finalize()...)

	_, err := Decode(wire.NewReader(buf))
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)
}

func TestDecode_InvalidUUIDLength(t *testing.T) {
	w := wire.NewWriter()
	WriteInterleaved(w, []byte{0x01, 0x02, 0x03})
	buf := append([]byte{byte(KindUUID)}, w.Finalize()...)

	_, err := Decode(wire.NewReader(buf))
	require.Error(t, err)
}

func TestEqual_DifferentKindsNeverEqual(t *testing.T) {
	assert.False(t, Null().Equal(Bool(false)))
	assert.False(t, Int(0).Equal(Text("0")))
}

func TestAsAccessors_WrongKindReturnsFalse(t *testing.T) {
	_, ok := Null().AsInt()
	assert.False(t, ok)

	_, ok = Int(1).AsText()
	assert.False(t, ok)
}
