package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(16)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 16, bb.Cap())
}

func TestByteBuffer_MustWrite(t *testing.T) {
	bb := NewByteBuffer(0)
	bb.MustWrite([]byte("hello"))
	assert.Equal(t, []byte("hello"), bb.Bytes())
	assert.Equal(t, 5, bb.Len())
}

func TestByteBuffer_MustWriteByte(t *testing.T) {
	bb := NewByteBuffer(0)
	bb.MustWriteByte(0xAB)
	bb.MustWriteByte(0xCD)
	assert.Equal(t, []byte{0xAB, 0xCD}, bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("data"))
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, originalCap, bb.Cap())
}

func TestByteBuffer_GrowPolicy(t *testing.T) {
	// Starting empty, Grow must seed exactly enough room for the first write.
	bb := NewByteBuffer(0)
	bb.Grow(5)
	assert.GreaterOrEqual(t, bb.Cap(), 5)

	// From a small capacity, growth must double (min(2*cap, cap+512) == 2*cap
	// while cap < 512).
	bb = NewByteBuffer(10)
	bb.Grow(11)
	assert.Equal(t, 20, bb.Cap())

	// Past 512, growth is capped at +512 rather than doubling.
	bb = NewByteBuffer(1000)
	bb.Grow(1001)
	assert.Equal(t, 1512, bb.Cap())
}

func TestByteBuffer_GrowNoop(t *testing.T) {
	bb := NewByteBuffer(32)
	bb.MustWrite([]byte("12345"))
	capBefore := bb.Cap()

	bb.Grow(1) // plenty of room left, must not reallocate

	assert.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_Truncate(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("0123456789"))

	out := bb.Truncate(4)
	assert.Equal(t, []byte("0123"), out)
}

func TestPool_GetPut(t *testing.T) {
	p := NewPool(BufferDefaultSize, BufferMaxThreshold)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("recycled"))

	p.Put(bb)

	bb2 := p.Get()
	require.NotNil(t, bb2)
	assert.Equal(t, 0, bb2.Len())
}

func TestPool_DiscardsOversizedBuffers(t *testing.T) {
	p := NewPool(4, 8)

	bb := p.Get()
	bb.Grow(100)
	p.Put(bb)

	// The oversized buffer must have been dropped, not recycled, so Get
	// yields a fresh one again rather than reusing the 100+ byte backing array.
	bb2 := p.Get()
	assert.LessOrEqual(t, bb2.Cap(), 8+4)
}

func TestPackageDefaultPool(t *testing.T) {
	bb := Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("x"))
	Put(bb)
}
