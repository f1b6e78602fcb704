// Package pool provides a pooled, growable byte buffer used by wire.Writer
// to amortize allocations across repeated encode calls.
package pool

import "sync"

// BufferDefaultSize is the default capacity of a ByteBuffer obtained from the
// pool. Encoded tuples are typically small (a handful of elements), so the
// default is sized for that rather than for bulk blob workloads.
const (
	BufferDefaultSize  = 64
	BufferMaxThreshold = 64 * 1024
)

// ByteBuffer is a growable byte slice with the append-only growth policy
// required by the wire format: new capacity is min(2*cap, cap+512) whenever
// the buffer is exhausted, never more.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given starting capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset clears the buffer to be empty but retains the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it first if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.Grow(len(data))
	bb.B = append(bb.B, data...)
}

// MustWriteByte appends a single byte, growing the buffer first if necessary.
func (bb *ByteBuffer) MustWriteByte(b byte) {
	bb.Grow(1)
	bb.B = append(bb.B, b)
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating, growing by repeated application of min(2*cap, cap+512) until
// enough room is available. A requiredBytes of 0 never forces growth.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	for cap(bb.B)-len(bb.B) < requiredBytes {
		cur := cap(bb.B)
		newCap := 2 * cur
		if grown := cur + 512; grown < newCap {
			newCap = grown
		}
		if newCap <= cur {
			// cur == 0: seed with enough room for the very first write.
			newCap = requiredBytes
		}

		next := make([]byte, len(bb.B), newCap)
		copy(next, bb.B)
		bb.B = next
	}
}

// Truncate returns the buffer's contents truncated to exactly n bytes. Used
// by wire.Writer.Finalize to drop unused trailing capacity from the result.
func (bb *ByteBuffer) Truncate(n int) []byte {
	return bb.B[:n]
}

// Pool recycles ByteBuffers to reduce allocation churn across repeated
// Pack/Unpack calls. Buffers larger than maxThreshold are discarded instead
// of retained, to avoid pinning large allocations from one oversized tuple.
type Pool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewPool creates a Pool whose buffers start at defaultSize and are dropped
// (not retained) once they grow past maxThreshold.
func NewPool(defaultSize, maxThreshold int) *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (p *Pool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse, discarding it instead if it
// grew past the pool's max threshold.
func (p *Pool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var defaultPool = NewPool(BufferDefaultSize, BufferMaxThreshold)

// Get retrieves a ByteBuffer from the package-default pool.
func Get() *ByteBuffer {
	return defaultPool.Get()
}

// Put returns a ByteBuffer to the package-default pool.
func Put(bb *ByteBuffer) {
	defaultPool.Put(bb)
}
