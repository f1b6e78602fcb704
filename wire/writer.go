package wire

import "github.com/ordtup/ordtup/internal/pool"

// Writer is a growable, position-tracked byte cursor that owns its backing
// buffer until Finalize is called. Growth policy: when capacity is
// exhausted, new capacity is min(2*current, current+512) bytes (see
// pool.ByteBuffer.Grow).
type Writer struct {
	buf *pool.ByteBuffer
}

// NewWriter creates a Writer backed by a buffer from the package pool.
func NewWriter() *Writer {
	return &Writer{buf: pool.Get()}
}

// NewWriterSize creates a Writer with an explicit starting capacity,
// bypassing the pool. Useful when the caller already knows an upper bound on
// the output size (e.g. pack_int's fixed-size fast path).
func NewWriterSize(initial int) *Writer {
	return &Writer{buf: pool.NewByteBuffer(initial)}
}

// WriteByte appends a single byte, growing the buffer first if necessary.
func (w *Writer) WriteByte(b byte) {
	w.buf.MustWriteByte(b)
}

// Write appends p, growing the buffer first if necessary.
func (w *Writer) Write(p []byte) {
	w.buf.MustWrite(p)
}

// Ensure reserves at least n additional bytes of capacity without changing
// the writer's length. Subsequent writes within that budget will not
// reallocate.
func (w *Writer) Ensure(n int) {
	w.buf.Grow(n)
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Finalize returns the written bytes, truncated to the write position, and
// releases the writer's buffer back to the pool. The writer must not be used
// again afterward.
func (w *Writer) Finalize() []byte {
	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())
	pool.Put(w.buf)
	w.buf = nil

	return out
}
