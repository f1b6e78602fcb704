package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter_WriteByte(t *testing.T) {
	w := NewWriter()
	w.WriteByte(0x01)
	w.WriteByte(0x02)

	assert.Equal(t, []byte{0x01, 0x02}, w.Finalize())
}

func TestWriter_Write(t *testing.T) {
	w := NewWriter()
	w.Write([]byte("hello"))
	w.Write([]byte(" world"))

	assert.Equal(t, []byte("hello world"), w.Finalize())
}

func TestWriter_FinalizeTruncatesToWritten(t *testing.T) {
	w := NewWriterSize(64)
	w.WriteByte(0xFF)

	out := w.Finalize()
	assert.Equal(t, []byte{0xFF}, out)
	assert.Len(t, out, 1)
}

func TestWriter_EnsureDoesNotChangeLen(t *testing.T) {
	w := NewWriter()
	w.WriteByte(0x01)
	w.Ensure(100)

	assert.Equal(t, 1, w.Len())
	assert.Equal(t, []byte{0x01}, w.Finalize())
}
