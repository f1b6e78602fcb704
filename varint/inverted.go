package varint

import "github.com/ordtup/ordtup/wire"

// byteWriter and byteReader are the minimal surfaces Encode/Decode need.
// *wire.Writer and *wire.Reader satisfy them directly; invertedWriter and
// invertedReader satisfy them by complementing every byte that crosses the
// wire, which is how negative integers and negative timestamps get an
// order that runs opposite to their magnitude (spec §4.3, §9).
type byteWriter interface {
	WriteByte(b byte)
	Ensure(n int)
}

type byteReader interface {
	ReadByte() (byte, error)
	Ensure(n int) error
	ReadByteUnchecked() byte
}

type invertedWriter struct{ w *wire.Writer }

func (iw invertedWriter) WriteByte(b byte) { iw.w.WriteByte(^b) }
func (iw invertedWriter) Ensure(n int)     { iw.w.Ensure(n) }

type invertedReader struct{ r *wire.Reader }

func (ir invertedReader) ReadByte() (byte, error) {
	b, err := ir.r.ReadByte()
	return ^b, err
}

func (ir invertedReader) Ensure(n int) error { return ir.r.Ensure(n) }

func (ir invertedReader) ReadByteUnchecked() byte {
	return ^ir.r.ReadByteUnchecked()
}

// EncodeInverted writes the varint encoding of v with every byte bitwise
// complemented. Used for the magnitude of negative signed integers and
// negative timestamps: because a larger magnitude normally produces a
// lexicographically larger varint, complementing every byte reverses that
// order, so that among values sharing the NEG_INTEGER/NEG_TIME tag, a larger
// magnitude (a more negative original value) sorts first.
func EncodeInverted(w *wire.Writer, v uint64) {
	Encode(invertedWriter{w}, v)
}

// DecodeInverted is the inverse of EncodeInverted.
func DecodeInverted(r *wire.Reader) (uint64, error) {
	return Decode(invertedReader{r})
}
