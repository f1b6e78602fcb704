// Package element implements the single-value codec: the one-byte kind tag
// plus payload that make up each position of a Tuple (spec §4.3-§4.5).
package element

import (
	"bytes"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/ordtup/ordtup/errs"
	"github.com/ordtup/ordtup/varint"
	"github.com/ordtup/ordtup/wire"
)

// Element is a single tagged value: one of Null, Bool, Int, Blob, Text,
// Time, or UUID. The zero Element is not one of these: its kind is KindSep,
// and Encode rejects it with errs.ErrUnsupportedType.
//
// Kind reports the logical kind regardless of wire sign handling: an Int
// built from a negative value still reports KindInteger, never
// KindNegInteger — NEG_INTEGER and NEG_TIME are wire-only distinctions
// Encode/Decode resolve internally from the sign of the stored value.
type Element struct {
	kind Kind
	b    bool
	i    int64
	blob []byte
	text string
	tm   time.Time
	uid  uuid.UUID
}

func Null() Element            { return Element{kind: KindNull} }
func Bool(v bool) Element      { return Element{kind: KindBool, b: v} }
func Int(v int64) Element      { return Element{kind: KindInteger, i: v} }
func Blob(v []byte) Element    { return Element{kind: KindBlob, blob: v} }
func Text(v string) Element    { return Element{kind: KindText, text: v} }
func Time(v time.Time) Element { return Element{kind: KindTime, tm: v} }
func UUID(v uuid.UUID) Element { return Element{kind: KindUUID, uid: v} }

// Kind reports the element's logical kind.
func (e Element) Kind() Kind { return e.kind }

// IsNull reports whether e holds Null.
func (e Element) IsNull() bool { return e.kind == KindNull }

func (e Element) AsBool() (bool, bool) { return e.b, e.kind == KindBool }
func (e Element) AsInt() (int64, bool) { return e.i, e.kind == KindInteger }
func (e Element) AsBlob() ([]byte, bool) { return e.blob, e.kind == KindBlob }
func (e Element) AsText() (string, bool) { return e.text, e.kind == KindText }
func (e Element) AsTime() (time.Time, bool) { return e.tm, e.kind == KindTime }
func (e Element) AsUUID() (uuid.UUID, bool) { return e.uid, e.kind == KindUUID }

// Equal reports whether e and other hold the same kind and, within that
// kind, a value that round-trips to the same wire bytes. Time compares by
// its encoded (wall-clock-as-UTC millisecond, offset) pair rather than by
// time.Time.Equal, since that is what actually survives the wire (spec §4.5).
func (e Element) Equal(other Element) bool {
	if e.kind != other.kind {
		return false
	}

	switch e.kind {
	case KindNull:
		return true
	case KindBool:
		return e.b == other.b
	case KindInteger:
		return e.i == other.i
	case KindBlob:
		return bytes.Equal(e.blob, other.blob)
	case KindText:
		return e.text == other.text
	case KindUUID:
		return e.uid == other.uid
	case KindTime:
		ems, eoff := timestampComponents(e.tm)
		oms, ooff := timestampComponents(other.tm)
		return ems == oms && eoff == ooff
	default:
		return false
	}
}

// Encode writes e's kind tag and payload to w.
func Encode(w *wire.Writer, e Element) error {
	switch e.kind {
	case KindNull:
		w.WriteByte(byte(KindNull))
	case KindBool:
		w.WriteByte(byte(KindBool))
		if e.b {
			w.WriteByte(1)
		} else {
			w.WriteByte(0)
		}
	case KindInteger:
		encodeInt(w, e.i)
	case KindBlob:
		w.WriteByte(byte(KindBlob))
		WriteInterleaved(w, e.blob)
	case KindText:
		if !utf8.ValidString(e.text) {
			return errs.ErrInvalidUTF8
		}
		w.WriteByte(byte(KindText))
		WriteInterleaved(w, []byte(e.text))
	case KindUUID:
		w.WriteByte(byte(KindUUID))
		WriteInterleaved(w, e.uid[:])
	case KindTime:
		return encodeTime(w, e.tm)
	default:
		return errs.ErrUnsupportedType
	}

	return nil
}

// encodeInt picks INTEGER or NEG_INTEGER from the sign of v, per spec §4.3.
// uint64(-v) is correct even at v == math.MinInt64: Go's wraparound gives it
// the same two's-complement bit pattern as v itself, which is exactly the
// magnitude 2^63.
func encodeInt(w *wire.Writer, v int64) {
	if v >= 0 {
		w.WriteByte(byte(KindInteger))
		varint.Encode(w, uint64(v))
	} else {
		w.WriteByte(byte(KindNegInteger))
		varint.EncodeInverted(w, uint64(-v))
	}
}

// Decode reads one element's kind tag and payload from r.
func Decode(r *wire.Reader) (Element, error) {
	tagByte, err := r.ReadByte()
	if err != nil {
		return Element{}, err
	}

	switch Kind(tagByte) {
	case KindNull:
		return Null(), nil
	case KindBool:
		b, err := r.ReadByte()
		if err != nil {
			return Element{}, err
		}

		return Bool(b != 0), nil
	case KindInteger:
		v, err := varint.Decode(r)
		if err != nil {
			return Element{}, err
		}

		return Int(int64(v)), nil
	case KindNegInteger:
		v, err := varint.DecodeInverted(r)
		if err != nil {
			return Element{}, err
		}

		return Int(-int64(v)), nil
	case KindBlob:
		b, err := ReadInterleaved(r)
		if err != nil {
			return Element{}, err
		}

		return Blob(b), nil
	case KindText:
		b, err := ReadInterleaved(r)
		if err != nil {
			return Element{}, err
		}

		if !utf8.Valid(b) {
			return Element{}, errs.ErrInvalidUTF8
		}

		return Text(string(b)), nil
	case KindUUID:
		b, err := ReadInterleaved(r)
		if err != nil {
			return Element{}, err
		}

		if len(b) != 16 {
			return Element{}, errs.ErrInvalidUUID
		}

		var u uuid.UUID
		copy(u[:], b)

		return UUID(u), nil
	case KindTime:
		return decodeTime(r, false)
	case KindNegTime:
		return decodeTime(r, true)
	default:
		return Element{}, errs.ErrUnknownKind
	}
}
