// Package ordtup implements an order-preserving tuple codec: a binary
// serialization whose byte-wise lexicographic order matches the logical
// order of the tuples it encodes. It is built from the element, tuple, and
// batch packages; see those for the single-value, sequence, and
// multi-tuple-with-prefix codecs respectively.
package ordtup

import (
	"github.com/ordtup/ordtup/batch"
	"github.com/ordtup/ordtup/element"
	"github.com/ordtup/ordtup/offsettable"
	"github.com/ordtup/ordtup/tuple"
	"github.com/ordtup/ordtup/varint"
	"github.com/ordtup/ordtup/wire"
)

// Value is what Pack accepts: a single element, a single tuple, or a list
// of tuples. The source dispatches on runtime shape (spec §9 "Batch shape
// polymorphism"); Value makes the three shapes a closed, statically checked
// sum type instead, built with Elem, OneTuple, or ManyTuples.
type Value struct {
	elem  element.Element
	one   tuple.Tuple
	many  []tuple.Tuple
	shape valueShape
}

type valueShape int

const (
	shapeElem valueShape = iota
	shapeOneTuple
	shapeManyTuples
)

// Elem wraps a single element as the one-element-tuple Value form.
func Elem(e element.Element) Value { return Value{shape: shapeElem, elem: e} }

// OneTuple wraps a single tuple as a Value.
func OneTuple(t tuple.Tuple) Value { return Value{shape: shapeOneTuple, one: t} }

// ManyTuples wraps a list of tuples as a Value, encoded with SEP between
// each pair.
func ManyTuples(ts []tuple.Tuple) Value { return Value{shape: shapeManyTuples, many: ts} }

// Tuplize returns v's tuple form: Elem is wrapped in a one-element tuple,
// OneTuple is returned as-is. ManyTuples has no single-tuple form and
// Tuplize returns nil for it — callers holding a list of tuples should use
// Pack/Packs directly rather than Tuplize.
func Tuplize(v Value) tuple.Tuple {
	switch v.shape {
	case shapeElem:
		return tuple.Tuple{v.elem}
	case shapeOneTuple:
		return v.one
	default:
		return nil
	}
}

// Pack encodes prefix followed by v: a single element or tuple becomes one
// tuple with no SEP; a list of tuples is separated by SEP per spec §4.7.
func Pack(prefix []byte, v Value, opts ...batch.Option) ([]byte, error) {
	if v.shape == shapeManyTuples {
		return batch.Pack(prefix, v.many, opts...)
	}

	return batch.Pack(prefix, []tuple.Tuple{Tuplize(v)}, opts...)
}

// Packs is an alias for Pack; the source exposes both names for the same
// operation (spec §6).
func Packs(prefix []byte, v Value, opts ...batch.Option) ([]byte, error) {
	return Pack(prefix, v, opts...)
}

// PackInt writes prefix followed directly by varint(v), bypassing the
// element/tuple layers entirely (spec §6, scenarios A-D). It is the raw
// varint-with-prefix operation the element Int encoding is built from, not
// a shorthand for Pack(prefix, Elem(element.Int(v))) — that form also
// writes a kind tag byte the caller of PackInt never sees.
func PackInt(prefix []byte, v uint64) []byte {
	w := wire.NewWriterSize(len(prefix) + varint.Size(v))
	w.Write(prefix)
	varint.Encode(w, v)

	return w.Finalize()
}

// Unpack checks input against prefix and, on match, decodes the single
// tuple that follows it. matched is false (with a nil error) when input
// does not begin with prefix — the NoMatch sentinel of spec §7.
func Unpack(prefix, input []byte) (t tuple.Tuple, matched bool, err error) {
	tuples, matched, err := batch.Unpack(prefix, input)
	if err != nil || !matched || len(tuples) == 0 {
		return nil, matched, err
	}

	return tuples[0], true, nil
}

// Unpacks checks input against prefix and, on match, decodes every tuple
// that follows it.
func Unpacks(prefix, input []byte) (tuples []tuple.Tuple, matched bool, err error) {
	return batch.Unpack(prefix, input)
}

// DecodeOffsets decodes an offset table from the start of input, returning
// the reconstructed offsets and the number of bytes consumed.
func DecodeOffsets(input []byte) (offsets []uint64, consumed int, err error) {
	return offsettable.Decode(input)
}
