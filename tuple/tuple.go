// Package tuple implements the Tuple codec: an ordered sequence of Elements
// encoded back to back with no length prefix, relying on each Element being
// self-delimiting (spec §4.6).
package tuple

import (
	"github.com/ordtup/ordtup/element"
	"github.com/ordtup/ordtup/wire"
)

// Tuple is an ordered sequence of elements.
type Tuple []element.Element

// Encode writes every element of t in order. An empty Tuple writes nothing.
func Encode(w *wire.Writer, t Tuple) error {
	for _, e := range t {
		if err := element.Encode(w, e); err != nil {
			return err
		}
	}

	return nil
}

// Decode reads elements from r until input is exhausted or a SEP tag byte is
// encountered. sawSep reports which of those stopped the read: when true,
// the SEP byte has already been consumed and the caller (the batch codec) is
// expected to continue with the next tuple.
func Decode(r *wire.Reader) (t Tuple, sawSep bool, err error) {
	for !r.Done() {
		tagByte, err := r.PeekByte()
		if err != nil {
			return t, false, err
		}

		if element.Kind(tagByte) == element.KindSep {
			r.ReadByteUnchecked()
			return t, true, nil
		}

		e, err := element.Decode(r)
		if err != nil {
			return t, false, err
		}

		t = append(t, e)
	}

	return t, false, nil
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal(a, b Tuple) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}
