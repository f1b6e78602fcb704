package element

import "github.com/ordtup/ordtup/wire"

// WriteInterleaved writes data as the self-delimiting, order-preserving
// bit-interleaved byte stream used for Blob/Text/Uuid payloads (spec §4.4).
//
// Length prefixes can't be used here: a length byte would break
// lexicographic order when comparing a short string against a longer one
// sharing its prefix. Interleaving trades roughly 14% space for an encoding
// whose byte-wise order matches the input's and that still finds its own
// end without a declared length.
func WriteInterleaved(w *wire.Writer, data []byte) {
	var shift uint = 1
	var trailer byte

	for _, o := range data {
		w.WriteByte(0x80 | trailer | (o >> shift))

		if shift < 7 {
			trailer = (o << (7 - shift)) & 0x7F
			shift++
		} else {
			w.WriteByte(0x80 | o)
			shift = 1
			trailer = 0
		}
	}

	if shift > 1 {
		w.WriteByte(trailer)
		if trailer != 0 {
			w.WriteByte(0)
		}
	} else {
		w.WriteByte(0)
	}
}

// ReadInterleaved reads a stream written by WriteInterleaved, returning the
// original bytes. The final trailer is the one byte with bit 7 clear; it
// completes the last byte and, unless it is itself 0x00, is followed by a
// 0x00 terminator. It consumes exactly up to and including that final 0x00.
func ReadInterleaved(r *wire.Reader) ([]byte, error) {
	lb, err := r.ReadByte()
	if err != nil {
		return nil, err
	}

	if lb == 0 {
		return []byte{}, nil
	}

	var out []byte

	var shift uint = 1
	for {
		cb, err := r.ReadByte()
		if err != nil {
			return nil, err
		}

		ch := (lb << shift) | ((cb & 0x7f) >> (7 - shift))
		out = append(out, ch)

		if cb&0x80 == 0 {
			if cb != 0 {
				if _, err := r.ReadByte(); err != nil {
					return nil, err
				}
			}

			break
		}

		if shift < 7 {
			shift++
			lb = cb
		} else {
			shift = 1

			next, err := r.ReadByte()
			if err != nil {
				return nil, err
			}

			if next == 0 {
				break
			}

			lb = next
		}
	}

	return out, nil
}
