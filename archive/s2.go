package archive

import "github.com/klauspost/compress/s2"

// S2Codec uses klauspost/compress's S2, a Snappy-compatible format tuned
// for speed rather than ratio — a reasonable default when batches are
// compressed on a hot path rather than at rest.
type S2Codec struct{}

var _ Codec = S2Codec{}

func NewS2Codec() S2Codec { return S2Codec{} }

func (c S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (c S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
