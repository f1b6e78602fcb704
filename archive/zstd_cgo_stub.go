//go:build !cgo

package archive

import "github.com/ordtup/ordtup/errs"

// ZstdCodec stubs out the cgo zstd backend on a !cgo build. Prefer
// PureZstdCodec (format.CompressionPureZstd) in that configuration; it
// needs no cgo toolchain at all.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

func NewZstdCodec() ZstdCodec { return ZstdCodec{} }

func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	return nil, errs.ErrUnsupportedCompression
}

func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	return nil, errs.ErrUnsupportedCompression
}
