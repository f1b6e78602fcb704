//go:build cgo

package archive

import "github.com/valyala/gozstd"

// ZstdCodec is the cgo zstd backend (format.CompressionZstd), bound to
// valyala/gozstd's wrapper around the C reference implementation. Only
// built when cgo is enabled; archive.New still resolves CompressionZstd
// under a !cgo build, but via the stub in zstd_cgo_stub.go.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

func NewZstdCodec() ZstdCodec { return ZstdCodec{} }

func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
