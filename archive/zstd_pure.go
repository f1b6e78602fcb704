package archive

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// PureZstdCodec is the pure-Go zstd backend (format.CompressionPureZstd).
// Unlike ZstdCodec it needs no cgo toolchain, at the cost of somewhat lower
// throughput than the cgo binding. Encoders and decoders are pooled: the
// klauspost/compress/zstd docs note both are designed to run allocation-free
// after a warmup, so discarding one after a single use throws that away.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		d, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("archive: failed to create zstd decoder: %v", err))
		}

		return d
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		e, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("archive: failed to create zstd encoder: %v", err))
		}

		return e
	},
}

type PureZstdCodec struct{}

var _ Codec = PureZstdCodec{}

func NewPureZstdCodec() PureZstdCodec { return PureZstdCodec{} }

func (c PureZstdCodec) Compress(data []byte) ([]byte, error) {
	encoder := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

func (c PureZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}
