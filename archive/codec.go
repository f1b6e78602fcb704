// Package archive compresses an already wire-encoded batch for storage or
// transport. None of it participates in the order-preserving encoding:
// compression destroys byte-wise order, so a codec here only ever wraps a
// finished batch (typically via envelope.Wrap), never an in-progress one.
package archive

import (
	"fmt"

	"github.com/ordtup/ordtup/errs"
	"github.com/ordtup/ordtup/format"
)

// Codec compresses and decompresses whole batch byte strings.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// New is a factory function that creates a Codec for the given compression
// type.
func New(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionPureZstd:
		return NewPureZstdCodec(), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
	}
}
