// Package format defines the small on-wire enums shared by envelope and
// archive: how an encoded batch sitting at rest is compressed.
package format

// CompressionType identifies the backend archive.Codec used to compress an
// already wire-encoded batch. It never appears inside the order-preserving
// encoding itself — compression destroys byte-wise order, so it only ever
// wraps a finished batch for storage or transport.
type CompressionType uint8

const (
	CompressionNone     CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd     CompressionType = 0x2 // CompressionZstd represents Zstandard compression (cgo, via gozstd).
	CompressionS2       CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4      CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionPureZstd CompressionType = 0x5 // CompressionPureZstd represents Zstandard via the pure-Go klauspost decoder/encoder.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionPureZstd:
		return "PureZstd"
	default:
		return "Unknown"
	}
}
