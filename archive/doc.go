// Package archive collects the CompressionType backends: NoOpCodec,
// ZstdCodec (cgo, valyala/gozstd), PureZstdCodec (klauspost/compress/zstd),
// S2Codec (klauspost/compress/s2), and LZ4Codec (pierrec/lz4/v4). Pick one
// with New and hand its output to envelope.Wrap.
package archive
