package archive

// NoOpCodec bypasses compression entirely, returning its input unchanged.
// Useful when the caller wants envelope's digest and framing without the
// cost of compression — e.g. small batches where compression overhead
// would exceed any space saved.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

func NewNoOpCodec() NoOpCodec { return NoOpCodec{} }

func (c NoOpCodec) Compress(data []byte) ([]byte, error)   { return data, nil }
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
