//go:build cgo

package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZstdCodec_RoundTrip(t *testing.T) {
	codec := NewZstdCodec()
	payload := []byte("the quick brown fox jumps over the lazy dog")

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)

	got, err := codec.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}
