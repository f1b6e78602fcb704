// Package hash wraps the xxHash64 digest used by the envelope package to
// detect corruption in a stored or transmitted batch.
package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 digest of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
