// Package envelope wraps an already wire-encoded batch with a small fixed
// header carrying a magic number, an optional compression tag, and an
// xxHash64 digest of the body. It is strictly additive: nothing in this
// package participates in the order-preserving encoding itself, and a
// caller that never needs integrity checking or at-rest compression can
// ignore it entirely and pass batch.Pack's output straight to storage.
package envelope

import (
	"github.com/ordtup/ordtup/endian"
	"github.com/ordtup/ordtup/errs"
	"github.com/ordtup/ordtup/format"
	"github.com/ordtup/ordtup/internal/hash"
)

// magic identifies envelope-wrapped data so Unwrap can reject arbitrary
// byte strings quickly, before trusting any other header field.
const magic uint32 = 0x4F524454 // "ORDT"

const version uint8 = 1

// flagCompressed marks that the body was compressed with the CompressionType
// named in the header, rather than being a raw batch encoding.
const flagCompressed uint8 = 0x01

// headerSize is magic(4) + version(1) + flags(1) + compression(1) + bodyLen(4) + digest(8).
const headerSize = 19

var byteOrder = endian.GetLittleEndianEngine()

// Wrap writes the envelope header for body (already compressed if
// compressed is true) and returns header||body as one byte string.
func Wrap(body []byte, compressed bool, ct format.CompressionType) []byte {
	out := make([]byte, 0, headerSize+len(body))

	out = byteOrder.AppendUint32(out, magic)
	out = append(out, version)

	var flags uint8
	if compressed {
		flags |= flagCompressed
	}
	out = append(out, flags)

	if compressed {
		out = append(out, byte(ct))
	} else {
		out = append(out, byte(format.CompressionNone))
	}

	out = byteOrder.AppendUint32(out, uint32(len(body)))
	out = byteOrder.AppendUint64(out, hash.Sum64(body))
	out = append(out, body...)

	return out
}

// Unwrap validates the header of data, checks the digest against the body,
// and returns the body plus whether it is compressed and with what codec.
func Unwrap(data []byte) (body []byte, compressed bool, ct format.CompressionType, err error) {
	if len(data) < headerSize {
		return nil, false, 0, errs.ErrInvalidEnvelope
	}

	if byteOrder.Uint32(data[0:4]) != magic {
		return nil, false, 0, errs.ErrInvalidEnvelope
	}

	if data[4] != version {
		return nil, false, 0, errs.ErrInvalidEnvelope
	}

	flags := data[5]
	compressed = flags&flagCompressed != 0
	ct = format.CompressionType(data[6])

	bodyLen := byteOrder.Uint32(data[7:11])
	digest := byteOrder.Uint64(data[11:19])

	body = data[headerSize:]
	if uint32(len(body)) != bodyLen {
		return nil, false, 0, errs.ErrInvalidEnvelope
	}

	if hash.Sum64(body) != digest {
		return nil, false, 0, errs.ErrDigestMismatch
	}

	return body, compressed, ct, nil
}
