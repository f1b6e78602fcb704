// Package varint implements the order-preserving variable-length unsigned
// 64-bit integer encoding used throughout ordtup for integer element
// payloads and for length/delta fields in the offset table.
//
// A value v in [0, 2^64) is encoded as a lead byte selecting a range plus
// 0-8 big-endian continuation bytes. Lexicographic comparison of two
// encodings agrees with numeric comparison of the values they encode, and
// the encoder always picks the shortest representation.
package varint

// Lead byte range boundaries, per spec ranges:
//
//	0..240          -> 1 byte total  (lead byte is the value itself)
//	241..2287       -> 2 bytes total (lead 241-248, 1 payload byte)
//	2288..67823     -> 3 bytes total (lead 249, 2 payload bytes)
//	67824..2^24-1   -> 4 bytes total (lead 250, 3 payload bytes)
//	..2^32-1        -> 5 bytes total (lead 251, 4 payload bytes)
//	..2^40-1        -> 6 bytes total (lead 252, 5 payload bytes)
//	..2^48-1        -> 7 bytes total (lead 253, 6 payload bytes)
//	..2^56-1        -> 8 bytes total (lead 254, 7 payload bytes)
//	..2^64-1        -> 9 bytes total (lead 255, 8 payload bytes)
const (
	max1Byte  = 240
	max2Byte  = 2287
	max3Byte  = 67823
	base2Byte = 240
	base3Byte = 2288

	lead2ByteStart = 241
	lead2ByteEnd   = 248
	lead3Byte      = 249
	lead4Byte      = 250
	lead5Byte      = 251
	lead6Byte      = 252
	lead7Byte      = 253
	lead8Byte      = 254
	lead9Byte      = 255
)

// Encode writes v to w using the shortest conforming representation.
func Encode(w byteWriter, v uint64) {
	switch {
	case v <= max1Byte:
		w.WriteByte(byte(v))
	case v <= max2Byte:
		d := v - base2Byte
		w.Ensure(2)
		w.WriteByte(byte(lead2ByteStart + (d >> 8)))
		w.WriteByte(byte(d))
	case v <= max3Byte:
		d := v - base3Byte
		w.Ensure(3)
		w.WriteByte(lead3Byte)
		w.WriteByte(byte(d >> 8))
		w.WriteByte(byte(d))
	default:
		encodeWide(w, v)
	}
}

// encodeWide handles the four-through-nine-byte forms (250-255), where the
// payload is simply v written big-endian with leading zero bytes trimmed to
// the minimum width the lead byte promises.
func encodeWide(w byteWriter, v uint64) {
	// payloadLen is the number of big-endian payload bytes; lead encodes it
	// as 250+  (payloadLen-3).
	var payloadLen int

	switch {
	case v <= 0xFFFFFF:
		payloadLen = 3
	case v <= 0xFFFFFFFF:
		payloadLen = 4
	case v <= 0xFFFFFFFFFF:
		payloadLen = 5
	case v <= 0xFFFFFFFFFFFF:
		payloadLen = 6
	case v <= 0xFFFFFFFFFFFFFF:
		payloadLen = 7
	default:
		payloadLen = 8
	}

	lead := byte(lead4Byte + (payloadLen - 3))

	w.Ensure(1 + payloadLen)
	w.WriteByte(lead)

	for i := payloadLen - 1; i >= 0; i-- {
		w.WriteByte(byte(v >> (8 * uint(i))))
	}
}

// Decode reads a varint from r, returning the decoded value. It fails with a
// truncated-input error if fewer continuation bytes are available than the
// lead byte promises.
func Decode(r byteReader) (uint64, error) {
	lead, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	switch {
	case lead <= max1Byte:
		return uint64(lead), nil
	case lead <= lead2ByteEnd:
		if err := r.Ensure(1); err != nil {
			return 0, err
		}

		return base2Byte + uint64(lead-lead2ByteStart)*256 + uint64(r.ReadByteUnchecked()), nil
	case lead == lead3Byte:
		if err := r.Ensure(2); err != nil {
			return 0, err
		}

		hi := uint64(r.ReadByteUnchecked())
		lo := uint64(r.ReadByteUnchecked())

		return base3Byte + hi*256 + lo, nil
	default:
		payloadLen := int(lead) - lead4Byte + 3
		if err := r.Ensure(payloadLen); err != nil {
			return 0, err
		}

		var v uint64
		for i := 0; i < payloadLen; i++ {
			v = (v << 8) | uint64(r.ReadByteUnchecked())
		}

		return v, nil
	}
}

// Size returns the number of bytes Encode would write for v, without
// actually encoding it. Useful for callers that need to pre-reserve space.
func Size(v uint64) int {
	switch {
	case v <= max1Byte:
		return 1
	case v <= max2Byte:
		return 2
	case v <= max3Byte:
		return 3
	case v <= 0xFFFFFF:
		return 4
	case v <= 0xFFFFFFFF:
		return 5
	case v <= 0xFFFFFFFFFF:
		return 6
	case v <= 0xFFFFFFFFFFFF:
		return 7
	case v <= 0xFFFFFFFFFFFFFF:
		return 8
	default:
		return 9
	}
}
