package codec

import "fmt"

const (
	continuationBit = 0x80
	payloadMask     = 0x7F

	maxVarInt32Bytes = 5 // ceil(32/7)
	maxVarInt64Bytes = 10 // ceil(64/7)
)

// ReadVarUint32 reads an unsigned LEB128 VarInt bounded to 32 bits.
func (r *Reader) ReadVarUint32() (uint32, error) {
	var result uint32
	for i := range maxVarInt32Bytes {
		b, err := r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("codec: read varint: %w", err)
		}
		result |= uint32(b&payloadMask) << (7 * i)
		if b&continuationBit == 0 {
			// On the final byte for a 32-bit value read across 5 bytes, only
			// the low 4 bits of the payload are meaningful; anything above
			// that must be zero.
			if i == maxVarInt32Bytes-1 && b&0xF0 != 0 {
				return 0, fmt.Errorf("codec: read varint: %w", ErrBadFormat)
			}
			return result, nil
		}
	}
	return 0, fmt.Errorf("codec: read varint: %w", ErrBadFormat)
}

// ReadVarInt32 reads a zig-zag-encoded signed VarInt bounded to 32 bits.
func (r *Reader) ReadVarInt32() (int32, error) {
	u, err := r.ReadVarUint32()
	if err != nil {
		return 0, err
	}
	return zigZagDecode32(u), nil
}

// ReadVarUint64 reads an unsigned LEB128 VarLong bounded to 64 bits.
func (r *Reader) ReadVarUint64() (uint64, error) {
	var result uint64
	for i := range maxVarInt64Bytes {
		b, err := r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("codec: read varlong: %w", err)
		}
		result |= uint64(b&payloadMask) << (7 * i)
		if b&continuationBit == 0 {
			// On the final byte for a 64-bit value read across 10 bytes,
			// only the low bit of the payload is meaningful.
			if i == maxVarInt64Bytes-1 && b&0xFE != 0 {
				return 0, fmt.Errorf("codec: read varlong: %w", ErrBadFormat)
			}
			return result, nil
		}
	}
	return 0, fmt.Errorf("codec: read varlong: %w", ErrBadFormat)
}

// ReadVarInt64 reads a zig-zag-encoded signed VarLong bounded to 64 bits.
func (r *Reader) ReadVarInt64() (int64, error) {
	u, err := r.ReadVarUint64()
	if err != nil {
		return 0, err
	}
	return zigZagDecode64(u), nil
}

// WriteVarUint32 appends an unsigned LEB128 VarInt.
func WriteVarUint32(dst []byte, v uint32) []byte {
	for v >= continuationBit {
		dst = append(dst, byte(v)|continuationBit)
		v >>= 7
	}
	return append(dst, byte(v))
}

// WriteVarInt32 appends a zig-zag-encoded signed VarInt.
func WriteVarInt32(dst []byte, v int32) []byte {
	return WriteVarUint32(dst, zigZagEncode32(v))
}

// WriteVarUint64 appends an unsigned LEB128 VarLong.
func WriteVarUint64(dst []byte, v uint64) []byte {
	for v >= continuationBit {
		dst = append(dst, byte(v)|continuationBit)
		v >>= 7
	}
	return append(dst, byte(v))
}

// WriteVarInt64 appends a zig-zag-encoded signed VarLong.
func WriteVarInt64(dst []byte, v int64) []byte {
	return WriteVarUint64(dst, zigZagEncode64(v))
}

// SizeVarUint32 returns the number of bytes WriteVarUint32 would emit for v.
func SizeVarUint32(v uint32) int {
	n := 1
	for v >= continuationBit {
		v >>= 7
		n++
	}
	return n
}

// SizeVarInt32 returns the number of bytes WriteVarInt32 would emit for v.
func SizeVarInt32(v int32) int { return SizeVarUint32(zigZagEncode32(v)) }

// SizeVarUint64 returns the number of bytes WriteVarUint64 would emit for v.
func SizeVarUint64(v uint64) int {
	n := 1
	for v >= continuationBit {
		v >>= 7
		n++
	}
	return n
}

// SizeVarInt64 returns the number of bytes WriteVarInt64 would emit for v.
func SizeVarInt64(v int64) int { return SizeVarUint64(zigZagEncode64(v)) }

// zigZagEncode32 maps n>=0 to 2n and n<0 to 2|n|-1, with min(int32) mapping
// to max(uint32) via the two's-complement identity (v<<1)^(v>>31).
func zigZagEncode32(v int32) uint32 {
	return uint32((v << 1) ^ (v >> 31))
}

func zigZagDecode32(v uint32) int32 {
	return int32(v>>1) ^ -int32(v&1)
}

func zigZagEncode64(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

func zigZagDecode64(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}
