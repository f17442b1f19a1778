package codec

import (
	"encoding/binary"
	"fmt"
)

// ReadInt16 reads a big-endian signed 16-bit integer.
func (r *Reader) ReadInt16() (int16, error) {
	b, err := r.ReadBytes(2)
	if err != nil {
		return 0, fmt.Errorf("codec: read int16: %w", err)
	}
	return int16(binary.BigEndian.Uint16(b)), nil
}

// ReadUint16 reads a big-endian unsigned 16-bit integer.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.ReadBytes(2)
	if err != nil {
		return 0, fmt.Errorf("codec: read uint16: %w", err)
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadInt32 reads a big-endian signed 32-bit integer.
func (r *Reader) ReadInt32() (int32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, fmt.Errorf("codec: read int32: %w", err)
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

// ReadInt64 reads a big-endian signed 64-bit integer.
func (r *Reader) ReadInt64() (int64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, fmt.Errorf("codec: read int64: %w", err)
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

// ReadFloat32 reads a big-endian IEEE-754 32-bit float.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadInt32()
	if err != nil {
		return 0, err
	}
	return int32bitsToFloat32(v), nil
}

// ReadFloat64 reads a big-endian IEEE-754 64-bit float.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadInt64()
	if err != nil {
		return 0, err
	}
	return int64bitsToFloat64(v), nil
}

// WriteByte appends a single byte.
func WriteByte(dst []byte, v byte) []byte { return append(dst, v) }

// WriteBool appends a single byte: 1 for true, 0 for false.
func WriteBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, 1)
	}
	return append(dst, 0)
}

// WriteInt16 appends a big-endian signed 16-bit integer.
func WriteInt16(dst []byte, v int16) []byte {
	return binary.BigEndian.AppendUint16(dst, uint16(v))
}

// WriteUint16 appends a big-endian unsigned 16-bit integer.
func WriteUint16(dst []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(dst, v)
}

// WriteInt32 appends a big-endian signed 32-bit integer.
func WriteInt32(dst []byte, v int32) []byte {
	return binary.BigEndian.AppendUint32(dst, uint32(v))
}

// WriteInt64 appends a big-endian signed 64-bit integer.
func WriteInt64(dst []byte, v int64) []byte {
	return binary.BigEndian.AppendUint64(dst, uint64(v))
}

// WriteFloat32 appends a big-endian IEEE-754 32-bit float.
func WriteFloat32(dst []byte, v float32) []byte {
	return WriteInt32(dst, float32bitsToInt32(v))
}

// WriteFloat64 appends a big-endian IEEE-754 64-bit float.
func WriteFloat64(dst []byte, v float64) []byte {
	return WriteInt64(dst, float64bitsToInt64(v))
}
