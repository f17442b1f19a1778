package codec

import (
	"fmt"
	"unicode/utf8"
)

// ReadString reads a VarInt<u32>-length-prefixed UTF-8 string.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadVarUint32()
	if err != nil {
		return "", fmt.Errorf("codec: read string length: %w", err)
	}
	b, err := r.ReadBytes(int(n)) //nolint:gosec // string lengths fit in int on supported platforms
	if err != nil {
		return "", fmt.Errorf("codec: read string body: %w", err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("codec: read string: %w", ErrBadFormat)
	}
	return string(b), nil
}

// WriteString appends a VarInt<u32>-length-prefixed UTF-8 string.
func WriteString(dst []byte, s string) []byte {
	dst = WriteVarUint32(dst, uint32(len(s))) //nolint:gosec // protocol strings never approach 2^32 bytes
	return append(dst, s...)
}

// SizeString returns the number of bytes WriteString would emit for s.
func SizeString(s string) int {
	return SizeVarUint32(uint32(len(s))) + len(s) //nolint:gosec // protocol strings never approach 2^32 bytes
}
