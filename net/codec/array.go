package codec

import "fmt"

// ReadArray reads a prefix integer giving the element count, then decodes
// that many elements with elem. A negative signed prefix is ErrBadFormat.
func ReadArray[T any](r *Reader, elem func(*Reader) (T, error)) ([]T, error) {
	n, err := r.ReadVarInt32()
	if err != nil {
		return nil, fmt.Errorf("codec: read array length: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("codec: read array: %w", ErrBadFormat)
	}
	out := make([]T, 0, n)
	for i := int32(0); i < n; i++ {
		v, err := elem(r)
		if err != nil {
			// Tuple/array decoding is exception-safe: on a mid-sequence
			// failure the partially built result is dropped here and the
			// caller sees only the error.
			return nil, fmt.Errorf("codec: read array element %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// WriteArray appends a VarInt<i32> element count followed by each element's
// encoding via elem.
func WriteArray[T any](dst []byte, items []T, elem func([]byte, T) []byte) []byte {
	dst = WriteVarInt32(dst, int32(len(items))) //nolint:gosec // protocol arrays never approach 2^31 elements
	for _, it := range items {
		dst = elem(dst, it)
	}
	return dst
}
