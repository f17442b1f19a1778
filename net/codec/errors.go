// Package codec implements the wire-level primitives used by every packet
// in the registry: big-endian fixed-width integers, LEB128 VarInt/VarLong
// with zig-zag signed encoding, length-prefixed UTF-8 strings, embedded JSON
// values, and length-prefixed arrays.
package codec

import "errors"

// ErrInsufficientBytes signals that a read could not complete because fewer
// bytes are available than the value requires. At the outermost framing
// boundary this is not an error, it is the "need more bytes" signal; inside
// a packet body it is a fatal framing error.
var ErrInsufficientBytes = errors.New("codec: insufficient bytes")

// ErrBadFormat signals structurally invalid input: an overlong VarInt, a
// negative array length, invalid UTF-8, or JSON nested past the depth bound.
var ErrBadFormat = errors.New("codec: bad format")
