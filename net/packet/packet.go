package packet

import (
	"fmt"

	"github.com/mickamy/mcnet/net/codec"
)

// Packet is implemented by every concrete packet record. ID and the
// (State, Direction) it is registered under are looked up via the registry,
// not stored redundantly on the value — mirroring a tagged variant rather
// than the reinterpret-cast union the original server used.
type Packet interface {
	// ID returns the packet's registry id, written as the leading VarInt of
	// the body before Encode's output.
	ID() int32
	// Encode appends this packet's field encoding (not including the
	// leading id VarInt or the outer length prefix) to dst.
	Encode(dst []byte) ([]byte, error)
}

// entry is one registry row: how to decode a body (after the id VarInt has
// already been consumed) into a Packet, and the static size of that shape
// if it never varies (0 otherwise).
type entry struct {
	decode func(r *codec.Reader) (Packet, error)
	size   int
}

type key struct {
	state     State
	direction Direction
	id        int32
}

var registry = map[key]entry{}

// register adds an entry to the registry. Called from each protocol phase's
// init-time table (handshake.go, status.go, login.go, play.go).
func register(state State, direction Direction, id int32, size int, decode func(r *codec.Reader) (Packet, error)) {
	registry[key{state, direction, id}] = entry{decode: decode, size: size}
}

// Lookup resolves a wire id to its decoder within a (state, direction).
func Lookup(state State, direction Direction, id int32) (decode func(r *codec.Reader) (Packet, error), ok bool) {
	e, ok := registry[key{state, direction, id}]
	if !ok {
		return nil, false
	}
	return e.decode, true
}

// MaxRecordSize returns the largest static size across all registry
// entries, used to size inline storage; variable-size entries (size 0)
// are excluded since their storage is already heap-allocated.
func MaxRecordSize() int {
	max := 0
	for _, e := range registry {
		if e.size > max {
			max = e.size
		}
	}
	return max
}

// Frame encodes p into a complete wire frame: VarInt<u32> length prefix
// followed by that many bytes of body (id VarInt + fields). The returned
// slice is appended to dst.
func Frame(dst []byte, p Packet) ([]byte, error) {
	body, err := p.Encode(codec.WriteVarInt32(nil, p.ID()))
	if err != nil {
		return nil, fmt.Errorf("packet: frame: encode: %w", err)
	}
	return append(codec.WriteVarUint32(dst, uint32(len(body))), body...), nil
}
