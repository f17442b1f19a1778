package packet

import "github.com/mickamy/mcnet/net/codec"

// RawTail carries a trailing, game-logic-defined byte run (slot data,
// entity metadata, object data) that this core does not interpret — slot
// and metadata encoding is a game-mechanics subsystem concern and out of
// scope per the core's external-collaborator boundary. It must always be
// the last field of a packet: decoding it consumes every remaining byte.
type RawTail []byte

func readRawTail(r *codec.Reader) (RawTail, error) {
	b, err := r.ReadBytes(r.Remaining())
	if err != nil {
		return nil, err
	}
	return RawTail(b), nil
}

func writeRawTail(dst []byte, t RawTail) []byte {
	return append(dst, t...)
}
