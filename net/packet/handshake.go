package packet

import (
	"fmt"

	"github.com/mickamy/mcnet/net/codec"
)

// Handshake is Handshaking/Serverbound/0x00, the single packet that opens
// every connection and selects whether it proceeds into Status or Login.
type Handshake struct {
	ProtocolVersion int32
	ServerAddress   string
	ServerPort      uint16
	NextState       State
}

func (Handshake) ID() int32 { return 0x00 }

func (p Handshake) Encode(dst []byte) ([]byte, error) {
	dst = codec.WriteVarUint32(dst, uint32(p.ProtocolVersion))
	dst = codec.WriteString(dst, p.ServerAddress)
	dst = codec.WriteUint16(dst, p.ServerPort)
	var next uint32
	switch p.NextState {
	case Status:
		next = 1
	case Login:
		next = 2
	default:
		return nil, fmt.Errorf("packet: handshake: encode next state %s: %w", p.NextState, ErrBadFormat)
	}
	dst = codec.WriteVarUint32(dst, next)
	return dst, nil
}

func decodeHandshake(r *codec.Reader) (Packet, error) {
	protocolVersion, err := r.ReadVarUint32()
	if err != nil {
		return nil, fmt.Errorf("packet: handshake: protocol version: %w", err)
	}
	addr, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("packet: handshake: server address: %w", err)
	}
	port, err := r.ReadUint16()
	if err != nil {
		return nil, fmt.Errorf("packet: handshake: server port: %w", err)
	}
	nextRaw, err := r.ReadVarUint32()
	if err != nil {
		return nil, fmt.Errorf("packet: handshake: next state: %w", err)
	}
	next, err := NextStateFromWire(int32(nextRaw))
	if err != nil {
		return nil, fmt.Errorf("packet: handshake: %w", err)
	}
	return Handshake{
		ProtocolVersion: int32(protocolVersion), //nolint:gosec // reinterpreting bits, not converting value
		ServerAddress:   addr,
		ServerPort:      port,
		NextState:       next,
	}, nil
}

func init() {
	register(Handshaking, Serverbound, 0x00, 0, decodeHandshake)
}
