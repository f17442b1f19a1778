package packet

import (
	"fmt"

	"github.com/mickamy/mcnet/net/codec"
)

// StatusRequest is Status/Serverbound/0x00: an empty ping for the server list.
type StatusRequest struct{}

func (StatusRequest) ID() int32 { return 0x00 }
func (StatusRequest) Encode(dst []byte) ([]byte, error) { return dst, nil }
func decodeStatusRequest(_ *codec.Reader) (Packet, error) { return StatusRequest{}, nil }

// StatusResponse is Status/Clientbound/0x00: a JSON status payload.
type StatusResponse struct {
	JSON string
}

func (StatusResponse) ID() int32 { return 0x00 }

func (p StatusResponse) Encode(dst []byte) ([]byte, error) {
	return codec.WriteString(dst, p.JSON), nil
}

func decodeStatusResponse(r *codec.Reader) (Packet, error) {
	s, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("packet: status response: %w", err)
	}
	return StatusResponse{JSON: s}, nil
}

// StatusPing is Status/Serverbound/0x01: an opaque payload the server echoes back.
type StatusPing struct {
	Payload int64
}

func (StatusPing) ID() int32 { return 0x01 }

func (p StatusPing) Encode(dst []byte) ([]byte, error) {
	return codec.WriteInt64(dst, p.Payload), nil
}

func decodeStatusPing(r *codec.Reader) (Packet, error) {
	v, err := r.ReadInt64()
	if err != nil {
		return nil, fmt.Errorf("packet: status ping: %w", err)
	}
	return StatusPing{Payload: v}, nil
}

// StatusPong is Status/Clientbound/0x01: the echoed StatusPing payload.
type StatusPong struct {
	Payload int64
}

func (StatusPong) ID() int32 { return 0x01 }

func (p StatusPong) Encode(dst []byte) ([]byte, error) {
	return codec.WriteInt64(dst, p.Payload), nil
}

func decodeStatusPong(r *codec.Reader) (Packet, error) {
	v, err := r.ReadInt64()
	if err != nil {
		return nil, fmt.Errorf("packet: status pong: %w", err)
	}
	return StatusPong{Payload: v}, nil
}

func init() {
	register(Status, Serverbound, 0x00, 0, decodeStatusRequest)
	register(Status, Clientbound, 0x00, 0, decodeStatusResponse)
	register(Status, Serverbound, 0x01, 8, decodeStatusPing)
	register(Status, Clientbound, 0x01, 8, decodeStatusPong)
}
