package packet_test

import (
	"testing"

	"github.com/mickamy/mcnet/net/codec"
	"github.com/mickamy/mcnet/net/packet"
)

func TestHandshakeRoundTrip(t *testing.T) {
	t.Parallel()

	in := packet.Handshake{
		ProtocolVersion: 4,
		ServerAddress:   "localhost",
		ServerPort:      25565,
		NextState:       packet.Status,
	}

	body, err := in.Encode(nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decode, ok := packet.Lookup(packet.Handshaking, packet.Serverbound, in.ID())
	if !ok {
		t.Fatal("no registry entry for handshake")
	}

	r := codec.NewReader(body)
	got, err := decode(r)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r.Remaining() != 0 {
		t.Fatalf("decode left %d bytes unconsumed", r.Remaining())
	}
	if got != in {
		t.Fatalf("got %+v, want %+v", got, in)
	}
}

func TestHandshakeWireBytes(t *testing.T) {
	t.Parallel()

	// Body-only encoding (id VarInt + fields) of protocolVersion=4,
	// serverAddress="localhost", serverPort=25565, nextState=Status — the
	// field values of the handshake scenario.
	wire := []byte{0x00, 0x04, 0x09, 'l', 'o', 'c', 'a', 'l', 'h', 'o', 's', 't', 0x63, 0xDD, 0x01}

	r := codec.NewReader(wire)
	id, err := r.ReadVarInt32()
	if err != nil {
		t.Fatalf("read id: %v", err)
	}
	decode, ok := packet.Lookup(packet.Handshaking, packet.Serverbound, id)
	if !ok {
		t.Fatalf("no registry entry for id %d", id)
	}
	got, err := decode(r)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	hs, ok := got.(packet.Handshake)
	if !ok {
		t.Fatalf("got %T, want Handshake", got)
	}
	if hs.ProtocolVersion != 4 || hs.ServerAddress != "localhost" || hs.ServerPort != 25565 || hs.NextState != packet.Status {
		t.Fatalf("got %+v", hs)
	}
	if r.Remaining() != 0 {
		t.Fatalf("decode left %d bytes unconsumed", r.Remaining())
	}
}

func TestUnknownPacketID(t *testing.T) {
	t.Parallel()

	if _, ok := packet.Lookup(packet.Handshaking, packet.Serverbound, 0x7F); ok {
		t.Fatal("expected no entry for unregistered id")
	}
}
