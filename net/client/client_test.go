package client_test

import (
	"net"
	"testing"
	"time"

	"github.com/mickamy/mcnet/net/cipher/aescfb8"
	"github.com/mickamy/mcnet/net/client"
	connpkg "github.com/mickamy/mcnet/net/conn"
	"github.com/mickamy/mcnet/net/packet"
)

func pipe(t *testing.T) (*connpkg.Connection, net.Conn) {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { _ = lis.Close() })

	peer, err := net.Dial("tcp", lis.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = peer.Close() })

	sock, err := lis.Accept()
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	return connpkg.New(sock), peer
}

func newTestClient(t *testing.T) (*client.Client, net.Conn) {
	t.Helper()
	c, peer := pipe(t)
	return client.New(c, packet.Serverbound, 30*time.Second, 5*time.Second), peer
}

func readFull(c net.Conn, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := c.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func TestSendHandshakePlaintextOnWire(t *testing.T) {
	t.Parallel()

	cl, peer := newTestClient(t)

	hs := packet.Handshake{ProtocolVersion: 4, ServerAddress: "localhost", ServerPort: 25565, NextState: packet.Status}
	h := cl.Send(hs)
	if got := h.Wait(); got != connpkg.Sent {
		t.Fatalf("got %v, want Sent", got)
	}

	want, err := packet.Frame(nil, hs)
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	got := make([]byte, len(want))
	if _, err := readFull(peer, got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestInitialStateIsHandshaking(t *testing.T) {
	t.Parallel()
	cl, _ := newTestClient(t)
	if cl.State() != packet.Handshaking {
		t.Fatalf("got %v, want Handshaking", cl.State())
	}
}

// feed writes wire bytes from peer to the client's socket and pumps them
// through Client.Receive the way the reactor's per-connection worker would.
func feed(t *testing.T, cl *client.Client, peer net.Conn, wire []byte) {
	t.Helper()
	if _, err := peer.Write(wire); err != nil {
		t.Fatalf("write: %v", err)
	}

	buf := make([]byte, 4096)
	n, err := cl.Connection().Recv(buf)
	if err != nil {
		t.Fatalf("recv: %v", err)
	}
	if _, err := cl.Receive(buf[:n]); err != nil {
		t.Fatalf("receive: %v", err)
	}
}

func TestSetStateThenReceiveParsesAgainstNewPhase(t *testing.T) {
	t.Parallel()
	cl, peer := newTestClient(t)
	cl.SetState(packet.Status)

	wire, err := packet.Frame(nil, packet.StatusRequest{})
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	feed(t, cl, peer, wire)

	got, ok, err := cl.GetPacket()
	if err != nil {
		t.Fatalf("GetPacket: %v", err)
	}
	if !ok {
		t.Fatal("expected a packet to be available")
	}
	if _, ok := got.(packet.StatusRequest); !ok {
		t.Fatalf("got %T, want StatusRequest", got)
	}
}

func TestUsernameRoundTrip(t *testing.T) {
	t.Parallel()
	cl, _ := newTestClient(t)
	if cl.Username() != "" {
		t.Fatalf("got %q, want empty", cl.Username())
	}
	cl.SetUsername("Notch")
	if cl.Username() != "Notch" {
		t.Fatalf("got %q, want Notch", cl.Username())
	}
}

func TestEnableEncryptionIdempotentAfterFirstSuccess(t *testing.T) {
	t.Parallel()
	cl, peer := newTestClient(t)

	first, err := aescfb8.New(bytes16(0), bytes16(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	second, err := aescfb8.New(bytes16(9), bytes16(8))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := cl.EnableEncryption(first); err != nil {
		t.Fatalf("first EnableEncryption: %v", err)
	}
	if err := cl.EnableEncryption(second); err != nil {
		t.Fatalf("second EnableEncryption: %v", err)
	}

	p := packet.StatusPing{Payload: 7}
	h := cl.Send(p)
	if got := h.Wait(); got != connpkg.Sent {
		t.Fatalf("got %v, want Sent", got)
	}

	plain, err := packet.Frame(nil, p)
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	// A fresh cipher built from the same key/iv as `first`, used only to
	// compute the expected ciphertext — `first` itself has already
	// advanced its internal register by the live Send above.
	verify, err := aescfb8.New(bytes16(0), bytes16(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	wantWire := verify.Encrypt(plain)

	got := make([]byte, len(wantWire))
	if _, err := readFull(peer, got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string(wantWire) {
		t.Fatal("wire bytes do not match first cipher — second EnableEncryption must have been a no-op, but wasn't")
	}
}

func bytes16(fill byte) []byte {
	b := make([]byte, 16)
	for i := range b {
		b[i] = fill
	}
	return b
}
