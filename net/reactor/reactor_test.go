package reactor_test

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/mickamy/mcnet/net/client"
	"github.com/mickamy/mcnet/net/packet"
	"github.com/mickamy/mcnet/net/reactor"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := lis.Addr().String()
	_ = lis.Close()
	return addr
}

// recorder collects callback invocations under a mutex so tests can assert
// on them after Close has drained every goroutine.
type recorder struct {
	mu          sync.Mutex
	connected   int
	disconnects []string
	received    []packet.Packet
}

func (r *recorder) onConnect(*client.Client) {
	r.mu.Lock()
	r.connected++
	r.mu.Unlock()
}

func (r *recorder) onDisconnect(_ *client.Client, reason string) {
	r.mu.Lock()
	r.disconnects = append(r.disconnects, reason)
	r.mu.Unlock()
}

func (r *recorder) onReceive(_ *client.Client, pkt packet.Packet) {
	r.mu.Lock()
	r.received = append(r.received, pkt)
	r.mu.Unlock()
}

func (r *recorder) connectedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.connected
}

func (r *recorder) disconnectCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.disconnects)
}

func (r *recorder) receivedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.received)
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	if !cond() {
		t.Fatal("condition not met before timeout")
	}
}

func TestAcceptInvokesConnectAndPumpsAPacket(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	r := reactor.New(reactor.Callbacks{
		Accept:     func(string, uint16) bool { return true },
		Connect:    rec.onConnect,
		Disconnect: rec.onDisconnect,
		Receive:    rec.onReceive,
	}, nil, packet.Serverbound, 30*time.Second, 5*time.Second)

	addr := freeAddr(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Serve(ctx, []string{addr}) }()
	t.Cleanup(func() {
		_ = r.Close()
		cancel()
		<-done
	})

	time.Sleep(50 * time.Millisecond) // let acceptor bind

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	waitFor(t, time.Second, func() bool { return rec.connectedCount() == 1 })

	wire, err := packet.Frame(nil, packet.Handshake{
		ProtocolVersion: 4,
		ServerAddress:   "localhost",
		ServerPort:      25565,
		NextState:       packet.Status,
	})
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if _, err := conn.Write(wire); err != nil {
		t.Fatalf("write: %v", err)
	}

	waitFor(t, time.Second, func() bool { return rec.receivedCount() == 1 })
}

func TestAcceptCallbackRejectionClosesSocketWithoutConnect(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	r := reactor.New(reactor.Callbacks{
		Accept:  func(string, uint16) bool { return false },
		Connect: rec.onConnect,
	}, nil, packet.Serverbound, 30*time.Second, 5*time.Second)

	addr := freeAddr(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Serve(ctx, []string{addr}) }()
	t.Cleanup(func() {
		_ = r.Close()
		cancel()
		<-done
	})

	time.Sleep(50 * time.Millisecond) // let acceptor bind

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	buf := make([]byte, 1)
	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	_, err = conn.Read(buf)
	if err == nil {
		t.Fatal("expected rejected connection's socket to be closed")
	}
	if ne, ok := err.(net.Error); ok && ne.Timeout() {
		t.Fatal("read timed out: rejected connection's socket was not closed")
	}
	if rec.connectedCount() != 0 {
		t.Fatalf("got %d Connect calls, want 0", rec.connectedCount())
	}
}

func TestPeerCloseFiresDisconnectExactlyOnce(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	r := reactor.New(reactor.Callbacks{
		Accept:     func(string, uint16) bool { return true },
		Connect:    rec.onConnect,
		Disconnect: rec.onDisconnect,
	}, nil, packet.Serverbound, 30*time.Second, 5*time.Second)

	addr := freeAddr(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Serve(ctx, []string{addr}) }()
	t.Cleanup(func() {
		_ = r.Close()
		cancel()
		<-done
	})

	time.Sleep(50 * time.Millisecond) // let acceptor bind

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}

	waitFor(t, time.Second, func() bool { return rec.connectedCount() == 1 })
	_ = conn.Close()

	waitFor(t, time.Second, func() bool { return rec.disconnectCount() == 1 })
	waitFor(t, time.Second, func() bool { return r.LiveAsync() == 0 })

	time.Sleep(20 * time.Millisecond)
	if rec.disconnectCount() != 1 {
		t.Fatalf("got %d Disconnect calls, want exactly 1", rec.disconnectCount())
	}
}

func TestCloseDisconnectsEveryLiveConnection(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	r := reactor.New(reactor.Callbacks{
		Accept:     func(string, uint16) bool { return true },
		Connect:    rec.onConnect,
		Disconnect: rec.onDisconnect,
	}, nil, packet.Serverbound, 30*time.Second, 5*time.Second)

	addr := freeAddr(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Serve(ctx, []string{addr}) }()

	time.Sleep(50 * time.Millisecond) // let acceptor bind

	var conns []net.Conn
	for i := 0; i < 3; i++ {
		c, err := net.Dial("tcp", addr)
		if err != nil {
			t.Fatalf("dial: %v", err)
		}
		conns = append(conns, c)
	}
	t.Cleanup(func() {
		for _, c := range conns {
			_ = c.Close()
		}
	})

	waitFor(t, time.Second, func() bool { return rec.connectedCount() == 3 })

	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	cancel()
	<-done

	if rec.disconnectCount() != 3 {
		t.Fatalf("got %d Disconnect calls, want 3", rec.disconnectCount())
	}
	if r.LiveAsync() != 0 {
		t.Fatalf("got LiveAsync() = %d, want 0", r.LiveAsync())
	}
}
