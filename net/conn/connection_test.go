package conn_test

import (
	"fmt"
	"io"
	"net"
	"testing"
	"time"

	"github.com/mickamy/mcnet/net/conn"
)

// listenLoopback returns a TCP listener on 127.0.0.1 and a paired client
// socket already connected to it.
func listenLoopback(t *testing.T) (net.Listener, net.Conn) {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { _ = lis.Close() })

	client, err := net.Dial("tcp", lis.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	return lis, client
}

func acceptOne(t *testing.T, lis net.Listener) *conn.Connection {
	t.Helper()
	sock, err := lis.Accept()
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	return conn.New(sock)
}

func TestSendEmptyBufferResolvesImmediately(t *testing.T) {
	t.Parallel()

	lis, client := listenLoopback(t)
	defer client.Close()
	c := acceptOne(t, lis)

	h := c.Send(nil)
	if got := h.Wait(); got != conn.Sent {
		t.Fatalf("got %v, want Sent", got)
	}
}

func TestSendOnShutdownConnectionResolvesFailed(t *testing.T) {
	t.Parallel()

	lis, client := listenLoopback(t)
	defer client.Close()
	c := acceptOne(t, lis)

	c.Disconnect("closing")
	h := c.Send([]byte("hello"))
	if got := h.Wait(); got != conn.Failed {
		t.Fatalf("got %v, want Failed", got)
	}
}

func TestDisconnectIsIdempotentAndFirstReasonWins(t *testing.T) {
	t.Parallel()

	lis, client := listenLoopback(t)
	defer client.Close()
	c := acceptOne(t, lis)

	c.Disconnect("first")
	c.Disconnect("second")

	if got := c.Reason(); got != "first" {
		t.Fatalf("got reason %q, want %q", got, "first")
	}
	if !c.ShuttingDown() {
		t.Fatal("expected ShuttingDown after Disconnect")
	}
}

func TestSendCompletionsObservedInEnqueueOrder(t *testing.T) {
	t.Parallel()

	lis, client := listenLoopback(t)
	defer client.Close()
	c := acceptOne(t, lis)

	// Drain the client side so writes don't block.
	go func() { _, _ = io.Copy(io.Discard, client) }()

	const n = 50
	handles := make([]*conn.SendHandle, n)
	for i := range n {
		handles[i] = c.Send([]byte(fmt.Sprintf("msg-%03d\n", i)))
	}

	// Completions fire front-first, so once the last send has resolved
	// every earlier one must already have resolved too.
	if got := handles[n-1].Wait(); got != conn.Sent {
		t.Fatalf("send %d: got %v, want Sent", n-1, got)
	}
	for i, h := range handles[:n-1] {
		if h.State() == conn.Pending {
			t.Fatalf("send %d still pending after send %d resolved", i, n-1)
		}
	}

	for i, h := range handles {
		if got := h.Wait(); got != conn.Sent {
			t.Fatalf("send %d: got %v, want Sent", i, got)
		}
	}
}

func TestDisconnectDuringSendResolvesEveryHandle(t *testing.T) {
	t.Parallel()

	lis, client := listenLoopback(t)
	defer client.Close()
	c := acceptOne(t, lis)

	go func() { _, _ = io.Copy(io.Discard, client) }()

	const n = 100
	handles := make([]*conn.SendHandle, n)
	for i := range n {
		handles[i] = c.Send([]byte(fmt.Sprintf("payload-%03d", i)))
		if i == 10 {
			c.Disconnect("mid-stream")
		}
	}

	for i, h := range handles {
		resolved := make(chan conn.SendState, 1)
		go func() { resolved <- h.Wait() }()
		var state conn.SendState
		select {
		case state = <-resolved:
		case <-time.After(2 * time.Second):
			t.Fatalf("send %d never resolved", i)
		}
		if state != conn.Sent && state != conn.Failed {
			t.Fatalf("send %d: got %v, want Sent or Failed", i, state)
		}
	}

	if !c.ShuttingDown() {
		t.Fatal("expected ShuttingDown")
	}
}

func TestPendingTracksOutstandingSends(t *testing.T) {
	t.Parallel()

	lis, client := listenLoopback(t)
	defer client.Close()
	c := acceptOne(t, lis)
	go func() { _, _ = io.Copy(io.Discard, client) }()

	h := c.Send([]byte("x"))
	h.Wait()

	// Eventually settles back to zero once the write loop has resolved it.
	deadline := time.Now().Add(time.Second)
	for c.Pending() != 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if c.Pending() != 0 {
		t.Fatalf("Pending() = %d, want 0", c.Pending())
	}
}
