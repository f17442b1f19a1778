// Package conn owns one socket: its send queue, receive path, shutdown
// flag, disconnect reason, and per-connection byte counters. It never
// interprets the bytes it moves — framing, packet decoding, and cipher
// interposition are layered on top by net/parser, net/packet, and
// net/client.
package conn

import (
	"fmt"
	"net"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// sendCommand is one enqueued Send: the bytes to write and the handle
// observers poll or wait on for completion.
type sendCommand struct {
	buf    []byte
	handle *SendHandle
}

// Connection wraps one net.Conn. It is owned exclusively by whatever
// accepted or dialed it (the reactor, in production use); callers only ever
// see it through that owner's map, matching the ownership discipline of
// ConnectionHandler in the design notes.
type Connection struct {
	id         string
	sock       net.Conn
	remoteIP   string
	remotePort uint16

	sendMu    sync.Mutex
	sendCond  *sync.Cond
	sendQueue []*sendCommand
	shutdown  bool

	reasonMu sync.Mutex
	reason   *string

	sent     atomic.Int64
	received atomic.Int64
	pending  atomic.Int32

	writerDone chan struct{}
}

// New wraps an accepted or dialed socket. The caller is responsible for
// inserting the Connection into whatever map owns it before using it.
func New(sock net.Conn) *Connection {
	c := &Connection{
		id:         uuid.New().String(),
		sock:       sock,
		writerDone: make(chan struct{}),
	}
	c.sendCond = sync.NewCond(&c.sendMu)

	if host, portStr, err := net.SplitHostPort(sock.RemoteAddr().String()); err == nil {
		c.remoteIP = host
		if port, err := strconv.ParseUint(portStr, 10, 16); err == nil {
			c.remotePort = uint16(port)
		}
	}

	go c.writeLoop()
	return c
}

// ID is the connection's identity, used as the key in the owner's map and
// in log lines.
func (c *Connection) ID() string { return c.id }

// IP returns the remote endpoint's address.
func (c *Connection) IP() string { return c.remoteIP }

// Port returns the remote endpoint's port.
func (c *Connection) Port() uint16 { return c.remotePort }

// Sent returns the total bytes successfully written to the socket.
func (c *Connection) Sent() int64 { return c.sent.Load() }

// Received returns the total bytes successfully read from the socket.
func (c *Connection) Received() int64 { return c.received.Load() }

// Pending returns the number of SendCommands enqueued but not yet resolved.
func (c *Connection) Pending() int32 { return c.pending.Load() }

// Send enqueues p for writing and returns immediately with a Pending
// handle. Sending an empty buffer resolves to Sent immediately without
// touching the socket. Sending on a shut-down connection resolves to Failed
// without touching the socket.
func (c *Connection) Send(p []byte) *SendHandle {
	h := newHandle()
	if len(p) == 0 {
		h.resolve(Sent, nil)
		return h
	}

	c.sendMu.Lock()
	if c.shutdown {
		c.sendMu.Unlock()
		h.resolve(Failed, ErrShutdown)
		return h
	}
	c.pending.Add(1)
	c.sendQueue = append(c.sendQueue, &sendCommand{buf: p, handle: h})
	c.sendCond.Signal()
	c.sendMu.Unlock()
	return h
}

// writeLoop is the single thread that ever advances the socket's write
// cursor, draining the queue strictly front-first so completions fire in
// enqueue order.
func (c *Connection) writeLoop() {
	defer close(c.writerDone)
	for {
		c.sendMu.Lock()
		for len(c.sendQueue) == 0 && !c.shutdown {
			c.sendCond.Wait()
		}
		if len(c.sendQueue) == 0 {
			c.sendMu.Unlock()
			return
		}
		cmd := c.sendQueue[0]
		c.sendQueue = c.sendQueue[1:]
		c.sendMu.Unlock()

		_, err := c.sock.Write(cmd.buf)
		c.pending.Add(-1)
		if err != nil {
			cmd.handle.resolve(Failed, fmt.Errorf("conn: write: %w", err))
			continue
		}
		c.sent.Add(int64(len(cmd.buf)))
		cmd.handle.resolve(Sent, nil)
	}
}

// Recv reads one chunk into buf. Callers (the reactor's per-connection
// worker) must not call Recv again until they have finished processing the
// previous read — that serialization, not anything inside Connection, is
// what gives the one-receive-at-a-time invariant.
func (c *Connection) Recv(buf []byte) (int, error) {
	n, err := c.sock.Read(buf)
	if n > 0 {
		c.received.Add(int64(n))
	}
	return n, err
}

// Disconnect is idempotent. The first reason passed to any call wins; later
// calls (with any reason) do not overwrite it. It fails every queued send
// with Failed, closes the socket so in-flight sends/receives unblock with
// an error, and lets the writer goroutine drain to a stop.
func (c *Connection) Disconnect(reason string) {
	c.reasonMu.Lock()
	if c.reason == nil {
		r := reason
		c.reason = &r
	}
	c.reasonMu.Unlock()

	c.sendMu.Lock()
	if c.shutdown {
		c.sendMu.Unlock()
		return
	}
	c.shutdown = true
	queued := c.sendQueue
	c.sendQueue = nil
	c.sendCond.Broadcast()
	c.sendMu.Unlock()

	for _, cmd := range queued {
		c.pending.Add(-1)
		cmd.handle.resolve(Failed, ErrShutdown)
	}

	_ = c.sock.Close()
}

// Reason returns the first-supplied disconnect reason, or "" if Disconnect
// has not been called.
func (c *Connection) Reason() string {
	c.reasonMu.Lock()
	defer c.reasonMu.Unlock()
	if c.reason == nil {
		return ""
	}
	return *c.reason
}

// ShuttingDown reports whether Disconnect has been called.
func (c *Connection) ShuttingDown() bool {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	return c.shutdown
}

// WaitWriterStopped blocks until the writer goroutine has drained and
// exited, for use by the owner during its own shutdown sequence.
func (c *Connection) WaitWriterStopped() {
	<-c.writerDone
}
