// Package reactor is the connection handler: it owns the listening
// sockets, the live connection set, and the worker goroutines that pump
// bytes between each socket and its Client, dispatching the six host
// callbacks onto an external executor.
package reactor

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mickamy/mcnet/net/client"
	connpkg "github.com/mickamy/mcnet/net/conn"
	"github.com/mickamy/mcnet/net/packet"
)

// Level is a log severity, passed through to the host's LogCallback
// untouched — the reactor never decides what's worth logging beyond
// choosing this tag.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// Callbacks are the six hooks the reactor surfaces to the host. Accept
// decides whether to keep an inbound connection; Connect/Disconnect mark
// lifecycle edges; Receive delivers one decoded packet at a time; Log and
// Panic report reactor-internal events. Connect, Disconnect and Receive run
// on the external executor, never on a reactor goroutine; Accept, Log and
// Panic are called directly on the goroutine that raises them.
type Callbacks struct {
	Accept     func(remoteIP string, remotePort uint16) bool
	Connect    func(cl *client.Client)
	Disconnect func(cl *client.Client, reason string)
	Receive    func(cl *client.Client, pkt packet.Packet)
	Log        func(message string, level Level)
	Panic      func(err error)
}

// Reactor drives zero or more listeners and the set of connections they
// accept. The zero value is not usable; construct with New.
type Reactor struct {
	callbacks Callbacks
	executor  func(func())
	direction packet.Direction

	keepaliveTimeout  time.Duration
	keepaliveInterval time.Duration

	connMu sync.Mutex
	conns  map[string]*client.Client

	listeners []net.Listener

	liveAsync atomic.Int32

	g      *errgroup.Group
	cancel context.CancelFunc
}

// New constructs a Reactor. executor submits a callable for concurrent
// execution; a nil executor defaults to an unbounded goroutine per
// callback, matching the "external task pool" the design treats as an
// out-of-scope collaborator.
func New(callbacks Callbacks, executor func(func()), direction packet.Direction, keepaliveTimeout, keepaliveInterval time.Duration) *Reactor {
	return &Reactor{
		callbacks:         callbacks,
		executor:          executor,
		direction:         direction,
		keepaliveTimeout:  keepaliveTimeout,
		keepaliveInterval: keepaliveInterval,
		conns:             make(map[string]*client.Client),
	}
}

// LiveAsync returns the number of connections currently accepted and
// pumping, used as a shutdown barrier by callers that want to wait for
// quiescence without calling Close.
func (r *Reactor) LiveAsync() int32 { return r.liveAsync.Load() }

// Serve binds addrs and runs one acceptor goroutine per listener plus one
// worker goroutine per accepted connection, returning when every listener
// and connection has stopped (normally only after Close cancels ctx).
func (r *Reactor) Serve(ctx context.Context, addrs []string) error {
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	g, gctx := errgroup.WithContext(ctx)
	r.g = g

	for _, addr := range addrs {
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			cancel()
			return fmt.Errorf("reactor: listen %s: %w", addr, err)
		}
		r.listeners = append(r.listeners, lis)

		g.Go(func() error {
			return r.guarded(func() error { return r.acceptLoop(gctx, lis) })
		})
	}

	return g.Wait()
}

// Close stops every listener, disconnects every live connection, and waits
// for every acceptor and connection worker to return.
func (r *Reactor) Close() error {
	if r.cancel != nil {
		r.cancel()
	}
	for _, lis := range r.listeners {
		_ = lis.Close()
	}

	r.connMu.Lock()
	conns := make([]*client.Client, 0, len(r.conns))
	for _, cl := range r.conns {
		conns = append(conns, cl)
	}
	r.connMu.Unlock()

	for _, cl := range conns {
		cl.Connection().Disconnect("reactor: shutting down")
	}

	if r.g == nil {
		return nil
	}
	if err := r.g.Wait(); err != nil {
		return fmt.Errorf("reactor: close: %w", err)
	}
	return nil
}

func (r *Reactor) acceptLoop(ctx context.Context, lis net.Listener) error {
	for {
		sock, err := lis.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("reactor: accept: %w", err)
		}
		r.handleAccept(ctx, sock)
	}
}

// handleAccept implements §4.F's accept path: query the endpoint, ask the
// Accept callback, and on acceptance construct the Connection, insert it
// into the map, invoke Connect, then start pumping.
func (r *Reactor) handleAccept(ctx context.Context, sock net.Conn) {
	host, portStr, _ := net.SplitHostPort(sock.RemoteAddr().String())
	var port uint16
	if p, err := strconv.ParseUint(portStr, 10, 16); err == nil {
		port = uint16(p)
	}

	if r.callbacks.Accept != nil && !r.callbacks.Accept(host, port) {
		_ = sock.Close()
		return
	}

	c := connpkg.New(sock)
	cl := client.New(c, r.direction, r.keepaliveTimeout, r.keepaliveInterval)

	r.connMu.Lock()
	r.conns[c.ID()] = cl
	r.connMu.Unlock()
	r.liveAsync.Add(1)

	if r.callbacks.Connect != nil {
		r.submit(func() { r.callbacks.Connect(cl) })
	}

	r.g.Go(func() error {
		defer r.finishConnection(cl)
		return r.guarded(func() error { return r.pump(ctx, cl) })
	})
}

// pump is the per-connection worker: read, decrypt, parse, dispatch,
// repeat. It is the sole reader for this connection, and it waits for each
// dispatched Receive callback to finish before pulling the next packet or
// reading more bytes — so callbacks for one connection never run
// concurrently with each other, and finishConnection (which runs after
// this loop returns) never races an in-flight Receive.
func (r *Reactor) pump(ctx context.Context, cl *client.Client) error {
	buf := make([]byte, 4096)
	for {
		if ctx.Err() != nil {
			cl.Connection().Disconnect("reactor: shutting down")
			return nil
		}

		n, err := cl.Connection().Recv(buf)
		if err != nil {
			cl.Connection().Disconnect(err.Error())
			return nil
		}
		cl.Keepalive().Touch(time.Now())

		if _, err := cl.Receive(buf[:n]); err != nil {
			cl.Connection().Disconnect(err.Error())
			return nil
		}

		for {
			pkt, ok, err := cl.GetPacket()
			if err != nil {
				cl.Connection().Disconnect(err.Error())
				return nil
			}
			if !ok {
				break
			}
			if r.callbacks.Receive != nil {
				pkt := pkt
				r.submitAndWait(func() { r.callbacks.Receive(cl, pkt) })
			}
		}
	}
}

func (r *Reactor) finishConnection(cl *client.Client) {
	r.liveAsync.Add(-1)
	r.connMu.Lock()
	delete(r.conns, cl.Connection().ID())
	r.connMu.Unlock()

	if r.callbacks.Disconnect != nil {
		reason := cl.Connection().Reason()
		r.submitAndWait(func() { r.callbacks.Disconnect(cl, reason) })
	}
}

func (r *Reactor) logf(level Level, format string, args ...any) {
	if r.callbacks.Log == nil {
		return
	}
	r.callbacks.Log(fmt.Sprintf(format, args...), level)
}

// submit runs a user callback on the executor. A panic escaping the
// callback is recovered and logged — per the error-handling design, user
// callback failures must not kill the reactor.
func (r *Reactor) submit(fn func()) {
	wrapped := func() {
		defer func() {
			if p := recover(); p != nil {
				r.logf(LevelError, "reactor: callback panic: %v", p)
			}
		}()
		fn()
	}
	if r.executor != nil {
		r.executor(wrapped)
	} else {
		go wrapped()
	}
}

// submitAndWait runs fn via submit and blocks until it has finished,
// panic or not. Callers that must not proceed — or let a later callback
// start — until fn has completed (the per-connection Receive/Disconnect
// dispatch order) use this instead of submit.
func (r *Reactor) submitAndWait(fn func()) {
	done := make(chan struct{})
	r.submit(func() {
		defer close(done)
		fn()
	})
	<-done
}

// guarded wraps reactor-internal goroutine bodies (the accept loop, the
// per-connection pump). A panic here is an internal post-condition
// violation, not a callback failure: it is reported through the Panic
// callback and then rethrown, since the design treats the reactor's state
// as no longer trustworthy afterward.
func (r *Reactor) guarded(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			if r.callbacks.Panic != nil {
				r.callbacks.Panic(fmt.Errorf("reactor: internal panic: %v", p))
			}
			panic(p)
		}
	}()
	return fn()
}
