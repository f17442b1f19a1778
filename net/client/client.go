// Package client is the per-connection facade the rest of the server talks
// to: it wraps a conn.Connection with protocol-level state (phase, parser,
// cipher, username, keep-alive timing) and is the only place sends and
// receives are routed through the cipher bridge.
package client

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/mickamy/mcnet/net/cipher"
	connpkg "github.com/mickamy/mcnet/net/conn"
	"github.com/mickamy/mcnet/net/keepalive"
	"github.com/mickamy/mcnet/net/packet"
	"github.com/mickamy/mcnet/net/parser"
)

// Client wraps one Connection with everything needed to turn raw bytes
// into typed packets and back: the protocol phase, the in-progress parser,
// the optional cipher, and the identity/timing fields the host needs once a
// player has logged in.
type Client struct {
	conn *connpkg.Connection

	stateMu sync.RWMutex
	state   packet.State
	parser  *parser.Parser
	cb      *cipher.Bridge
	scratch bytes.Buffer

	usernameMu sync.RWMutex
	username   string

	connectedSince time.Time
	keepalive      *keepalive.Tracker

	direction packet.Direction // the direction packets received FROM this endpoint are framed as
}

// New wraps conn for a newly accepted connection, starting in Handshaking.
// direction is the direction packets arriving from this endpoint are framed
// as — Serverbound, for the ordinary "we are the server" case.
func New(conn *connpkg.Connection, direction packet.Direction, keepaliveTimeout, keepaliveInterval time.Duration) *Client {
	return &Client{
		conn:           conn,
		state:          packet.Handshaking,
		parser:         parser.New(packet.Handshaking, direction),
		cb:             &cipher.Bridge{},
		connectedSince: time.Now(),
		keepalive:      keepalive.New(keepaliveTimeout, keepaliveInterval),
		direction:      direction,
	}
}

// Connection returns the underlying Connection, for operations (IP, Port,
// Disconnect) that don't go through the cipher/parser.
func (c *Client) Connection() *connpkg.Connection { return c.conn }

// Keepalive returns the client's inactivity/ping tracker.
func (c *Client) Keepalive() *keepalive.Tracker { return c.keepalive }

// ConnectedSince returns when this Client was constructed.
func (c *Client) ConnectedSince() time.Time { return c.connectedSince }

// Username returns the username recorded at login, or "" before then.
func (c *Client) Username() string {
	c.usernameMu.RLock()
	defer c.usernameMu.RUnlock()
	return c.username
}

// SetUsername records the username, guarded by its own lock per the data
// model (independent of the cipher/parser readers-writer lock).
func (c *Client) SetUsername(u string) {
	c.usernameMu.Lock()
	c.username = u
	c.usernameMu.Unlock()
}

// State returns the current protocol phase.
func (c *Client) State() packet.State {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.state
}

// SetState updates the protocol phase under the write lock; subsequent
// parser calls select registry entries using the new phase.
func (c *Client) SetState(s packet.State) {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	c.state = s
	c.parser.SetState(s)
}

// Send serializes p per the registry and codec, then — under a read lock on
// the cipher state — either forwards it to the Connection in plaintext or
// wraps it through the cipher bracket first.
func (c *Client) Send(p packet.Packet) *connpkg.SendHandle {
	frame, err := packet.Frame(nil, p)
	if err != nil {
		return connpkg.FailedHandle(fmt.Errorf("client: encode: %w", err))
	}

	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.conn.Send(c.cb.Send(frame))
}

// EnableEncryption installs newCipher as the active cipher. It is
// idempotent: once a cipher has been installed by an earlier successful
// call, later calls (even with a different newCipher) are no-ops — the
// design notes resolve the "call EnableEncryption twice" ambiguity this
// way.
func (c *Client) EnableEncryption(newCipher cipher.Cipher) error {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	if c.cb.Enabled() {
		return nil
	}
	return c.cb.SendThenEnable(func([]byte) error { return nil }, nil, newCipher)
}

// SendThenEnableEncryption sends plaintext, then installs c as the active
// cipher, atomically with respect to other sends — the
// "send-packet-then-enable-encryption" pattern the login flow uses.
func (c *Client) SendThenEnableEncryption(p packet.Packet, newCipher cipher.Cipher) (*connpkg.SendHandle, error) {
	frame, err := packet.Frame(nil, p)
	if err != nil {
		return nil, fmt.Errorf("client: encode: %w", err)
	}

	c.stateMu.Lock()
	defer c.stateMu.Unlock()

	var handle *connpkg.SendHandle
	err = c.cb.SendThenEnable(func(bs []byte) error {
		handle = c.conn.Send(bs)
		return nil
	}, frame, newCipher)
	return handle, err
}

// Receive decrypts (if a cipher is installed) the bytes just read off the
// socket into the client's scratch buffer, then feeds the parser. It
// returns true when GetPacket now has a complete packet available.
func (c *Client) Receive(in []byte) (bool, error) {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()

	c.cb.Decrypt(&c.scratch, in)
	_, ok, err := c.peekParse()
	return ok, err
}

// peekParse runs one Feed against a throwaway view of the scratch buffer,
// so the decoded packet is not consumed — callers that want the packet
// itself should use GetPacket, which parses the same bytes and consumes
// them.
func (c *Client) peekParse() (packet.Packet, bool, error) {
	return c.parser.Feed(bytes.NewBuffer(c.scratch.Bytes()))
}

// GetPacket attempts to extract one fully buffered packet. It is safe to
// call repeatedly; each call that returns ok=true has consumed exactly one
// frame from the scratch buffer.
func (c *Client) GetPacket() (packet.Packet, bool, error) {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.parser.Feed(&c.scratch)
}
