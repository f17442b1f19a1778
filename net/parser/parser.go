// Package parser turns a growing per-connection byte buffer into packet
// records, one at a time, against the (state, direction) the connection is
// currently in.
package parser

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mickamy/mcnet/net/codec"
	"github.com/mickamy/mcnet/net/packet"
)

// Parser extracts complete packets from a buffer that bytes accumulate into
// in socket order. It never retains a reference into the caller's buffer
// across calls: Feed takes the buffer fresh every time and only Next()s off
// the bytes it actually consumed.
type Parser struct {
	state     packet.State
	direction packet.Direction

	// waiting is a best-effort "need N more body bytes" hint left over from
	// the previous incomplete Feed. It is informational only; Feed always
	// re-probes the buffer from scratch and never relies on it being
	// accurate (the caller is free to append any number of bytes between
	// calls).
	waiting int
}

// New returns a Parser that decodes packets arriving from direction while
// the connection is in state.
func New(state packet.State, direction packet.Direction) *Parser {
	return &Parser{state: state, direction: direction}
}

// SetState updates the protocol phase consulted on the next Feed.
func (p *Parser) SetState(s packet.State) {
	p.state = s
}

// Waiting returns the last-known "need N more bytes" hint, for diagnostics.
func (p *Parser) Waiting() int {
	return p.waiting
}

// Feed attempts to extract one packet from the front of buf.
//
// On success it returns the decoded packet, true, and consumes exactly the
// frame's bytes (length prefix + body) from buf. If buf does not yet hold a
// complete frame it returns (nil, false, nil) and leaves buf entirely
// unconsumed — this is the *incomplete* signal, not an error. Any other
// returned error is fatal: the body was present but malformed, and the
// connection that owns buf must be disconnected with that reason.
func (p *Parser) Feed(buf *bytes.Buffer) (packet.Packet, bool, error) {
	data := buf.Bytes()

	lr := codec.NewReader(data)
	length, err := lr.ReadVarUint32()
	if err != nil {
		if errors.Is(err, codec.ErrInsufficientBytes) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("parser: length prefix: %w", err)
	}

	bodyLen := int(length)
	prefixLen := lr.Pos()
	if lr.Remaining() < bodyLen {
		p.waiting = bodyLen - lr.Remaining()
		return nil, false, nil
	}

	body := data[prefixLen : prefixLen+bodyLen]
	br := codec.NewReader(body)

	id, err := br.ReadVarInt32()
	if err != nil {
		return nil, false, fmt.Errorf("parser: packet id: %w", err)
	}

	decode, ok := packet.Lookup(p.state, p.direction, id)
	if !ok {
		return nil, false, fmt.Errorf("parser: state=%s direction=%s id=%d: %w", p.state, p.direction, id, packet.ErrBadPacketID)
	}

	pkt, err := decode(br)
	if err != nil {
		return nil, false, fmt.Errorf("parser: decode body: %w", err)
	}

	buf.Next(prefixLen + bodyLen)
	p.waiting = 0
	return pkt, true, nil
}
