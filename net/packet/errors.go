package packet

import "errors"

// ErrBadFormat mirrors codec.ErrBadFormat at the packet layer — used where a
// field is structurally invalid independent of any particular codec call
// (e.g. an out-of-range ProtocolState byte).
var ErrBadFormat = errors.New("packet: bad format")

// ErrBadPacketID is returned when no registry entry matches the
// (state, direction, id) triple read off the wire.
var ErrBadPacketID = errors.New("packet: unknown packet id")
