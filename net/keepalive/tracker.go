// Package keepalive measures round-trip ping and inactivity timeout for one
// connection, driving the Client facade's keep-alive/ping policy. The host
// (not this package) is responsible for actually sending and receiving the
// KeepAlive packets; Tracker only does the bookkeeping around them.
package keepalive

import (
	"sync"
	"time"
)

// Tracker tracks one connection's inactivity clock and latest measured
// ping, mirroring detect.Detector's mutex-guarded, constructor-configured
// shape.
type Tracker struct {
	mu sync.Mutex

	timeout      time.Duration
	interval     time.Duration
	lastActivity time.Time
	lastPing     int64
}

// New creates a Tracker. timeout is how long a connection may go without
// any received packet before TimedOut reports true; interval is advisory,
// the cadence the host is expected to send KeepAlive packets at.
func New(timeout, interval time.Duration) *Tracker {
	return &Tracker{timeout: timeout, interval: interval, lastActivity: time.Now()}
}

// Interval returns the configured keep-alive send cadence.
func (t *Tracker) Interval() time.Duration {
	return t.interval
}

// Touch resets the inactivity clock; call it whenever any packet (not only
// KeepAlive) is received from the connection.
func (t *Tracker) Touch(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastActivity = now
}

// TimedOut reports whether the connection has gone silent for longer than
// the configured timeout. Before the first Touch it is measured from the
// Tracker's construction.
func (t *Tracker) TimedOut(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return now.Sub(t.lastActivity) > t.timeout
}

// Ping records the round trip of a KeepAlive sent at sentAt and acked now,
// returning the measured ping in milliseconds.
func (t *Tracker) Ping(sentAt time.Time) int64 {
	ms := time.Since(sentAt).Milliseconds()
	t.mu.Lock()
	t.lastPing = ms
	t.mu.Unlock()
	return ms
}

// LastPing returns the most recently measured ping in milliseconds, or 0 if
// none has been recorded yet.
func (t *Tracker) LastPing() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastPing
}
