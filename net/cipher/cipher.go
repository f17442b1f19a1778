// Package cipher bridges the connection's plaintext/ciphertext framing
// decision to an opaque stream cipher. The concrete transform lives outside
// this package (see aescfb8); cipher only owns the enable-once, lock-guarded
// state machine the core depends on.
package cipher

import (
	"bytes"
	"sync"
)

// Cipher is the opaque per-direction stream transform the core depends on.
// Concrete implementations (aescfb8.New) are swappable; this package never
// inspects key material.
type Cipher interface {
	// Encrypt returns the ciphertext for p. The input is consumed in the
	// order given; callers serialize Encrypt calls for a direction so
	// ciphertext order matches plaintext order.
	Encrypt(p []byte) []byte
	// Decrypt writes the plaintext for src into dst. len(dst) must equal
	// len(src); this mirrors a block-cipher-stream's in-place update and
	// lets callers decrypt directly into a scratch buffer's tail.
	Decrypt(dst, src []byte)
}

// Bridge holds the optional per-connection Cipher behind a readers-writer
// lock: concurrent Send/Receive calls only read the cipher, EnableEncryption
// is the sole writer.
type Bridge struct {
	mu sync.RWMutex
	c  Cipher
}

// Enabled reports whether a cipher is currently installed.
func (b *Bridge) Enabled() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.c != nil
}

// SendThenEnable sends plaintext through send, then installs c as the
// bridge's cipher. The two steps happen under one exclusive lock so no send
// issued concurrently with this call can observe a half-enabled state: it
// either goes out entirely before c is installed or entirely after.
//
// If a cipher is already installed, send runs the pending bytes through it
// first (so the packet itself goes out encrypted) and installing c is a
// no-op — per the idempotent-after-first-success contract, only the first
// successful enable ever takes effect.
func (b *Bridge) SendThenEnable(send func([]byte) error, plaintext []byte, c Cipher) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.c != nil {
		return send(b.c.Encrypt(plaintext))
	}
	if err := send(plaintext); err != nil {
		return err
	}
	b.c = c
	return nil
}

// Send encrypts p under the current cipher if one is installed, otherwise
// returns it unchanged. Callers take the read lock implicitly through this
// method; concurrent Sends (and Decrypts) may run in parallel, none of them
// races with SendThenEnable's writer-side use of the lock.
func (b *Bridge) Send(p []byte) []byte {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.c == nil {
		return p
	}
	return b.c.Encrypt(p)
}

// Decrypt feeds in through the current cipher (if any) into scratch, which
// retains unconsumed bytes across calls. With no cipher installed, in is
// appended to scratch verbatim.
func (b *Bridge) Decrypt(scratch *bytes.Buffer, in []byte) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.c == nil {
		scratch.Write(in)
		return
	}
	out := make([]byte, len(in))
	b.c.Decrypt(out, in)
	scratch.Write(out)
}
