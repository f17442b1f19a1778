// Package aescfb8 is the one concrete cipher.Cipher this repository ships:
// AES-128 in CFB-8 mode, the stream cipher the Minecraft protocol's
// encryption handshake negotiates. CFB-8 feeds back one ciphertext byte at
// a time rather than a full block, which crypto/cipher's CFB implementation
// does not offer (its segment size is always the block size) — there is no
// ecosystem package for it either, so this is the one place the core falls
// back to a hand-rolled transform over crypto/aes's block primitive (see
// DESIGN.md).
package aescfb8

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// stream implements CFB-8: each output byte is produced by encrypting a
// sliding 16-byte register (initially the IV) with the block cipher and
// XORing its first byte against the input byte, then shifting that
// ciphertext byte into the register for the next step.
type stream struct {
	block    cipher.Block
	register [aes.BlockSize]byte
}

func newStream(key, iv []byte) (*stream, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aescfb8: %w", err)
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("aescfb8: iv must be %d bytes, got %d", aes.BlockSize, len(iv))
	}
	s := &stream{block: block}
	copy(s.register[:], iv)
	return s, nil
}

// step processes one byte through the register. The feedback byte fed into
// the register is always the ciphertext byte — when encrypting that's out,
// when decrypting that's in.
func (s *stream) step(in byte, decrypting bool) byte {
	var scratch [aes.BlockSize]byte
	s.block.Encrypt(scratch[:], s.register[:])

	out := scratch[0] ^ in
	ciphertext := out
	if decrypting {
		ciphertext = in
	}

	copy(s.register[:aes.BlockSize-1], s.register[1:])
	s.register[aes.BlockSize-1] = ciphertext
	return out
}

// Cipher is a bidirectional CFB-8 transform: one stream.register sequence
// feeds encryption, an independent one (constructed from the same key/iv)
// feeds decryption, matching the protocol's single shared-secret-derived
// key used identically in both directions.
type Cipher struct {
	enc *stream
	dec *stream
}

// New constructs a Cipher from a 16-byte AES-128 key and a 16-byte IV, as
// negotiated by the login encryption handshake (shared secret doubles as
// both key and IV per the protocol).
func New(key, iv []byte) (*Cipher, error) {
	enc, err := newStream(key, iv)
	if err != nil {
		return nil, err
	}
	dec, err := newStream(key, iv)
	if err != nil {
		return nil, err
	}
	return &Cipher{enc: enc, dec: dec}, nil
}

// Encrypt returns the CFB-8 ciphertext for p.
func (c *Cipher) Encrypt(p []byte) []byte {
	out := make([]byte, len(p))
	for i, b := range p {
		out[i] = c.enc.step(b, false)
	}
	return out
}

// Decrypt writes the CFB-8 plaintext for src into dst.
func (c *Cipher) Decrypt(dst, src []byte) {
	for i, b := range src {
		dst[i] = c.dec.step(b, true)
	}
}
