package codec_test

import (
	"errors"
	"testing"

	"github.com/mickamy/mcnet/net/codec"
)

func TestVarInt32ZigZagRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   int32
		want []byte
	}{
		{"neg one", -1, []byte{0x01}},
		{"one", 1, []byte{0x02}},
		{"neg two", -2, []byte{0x03}},
		{"max int32", 2147483647, []byte{0xFE, 0xFF, 0xFF, 0xFF, 0x0F}},
		{"min int32", -2147483648, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}},
		{"zero", 0, []byte{0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := codec.WriteVarInt32(nil, tt.in)
			if string(got) != string(tt.want) {
				t.Fatalf("WriteVarInt32(%d) = % X, want % X", tt.in, got, tt.want)
			}
			if n := codec.SizeVarInt32(tt.in); n != len(tt.want) {
				t.Fatalf("SizeVarInt32(%d) = %d, want %d", tt.in, n, len(tt.want))
			}

			r := codec.NewReader(got)
			back, err := r.ReadVarInt32()
			if err != nil {
				t.Fatalf("ReadVarInt32: %v", err)
			}
			if back != tt.in {
				t.Fatalf("round trip = %d, want %d", back, tt.in)
			}
			if r.Remaining() != 0 {
				t.Fatalf("expected all bytes consumed, %d remaining", r.Remaining())
			}
		})
	}
}

func TestVarInt32OverlongIsBadFormat(t *testing.T) {
	t.Parallel()

	r := codec.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01})
	_, err := r.ReadVarUint32()
	if !errors.Is(err, codec.ErrBadFormat) {
		t.Fatalf("got %v, want ErrBadFormat", err)
	}
}

func TestVarInt32IncompleteIsInsufficientBytes(t *testing.T) {
	t.Parallel()

	r := codec.NewReader([]byte{0x80, 0x80})
	_, err := r.ReadVarUint32()
	if !errors.Is(err, codec.ErrInsufficientBytes) {
		t.Fatalf("got %v, want ErrInsufficientBytes", err)
	}
}

func TestVarInt32TrailingBitsMustBeZero(t *testing.T) {
	t.Parallel()

	// 5 bytes, all continuation bits set except the last, whose top nibble
	// (bits outside the 32-bit target) is non-zero.
	r := codec.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x1F})
	_, err := r.ReadVarUint32()
	if !errors.Is(err, codec.ErrBadFormat) {
		t.Fatalf("got %v, want ErrBadFormat", err)
	}
}
