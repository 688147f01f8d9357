package types

import (
	"encoding/hex"
	"fmt"

	"github.com/spacemeshos/go-scale"
)

// Hash32Length is the length of Hash32.
const Hash32Length = 32

// Hash32 is a 32 byte blake3 digest.
type Hash32 [Hash32Length]byte

// EmptyHash32 is a zeroed hash.
var EmptyHash32 = Hash32{}

// BytesToHash copies b into Hash32. If b is larger than Hash32 it is cropped from the left.
func BytesToHash(b []byte) Hash32 {
	var h Hash32
	if len(b) > len(h) {
		b = b[len(b)-Hash32Length:]
	}
	copy(h[Hash32Length-len(b):], b)
	return h
}

// HexToHash32 decodes hex string into Hash32.
func HexToHash32(src string) (Hash32, error) {
	var h Hash32
	buf, err := hex.DecodeString(src)
	if err != nil {
		return h, fmt.Errorf("decode hash %q: %w", src, err)
	}
	if len(buf) != Hash32Length {
		return h, fmt.Errorf("hash %q has %d bytes, expected %d", src, len(buf), Hash32Length)
	}
	copy(h[:], buf)
	return h, nil
}

// Bytes returns the underlying byte slice.
func (h Hash32) Bytes() []byte { return h[:] }

// Hex returns hex representation without prefix.
func (h Hash32) Hex() string { return hex.EncodeToString(h[:]) }

// String implements fmt.Stringer.
func (h Hash32) String() string { return h.Hex() }

// ShortString returns the first 10 characters of the hex representation.
func (h Hash32) ShortString() string { return h.Hex()[:10] }

// EncodeScale implements scale codec interface.
func (h *Hash32) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, h[:])
}

// DecodeScale implements scale codec interface.
func (h *Hash32) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, h[:])
}
