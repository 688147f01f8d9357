package types

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/spacemeshos/go-scale"
)

// PubkeyLength is the length of the ed25519 public key used to address accounts and programs.
const PubkeyLength = solana.PublicKeyLength

// ErrInvalidPubkey is returned when a string can't be parsed as a base58 public key.
var ErrInvalidPubkey = errors.New("invalid pubkey")

// Pubkey identifies accounts and programs. It is rendered as base58.
type Pubkey = solana.PublicKey

// ParsePubkey parses base58 encoded public key.
func ParsePubkey(src string) (Pubkey, error) {
	key, err := solana.PublicKeyFromBase58(src)
	if err != nil {
		return Pubkey{}, fmt.Errorf("%w %q: %s", ErrInvalidPubkey, src, err)
	}
	return key, nil
}

// BytesToPubkey copies at most PubkeyLength bytes into a Pubkey.
func BytesToPubkey(buf []byte) Pubkey {
	var key Pubkey
	copy(key[:], buf)
	return key
}

// EncodePubkey writes key as a fixed size byte array.
func EncodePubkey(e *scale.Encoder, key *Pubkey) (int, error) {
	return scale.EncodeByteArray(e, key[:])
}

// DecodePubkey reads fixed size byte array into key.
func DecodePubkey(d *scale.Decoder, key *Pubkey) (int, error) {
	return scale.DecodeByteArray(d, key[:])
}
