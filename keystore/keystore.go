// Package keystore reads and writes keypairs in the format of the solana cli:
// a json array with 64 bytes, the seed followed by the public key.
package keystore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gagliardetto/solana-go"
	"github.com/natefinch/atomic"
	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
	"github.com/spf13/afero"
)

// ErrInvalidKeypair is returned if file content is not a valid keypair.
var ErrInvalidKeypair = errors.New("invalid keypair")

// Load keypair from the file.
func Load(fs afero.Fs, path string) (solana.PrivateKey, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read keypair at %s: %w", path, err)
	}
	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrInvalidKeypair, filepath.Base(path), err)
	}
	if len(values) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: invalid key size %d/%d for %s",
			ErrInvalidKeypair, len(values), ed25519.PrivateKeySize, filepath.Base(path))
	}
	priv := make(solana.PrivateKey, ed25519.PrivateKeySize)
	for i, value := range values {
		if value < 0 || value > 255 {
			return nil, fmt.Errorf("%w: byte %d out of range in %s", ErrInvalidKeypair, i, filepath.Base(path))
		}
		priv[i] = byte(value)
	}
	if err := validate(priv); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return priv, nil
}

// Save keypair to the file. File is replaced atomically.
func Save(path string, priv solana.PrivateKey) error {
	if err := validate(priv); err != nil {
		return err
	}
	values := make([]int, len(priv))
	for i := range priv {
		values[i] = int(priv[i])
	}
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode keypair: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write keypair to %s: %w", path, err)
	}
	return nil
}

// Generate new random keypair.
func Generate() (solana.PrivateKey, error) {
	return solana.NewRandomPrivateKey()
}

// FromRand generates keypair using the randomness source.
func FromRand(rand io.Reader) (solana.PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand)
	if err != nil {
		return nil, fmt.Errorf("could not generate key pair: %w", err)
	}
	return solana.PrivateKey(priv), nil
}

func validate(priv solana.PrivateKey) error {
	if len(priv) != ed25519.PrivateKeySize {
		return fmt.Errorf("%w: invalid key length %d", ErrInvalidKeypair, len(priv))
	}
	keyPair := ed25519.NewKeyFromSeed(priv[:ed25519.SeedSize])
	if !bytes.Equal(keyPair[ed25519.SeedSize:], priv[ed25519.SeedSize:]) {
		return fmt.Errorf("%w: private and public do not match", ErrInvalidKeypair)
	}
	return nil
}
