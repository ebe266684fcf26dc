package keys

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// keypairSize is seed||public, the standard Ed25519 private key encoding.
const keypairSize = ed25519.PrivateKeySize

// SigningKeypair is the Ed25519 backend. Raw key material is the 64-byte
// seed||public concatenation; the wallet address is the base58 encoding of
// the public half, with no checksum transform.
type SigningKeypair struct{}

func (SigningKeypair) Name() string { return "ed25519" }

func (SigningKeypair) MaterialSize() int { return keypairSize }

func (SigningKeypair) Generate() ([]byte, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("ed25519 keygen: %w", err)
	}
	return priv, nil
}

func (SigningKeypair) Address(material []byte) (string, error) {
	if len(material) != keypairSize {
		return "", errors.New("keys: keypair material must be 64 bytes")
	}
	return base58.Encode(material[ed25519.SeedSize:]), nil
}

// Import accepts either a bare 32-byte seed or a full 64-byte keypair.
// A keypair whose public half does not match its seed is rejected.
func (SigningKeypair) Import(secret []byte) ([]byte, error) {
	switch len(secret) {
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(secret), nil
	case keypairSize:
		priv := ed25519.NewKeyFromSeed(secret[:ed25519.SeedSize])
		if !bytes.Equal(priv, secret) {
			return nil, errors.New("keys: keypair public half does not match seed")
		}
		return append([]byte(nil), secret...), nil
	default:
		return nil, fmt.Errorf("keys: importable secrets are %d or %d bytes, got %d",
			ed25519.SeedSize, keypairSize, len(secret))
	}
}

// ValidateKey accepts a base58-encoded seed or full keypair.
func (SigningKeypair) ValidateKey(s string) bool {
	b, err := base58.Decode(s)
	if err != nil {
		return false
	}
	return len(b) == ed25519.SeedSize || len(b) == keypairSize
}

// ValidateAddress accepts a base58 encoding of exactly 32 public key bytes.
func (SigningKeypair) ValidateAddress(s string) bool {
	b, err := base58.Decode(s)
	if err != nil {
		return false
	}
	return len(b) == ed25519.PublicKeySize
}
