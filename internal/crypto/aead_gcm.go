package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
)

const (
	NonceSize = 12
	TagSize   = 16
)

var (
	ErrCiphertextTooShort = errors.New("crypto: ciphertext too short")
	ErrAuthentication     = errors.New("crypto: message authentication failed")
)

// Encrypt seals plaintext under AES-256-GCM and returns ciphertext||tag.
// The nonce is caller-supplied and must be fresh for every call under a
// given key.
func Encrypt(key *[KeySize]byte, nonce, plaintext []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != NonceSize {
		return nil, errors.New("crypto: bad nonce size")
	}
	return aead.Seal(nil, nonce, plaintext, nil), nil
}

// Decrypt opens ciphertext||tag produced by Encrypt. Any tag mismatch
// returns ErrAuthentication, whether the key was wrong or the data was
// altered; the two cases are not distinguishable and no partial plaintext
// is ever returned.
func Decrypt(key *[KeySize]byte, nonce, sealed []byte) ([]byte, error) {
	if len(sealed) < TagSize {
		return nil, ErrCiphertextTooShort
	}
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != NonceSize {
		return nil, errors.New("crypto: bad nonce size")
	}
	pt, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrAuthentication
	}
	return pt, nil
}

func newGCM(key *[KeySize]byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
