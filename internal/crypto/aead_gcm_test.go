package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func testKey(t *testing.T) *[KeySize]byte {
	t.Helper()
	var key [KeySize]byte
	copy(key[:], randBytes(t, KeySize))
	return &key
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := testKey(t)
	nonce := randBytes(t, NonceSize)
	pt := randBytes(t, 64)

	sealed, err := Encrypt(key, nonce, pt)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if len(sealed) != len(pt)+TagSize {
		t.Fatalf("sealed length = %d, want %d", len(sealed), len(pt)+TagSize)
	}
	out, err := Decrypt(key, nonce, sealed)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if !bytes.Equal(pt, out) {
		t.Fatal("plaintext mismatch")
	}
}

func TestDecryptTamper(t *testing.T) {
	key := testKey(t)
	nonce := randBytes(t, NonceSize)
	sealed, err := Encrypt(key, nonce, []byte("raw key material"))
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	for i := range sealed {
		mut := append([]byte(nil), sealed...)
		mut[i] ^= 0x01
		if _, err := Decrypt(key, nonce, mut); !errors.Is(err, ErrAuthentication) {
			t.Fatalf("byte %d: got %v, want ErrAuthentication", i, err)
		}
	}
}

func TestDecryptWrongKey(t *testing.T) {
	nonce := randBytes(t, NonceSize)
	sealed, err := Encrypt(testKey(t), nonce, []byte("secret"))
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if _, err := Decrypt(testKey(t), nonce, sealed); !errors.Is(err, ErrAuthentication) {
		t.Fatalf("got %v, want ErrAuthentication", err)
	}
}

func TestDecryptTooShort(t *testing.T) {
	if _, err := Decrypt(testKey(t), randBytes(t, NonceSize), randBytes(t, TagSize-1)); !errors.Is(err, ErrCiphertextTooShort) {
		t.Fatalf("got %v, want ErrCiphertextTooShort", err)
	}
}
