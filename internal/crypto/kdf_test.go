package crypto

import (
	"crypto/rand"
	"testing"
)

func randBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}
	return b
}

func TestDeriveKeyDeterministic(t *testing.T) {
	salt := randBytes(t, SaltSize)
	k1 := DeriveKey([]byte("correcthorsebattery"), salt)
	k2 := DeriveKey([]byte("correcthorsebattery"), salt)
	if k1 != k2 {
		t.Fatal("same (passphrase, salt) must derive the same key")
	}
}

func TestDeriveKeySaltSeparation(t *testing.T) {
	s1 := randBytes(t, SaltSize)
	s2 := randBytes(t, SaltSize)
	k1 := DeriveKey([]byte("correcthorsebattery"), s1)
	k2 := DeriveKey([]byte("correcthorsebattery"), s2)
	if k1 == k2 {
		t.Fatal("distinct salts must derive distinct keys")
	}
}

func TestDeriveKeyPassphraseSeparation(t *testing.T) {
	salt := randBytes(t, SaltSize)
	k1 := DeriveKey([]byte("correcthorsebattery"), salt)
	k2 := DeriveKey([]byte("wrongphrase-entirely"), salt)
	if k1 == k2 {
		t.Fatal("distinct passphrases must derive distinct keys")
	}
}
