package keys

import (
	"bytes"
	"crypto/ed25519"
	"strings"
	"testing"

	"github.com/mr-tron/base58"
)

func TestSigningKeypairGenerate(t *testing.T) {
	b := SigningKeypair{}
	m, err := b.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(m) != b.MaterialSize() {
		t.Fatalf("material length = %d, want %d", len(m), b.MaterialSize())
	}
	// seed||public: the public half must be derivable from the seed.
	want := ed25519.NewKeyFromSeed(m[:ed25519.SeedSize])
	if !bytes.Equal(m, want) {
		t.Fatal("public half does not match seed")
	}
}

func TestSigningKeypairAddress(t *testing.T) {
	b := SigningKeypair{}
	m, err := b.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	addr, err := b.Address(m)
	if err != nil {
		t.Fatalf("address: %v", err)
	}
	pub, err := base58.Decode(addr)
	if err != nil {
		t.Fatalf("address is not base58: %v", err)
	}
	if !bytes.Equal(pub, m[ed25519.SeedSize:]) {
		t.Fatal("address does not encode the public key")
	}
	if !b.ValidateAddress(addr) {
		t.Fatal("derived address must validate")
	}

	a2, err := b.Address(m)
	if err != nil {
		t.Fatalf("address: %v", err)
	}
	if addr != a2 {
		t.Fatal("address not deterministic")
	}
}

func TestSigningKeypairImportSeed(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	m, err := SigningKeypair{}.Import(seed)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !bytes.Equal(m, ed25519.NewKeyFromSeed(seed)) {
		t.Fatal("imported material must expand the seed")
	}
}

func TestSigningKeypairImportKeypair(t *testing.T) {
	b := SigningKeypair{}
	m, err := b.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	got, err := b.Import(m)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !bytes.Equal(got, m) {
		t.Fatal("keypair import must round-trip")
	}
}

func TestSigningKeypairImportRejects(t *testing.T) {
	b := SigningKeypair{}

	// Mismatched public half.
	m, err := b.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	bad := append([]byte(nil), m...)
	bad[ed25519.SeedSize] ^= 0x01
	if _, err := b.Import(bad); err == nil {
		t.Fatal("expected rejection of mismatched public half")
	}

	// Wrong sizes.
	for _, n := range []int{0, 16, 33, 63, 65} {
		if _, err := b.Import(make([]byte, n)); err == nil {
			t.Fatalf("expected rejection of %d-byte secret", n)
		}
	}
}

func TestSigningKeypairValidate(t *testing.T) {
	b := SigningKeypair{}

	if !b.ValidateAddress(base58.Encode(make([]byte, ed25519.PublicKeySize))) {
		t.Fatal("32-byte base58 value must validate as address")
	}
	if b.ValidateAddress(base58.Encode(make([]byte, 20))) {
		t.Fatal("20-byte value must not validate as address")
	}
	if b.ValidateAddress(strings.Repeat("0", 44)) {
		t.Fatal("base58 forbids the 0 character")
	}
	if b.ValidateAddress("") {
		t.Fatal("empty address must not validate")
	}

	if !b.ValidateKey(base58.Encode(make([]byte, ed25519.SeedSize))) {
		t.Fatal("32-byte secret must validate as key")
	}
	if !b.ValidateKey(base58.Encode(make([]byte, keypairSize))) {
		t.Fatal("64-byte secret must validate as key")
	}
	if b.ValidateKey(base58.Encode(make([]byte, 16))) {
		t.Fatal("16-byte secret must not validate as key")
	}
}
