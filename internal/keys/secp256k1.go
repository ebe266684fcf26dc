package keys

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/sha3"
)

const accountKeySize = 32

// AccountKey is the secp256k1 backend. Raw key material is the 32-byte
// private scalar; the wallet address is the EIP-55 checksummed form of the
// last 20 bytes of Keccak-256 over the uncompressed public key.
type AccountKey struct{}

func (AccountKey) Name() string { return "secp256k1" }

func (AccountKey) MaterialSize() int { return accountKeySize }

func (AccountKey) Generate() ([]byte, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("secp256k1 keygen: %w", err)
	}
	return priv.Serialize(), nil
}

func (AccountKey) Address(material []byte) (string, error) {
	if len(material) != accountKeySize {
		return "", errors.New("keys: account key material must be 32 bytes")
	}
	priv := secp256k1.PrivKeyFromBytes(material)
	pub := priv.PubKey().SerializeUncompressed()

	h := sha3.NewLegacyKeccak256()
	h.Write(pub[1:]) // X||Y, format byte dropped
	sum := h.Sum(nil)

	return checksumAddress(hex.EncodeToString(sum[len(sum)-20:])), nil
}

// ValidateKey accepts exactly 64 hex characters whose value is nonzero and
// strictly below the secp256k1 group order.
func (AccountKey) ValidateKey(s string) bool {
	if len(s) != 2*accountKeySize {
		return false
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return false
	}
	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(b)
	return !overflow && !scalar.IsZero()
}

// ValidateAddress accepts 0x followed by 40 hex characters, any casing.
func (AccountKey) ValidateAddress(s string) bool {
	if len(s) != 42 || !strings.HasPrefix(s, "0x") {
		return false
	}
	_, err := hex.DecodeString(s[2:])
	return err == nil
}

// ChecksumAddress re-derives the EIP-55 casing of a 0x-prefixed hex
// address, accepting any input casing. The result depends only on the
// lowercase form, so the transform is idempotent.
func ChecksumAddress(s string) (string, error) {
	if len(s) != 42 || !strings.HasPrefix(s, "0x") {
		return "", errors.New("keys: address must be 0x plus 40 hex characters")
	}
	lower := strings.ToLower(s[2:])
	if _, err := hex.DecodeString(lower); err != nil {
		return "", fmt.Errorf("keys: bad address hex: %w", err)
	}
	return checksumAddress(lower), nil
}

// checksumAddress applies the EIP-55 mixed-case checksum to a lowercase
// 40-digit hex address without the 0x prefix: each letter is uppercased
// when the matching nibble of Keccak-256(address) is >= 8.
func checksumAddress(addr string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(addr))
	sum := hex.EncodeToString(h.Sum(nil))

	out := make([]byte, 0, 2+len(addr))
	out = append(out, '0', 'x')
	for i := 0; i < len(addr); i++ {
		c := addr[i]
		if c >= 'a' && c <= 'f' && sum[i] >= '8' {
			c -= 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}
