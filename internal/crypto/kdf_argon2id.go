package crypto

import "golang.org/x/crypto/argon2"

// Wallet KDF cost parameters. Fixed for every blob: the on-disk layout has
// no parameter header, so changing these orphans existing wallets.
const (
	KDFMemoryKiB = 64 * 1024
	KDFTime      = 3
	KDFThreads   = 4

	SaltSize = 16
	KeySize  = 32
)

// DeriveKey stretches a passphrase into a 256-bit encryption key with
// Argon2id. The same (passphrase, salt) pair always yields the same key;
// distinct salts yield unrelated keys. One call allocates ~64 MB and runs
// for a few hundred milliseconds.
func DeriveKey(passphrase, salt []byte) (key [KeySize]byte) {
	k := argon2.IDKey(passphrase, salt, KDFTime, KDFMemoryKiB, KDFThreads, KeySize)
	copy(key[:], k)
	Zero(k)
	return
}
