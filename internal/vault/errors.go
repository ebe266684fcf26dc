package vault

import (
	"errors"

	"github.com/Snapwave333/membot/internal/storage"
)

var (
	// ErrPassphraseTooShort rejects passphrases under the minimum before
	// any derivation work happens.
	ErrPassphraseTooShort = errors.New("vault: passphrase must be at least 8 characters")

	// ErrWalletExists refuses to overwrite an existing wallet blob.
	ErrWalletExists = errors.New("vault: wallet already exists")

	// ErrBlobMalformed marks input shorter than the minimum valid layout.
	ErrBlobMalformed = errors.New("vault: malformed wallet blob")

	// ErrAuthentication covers both a wrong passphrase and a tampered
	// blob; the two are deliberately indistinguishable.
	ErrAuthentication = errors.New("vault: authentication failed")

	// ErrKeyGeneration marks an unusable secure random source. Fatal,
	// never retried.
	ErrKeyGeneration = errors.New("vault: key generation failed")

	// ErrImportUnsupported is returned by backends with fresh-key-only
	// custody.
	ErrImportUnsupported = errors.New("vault: backend does not import external keys")

	// ErrSecretMalformed rejects import secrets of the wrong shape.
	ErrSecretMalformed = errors.New("vault: malformed secret for import")
)

// Kind labels an error for logs and metrics. Only this label ever leaves
// the vault; passphrases, derived keys and raw material never do.
func Kind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrPassphraseTooShort),
		errors.Is(err, ErrWalletExists),
		errors.Is(err, ErrImportUnsupported),
		errors.Is(err, ErrSecretMalformed):
		return "input"
	case errors.Is(err, ErrBlobMalformed):
		return "format"
	case errors.Is(err, ErrAuthentication):
		return "auth"
	case errors.Is(err, ErrKeyGeneration):
		return "generation"
	case errors.Is(err, storage.ErrWalletNotFound), errors.Is(err, storage.ErrWalletExists):
		return "storage"
	default:
		return "internal"
	}
}
