package vault

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Snapwave333/membot/internal/audit"
	"github.com/Snapwave333/membot/internal/crypto"
	"github.com/Snapwave333/membot/internal/keys"
	"github.com/Snapwave333/membot/internal/metrics"
	"github.com/Snapwave333/membot/internal/storage"
)

// MinPassphraseLen is enforced before any derivation work.
const MinPassphraseLen = 8

// Vault seals and unseals raw key material for one curve backend. It holds
// no mutable state between calls, so a single value is safe for concurrent
// use without locking. Seal and Unseal each run one Argon2id derivation
// (~64 MB, a few hundred ms); callers inside an event loop should offload
// them to a worker goroutine.
type Vault struct {
	backend keys.Backend
	store   storage.WalletStore
	log     *zap.Logger
	audit   *audit.Log
}

// New builds a vault with no logging or audit trail. store may be nil for a
// purely in-memory vault (Seal then returns the blob without persisting).
func New(backend keys.Backend, store storage.WalletStore) *Vault {
	return NewWithObservers(backend, store, zap.NewNop(), nil)
}

// NewWithObservers wires a logger and an optional audit log. The logger
// only ever receives the operation name and the error kind.
func NewWithObservers(backend keys.Backend, store storage.WalletStore, log *zap.Logger, auditLog *audit.Log) *Vault {
	if log == nil {
		log = zap.NewNop()
	}
	return &Vault{backend: backend, store: store, log: log, audit: auditLog}
}

// Backend exposes the configured curve backend.
func (v *Vault) Backend() keys.Backend { return v.backend }

// Seal generates fresh key material, encrypts it under the passphrase and
// persists the blob through the store. It refuses to run if a wallet
// already exists at the target; the existing blob is left untouched.
func (v *Vault) Seal(ctx context.Context, passphrase string) ([]byte, error) {
	blob, err := v.seal(ctx, passphrase, nil)
	v.observe("seal", err)
	return blob, err
}

// Import seals an externally supplied secret instead of generating one.
// Only backends implementing keys.Importer accept it; the account-key
// backend keeps fresh-key-only custody and fails with ErrImportUnsupported.
func (v *Vault) Import(ctx context.Context, secret []byte, passphrase string) ([]byte, error) {
	blob, err := v.sealImported(ctx, secret, passphrase)
	v.observe("import", err)
	return blob, err
}

func (v *Vault) sealImported(ctx context.Context, secret []byte, passphrase string) ([]byte, error) {
	imp, ok := v.backend.(keys.Importer)
	if !ok {
		return nil, ErrImportUnsupported
	}
	material, err := imp.Import(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSecretMalformed, err)
	}
	return v.seal(ctx, passphrase, material)
}

// seal takes ownership of material (zeroing it before returning); nil
// material means generate fresh.
func (v *Vault) seal(ctx context.Context, passphrase string, material []byte) ([]byte, error) {
	defer crypto.Zero(material)

	if len(passphrase) < MinPassphraseLen {
		return nil, ErrPassphraseTooShort
	}
	if v.store != nil {
		exists, err := v.store.Exists(ctx)
		if err != nil {
			return nil, fmt.Errorf("checking wallet: %w", err)
		}
		if exists {
			return nil, ErrWalletExists
		}
	}
	if material == nil {
		m, err := v.backend.Generate()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyGeneration, err)
		}
		material = m
		defer crypto.Zero(material)
	}

	salt := make([]byte, saltSize)
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}

	pp := []byte(passphrase)
	key := crypto.DeriveKey(pp, salt)
	crypto.Zero(pp)
	defer crypto.Zero(key[:])

	sealed, err := crypto.Encrypt(&key, nonce, material)
	if err != nil {
		return nil, err
	}

	blob := EncodeBlob(salt, nonce, sealed)
	if v.store != nil {
		if err := v.store.Create(ctx, blob); err != nil {
			if errors.Is(err, storage.ErrWalletExists) {
				return nil, ErrWalletExists
			}
			return nil, fmt.Errorf("persisting wallet: %w", err)
		}
	}
	return blob, nil
}

// Unseal decrypts a blob with the passphrase and returns the raw key
// material. The material is pinned in memory best-effort; release it with
// ReleaseKey as soon as signing is done.
func (v *Vault) Unseal(blob []byte, passphrase string) ([]byte, error) {
	material, err := v.unseal(blob, passphrase)
	v.observe("unseal", err)
	return material, err
}

// Unlock loads the persisted blob from the store and unseals it.
func (v *Vault) Unlock(ctx context.Context, passphrase string) ([]byte, error) {
	if v.store == nil {
		v.observe("unlock", storage.ErrWalletNotFound)
		return nil, storage.ErrWalletNotFound
	}
	blob, err := v.store.Load(ctx)
	if err != nil {
		v.observe("unlock", err)
		return nil, err
	}
	material, err := v.unseal(blob, passphrase)
	v.observe("unlock", err)
	return material, err
}

func (v *Vault) unseal(blob []byte, passphrase string) ([]byte, error) {
	if len(passphrase) < MinPassphraseLen {
		return nil, ErrPassphraseTooShort
	}
	salt, nonce, ciphertext, tag, err := DecodeBlob(blob)
	if err != nil {
		return nil, err
	}

	pp := []byte(passphrase)
	key := crypto.DeriveKey(pp, salt)
	crypto.Zero(pp)
	defer crypto.Zero(key[:])

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	material, err := crypto.Decrypt(&key, nonce, sealed)
	if err != nil {
		return nil, ErrAuthentication
	}
	if len(material) != v.backend.MaterialSize() {
		crypto.Zero(material)
		return nil, ErrBlobMalformed
	}
	_ = crypto.LockMemory(material) // advisory; swap is the threat, not a hard failure
	return material, nil
}

// Address derives the public wallet address for unsealed key material.
// Pure function, no I/O.
func (v *Vault) Address(material []byte) (string, error) {
	return v.backend.Address(material)
}

// ValidateKey reports whether an encoded private key is well formed for
// this backend.
func (v *Vault) ValidateKey(s string) bool { return v.backend.ValidateKey(s) }

// ValidateAddress reports whether an encoded address is well formed for
// this backend.
func (v *Vault) ValidateAddress(s string) bool { return v.backend.ValidateAddress(s) }

// ReleaseKey unpins and zeroes raw key material once the caller is done
// signing with it.
func ReleaseKey(material []byte) {
	_ = crypto.UnlockMemory(material)
	crypto.Zero(material)
}

func (v *Vault) observe(op string, err error) {
	kind := Kind(err)
	metrics.Operations.WithLabelValues(v.backend.Name(), op, kind).Inc()
	if v.audit != nil {
		v.audit.Append(op, kind)
	}
	if err != nil {
		v.log.Warn("vault operation failed",
			zap.String("backend", v.backend.Name()),
			zap.String("op", op),
			zap.String("kind", kind))
		return
	}
	v.log.Debug("vault operation",
		zap.String("backend", v.backend.Name()),
		zap.String("op", op))
}
