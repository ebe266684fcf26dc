package storage

import (
	"context"
	"errors"
)

var (
	ErrWalletNotFound = errors.New("storage: wallet not found")

	// ErrWalletExists reports a create against a location that already
	// holds a wallet. Creation is always exclusive so two processes racing
	// to write the same wallet cannot overwrite each other.
	ErrWalletExists = errors.New("storage: wallet already exists")
)

// WalletStore persists the single encrypted blob for one wallet location.
// The blob is immutable once created; concurrent readers are always safe.
type WalletStore interface {
	// Create writes the blob, failing with ErrWalletExists if one is
	// already present.
	Create(ctx context.Context, blob []byte) error

	// Load returns the persisted blob or ErrWalletNotFound.
	Load(ctx context.Context) ([]byte, error)

	// Exists reports whether a blob is present.
	Exists(ctx context.Context) (bool, error)
}
