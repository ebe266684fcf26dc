package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
)

// FileWalletStore keeps the blob in a single owner-only file. Creation uses
// O_EXCL so a second writer fails instead of clobbering the wallet.
type FileWalletStore struct{ path string }

func NewFileWalletStore(path string) *FileWalletStore {
	return &FileWalletStore{path: path}
}

func (f *FileWalletStore) Path() string { return f.path }

func (f *FileWalletStore) Create(_ context.Context, blob []byte) error {
	fd, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if errors.Is(err, fs.ErrExist) {
		return ErrWalletExists
	}
	if err != nil {
		return err
	}
	if _, err := fd.Write(blob); err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

func (f *FileWalletStore) Load(_ context.Context) ([]byte, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrWalletNotFound
	}
	return b, err
}

func (f *FileWalletStore) Exists(_ context.Context) (bool, error) {
	if _, err := os.Stat(f.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
