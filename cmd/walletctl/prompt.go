package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/Snapwave333/membot/internal/crypto"
	"github.com/Snapwave333/membot/internal/vault"
)

// readSecret reads a line from the terminal without echoing it.
func readSecret(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return b, err
}

// promptNewPassphrase asks twice and enforces the vault minimum before any
// key material exists.
func promptNewPassphrase() (string, error) {
	p1, err := readSecret("Enter passphrase for wallet encryption: ")
	if err != nil {
		return "", err
	}
	defer crypto.Zero(p1)
	if len(p1) < vault.MinPassphraseLen {
		return "", fmt.Errorf("passphrase must be at least %d characters", vault.MinPassphraseLen)
	}
	p2, err := readSecret("Confirm passphrase: ")
	if err != nil {
		return "", err
	}
	defer crypto.Zero(p2)
	if string(p1) != string(p2) {
		return "", errors.New("passphrases do not match")
	}
	return string(p1), nil
}

func promptPassphrase() (string, error) {
	p, err := readSecret("Enter wallet passphrase: ")
	if err != nil {
		return "", err
	}
	defer crypto.Zero(p)
	return string(p), nil
}
