package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/mr-tron/base58"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/Snapwave333/membot/internal/crypto"
	"github.com/Snapwave333/membot/internal/platform"
	"github.com/Snapwave333/membot/internal/vault"
)

const maxUnlockAttempts = 3

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a new encrypted wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := platform.DisableCoreDumps(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: could not disable core dumps")
			}
			v, _, cleanup, err := buildVault(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintln(cmd.ErrOrStderr(), "This creates the encrypted wallet used for trading operations.")
			fmt.Fprintln(cmd.ErrOrStderr(), "Choose a strong passphrase and store it securely; it cannot be recovered.")
			passphrase, err := promptNewPassphrase()
			if err != nil {
				return err
			}

			blob, err := v.Seal(ctx, passphrase)
			if err != nil {
				return err
			}

			// Unseal once to show the operator the address and a short,
			// non-reusable preview of the key.
			material, err := v.Unseal(blob, passphrase)
			if err != nil {
				return err
			}
			defer vault.ReleaseKey(material)

			addr, err := v.Address(material)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wallet created (%s, %d bytes sealed)\n", v.Backend().Name(), len(blob))
			fmt.Fprintf(cmd.OutOrStdout(), "Address: %s\n", addr)
			fmt.Fprintf(cmd.OutOrStdout(), "Key preview: %s… (never shared in full)\n", hex.EncodeToString(material[:4]))
			return nil
		},
	}
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Seal an existing secret key under a new passphrase",
		Long: `Reads a base58-encoded secret (32-byte seed or 64-byte keypair) without
echoing it and seals it like a freshly generated key. Only the ed25519
backend accepts imports.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := platform.DisableCoreDumps(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: could not disable core dumps")
			}
			v, _, cleanup, err := buildVault(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			enc, err := readSecret("Enter secret key (base58): ")
			if err != nil {
				return err
			}
			secret, err := base58.Decode(string(enc))
			crypto.Zero(enc)
			if err != nil {
				return errors.New("secret is not valid base58")
			}
			defer crypto.Zero(secret)

			passphrase, err := promptNewPassphrase()
			if err != nil {
				return err
			}

			blob, err := v.Import(ctx, secret, passphrase)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wallet imported (%s, %d bytes sealed)\n", v.Backend().Name(), len(blob))
			return nil
		},
	}
}

func addressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address",
		Short: "Unseal the wallet and print its public address",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			v, _, cleanup, err := buildVault(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			passphrase, err := promptPassphrase()
			if err != nil {
				return err
			}
			material, err := v.Unlock(ctx, passphrase)
			if err != nil {
				return err
			}
			defer vault.ReleaseKey(material)

			addr, err := v.Address(material)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), addr)
			return nil
		},
	}
}

func unlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock",
		Short: "Verify the wallet passphrase (bounded, throttled attempts)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			v, _, cleanup, err := buildVault(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// The vault imposes no lockout; the retry budget and throttle
			// live here, one layer up.
			lim := rate.NewLimiter(rate.Every(2*time.Second), 1)
			for attempt := 1; attempt <= maxUnlockAttempts; attempt++ {
				if err := lim.Wait(ctx); err != nil {
					return err
				}
				passphrase, err := promptPassphrase()
				if err != nil {
					return err
				}
				material, err := v.Unlock(ctx, passphrase)
				if errors.Is(err, vault.ErrAuthentication) || errors.Is(err, vault.ErrPassphraseTooShort) {
					fmt.Fprintf(cmd.ErrOrStderr(), "authentication failed (%d/%d)\n", attempt, maxUnlockAttempts)
					continue
				}
				if err != nil {
					return err
				}
				addr, err := v.Address(material)
				vault.ReleaseKey(material)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wallet unlocked: %s\n", addr)
				return nil
			}
			return errors.New("too many failed attempts")
		},
	}
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Show the structural layout of the wallet blob (no secrets)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, closeStore, err := buildStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			blob, err := store.Load(ctx)
			if err != nil {
				return err
			}
			salt, nonce, ciphertext, tag, err := vault.DecodeBlob(blob)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "blob:       %d bytes\n", len(blob))
			fmt.Fprintf(cmd.OutOrStdout(), "salt:       %d bytes\n", len(salt))
			fmt.Fprintf(cmd.OutOrStdout(), "nonce:      %d bytes\n", len(nonce))
			fmt.Fprintf(cmd.OutOrStdout(), "ciphertext: %d bytes\n", len(ciphertext))
			fmt.Fprintf(cmd.OutOrStdout(), "tag:        %d bytes\n", len(tag))
			return nil
		},
	}
}
