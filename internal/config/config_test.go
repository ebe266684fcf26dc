package config

import (
	"os"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Wallet.Backend != "secp256k1" {
		t.Fatalf("backend = %q", cfg.Wallet.Backend)
	}
	if cfg.Wallet.Path != ".encrypted_key" {
		t.Fatalf("path = %q", cfg.Wallet.Path)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("level = %q", cfg.Log.Level)
	}
}

func TestLoad(t *testing.T) {
	path := t.TempDir() + "/membot.toml"
	data := `
[wallet]
backend = "ed25519"
path = "/var/lib/membot/wallet.key"

[mongo]
uri = "mongodb://localhost:27017"

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Wallet.Backend != "ed25519" {
		t.Fatalf("backend = %q", cfg.Wallet.Backend)
	}
	if cfg.Wallet.Path != "/var/lib/membot/wallet.key" {
		t.Fatalf("path = %q", cfg.Wallet.Path)
	}
	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Fatalf("mongo uri = %q", cfg.Mongo.URI)
	}
	// Unset sections keep their defaults.
	if cfg.Mongo.Database != "membot" {
		t.Fatalf("mongo db = %q", cfg.Mongo.Database)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("level = %q", cfg.Log.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(t.TempDir() + "/none.toml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
