package config

import (
	"fmt"
	"os"

	"github.com/naoina/toml"
)

type Wallet struct {
	Backend string // secp256k1 or ed25519
	Path    string
	Name    string // document key for database-backed stores
}

type Mongo struct {
	URI        string
	Database   string
	Collection string
}

type Log struct {
	Level string
}

type Config struct {
	Wallet Wallet
	Mongo  Mongo
	Log    Log
}

// Load reads a TOML config file and applies defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.setDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.Wallet.Backend == "" {
		c.Wallet.Backend = "secp256k1"
	}
	if c.Wallet.Path == "" {
		c.Wallet.Path = ".encrypted_key"
	}
	if c.Wallet.Name == "" {
		c.Wallet.Name = "trading"
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = "membot"
	}
	if c.Mongo.Collection == "" {
		c.Mongo.Collection = "wallets"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
