package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Snapwave333/membot/internal/audit"
	"github.com/Snapwave333/membot/internal/config"
	"github.com/Snapwave333/membot/internal/keys"
	"github.com/Snapwave333/membot/internal/logging"
	"github.com/Snapwave333/membot/internal/storage"
	"github.com/Snapwave333/membot/internal/vault"
)

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = c
	}
	if walletPath != "" {
		cfg.Wallet.Path = walletPath
	}
	if backendName != "" {
		cfg.Wallet.Backend = backendName
	}
	if mongoURI != "" {
		cfg.Mongo.URI = mongoURI
	}
	return cfg, nil
}

func buildStore(ctx context.Context, cfg *config.Config) (storage.WalletStore, func(), error) {
	if cfg.Mongo.URI == "" {
		return storage.NewFileWalletStore(cfg.Wallet.Path), func() {}, nil
	}
	ms, err := storage.NewMongoWalletStore(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection, cfg.Wallet.Name)
	if err != nil {
		return nil, nil, err
	}
	return ms, func() { _ = ms.Close(ctx) }, nil
}

func buildVault(ctx context.Context) (*vault.Vault, *zap.Logger, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	backend := keys.ForName(cfg.Wallet.Backend)
	if backend == nil {
		return nil, nil, nil, fmt.Errorf("unknown backend %q", cfg.Wallet.Backend)
	}
	store, closeStore, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	log := logging.New(cfg.Log.Level)
	v := vault.NewWithObservers(backend, store, log, audit.New())
	cleanup := func() {
		closeStore()
		_ = log.Sync()
	}
	return v, log, cleanup, nil
}
