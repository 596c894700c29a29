package main

import (
	"context"
	"fmt"
	"strings"

	"aionmotion/internal/config"
	"aionmotion/internal/store"
	"aionmotion/internal/store/files"
	"aionmotion/internal/store/postgres"
	"aionmotion/internal/store/sqlite"
)

func openDB(ctx context.Context, dsn string) (store.Store, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return postgres.New(ctx, dsn)
	case strings.HasPrefix(dsn, "sqlite://"):
		return sqlite.New(ctx, dsn)
	default:
		return nil, fmt.Errorf("unsupported database dsn: %s", dsn)
	}
}

// openStores opens every taxonomy source the project configures. The caller
// closes them.
func openStores(ctx context.Context, cfg *config.ProjectConfig) ([]store.Store, error) {
	var stores []store.Store
	if dsn := strings.TrimSpace(cfg.Database.DSN); dsn != "" {
		db, err := openDB(ctx, dsn)
		if err != nil {
			return nil, err
		}
		stores = append(stores, db)
	}
	if len(cfg.Content.Paths) > 0 {
		fs, err := files.New(ctx, cfg.Content.Paths)
		if err != nil {
			closeStores(ctx, stores)
			return nil, err
		}
		stores = append(stores, fs)
	}
	return stores, nil
}

func closeStores(ctx context.Context, stores []store.Store) {
	for _, s := range stores {
		s.Close(ctx)
	}
}
