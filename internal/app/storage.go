package app

import (
	"context"
	"fmt"

	"github.com/diegoclair/meeting-alarm-bot/internal/config"
	"github.com/diegoclair/meeting-alarm-bot/internal/database"
	"github.com/diegoclair/meeting-alarm-bot/internal/domain/contract"
	"github.com/diegoclair/meeting-alarm-bot/internal/persistence"
	"github.com/diegoclair/meeting-alarm-bot/migrator/sqlite"
)

// OpenStorage builds the snapshot backend chosen by STORAGE_DRIVER. The
// returned close func must be called once the storage is no longer used.
func OpenStorage(ctx context.Context, cfg config.Config) (contract.SnapshotStorage, func() error, error) {
	switch cfg.StorageDriver {
	case config.StorageFile:
		return persistence.NewFileStorage(cfg.SnapshotPath), func() error { return nil }, nil

	case config.StorageSQLite:
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		if err := sqlite.Migrate(db.DB()); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return database.NewSnapshotRepository(db), db.Close, nil

	case config.StorageRedis:
		client, err := persistence.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return persistence.NewRedisStorage(client, cfg.RedisKey), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
