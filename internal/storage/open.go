package storage

import (
	"complaintbox/backend/internal/config"
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects the backend named in cfg.StorageBackend. The returned close
// function releases the connection and is safe to call for every backend.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (KeyValue, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		logger.Info("Using Redis storage", zap.String("addr", cfg.RedisAddr))
		return NewRedisKV(rdb), func() { _ = rdb.Close() }, nil

	case config.BackendPostgres:
		db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		kv, err := NewPostgresKV(db)
		if err != nil {
			closeDB()
			return nil, nil, fmt.Errorf("migrate kv_entries: %w", err)
		}
		logger.Info("Using PostgreSQL storage, migrations complete")
		return kv, closeDB, nil

	default:
		logger.Warn("Using in-memory storage; complaints are lost on restart")
		return NewMemoryKV(), func() {}, nil
	}
}
