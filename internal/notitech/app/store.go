package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/notitech/internal/notitech/store"
	"github.com/aussiebroadwan/notitech/internal/notitech/store/drivers/postgres"
	"github.com/aussiebroadwan/notitech/internal/notitech/store/drivers/redis"
	"github.com/aussiebroadwan/notitech/internal/notitech/store/drivers/sqlite"
)

// Storage is the opened store plus whatever must be closed with it.
type Storage struct {
	store.Store

	closers []func() error
}

// Close releases every backend, database last.
func (s *Storage) Close() error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// OpenStorage connects the configured database, applies migrations, and
// moves reset codes to redis when configured.
func OpenStorage(ctx context.Context, cfg Config, logger *slog.Logger) (*Storage, error) {
	var db store.Store

	switch cfg.DatabaseDriver {
	case DriverPostgres:
		pg, err := postgres.NewStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		db = pg
	default:
		dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", cfg.DatabaseFile)
		lite, err := sqlite.NewStore(dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		db = lite
	}
	s := &Storage{Store: db, closers: []func() error{db.Close}}

	if err := db.ApplyMigrations(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	logger.Info("database migrations applied successfully", "driver", cfg.DatabaseDriver)

	if cfg.ResetCodeBackend == ResetCodesInRedis {
		rc, err := redis.NewResetCodes(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		s.Store = store.WithResetCodes(db, rc)
		s.closers = append(s.closers, rc.Close)
		logger.Info("reset codes stored in redis", "addr", cfg.RedisAddr)
	}

	return s, nil
}
