package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-food-keeper/internal/config"
	"github.com/MKhiriev/go-food-keeper/internal/logger"
	"github.com/MKhiriev/go-food-keeper/internal/utils"
)

// Storages groups the repositories handed to the service layer together with
// the pool they share, so the caller can close it on shutdown.
type Storages struct {
	FoodRepository FoodRepository

	db *DB
}

// NewStorages connects to the configured database, applies pending
// migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		FoodRepository: NewFoodRepository(db, utils.NewUUIDGenerator(), log.WithComponent("store")),
		db:             db,
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
