package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-habit-tracker/internal/config"
	"github.com/MKhiriev/go-habit-tracker/internal/logger"
)

// Storages groups the repositories sharing one database connection.
type Storages struct {
	UserRepository          UserRepository
	HabitRepository         HabitRepository
	PleasantHabitRepository PleasantHabitRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations when
// cfg.DB.MigrateOnStart is set and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if cfg.DB.MigrateOnStart {
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}
		log.Info().Str("func", "NewStorages").Str("dialect", db.Dialect()).Msg("migrations applied")
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories over an opened *DB.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:          NewUserRepository(db, log),
		HabitRepository:         NewHabitRepository(db, log),
		PleasantHabitRepository: NewPleasantHabitRepository(db, log),
		db:                      db,
	}
}

// DB returns the shared connection.
func (s *Storages) DB() *DB {
	return s.db
}

// Close closes the shared connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
