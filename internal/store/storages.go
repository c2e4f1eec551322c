package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
)

// Storages bundles all repository implementations behind their interfaces.
// It is the single storage entry point handed to the service layer.
type Storages struct {
	UserRepository              UserRepository
	VerificationTokenRepository VerificationTokenRepository

	db *DB
}

// NewStorages connects to PostgreSQL, runs pending migrations, and wires all
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	return &Storages{
		UserRepository:              NewUserRepository(db, log),
		VerificationTokenRepository: NewVerificationTokenRepository(db, log),
		db:                          db,
	}, nil
}

// Close releases the underlying database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
