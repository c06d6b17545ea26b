package store

import (
	"context"

	"github.com/MKhiriev/note-keeper/internal/config"
	"github.com/MKhiriev/note-keeper/internal/logger"
)

// Storages bundles the repositories sharing one database.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
	Transactor     Transactor
	HealthChecker  HealthChecker

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		NoteRepository: NewNoteRepository(db, log),
		Transactor:     db,
		HealthChecker:  db,
		db:             db,
	}
}

// DB exposes the underlying connection wrapper for metrics collection.
func (s *Storages) DB() *DB {
	return s.db
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
