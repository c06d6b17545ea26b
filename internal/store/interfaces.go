package store

import (
	"context"

	"github.com/MKhiriev/note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores user identity records.
type UserRepository interface {
	// CreateUser inserts user and returns it with server-assigned fields.
	// A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given normalized email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// NoteRepository stores notes. Every operation is scoped to one owner.
type NoteRepository interface {
	// CreateNote inserts note unless its owner already holds maxNotes notes,
	// in which case [ErrNoteQuotaExceeded] is returned. The count and the
	// insert run in one transaction holding a lock on the owner.
	CreateNote(ctx context.Context, note models.Note, maxNotes int) (models.Note, error)

	// ListNotes returns a window of the owner's notes ordered by creation
	// time, then id.
	ListNotes(ctx context.Context, req models.ListNotesRequest) ([]models.Note, error)

	// DeleteNote removes the note only when it belongs to userID. Missing and
	// foreign notes both yield [ErrNoteNotFound].
	DeleteNote(ctx context.Context, userID, noteID int64) error

	// CountNotes returns how many notes userID currently owns.
	CountNotes(ctx context.Context, userID int64) (int, error)
}

// Transactor runs a unit of work inside one database transaction.
type Transactor interface {
	// WithinTransaction calls fn with a context carrying an open transaction.
	// Repositories called with that context join the transaction. If ctx
	// already carries a transaction, fn joins it instead of opening a new one.
	// The transaction commits when fn returns nil and rolls back otherwise.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}
