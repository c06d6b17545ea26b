package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/note-keeper/internal/logger"
	"github.com/MKhiriev/note-keeper/models"
)

// noteRepository is the SQL-backed implementation of [NoteRepository].
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNote locks the owner, counts the owner's notes and inserts note in a
// single transaction. When ctx already carries a transaction the work joins
// it.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note, maxNotes int) (models.Note, error) {
	var created models.Note

	err := r.db.WithinTransaction(ctx, func(ctx context.Context) error {
		log := logger.FromContext(ctx)

		if err := r.lockOwner(ctx, note.UserID); err != nil {
			return err
		}

		count, err := r.CountNotes(ctx, note.UserID)
		if err != nil {
			return err
		}
		if count >= maxNotes {
			log.Debug().
				Str("func", "*noteRepository.CreateNote").
				Int64("user_id", note.UserID).
				Int("count", count).
				Msg("note quota reached")
			return ErrNoteQuotaExceeded
		}

		query, args, err := r.db.buildCreateNoteQuery(note)
		if err != nil {
			return err
		}

		created, err = scanNote(r.db.conn(ctx).QueryRowContext(ctx, query, args...))
		if err != nil {
			if isForeignKeyViolation(err) {
				return ErrNoUserWasFound
			}
			log.Err(err).
				Str("func", "*noteRepository.CreateNote").
				Int64("user_id", note.UserID).
				Msg("failed to insert note")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		return nil
	})
	if err != nil {
		return models.Note{}, err
	}

	return created, nil
}

// lockOwner selects the owner row for update so concurrent creations for the
// same user serialize on it.
func (r *noteRepository) lockOwner(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildLockUserQuery(userID)
	if err != nil {
		return err
	}

	var id int64
	err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.lockOwner").
			Int64("user_id", userID).
			Msg("failed to lock note owner")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// CountNotes returns the number of notes owned by userID.
func (r *noteRepository) CountNotes(ctx context.Context, userID int64) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildCountNotesQuery(userID)
	if err != nil {
		return 0, err
	}

	var count int
	if err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "*noteRepository.CountNotes").
			Int64("user_id", userID).
			Msg("failed to count notes")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}

// ListNotes returns the requested window of the owner's notes. An empty
// window yields an empty, non-nil slice.
func (r *noteRepository) ListNotes(ctx context.Context, req models.ListNotesRequest) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListNotesQuery(req)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.ListNotes").
			Int64("user_id", req.UserID).
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, models.MaxNotesPerUser)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*noteRepository.ListNotes").
				Int64("user_id", req.UserID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*noteRepository.ListNotes").
			Int64("user_id", req.UserID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// DeleteNote removes noteID if userID owns it.
func (r *noteRepository) DeleteNote(ctx context.Context, userID, noteID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildDeleteNoteQuery(userID, noteID)
	if err != nil {
		return err
	}

	result, err := r.db.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.DeleteNote").
			Int64("user_id", userID).
			Int64("note_id", noteID).
			Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	err := row.Scan(&note.ID, &note.Content, &note.WordCount, &note.UserID, sqlTime{&note.CreatedAt})
	return note, err
}
