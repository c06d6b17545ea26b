package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/note-keeper/models"
)

var (
	userColumns = []string{"id", "email", "password_hash", "full_name", "is_active", "created_at"}
	noteColumns = []string{"id", "content", "word_count", "user_id", "created_at"}
)

func returning(columns []string) string {
	suffix := "RETURNING "
	for i, c := range columns {
		if i > 0 {
			suffix += ", "
		}
		suffix += c
	}
	return suffix
}

// buildCreateUserQuery inserts a user and returns the stored row.
func (db *DB) buildCreateUserQuery(user models.User) (string, []any, error) {
	query, args, err := db.builder.
		Insert(models.User{}.TableName()).
		Columns("email", "password_hash", "full_name", "is_active", "created_at").
		Values(user.Email, user.PasswordHash, nullString(user.FullName), user.IsActive, user.CreatedAt).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildFindUserByEmailQuery selects one user by normalized email.
func (db *DB) buildFindUserByEmailQuery(email string) (string, []any, error) {
	query, args, err := db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildLockUserQuery selects the owner row. On PostgreSQL the row is locked
// until the transaction ends; SQLite transactions already hold the database
// write lock from BEGIN IMMEDIATE.
func (db *DB) buildLockUserQuery(userID int64) (string, []any, error) {
	b := db.builder.
		Select("id").
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": userID})
	if db.dialect == DialectPostgres {
		b = b.Suffix("FOR UPDATE")
	}

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildCountNotesQuery counts the notes owned by userID.
func (db *DB) buildCountNotesQuery(userID int64) (string, []any, error) {
	query, args, err := db.builder.
		Select("COUNT(*)").
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildCreateNoteQuery inserts a note and returns the stored row.
func (db *DB) buildCreateNoteQuery(note models.Note) (string, []any, error) {
	query, args, err := db.builder.
		Insert(models.Note{}.TableName()).
		Columns("content", "word_count", "user_id", "created_at").
		Values(note.Content, note.WordCount, note.UserID, note.CreatedAt).
		Suffix(returning(noteColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListNotesQuery selects one window of the owner's notes, oldest first.
func (db *DB) buildListNotesQuery(req models.ListNotesRequest) (string, []any, error) {
	query, args, err := db.builder.
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": req.UserID}).
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(req.Limit)).
		Offset(uint64(req.Skip)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildDeleteNoteQuery deletes a note only if it belongs to userID.
func (db *DB) buildDeleteNoteQuery(userID, noteID int64) (string, []any, error) {
	query, args, err := db.builder.
		Delete(models.Note{}.TableName()).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
