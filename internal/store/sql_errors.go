package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// postgresError returns the SQLSTATE code of err when it comes from
// PostgreSQL, or "" otherwise.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure on
// either supported engine.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}

// isForeignKeyViolation reports whether err is a FOREIGN KEY failure on
// either supported engine.
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}

	if postgresError(err) == pgerrcode.ForeignKeyViolation {
		return true
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}

	return false
}
