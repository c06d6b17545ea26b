package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/note-keeper/internal/config"
	"github.com/MKhiriev/note-keeper/internal/logger"
	"github.com/MKhiriev/note-keeper/migrations"
)

// Dialect identifies the SQL database engine behind a [DB].
type Dialect string

const (
	// DialectPostgres is PostgreSQL through the pgx stdlib driver.
	DialectPostgres Dialect = "postgres"

	// DialectSQLite is SQLite through mattn/go-sqlite3. Used for local
	// development and tests.
	DialectSQLite Dialect = "sqlite3"
)

// sqliteParams make every transaction take the write lock up front, wait for
// a busy database instead of failing, and enforce foreign keys.
const sqliteParams = "_txlock=immediate&_busy_timeout=5000&_foreign_keys=on"

// DriverName returns the database/sql driver name registered for d.
func (d Dialect) DriverName() string {
	if d == DialectSQLite {
		return "sqlite3"
	}
	return "pgx"
}

func (d Dialect) placeholders() sq.PlaceholderFormat {
	if d == DialectSQLite {
		return sq.Question
	}
	return sq.Dollar
}

// ResolveDSN picks the dialect for a connection string and returns the DSN in
// the form the driver expects.
//
//	postgres://…, postgresql://…, host=… → PostgreSQL, unchanged
//	sqlite://<path>                     → SQLite, <path> with connection params
//	file:<path>                         → SQLite, URI with connection params
func ResolveDSN(raw string) (Dialect, string, error) {
	dsn := strings.TrimSpace(raw)

	switch {
	case dsn == "":
		return "", "", fmt.Errorf("%w: empty", ErrUnsupportedDSN)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return DialectSQLite, withSQLiteParams(strings.TrimPrefix(dsn, "sqlite://")), nil
	case strings.HasPrefix(dsn, "file:"):
		return DialectSQLite, withSQLiteParams(dsn), nil
	case strings.Contains(dsn, "="):
		// libpq key/value form
		return DialectPostgres, dsn, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, raw)
	}
}

func withSQLiteParams(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqliteParams
	}
	return dsn + "?" + sqliteParams
}

// DB wraps *sql.DB with the dialect-aware query builder and transaction
// propagation through context.
type DB struct {
	*sql.DB
	dialect Dialect
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// newDB wraps an open connection pool. Used by [NewConnectDB] and by tests
// that supply a sqlmock connection.
func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	return &DB{
		DB:      conn,
		dialect: dialect,
		builder: sq.StatementBuilder.PlaceholderFormat(dialect.placeholders()),
		logger:  log,
	}
}

// NewConnectDB opens the database selected by cfg.DSN, pings it and applies
// the embedded migrations for its dialect.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, dsn, err := ResolveDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectDB").Msg("cannot resolve database connection string")
		return nil, err
	}

	// establish connection
	conn, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectDB").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	// setup connections
	if dialect == DialectSQLite {
		// one writer at a time; also keeps :memory: databases on one connection
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(4)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectDB").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}

	if err = migrations.Migrate(ctx, conn, string(dialect)); err != nil {
		log.Err(err).Str("func", "NewConnectDB").Msg("error applying migrations")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectDB").Str("dialect", string(dialect)).Msg("connected to database successfully")

	return newDB(conn, dialect, log), nil
}

// Dialect returns the engine behind db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// queryer is the subset shared by *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txCtxKey struct{}

// conn returns the transaction carried by ctx, or the pool.
func (db *DB) conn(ctx context.Context) queryer {
	if tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return tx
	}
	return db.DB
}

// WithinTransaction implements [Transactor].
func (db *DB) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*DB.WithinTransaction").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*DB.WithinTransaction").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
