package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Database owns one connection pool to a SQLite or sqld database. It is the
// only path by which table names reach query text: Execute, ExecuteMany, and
// Query validate the table name before substituting it for {table}.
type Database struct {
	Client *sql.DB // SQL database connection
	logger *slog.Logger
	path   string
}

type options struct {
	logger      *slog.Logger
	busyTimeout time.Duration
}

// Option adjusts how Open and OpenRemote configure a handle.
type Option func(*options)

// WithLogger routes the handle's logging to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithBusyTimeout sets how long SQLite waits on a locked database before
// returning SQLITE_BUSY.
func WithBusyTimeout(d time.Duration) Option {
	return func(o *options) { o.busyTimeout = d }
}

const (
	defaultBusyTimeout = 5 * time.Second
	pingTimeout        = 5 * time.Second
)

// Open opens a local SQLite database file, creating the file and its parent
// directory when missing. Foreign keys and WAL journaling are switched on
// through the DSN.
func Open(path string, opts ...Option) (*Database, error) {
	o := options{logger: Logger, busyTimeout: defaultBusyTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL",
		path, o.busyTimeout.Milliseconds())

	client, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// Single writer; database/sql serializes concurrent callers on it.
	client.SetMaxOpenConns(1)

	db := &Database{Client: client, logger: o.logger, path: path}

	if err := db.ping(); err != nil {
		client.Close()
		return nil, err
	}

	db.logger.Info("database opened", "path", path)
	return db, nil
}

// OpenRemote connects to a hosted sqld/Turso database by URL, e.g.
// "libsql://dbname-org.turso.io". The auth token is appended when given.
func OpenRemote(url, authToken string, opts ...Option) (*Database, error) {
	o := options{logger: Logger, busyTimeout: defaultBusyTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	dsn := url
	if authToken != "" {
		dsn = fmt.Sprintf("%s?authToken=%s", url, authToken)
	}

	client, err := sql.Open("libsql", dsn)
	if err != nil {
		return nil, err
	}

	db := &Database{Client: client, logger: o.logger, path: url}

	if err := db.ping(); err != nil {
		client.Close()
		return nil, err
	}

	db.logger.Info("database opened", "url", url)
	return db, nil
}

func (db *Database) ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := db.Client.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (db *Database) Close() error {
	db.logger.Info("database closed", "path", db.path)
	return db.Client.Close()
}

// subTable validates table and substitutes it for the {table} placeholder.
func subTable(query, table string) (string, error) {
	if err := ValidateName(table); err != nil {
		return "", err
	}
	return strings.ReplaceAll(query, TablePlaceholder, table), nil
}

// Execute runs a single statement against the named table. The query may
// carry the {table} placeholder; values always travel as bound parameters.
// Statements blocked by a locked database are retried.
func (db *Database) Execute(ctx context.Context, query, table string, args ...any) (sql.Result, error) {
	q, err := subTable(query, table)
	if err != nil {
		return nil, err
	}

	db.logger.Debug("execute", "query", q, "args", len(args))

	var res sql.Result
	err = withLockRetry(ctx, func() error {
		var execErr error
		res, execErr = db.Client.ExecContext(ctx, q, args...)
		return execErr
	})
	return res, err
}

// ExecuteMany runs the same statement once per argument list over a single
// prepared statement.
func (db *Database) ExecuteMany(ctx context.Context, query, table string, argLists [][]any) error {
	q, err := subTable(query, table)
	if err != nil {
		return err
	}

	stmt, err := db.Client.PrepareContext(ctx, q)
	if err != nil {
		return err
	}
	defer stmt.Close()

	db.logger.Debug("execute many", "query", q, "lists", len(argLists))

	for _, args := range argLists {
		err := withLockRetry(ctx, func() error {
			_, execErr := stmt.ExecContext(ctx, args...)
			return execErr
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Query runs a row-returning statement against the named table. Queries
// blocked by a locked database are retried.
func (db *Database) Query(ctx context.Context, query, table string, args ...any) (*sql.Rows, error) {
	q, err := subTable(query, table)
	if err != nil {
		return nil, err
	}

	db.logger.Debug("query", "query", q, "args", len(args))

	var rows *sql.Rows
	err = withLockRetry(ctx, func() error {
		var queryErr error
		rows, queryErr = db.Client.QueryContext(ctx, q, args...)
		return queryErr
	})
	return rows, err
}

// HasTable reports whether a table with the given name exists. The name is
// checked against the identifier grammar but reaches SQL only as a bound
// parameter.
func (db *Database) HasTable(ctx context.Context, table string) (bool, error) {
	if err := ValidateName(table); err != nil {
		return false, err
	}

	row := db.Client.QueryRowContext(ctx,
		"select count(*) from sqlite_master where type = 'table' and name = ?", table)

	var n int
	if err := row.Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// CreateTable creates a table from the given fields and returns a handle to
// it. The statement carries IF NOT EXISTS, so creating an existing table is
// a no-op.
func (db *Database) CreateTable(ctx context.Context, table string, fields []Field) (*Table, error) {
	if err := ValidateTableParams(table, fields); err != nil {
		return nil, err
	}

	query, err := BuildTableCreateQuery(fields)
	if err != nil {
		return nil, err
	}

	if _, err := db.Execute(ctx, query, table); err != nil {
		return nil, err
	}

	db.logger.Info("table created", "table", table)
	return &Table{Name: table, db: db}, nil
}

// GetTable returns a handle to an existing table, or ErrTableNotFound when
// no table with that name exists.
func (db *Database) GetTable(ctx context.Context, table string) (*Table, error) {
	ok, err := db.HasTable(ctx, table)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, TableNotFoundErr(table)
	}
	return &Table{Name: table, db: db}, nil
}

// DeleteTable drops the named table.
func (db *Database) DeleteTable(ctx context.Context, table string) error {
	if _, err := db.Execute(ctx, "drop table {table};", table); err != nil {
		return err
	}

	db.logger.Info("table dropped", "table", table)
	return nil
}
