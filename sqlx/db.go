package sqlx

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// DB wraps *sqlx.DB, annotating every query with its call site before
// delegation. It provides annotated versions of all sqlx-specific methods
// like Get, Select, NamedExec, and NamedQuery.
type DB struct {
	*sqlx.DB
	cfg *config
}

// Open opens a database connection with call-site annotation.
//
// Example:
//
//	db, err := originsqlx.Open("postgres", dsn)
func Open(driverName, dsn string, opts ...Option) (*DB, error) {
	cfg := newConfig(opts...)

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}

	return &DB{DB: db, cfg: cfg}, nil
}

// Connect opens and verifies a database connection.
// It is equivalent to Open followed by Ping.
func Connect(ctx context.Context, driverName, dsn string, opts ...Option) (*DB, error) {
	cfg := newConfig(opts...)

	db, err := sqlx.ConnectContext(ctx, driverName, dsn)
	if err != nil {
		return nil, err
	}

	return &DB{DB: db, cfg: cfg}, nil
}

// NewDB wraps an existing *sql.DB with sqlx and annotation.
//
// Example:
//
//	sqlDB, _ := sql.Open("postgres", dsn)
//	db := originsqlx.NewDB(sqlDB, "postgres")
func NewDB(db *sql.DB, driverName string, opts ...Option) *DB {
	cfg := newConfig(opts...)
	return &DB{
		DB:  sqlx.NewDb(db, driverName),
		cfg: cfg,
	}
}

// MustConnect is like Connect but panics on error.
func MustConnect(ctx context.Context, driverName, dsn string, opts ...Option) *DB {
	db, err := Connect(ctx, driverName, dsn, opts...)
	if err != nil {
		panic(err)
	}
	return db
}

// MustOpen is like Open but panics on error.
func MustOpen(driverName, dsn string, opts ...Option) *DB {
	db, err := Open(driverName, dsn, opts...)
	if err != nil {
		panic(err)
	}
	return db
}

// GetContext executes a query that is expected to return at most one row
// and scans the result into dest.
func (db *DB) GetContext(
	ctx context.Context,
	dest interface{},
	query string,
	args ...interface{},
) error {
	annotated := db.cfg.Annotator.AnnotateQuery(ctx, query)
	return db.DB.GetContext(ctx, dest, annotated, args...)
}

// SelectContext executes a query and scans all results into dest.
func (db *DB) SelectContext(
	ctx context.Context,
	dest interface{},
	query string,
	args ...interface{},
) error {
	annotated := db.cfg.Annotator.AnnotateQuery(ctx, query)
	return db.DB.SelectContext(ctx, dest, annotated, args...)
}

// ExecContext executes a query without returning rows.
func (db *DB) ExecContext(
	ctx context.Context,
	query string,
	args ...interface{},
) (sql.Result, error) {
	annotated := db.cfg.Annotator.AnnotateQuery(ctx, query)
	return db.DB.ExecContext(ctx, annotated, args...)
}

// QueryContext executes a query and returns *sql.Rows.
func (db *DB) QueryContext(
	ctx context.Context,
	query string,
	args ...interface{},
) (*sql.Rows, error) {
	annotated := db.cfg.Annotator.AnnotateQuery(ctx, query)
	return db.DB.QueryContext(ctx, annotated, args...)
}

// QueryxContext executes a query and returns *sqlx.Rows.
func (db *DB) QueryxContext(
	ctx context.Context,
	query string,
	args ...interface{},
) (*sqlx.Rows, error) {
	annotated := db.cfg.Annotator.AnnotateQuery(ctx, query)
	return db.DB.QueryxContext(ctx, annotated, args...)
}

// QueryRowxContext executes a query and returns a single *sqlx.Row.
func (db *DB) QueryRowxContext(
	ctx context.Context,
	query string,
	args ...interface{},
) *sqlx.Row {
	annotated := db.cfg.Annotator.AnnotateQuery(ctx, query)
	return db.DB.QueryRowxContext(ctx, annotated, args...)
}

// NamedExecContext executes a named query with the given argument.
// Binding happens before annotation: the position comment contains colons
// that the named-parameter parser would otherwise read as bind variables.
func (db *DB) NamedExecContext(
	ctx context.Context,
	query string,
	arg interface{},
) (sql.Result, error) {
	bound, args, err := db.DB.BindNamed(query, arg)
	if err != nil {
		return nil, err
	}

	annotated := db.cfg.Annotator.AnnotateQuery(ctx, bound)
	return db.DB.ExecContext(ctx, annotated, args...)
}

// NamedQueryContext executes a named query and returns *sqlx.Rows.
// Binding happens before annotation, as in NamedExecContext.
func (db *DB) NamedQueryContext(
	ctx context.Context,
	query string,
	arg interface{},
) (*sqlx.Rows, error) {
	bound, args, err := db.DB.BindNamed(query, arg)
	if err != nil {
		return nil, err
	}

	annotated := db.cfg.Annotator.AnnotateQuery(ctx, bound)
	return db.DB.QueryxContext(ctx, annotated, args...)
}

// PreparexContext prepares a statement. The prepare call site is the
// query's origin, so annotation happens here; executing the returned
// statement adds nothing further.
func (db *DB) PreparexContext(ctx context.Context, query string) (*Stmt, error) {
	annotated := db.cfg.Annotator.AnnotateQuery(ctx, query)

	stmt, err := db.DB.PreparexContext(ctx, annotated)
	if err != nil {
		return nil, err
	}
	return &Stmt{Stmt: stmt, cfg: db.cfg, query: annotated}, nil
}

// Named prepared statements (PrepareNamedContext, promoted from the
// embedded *sqlx.DB) are not annotated: the named-parameter parser runs at
// preparation time and would read the position comment's colons as bind
// variables.

// BeginTxx begins a transaction whose queries are annotated like the DB's.
func (db *DB) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	tx, err := db.DB.BeginTxx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{Tx: tx, cfg: db.cfg}, nil
}
