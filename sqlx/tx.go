package sqlx

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// Tx wraps *sqlx.Tx, annotating every query with its call site before
// delegation. Commit and Rollback pass through unchanged.
type Tx struct {
	*sqlx.Tx
	cfg *config
}

// GetContext executes a query that returns at most one row and scans into dest.
func (tx *Tx) GetContext(
	ctx context.Context,
	dest interface{},
	query string,
	args ...interface{},
) error {
	annotated := tx.cfg.Annotator.AnnotateQuery(ctx, query)
	return tx.Tx.GetContext(ctx, dest, annotated, args...)
}

// SelectContext executes a query and scans all results into dest.
func (tx *Tx) SelectContext(
	ctx context.Context,
	dest interface{},
	query string,
	args ...interface{},
) error {
	annotated := tx.cfg.Annotator.AnnotateQuery(ctx, query)
	return tx.Tx.SelectContext(ctx, dest, annotated, args...)
}

// ExecContext executes a query within the transaction.
func (tx *Tx) ExecContext(
	ctx context.Context,
	query string,
	args ...interface{},
) (sql.Result, error) {
	annotated := tx.cfg.Annotator.AnnotateQuery(ctx, query)
	return tx.Tx.ExecContext(ctx, annotated, args...)
}

// QueryxContext executes a query within the transaction and returns *sqlx.Rows.
func (tx *Tx) QueryxContext(
	ctx context.Context,
	query string,
	args ...interface{},
) (*sqlx.Rows, error) {
	annotated := tx.cfg.Annotator.AnnotateQuery(ctx, query)
	return tx.Tx.QueryxContext(ctx, annotated, args...)
}

// QueryRowxContext executes a query within the transaction and returns a
// single *sqlx.Row.
func (tx *Tx) QueryRowxContext(
	ctx context.Context,
	query string,
	args ...interface{},
) *sqlx.Row {
	annotated := tx.cfg.Annotator.AnnotateQuery(ctx, query)
	return tx.Tx.QueryRowxContext(ctx, annotated, args...)
}

// NamedExecContext executes a named query within the transaction.
// Binding happens before annotation, as in DB.NamedExecContext.
func (tx *Tx) NamedExecContext(
	ctx context.Context,
	query string,
	arg interface{},
) (sql.Result, error) {
	bound, args, err := tx.Tx.BindNamed(query, arg)
	if err != nil {
		return nil, err
	}

	annotated := tx.cfg.Annotator.AnnotateQuery(ctx, bound)
	return tx.Tx.ExecContext(ctx, annotated, args...)
}

// PreparexContext prepares a statement within the transaction, annotated
// once at preparation time.
func (tx *Tx) PreparexContext(ctx context.Context, query string) (*Stmt, error) {
	annotated := tx.cfg.Annotator.AnnotateQuery(ctx, query)

	stmt, err := tx.Tx.PreparexContext(ctx, annotated)
	if err != nil {
		return nil, err
	}
	return &Stmt{Stmt: stmt, cfg: tx.cfg, query: annotated}, nil
}
