package sql

import (
	"context"
	"database/sql/driver"
)

// Compile-time interface checks.
var (
	_ driver.Conn               = (*originConn)(nil)
	_ driver.ConnPrepareContext = (*originConn)(nil)
	_ driver.ConnBeginTx        = (*originConn)(nil)
	_ driver.ExecerContext      = (*originConn)(nil)
	_ driver.QueryerContext     = (*originConn)(nil)
	_ driver.Pinger             = (*originConn)(nil)
	_ driver.SessionResetter    = (*originConn)(nil)
	_ driver.Validator          = (*originConn)(nil)
)

// originConn wraps a driver.Conn, annotating every query with its call site
// before delegation. Results and errors from the wrapped connection pass
// through unchanged.
type originConn struct {
	conn driver.Conn
	cfg  *config
}

// newOriginConn creates a new annotating connection.
func newOriginConn(conn driver.Conn, cfg *config) *originConn {
	return &originConn{
		conn: conn,
		cfg:  cfg,
	}
}

// Prepare implements driver.Conn. The prepare call site is the query's
// origin, so annotation happens here rather than at execution time.
func (c *originConn) Prepare(query string) (driver.Stmt, error) {
	annotated := c.cfg.Annotator.AnnotateQuery(context.Background(), query)
	stmt, err := c.conn.Prepare(annotated)
	if err != nil {
		return nil, err
	}
	return newOriginStmt(stmt, c.cfg, annotated), nil
}

// Close implements driver.Conn.
func (c *originConn) Close() error {
	return c.conn.Close()
}

// Begin implements driver.Conn.
// Deprecated: Use BeginTx instead. This exists for driver.Conn interface compatibility.
func (c *originConn) Begin() (driver.Tx, error) {
	tx, err := c.conn.Begin() //nolint:staticcheck // Required for driver.Conn interface
	if err != nil {
		return nil, err
	}
	return newOriginTx(tx), nil
}

// PrepareContext implements driver.ConnPrepareContext.
func (c *originConn) PrepareContext(ctx context.Context, query string) (driver.Stmt, error) {
	annotated := c.cfg.Annotator.AnnotateQuery(ctx, query)

	var stmt driver.Stmt
	var err error

	if preparer, ok := c.conn.(driver.ConnPrepareContext); ok {
		stmt, err = preparer.PrepareContext(ctx, annotated)
	} else {
		stmt, err = c.conn.Prepare(annotated)
	}

	if err != nil {
		return nil, err
	}
	return newOriginStmt(stmt, c.cfg, annotated), nil
}

// BeginTx implements driver.ConnBeginTx. Transaction control statements
// carry no user query text, so nothing is annotated.
func (c *originConn) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	var tx driver.Tx
	var err error

	if beginner, ok := c.conn.(driver.ConnBeginTx); ok {
		tx, err = beginner.BeginTx(ctx, opts)
	} else {
		tx, err = c.conn.Begin() //nolint:staticcheck // Fallback for older drivers
	}

	if err != nil {
		return nil, err
	}
	return newOriginTx(tx), nil
}

// ExecContext implements driver.ExecerContext.
func (c *originConn) ExecContext(
	ctx context.Context,
	query string,
	args []driver.NamedValue,
) (driver.Result, error) {
	if execer, ok := c.conn.(driver.ExecerContext); ok {
		annotated := c.cfg.Annotator.AnnotateQuery(ctx, query)
		return execer.ExecContext(ctx, annotated, args)
	}

	// Fallback: let database/sql prepare and execute
	return nil, driver.ErrSkip
}

// QueryContext implements driver.QueryerContext.
func (c *originConn) QueryContext(
	ctx context.Context,
	query string,
	args []driver.NamedValue,
) (driver.Rows, error) {
	if queryer, ok := c.conn.(driver.QueryerContext); ok {
		annotated := c.cfg.Annotator.AnnotateQuery(ctx, query)
		return queryer.QueryContext(ctx, annotated, args)
	}

	// Fallback: let database/sql handle it
	return nil, driver.ErrSkip
}

// Ping implements driver.Pinger.
func (c *originConn) Ping(ctx context.Context) error {
	if pinger, ok := c.conn.(driver.Pinger); ok {
		return pinger.Ping(ctx)
	}
	return nil
}

// ResetSession implements driver.SessionResetter.
func (c *originConn) ResetSession(ctx context.Context) error {
	if resetter, ok := c.conn.(driver.SessionResetter); ok {
		return resetter.ResetSession(ctx)
	}
	return nil
}

// IsValid implements driver.Validator.
func (c *originConn) IsValid() bool {
	if validator, ok := c.conn.(driver.Validator); ok {
		return validator.IsValid()
	}
	return true
}
