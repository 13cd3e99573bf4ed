package sql

import (
	"context"
	"database/sql/driver"
)

// Compile-time interface checks.
var (
	_ driver.Stmt             = (*originStmt)(nil)
	_ driver.StmtExecContext  = (*originStmt)(nil)
	_ driver.StmtQueryContext = (*originStmt)(nil)
)

// originStmt wraps a driver.Stmt. The statement text was annotated when the
// statement was prepared, so execution delegates without rewriting anything.
type originStmt struct {
	stmt  driver.Stmt
	cfg   *config
	query string
}

// newOriginStmt creates a new statement wrapper.
func newOriginStmt(stmt driver.Stmt, cfg *config, query string) *originStmt {
	return &originStmt{
		stmt:  stmt,
		cfg:   cfg,
		query: query,
	}
}

// Close implements driver.Stmt.
func (s *originStmt) Close() error {
	return s.stmt.Close()
}

// NumInput implements driver.Stmt.
func (s *originStmt) NumInput() int {
	return s.stmt.NumInput()
}

// Exec implements driver.Stmt.
// Deprecated: Use ExecContext instead. This exists for driver.Stmt interface compatibility.
func (s *originStmt) Exec(args []driver.Value) (driver.Result, error) {
	return s.stmt.Exec(args) //nolint:staticcheck // Required for driver.Stmt interface
}

// Query implements driver.Stmt.
// Deprecated: Use QueryContext instead. This exists for driver.Stmt interface compatibility.
func (s *originStmt) Query(args []driver.Value) (driver.Rows, error) {
	return s.stmt.Query(args) //nolint:staticcheck // Required for driver.Stmt interface
}

// ExecContext implements driver.StmtExecContext.
func (s *originStmt) ExecContext(
	ctx context.Context,
	args []driver.NamedValue,
) (driver.Result, error) {
	if execer, ok := s.stmt.(driver.StmtExecContext); ok {
		return execer.ExecContext(ctx, args)
	}

	// Fallback to non-context version
	return s.stmt.Exec(namedValueToValue(args)) //nolint:staticcheck // Fallback for older drivers
}

// QueryContext implements driver.StmtQueryContext.
func (s *originStmt) QueryContext(
	ctx context.Context,
	args []driver.NamedValue,
) (driver.Rows, error) {
	if queryer, ok := s.stmt.(driver.StmtQueryContext); ok {
		return queryer.QueryContext(ctx, args)
	}

	// Fallback to non-context version
	return s.stmt.Query(namedValueToValue(args)) //nolint:staticcheck // Fallback for older drivers
}

// namedValueToValue converts NamedValue slice to Value slice.
func namedValueToValue(named []driver.NamedValue) []driver.Value {
	values := make([]driver.Value, len(named))
	for i, nv := range named {
		values[i] = nv.Value
	}
	return values
}
