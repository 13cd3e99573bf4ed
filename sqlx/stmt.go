package sqlx

import "github.com/jmoiron/sqlx"

// Stmt wraps *sqlx.Stmt. The statement text was annotated when the
// statement was prepared, so every promoted sqlx method delegates without
// rewriting anything.
type Stmt struct {
	*sqlx.Stmt
	cfg   *config
	query string
}

// Unsafe returns a version of Stmt that silently ignores missing
// destination fields.
func (s *Stmt) Unsafe() *Stmt {
	return &Stmt{
		Stmt:  s.Stmt.Unsafe(),
		cfg:   s.cfg,
		query: s.query,
	}
}
