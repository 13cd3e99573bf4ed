package sql

import "database/sql/driver"

// Compile-time interface check.
var _ driver.Tx = (*originTx)(nil)

// originTx wraps a driver.Tx. Commit and Rollback carry no query text, so
// the wrapper exists only to keep the whole connection surface owned by
// this package.
type originTx struct {
	tx driver.Tx
}

// newOriginTx creates a new transaction wrapper.
func newOriginTx(tx driver.Tx) *originTx {
	return &originTx{tx: tx}
}

// Commit implements driver.Tx.
func (t *originTx) Commit() error {
	return t.tx.Commit()
}

// Rollback implements driver.Tx.
func (t *originTx) Rollback() error {
	return t.tx.Rollback()
}
