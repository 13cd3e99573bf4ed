package database

import (
	"context"

	"github.com/rs/zerolog/log"
)

// CreateTable creates the users table if it doesn't exist
func (db *DB) CreateTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100),
			email VARCHAR(100)
		)
	`
	_, err := db.ExecContext(ctx, query)
	return err
}

// InsertUsers inserts sample users into the database
func (db *DB) InsertUsers(ctx context.Context) error {
	users := []struct {
		Name  string
		Email string
	}{
		{"Alice", "alice@example.com"},
		{"Bob", "bob@example.com"},
		{"Charlie", "charlie@example.com"},
	}

	for _, user := range users {
		_, err := db.ExecContext(
			ctx,
			"INSERT INTO users (name, email) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			user.Name,
			user.Email,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// QueryUsers queries and logs users from the database
func (db *DB) QueryUsers(ctx context.Context) error {
	rows, err := db.QueryContext(ctx, "SELECT id, name, email FROM users LIMIT 10")
	if err != nil {
		return err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var id int
		var name, email string
		if err := rows.Scan(&id, &name, &email); err != nil {
			return err
		}
		count++
	}
	log.Info().Int("count", count).Msg("queried users")
	return rows.Err()
}

// CountUsers demonstrates a prepared statement. The statement text is
// annotated once, at preparation time.
func (db *DB) CountUsers(ctx context.Context) (int, error) {
	stmt, err := db.PrepareContext(ctx, "SELECT COUNT(*) FROM users")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	var count int
	if err := stmt.QueryRowContext(ctx).Scan(&count); err != nil {
		return 0, err
	}
	log.Info().Int("count", count).Msg("counted users via prepared statement")
	return count, nil
}

// InsertWithTransaction demonstrates transaction usage
func (db *DB) InsertWithTransaction(ctx context.Context) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	// Ensure rollback on error
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO users (name, email) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		"Transaction User",
		"tx@example.com",
	)
	if err != nil {
		return err
	}

	err = tx.Commit()
	if err != nil {
		return err
	}
	log.Info().Msg("transaction committed")
	return nil
}
