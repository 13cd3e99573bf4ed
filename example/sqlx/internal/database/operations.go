package database

import (
	"context"

	"github.com/rs/zerolog/log"
)

// User represents a user in the database
type User struct {
	ID    int    `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
}

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

// InsertUsers inserts sample users using NamedExecContext. The named
// parameters are bound before the call-site comment is appended.
func (db *DB) InsertUsers(ctx context.Context) error {
	users := []User{
		{Name: "Alice", Email: "alice@example.com"},
		{Name: "Bob", Email: "bob@example.com"},
		{Name: "Charlie", Email: "charlie@example.com"},
	}

	for _, user := range users {
		_, err := db.NamedExecContext(
			ctx,
			"INSERT INTO users (name, email) VALUES (:name, :email) ON CONFLICT DO NOTHING",
			user,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// QueryUsers queries users using SelectContext (scans into slice)
func (db *DB) QueryUsers(ctx context.Context) error {
	var users []User
	err := db.SelectContext(ctx, &users, "SELECT id, name, email FROM users LIMIT 10")
	if err != nil {
		return err
	}
	log.Info().Int("count", len(users)).Msg("queried users via SelectContext")
	return nil
}

// GetUser queries a single user using GetContext
func (db *DB) GetUser(ctx context.Context, name string) (*User, error) {
	var user User
	err := db.GetContext(ctx, &user, "SELECT id, name, email FROM users WHERE name = $1", name)
	if err != nil {
		return nil, err
	}
	log.Info().Str("name", user.Name).Str("email", user.Email).Msg("got user via GetContext")
	return &user, nil
}

// InsertWithTransaction demonstrates transaction usage. Queries inside
// the transaction are annotated like the DB's.
func (db *DB) InsertWithTransaction(ctx context.Context) error {
	tx, err := db.BeginTxx(ctx, nil)
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

	var user User
	err = tx.GetContext(
		ctx,
		&user,
		"SELECT id, name, email FROM users WHERE email = $1",
		"tx@example.com",
	)
	if err != nil {
		return err
	}

	err = tx.Commit()
	if err != nil {
		return err
	}
	log.Info().Str("name", user.Name).Msg("transaction committed")
	return nil
}
