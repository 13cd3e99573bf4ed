package database

import (
	"database/sql"

	"github.com/origin-labs/queryorigin-go/example/sql/internal/config"
	originsql "github.com/origin-labs/queryorigin-go/sql"
	"github.com/rs/zerolog"

	_ "github.com/lib/pq" // Register postgres driver
)

// DB wraps the database connection.
type DB struct {
	*sql.DB
}

// New opens a database connection whose queries carry a trailing
// /* file=... */ comment naming the call site.
func New(logger zerolog.Logger) (*DB, error) {
	db, err := originsql.Open("postgres", config.DefaultDSN,
		originsql.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	// Configure connection pool
	db.SetMaxOpenConns(config.DefaultMaxOpen)
	db.SetMaxIdleConns(config.DefaultMaxIdle)
	db.SetConnMaxLifetime(config.DefaultMaxLifetime)
	db.SetConnMaxIdleTime(config.DefaultMaxIdleTime)

	return &DB{DB: db}, nil
}
