package database

import (
	"context"

	"github.com/origin-labs/queryorigin-go/example/sqlx/internal/config"
	originsqlx "github.com/origin-labs/queryorigin-go/sqlx"
	"github.com/rs/zerolog"

	_ "github.com/lib/pq" // Register postgres driver
)

// DB wraps the sqlx database connection with call-site annotation.
type DB struct {
	*originsqlx.DB
}

// New opens a database connection whose queries carry a trailing
// /* file=... */ comment naming the call site.
func New(ctx context.Context, logger zerolog.Logger) (*DB, error) {
	db, err := originsqlx.Connect(ctx, "postgres", config.DefaultDSN,
		originsqlx.WithLogger(logger),
		originsqlx.WithMapLoadTimeout(config.MapLoadTimeout),
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
